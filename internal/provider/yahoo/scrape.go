package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
)

// scrapeStatistics parses the key-statistics HTML page as a fallback when
// the JSON endpoint is unavailable. Only the fields present on the page
// are filled; everything else stays absent.
func (c *Client) scrapeStatistics(ctx context.Context, ticker string, bundle *metrics.Bundle) error {
	endpoint := fmt.Sprintf("%s/quote/%s/key-statistics", c.quoteURL, ticker)

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("statistics page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return provider.ErrTickerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to parse statistics page: %w", err)
	}

	found := 0
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		label := strings.TrimSpace(cells.First().Text())
		value := strings.TrimSpace(cells.Last().Text())

		if applyStatistic(bundle, label, value) {
			found++
		}
	})

	if found == 0 {
		return fmt.Errorf("no statistics found for %s", ticker)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"fields": found,
	}).Debug("Scraped key statistics")

	return nil
}

// applyStatistic maps one labeled table cell onto a bundle field
func applyStatistic(bundle *metrics.Bundle, label, value string) bool {
	switch {
	case strings.HasPrefix(label, "Trailing P/E"):
		bundle.PERatio = parseStatistic(value)
	case strings.HasPrefix(label, "Price/Book"):
		bundle.PBRatio = parseStatistic(value)
	case strings.HasPrefix(label, "Price/Sales"):
		bundle.PSRatio = parseStatistic(value)
	case strings.HasPrefix(label, "PEG Ratio"):
		bundle.PEGRatio = parseStatistic(value)
	case strings.HasPrefix(label, "Total Debt/Equity"):
		bundle.DebtToEquity = scalePercent(parseStatistic(value))
	case strings.HasPrefix(label, "Return on Equity"):
		bundle.ROE = scalePercent(parseStatistic(value))
	case strings.HasPrefix(label, "Current Ratio"):
		bundle.CurrentRatio = parseStatistic(value)
	case strings.HasPrefix(label, "Forward Annual Dividend Yield"):
		bundle.DividendYield = scalePercent(parseStatistic(value))
	case strings.HasPrefix(label, "Profit Margin"):
		bundle.ProfitMargin = scalePercent(parseStatistic(value))
	case strings.HasPrefix(label, "Operating Margin"):
		bundle.OperatingMargin = scalePercent(parseStatistic(value))
	case strings.HasPrefix(label, "Quarterly Revenue Growth"):
		bundle.RevenueGrowth = scalePercent(parseStatistic(value))
	case strings.HasPrefix(label, "Quarterly Earnings Growth"):
		bundle.EarningsGrowth = scalePercent(parseStatistic(value))
	default:
		return false
	}
	return true
}

// parseStatistic parses a displayed cell value. "N/A" and unparseable
// text map to absent, not zero.
func parseStatistic(s string) metrics.Value {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" || s == "--" {
		return metrics.None()
	}

	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return metrics.None()
	}
	return metrics.Some(v)
}

// scalePercent converts a percentage reading to a fraction
func scalePercent(v metrics.Value) metrics.Value {
	f, ok := v.Float64()
	if !ok {
		return metrics.None()
	}
	return metrics.Some(f / 100)
}
