package yahoo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
	"github.com/Chinmay4285/Stock-Comparer/pkg/config"
	"github.com/Chinmay4285/Stock-Comparer/pkg/httputil"
	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

// Client fetches company fundamentals and price history from the Yahoo
// Finance endpoints. All Yahoo calls go through this client.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	quoteURL   string
	benchmark  string
}

// NewClient creates a new Yahoo Finance client
func NewClient(cfg config.ProviderConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    cfg.BaseURL,
		quoteURL:   cfg.QuoteURL,
		benchmark:  cfg.BenchmarkIndex,
	}
}

// FetchMetrics assembles a normalized metric bundle for one ticker.
// Fundamentals come from the quote-summary endpoint with an HTML scrape as
// fallback; momentum metrics are derived from daily closes. Fields a source
// cannot supply stay absent.
func (c *Client) FetchMetrics(ctx context.Context, ticker string) (*metrics.Bundle, error) {
	bundle := &metrics.Bundle{
		Ticker: ticker,
		AsOf:   time.Now().UTC(),
	}

	if err := c.fetchFundamentals(ctx, ticker, bundle); err != nil {
		return nil, err
	}

	// Momentum is best-effort: a fundamentals-only bundle is still usable,
	// the affected criteria just evaluate as UNKNOWN.
	if err := c.fetchPerformance(ctx, ticker, bundle); err != nil {
		c.logger.WithError(err).WithField("ticker", ticker).Warn("Could not derive price performance")
	}

	derivePEGrowthScore(bundle)

	return bundle, nil
}

// fetchFundamentals fills valuation and profitability fields, falling back
// to the key-statistics HTML page when the JSON endpoint is unavailable.
func (c *Client) fetchFundamentals(ctx context.Context, ticker string, bundle *metrics.Bundle) error {
	err := c.fetchQuoteSummary(ctx, ticker, bundle)
	if err == nil {
		return nil
	}
	if errors.Is(err, provider.ErrTickerNotFound) {
		return err
	}

	c.logger.WithError(err).WithField("ticker", ticker).Warn("Quote summary failed, scraping statistics page")

	if scrapeErr := c.scrapeStatistics(ctx, ticker, bundle); scrapeErr != nil {
		return fmt.Errorf("fundamentals unavailable for %s: %w", ticker, err)
	}
	return nil
}

// fetchQuoteSummary calls the quote-summary JSON endpoint
func (c *Client) fetchQuoteSummary(ctx context.Context, ticker string, bundle *metrics.Bundle) error {
	params := url.Values{}
	params.Set("modules", "summaryDetail,defaultKeyStatistics,financialData,price")

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s",
		c.baseURL, url.PathEscape(ticker), params.Encode())

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("quote summary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return provider.ErrTickerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload quoteSummaryResponse
	if err := decodeJSON(resp.Body, &payload); err != nil {
		return fmt.Errorf("failed to decode quote summary: %w", err)
	}

	result, err := payload.result()
	if err != nil {
		return err
	}

	result.apply(bundle)
	return nil
}

// fetchPerformance derives 6-month and 1-year price performance plus
// relative strength against the benchmark index from daily closes.
func (c *Client) fetchPerformance(ctx context.Context, ticker string, bundle *metrics.Bundle) error {
	closes, err := c.fetchDailyCloses(ctx, ticker)
	if err != nil {
		return err
	}
	if len(closes) < 2 {
		return fmt.Errorf("not enough price history for %s", ticker)
	}

	bundle.PricePerf1Y = changeOver(closes, len(closes))
	bundle.PricePerf6M = changeOver(closes, tradingDays6M)

	benchCloses, err := c.fetchDailyCloses(ctx, c.benchmark)
	if err != nil {
		c.logger.WithError(err).WithField("index", c.benchmark).Warn("Benchmark history unavailable")
		return nil
	}

	stockRet, stockOK := bundle.PricePerf1Y.Float64()
	benchRet, benchOK := changeOver(benchCloses, len(benchCloses)).Float64()
	if stockOK && benchOK {
		bundle.RelativeStrength = metrics.Some(stockRet - benchRet)
	}

	return nil
}

// tradingDays6M approximates six months of trading days
const tradingDays6M = 126

// changeOver computes the fractional price change over the trailing n
// closes. An unusable window leaves the metric absent.
func changeOver(closes []float64, n int) metrics.Value {
	if len(closes) < 2 {
		return metrics.None()
	}
	if n > len(closes) {
		n = len(closes)
	}

	start := closes[len(closes)-n]
	end := closes[len(closes)-1]
	if start == 0 {
		return metrics.None()
	}

	return metrics.Some((end - start) / start)
}

// derivePEGrowthScore computes the custom score balancing P/E against
// earnings growth: growth/PE scaled by 10 and capped at 1.5, so strong
// growth can justify an elevated multiple. Requires positive P/E and
// positive growth; otherwise the score stays absent.
func derivePEGrowthScore(bundle *metrics.Bundle) {
	if bundle.PEGrowthScore.Present() {
		return
	}

	pe, peOK := bundle.PERatio.Float64()
	growth, growthOK := bundle.EarningsGrowth.Float64()
	if !peOK || !growthOK || pe <= 0 || growth <= 0 {
		return
	}

	bundle.PEGrowthScore = metrics.Some(math.Min(1.5, growth/pe*10))
}
