package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
)

// chartResponse mirrors the chart endpoint envelope, trimmed to the
// fields momentum derivation needs.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetchDailyCloses returns one year of daily closing prices, oldest first.
// Null entries (halts, holidays) are dropped.
func (c *Client) fetchDailyCloses(ctx context.Context, symbol string) ([]float64, error) {
	params := url.Values{}
	params.Set("range", "1y")
	params.Set("interval", "1d")

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		c.baseURL, url.PathEscape(symbol), params.Encode())

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("chart request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, provider.ErrTickerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload chartResponse
	if err := decodeJSON(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}

	if e := payload.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart error: %s: %s", e.Code, e.Description)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no price history for %s", symbol)
	}

	raw := payload.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, p := range raw {
		if p != nil {
			closes = append(closes, *p)
		}
	}

	return closes, nil
}
