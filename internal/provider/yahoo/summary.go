package yahoo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
)

// rawValue is Yahoo's {"raw": 1.23, "fmt": "1.23"} number wrapper. Absent
// fields decode to a nil Raw, which maps to an absent metric.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (r *rawValue) value() metrics.Value {
	if r == nil {
		return metrics.None()
	}
	return metrics.FromPtr(r.Raw)
}

// quoteSummaryResponse mirrors the quoteSummary envelope
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	SummaryDetail *struct {
		TrailingPE                   *rawValue `json:"trailingPE"`
		ForwardPE                    *rawValue `json:"forwardPE"`
		PriceToSalesTrailing12Months *rawValue `json:"priceToSalesTrailing12Months"`
		DividendYield                *rawValue `json:"dividendYield"`
	} `json:"summaryDetail"`

	DefaultKeyStatistics *struct {
		PriceToBook              *rawValue `json:"priceToBook"`
		PegRatio                 *rawValue `json:"pegRatio"`
		EarningsQuarterlyGrowth  *rawValue `json:"earningsQuarterlyGrowth"`
	} `json:"defaultKeyStatistics"`

	FinancialData *struct {
		CurrentPrice       *rawValue `json:"currentPrice"`
		DebtToEquity       *rawValue `json:"debtToEquity"`
		ReturnOnEquity     *rawValue `json:"returnOnEquity"`
		CurrentRatio       *rawValue `json:"currentRatio"`
		ProfitMargins      *rawValue `json:"profitMargins"`
		GrossMargins       *rawValue `json:"grossMargins"`
		OperatingMargins   *rawValue `json:"operatingMargins"`
		RevenueGrowth      *rawValue `json:"revenueGrowth"`
		EarningsGrowth     *rawValue `json:"earningsGrowth"`
		RecommendationMean *rawValue `json:"recommendationMean"`
	} `json:"financialData"`

	Price *struct {
		LongName           string    `json:"longName"`
		ShortName          string    `json:"shortName"`
		Currency           string    `json:"currency"`
		RegularMarketPrice *rawValue `json:"regularMarketPrice"`
	} `json:"price"`
}

// result unwraps the envelope, translating Yahoo's not-found error
func (r *quoteSummaryResponse) result() (*quoteSummaryResult, error) {
	if e := r.QuoteSummary.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, provider.ErrTickerNotFound
		}
		return nil, fmt.Errorf("quote summary error: %s: %s", e.Code, e.Description)
	}
	if len(r.QuoteSummary.Result) == 0 {
		return nil, provider.ErrTickerNotFound
	}
	return &r.QuoteSummary.Result[0], nil
}

// apply copies the summary fields into the bundle. Missing modules leave
// their fields absent.
func (r *quoteSummaryResult) apply(bundle *metrics.Bundle) {
	if d := r.SummaryDetail; d != nil {
		bundle.PERatio = d.TrailingPE.value()
		if !bundle.PERatio.Present() {
			bundle.PERatio = d.ForwardPE.value()
		}
		bundle.PSRatio = d.PriceToSalesTrailing12Months.value()
		bundle.DividendYield = d.DividendYield.value()
	}

	if k := r.DefaultKeyStatistics; k != nil {
		bundle.PBRatio = k.PriceToBook.value()
		bundle.PEGRatio = k.PegRatio.value()
		bundle.EPSGrowth = k.EarningsQuarterlyGrowth.value()
	}

	if f := r.FinancialData; f != nil {
		// Yahoo reports debt-to-equity as a percentage
		if v, ok := f.DebtToEquity.value().Float64(); ok {
			bundle.DebtToEquity = metrics.Some(v / 100)
		}
		bundle.ROE = f.ReturnOnEquity.value()
		bundle.CurrentRatio = f.CurrentRatio.value()
		bundle.ProfitMargin = f.ProfitMargins.value()
		bundle.GrossMargin = f.GrossMargins.value()
		bundle.OperatingMargin = f.OperatingMargins.value()
		bundle.RevenueGrowth = f.RevenueGrowth.value()
		bundle.EarningsGrowth = f.EarningsGrowth.value()
		bundle.AnalystRecommendation = f.RecommendationMean.value()
		bundle.Price = f.CurrentPrice.value()
	}

	if p := r.Price; p != nil {
		bundle.CompanyName = p.LongName
		if bundle.CompanyName == "" {
			bundle.CompanyName = p.ShortName
		}
		bundle.Currency = p.Currency
		if !bundle.Price.Present() {
			bundle.Price = p.RegularMarketPrice.value()
		}
	}
}

func decodeJSON(r io.Reader, out interface{}) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return json.Unmarshal(body, out)
}
