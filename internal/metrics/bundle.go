package metrics

import "time"

// Bundle is the normalized set of financial metrics for one company at one
// point in time. Every metric is optional; the provider marks fields it
// cannot supply as absent rather than zero.
type Bundle struct {
	Ticker      string    `json:"ticker"`
	CompanyName string    `json:"company_name"`
	Currency    string    `json:"currency"`
	Price       Value     `json:"price"`
	AsOf        time.Time `json:"as_of"`

	// Valuation
	PERatio       Value `json:"pe_ratio"`
	PBRatio       Value `json:"pb_ratio"`
	PSRatio       Value `json:"ps_ratio"`
	PEGRatio      Value `json:"peg_ratio"`
	DividendYield Value `json:"dividend_yield"`

	// Balance sheet and profitability
	DebtToEquity    Value `json:"debt_to_equity"`
	ROE             Value `json:"roe"`
	CurrentRatio    Value `json:"current_ratio"`
	ProfitMargin    Value `json:"profit_margin"`
	GrossMargin     Value `json:"gross_margin"`
	OperatingMargin Value `json:"operating_margin"`

	// Growth
	RevenueGrowth  Value `json:"revenue_growth"`
	EarningsGrowth Value `json:"earnings_growth"`
	EPSGrowth      Value `json:"eps_growth"`

	// Momentum
	PricePerf6M      Value `json:"price_performance_6m"`
	PricePerf1Y      Value `json:"price_performance_1y"`
	RelativeStrength Value `json:"relative_strength"`

	// Sentiment and derived
	AnalystRecommendation Value `json:"analyst_recommendation"`
	PEGrowthScore         Value `json:"pe_growth_score"`
}

// Empty returns a bundle with every metric absent, used when a provider
// lookup times out so the classifier's insufficient-data path applies
// uniformly instead of a separate network-error branch.
func Empty(ticker string, asOf time.Time) *Bundle {
	return &Bundle{Ticker: ticker, AsOf: asOf}
}
