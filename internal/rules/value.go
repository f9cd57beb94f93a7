package rules

import "github.com/Chinmay4285/Stock-Comparer/internal/metrics"

// ValueSet returns the value-investing rule table. Thresholds follow
// classic value screens: low multiples, conservative leverage, healthy
// liquidity and durable profitability. The numbers are fixed constants;
// adding a criterion means adding a row, not a branch.
func ValueSet() Set {
	return Set{
		Perspective: PerspectiveValue,
		Criteria: []Criterion{
			{
				Key:     "pe_ratio",
				Label:   "Price-to-Earnings Ratio",
				Tier:    TierCore,
				Rule:    AtMost{Pass: 15, Fail: 25},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PERatio },
				Insight: "Lower is better for value stocks; below 15 suggests potential undervaluation",
			},
			{
				Key:     "pb_ratio",
				Label:   "Price-to-Book Ratio",
				Tier:    TierCore,
				Rule:    AtMost{Pass: 1.5, Fail: 3},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PBRatio },
				Insight: "Below 1.5 may indicate an undervalued stock relative to its assets",
			},
			{
				Key:     "ps_ratio",
				Label:   "Price-to-Sales Ratio",
				Tier:    TierSecondary,
				Rule:    AtMost{Pass: 2, Fail: 4},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PSRatio },
				Insight: "A low P/S ratio may indicate undervaluation based on sales performance",
			},
			{
				Key:     "debt_to_equity",
				Label:   "Debt-to-Equity Ratio",
				Tier:    TierCore,
				Rule:    AtMost{Pass: 0.5, Fail: 1.5},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.DebtToEquity },
				Insight: "High leverage increases financial risk; below 0.5 indicates conservative management",
			},
			{
				Key:     "roe",
				Label:   "Return on Equity",
				Tier:    TierCore,
				Rule:    AtLeast{Pass: 0.15, Fail: 0.10},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.ROE },
				Insight: "Above 15% shows efficient use of shareholders' capital",
			},
			{
				Key:     "current_ratio",
				Label:   "Current Ratio",
				Tier:    TierCore,
				Rule:    Between{PassLo: 1.5, PassHi: 3, FailBelow: 1},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.CurrentRatio },
				Insight: "Between 1.5 and 3.0 shows good liquidity without excessive idle capital",
			},
			{
				Key:     "dividend_yield",
				Label:   "Dividend Yield",
				Tier:    TierSecondary,
				Rule:    AtLeast{Pass: 0.03, Fail: 0.01},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.DividendYield },
				Insight: "Above 3% is attractive for value and income investing",
			},
			{
				Key:     "profit_margin",
				Label:   "Profit Margin",
				Tier:    TierCore,
				Rule:    AtLeast{Pass: 0.15, Fail: 0.08},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.ProfitMargin },
				Insight: "Above 15% indicates strong profitability and competitive advantages",
			},
			{
				Key:     "peg_ratio",
				Label:   "Price/Earnings to Growth Ratio",
				Tier:    TierSecondary,
				Rule:    AtMost{Pass: 1, Fail: 2},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PEGRatio },
				Insight: "Below 1.0 suggests the stock may be undervalued relative to its growth rate",
			},
		},
	}
}
