package rules

import "github.com/Chinmay4285/Stock-Comparer/internal/metrics"

// GrowthSet returns the growth/momentum rule table: expansion rates,
// margin quality and price momentum versus the broad market.
func GrowthSet() Set {
	return Set{
		Perspective: PerspectiveGrowth,
		Criteria: []Criterion{
			{
				Key:     "revenue_growth",
				Label:   "Revenue Growth Rate",
				Tier:    TierCore,
				Rule:    AtLeast{Pass: 0.20, Fail: 0.10},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.RevenueGrowth },
				Insight: "Above 20% annually shows rapid expansion and market share gains",
			},
			{
				Key:     "earnings_growth",
				Label:   "Earnings Growth Rate",
				Tier:    TierCore,
				Rule:    AtLeast{Pass: 0.20, Fail: 0.10},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.EarningsGrowth },
				Insight: "Accelerating earnings growth is particularly positive for growth stocks",
			},
			{
				Key:     "price_performance_6m",
				Label:   "6-Month Price Performance",
				Tier:    TierSecondary,
				Rule:    AtLeast{Pass: 0.15, Fail: 0.05},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PricePerf6M },
				Insight: "Above 15% in six months indicates strong upward momentum",
			},
			{
				Key:     "price_performance_1y",
				Label:   "1-Year Price Performance",
				Tier:    TierCore,
				Rule:    AtLeast{Pass: 0.25, Fail: 0.10},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PricePerf1Y },
				Insight: "Extended price strength often signals market confidence",
			},
			{
				Key:     "eps_growth",
				Label:   "EPS Growth Rate",
				Tier:    TierCore,
				Rule:    AtLeast{Pass: 0.15, Fail: 0.08},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.EPSGrowth },
				Insight: "Consistent per-share profit growth is a key factor for growth investors",
			},
			{
				Key:     "gross_margin",
				Label:   "Gross Margin",
				Tier:    TierSecondary,
				Rule:    AtLeast{Pass: 0.40, Fail: 0.25},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.GrossMargin },
				Insight: "High margins often indicate competitive advantages and pricing power",
			},
			{
				Key:     "operating_margin",
				Label:   "Operating Margin",
				Tier:    TierSecondary,
				Rule:    AtLeast{Pass: 0.20, Fail: 0.10},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.OperatingMargin },
				Insight: "Above 20% indicates efficient operations and a scalable business model",
			},
			{
				Key:     "relative_strength",
				Label:   "Relative Strength",
				Tier:    TierSecondary,
				Rule:    AtLeast{Pass: 0.10, Fail: 0},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.RelativeStrength },
				Insight: "Outperforming the market by 10% or more is a strong momentum signal",
			},
			{
				Key:     "analyst_recommendation",
				Label:   "Analyst Recommendation",
				Tier:    TierSecondary,
				Rule:    AtMost{Pass: 2.5, Fail: 3.5},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.AnalystRecommendation },
				Insight: "Below 2.5 on the 1-to-5 scale suggests analyst confidence",
			},
			{
				Key:     "pe_growth",
				Label:   "P/E to Growth Score",
				Tier:    TierSecondary,
				Rule:    AtLeast{Pass: 0.8, Fail: 0.5},
				Metric:  func(b *metrics.Bundle) metrics.Value { return b.PEGrowthScore },
				Insight: "Above 0.8 suggests a good balance of growth and valuation",
			},
		},
	}
}
