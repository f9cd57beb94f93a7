package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
)

func TestValueSetCoreCriteria(t *testing.T) {
	set := ValueSet()

	core := map[string]bool{}
	for _, c := range set.Criteria {
		if c.Tier == TierCore {
			core[c.Key] = true
		}
	}

	wantCore := []string{"pe_ratio", "pb_ratio", "debt_to_equity", "roe", "current_ratio", "profit_margin"}
	require.Len(t, core, len(wantCore))
	for _, key := range wantCore {
		assert.True(t, core[key], "%s should be a core value criterion", key)
	}
}

func TestGrowthSetCoreCriteria(t *testing.T) {
	set := GrowthSet()

	core := map[string]bool{}
	for _, c := range set.Criteria {
		if c.Tier == TierCore {
			core[c.Key] = true
		}
	}

	wantCore := []string{"revenue_growth", "earnings_growth", "eps_growth", "price_performance_1y"}
	require.Len(t, core, len(wantCore))
	for _, key := range wantCore {
		assert.True(t, core[key], "%s should be a core growth criterion", key)
	}
}

func TestValueSetEvaluationOrder(t *testing.T) {
	set := ValueSet()

	b := &metrics.Bundle{
		Ticker:  "AAPL",
		PERatio: metrics.Some(12),
	}

	verdicts := set.Evaluate(b)
	require.Len(t, verdicts, len(set.Criteria))

	// Output order mirrors table order
	for i, c := range set.Criteria {
		assert.Equal(t, c.Key, verdicts[i].Criterion)
		assert.Equal(t, c.Tier, verdicts[i].Tier)
	}
}

func TestValueSetScenario(t *testing.T) {
	set := ValueSet()

	b := &metrics.Bundle{
		Ticker:        "VAL",
		PERatio:       metrics.Some(12),
		PBRatio:       metrics.Some(1.1),
		PSRatio:       metrics.Some(1.4),
		DebtToEquity:  metrics.Some(0.3),
		ROE:           metrics.Some(0.22),
		CurrentRatio:  metrics.Some(2.1),
		DividendYield: metrics.Some(0.035),
		ProfitMargin:  metrics.Some(0.18),
		PEGRatio:      metrics.Some(0.9),
	}

	for _, v := range set.Evaluate(b) {
		assert.Equal(t, VerdictPass, v.Verdict, "criterion %s", v.Criterion)
	}
}

func TestGrowthSetScenarioAllCoreFail(t *testing.T) {
	set := GrowthSet()

	b := &metrics.Bundle{
		Ticker:         "GRW",
		RevenueGrowth:  metrics.Some(-0.05),
		EarningsGrowth: metrics.Some(-0.02),
		EPSGrowth:      metrics.Some(-0.01),
		PricePerf1Y:    metrics.Some(-0.10),
	}

	for _, v := range set.Evaluate(b) {
		if v.Tier == TierCore {
			assert.Equal(t, VerdictFail, v.Verdict, "core criterion %s", v.Criterion)
		} else {
			assert.Equal(t, VerdictUnknown, v.Verdict, "secondary criterion %s has no data", v.Criterion)
		}
	}
}

func TestAnalystRecommendationLowerIsBetter(t *testing.T) {
	set := GrowthSet()

	var analyst Criterion
	for _, c := range set.Criteria {
		if c.Key == "analyst_recommendation" {
			analyst = c
		}
	}
	require.NotEmpty(t, analyst.Key)

	strongBuy := &metrics.Bundle{AnalystRecommendation: metrics.Some(1.8)}
	hold := &metrics.Bundle{AnalystRecommendation: metrics.Some(3.0)}
	sell := &metrics.Bundle{AnalystRecommendation: metrics.Some(4.2)}

	assert.Equal(t, VerdictPass, analyst.Evaluate(strongBuy).Verdict)
	assert.Equal(t, VerdictBorderline, analyst.Evaluate(hold).Verdict)
	assert.Equal(t, VerdictFail, analyst.Evaluate(sell).Verdict)
}
