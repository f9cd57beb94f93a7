package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
)

func TestAtMost(t *testing.T) {
	rule := AtMost{Pass: 15, Fail: 25}

	tests := []struct {
		name string
		v    float64
		want Verdict
	}{
		{"well below pass bound", 12, VerdictPass},
		{"exactly pass bound", 15, VerdictPass},
		{"between bounds", 20, VerdictBorderline},
		{"exactly fail bound", 25, VerdictBorderline},
		{"beyond fail bound", 25.01, VerdictFail},
		{"far beyond fail bound", 40, VerdictFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Evaluate(tt.v))
		})
	}
}

func TestAtLeast(t *testing.T) {
	rule := AtLeast{Pass: 0.15, Fail: 0.10}

	tests := []struct {
		name string
		v    float64
		want Verdict
	}{
		{"well above pass bound", 0.22, VerdictPass},
		{"exactly pass bound", 0.15, VerdictPass},
		{"between bounds", 0.12, VerdictBorderline},
		{"exactly fail bound", 0.10, VerdictBorderline},
		{"below fail bound", 0.09, VerdictFail},
		{"negative", -0.05, VerdictFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Evaluate(tt.v))
		})
	}
}

func TestBetween(t *testing.T) {
	rule := Between{PassLo: 1.5, PassHi: 3, FailBelow: 1}

	tests := []struct {
		name string
		v    float64
		want Verdict
	}{
		{"inside band", 2.1, VerdictPass},
		{"exactly lower pass bound", 1.5, VerdictPass},
		{"exactly upper pass bound", 3, VerdictPass},
		{"below band above fail", 1.2, VerdictBorderline},
		{"exactly fail bound", 1, VerdictBorderline},
		{"below fail bound", 0.8, VerdictFail},
		{"above band", 4.5, VerdictBorderline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Evaluate(tt.v))
		})
	}
}

func TestPositive(t *testing.T) {
	rule := Positive{}

	assert.Equal(t, VerdictPass, rule.Evaluate(0.05))
	assert.Equal(t, VerdictPass, rule.Evaluate(0), "zero boundary is PASS")
	assert.Equal(t, VerdictFail, rule.Evaluate(-0.01))
}

func TestCriterionEvaluateAbsentIsUnknown(t *testing.T) {
	c := Criterion{
		Key:    "roe",
		Label:  "Return on Equity",
		Tier:   TierCore,
		Rule:   AtLeast{Pass: 0.15, Fail: 0.10},
		Metric: func(b *metrics.Bundle) metrics.Value { return b.ROE },
	}

	verdict := c.Evaluate(&metrics.Bundle{Ticker: "TEST"})

	assert.Equal(t, VerdictUnknown, verdict.Verdict)
	assert.False(t, verdict.Value.Present())
}

func TestCriterionEvaluateIsIdempotent(t *testing.T) {
	c := Criterion{
		Key:    "pe_ratio",
		Label:  "Price-to-Earnings Ratio",
		Tier:   TierCore,
		Rule:   AtMost{Pass: 15, Fail: 25},
		Metric: func(b *metrics.Bundle) metrics.Value { return b.PERatio },
	}

	b := &metrics.Bundle{Ticker: "TEST", PERatio: metrics.Some(15)}

	first := c.Evaluate(b)
	second := c.Evaluate(b)

	assert.Equal(t, first, second)
	assert.Equal(t, VerdictPass, first.Verdict, "boundary value must be PASS")
}

func TestForPerspective(t *testing.T) {
	valueSet, err := ForPerspective(PerspectiveValue)
	assert.NoError(t, err)
	assert.Equal(t, PerspectiveValue, valueSet.Perspective)

	growthSet, err := ForPerspective(PerspectiveGrowth)
	assert.NoError(t, err)
	assert.Equal(t, PerspectiveGrowth, growthSet.Perspective)

	_, err = ForPerspective("technical")
	assert.Error(t, err)
}
