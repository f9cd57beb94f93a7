package rules

import (
	"fmt"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
)

// Verdict is the graded outcome of evaluating one criterion.
type Verdict string

const (
	VerdictPass       Verdict = "PASS"
	VerdictBorderline Verdict = "BORDERLINE"
	VerdictFail       Verdict = "FAIL"
	VerdictUnknown    Verdict = "UNKNOWN"
)

// Tier marks how much weight a criterion carries in classification.
type Tier string

const (
	TierCore      Tier = "core"
	TierSecondary Tier = "secondary"
)

// Perspective identifies one of the two independent rule sets.
type Perspective string

const (
	PerspectiveValue  Perspective = "value"
	PerspectiveGrowth Perspective = "growth_momentum"
)

// Rule evaluates a known metric value against fixed thresholds.
// Boundary values tie-break toward the more favorable category: the pass
// bound itself is PASS, the fail bound itself is BORDERLINE.
type Rule interface {
	Evaluate(v float64) Verdict
	Describe() string
}

// AtMost passes metrics where lower is better (P/E, debt-to-equity).
type AtMost struct {
	Pass float64 // v <= Pass is PASS
	Fail float64 // v > Fail is FAIL, in between is BORDERLINE
}

func (r AtMost) Evaluate(v float64) Verdict {
	switch {
	case v <= r.Pass:
		return VerdictPass
	case v > r.Fail:
		return VerdictFail
	default:
		return VerdictBorderline
	}
}

func (r AtMost) Describe() string {
	return fmt.Sprintf("<= %.2f passes, > %.2f fails", r.Pass, r.Fail)
}

// AtLeast passes metrics where higher is better (ROE, growth rates).
type AtLeast struct {
	Pass float64 // v >= Pass is PASS
	Fail float64 // v < Fail is FAIL, in between is BORDERLINE
}

func (r AtLeast) Evaluate(v float64) Verdict {
	switch {
	case v >= r.Pass:
		return VerdictPass
	case v < r.Fail:
		return VerdictFail
	default:
		return VerdictBorderline
	}
}

func (r AtLeast) Describe() string {
	return fmt.Sprintf(">= %.2f passes, < %.2f fails", r.Pass, r.Fail)
}

// Between passes metrics with an ideal band (current ratio). Values below
// FailBelow fail; anything else outside the band is BORDERLINE, so an
// unusually high reading is flagged without sinking the classification.
type Between struct {
	PassLo    float64
	PassHi    float64
	FailBelow float64
}

func (r Between) Evaluate(v float64) Verdict {
	switch {
	case v >= r.PassLo && v <= r.PassHi:
		return VerdictPass
	case v < r.FailBelow:
		return VerdictFail
	default:
		return VerdictBorderline
	}
}

func (r Between) Describe() string {
	return fmt.Sprintf("%.2f to %.2f passes, < %.2f fails", r.PassLo, r.PassHi, r.FailBelow)
}

// Positive is a direction check for rates where any non-negative reading
// passes. The zero boundary is PASS.
type Positive struct{}

func (Positive) Evaluate(v float64) Verdict {
	if v >= 0 {
		return VerdictPass
	}
	return VerdictFail
}

func (Positive) Describe() string {
	return ">= 0.00 passes"
}

// Criterion is one row of a rule table: which metric to read, how to judge
// it, and how to explain the judgment.
type Criterion struct {
	Key     string
	Label   string
	Tier    Tier
	Rule    Rule
	Metric  func(*metrics.Bundle) metrics.Value
	Insight string
}

// CriterionVerdict is the immutable result of evaluating one criterion.
type CriterionVerdict struct {
	Criterion string        `json:"criterion"`
	Label     string        `json:"label"`
	Tier      Tier          `json:"tier"`
	Value     metrics.Value `json:"value"`
	Verdict   Verdict       `json:"verdict"`
	Threshold string        `json:"threshold"`
	Insight   string        `json:"insight"`
}

// Evaluate judges a single criterion against the bundle. An absent metric
// yields UNKNOWN, never PASS or FAIL.
func (c Criterion) Evaluate(b *metrics.Bundle) CriterionVerdict {
	value := c.Metric(b)

	verdict := VerdictUnknown
	if v, ok := value.Float64(); ok {
		verdict = c.Rule.Evaluate(v)
	}

	return CriterionVerdict{
		Criterion: c.Key,
		Label:     c.Label,
		Tier:      c.Tier,
		Value:     value,
		Verdict:   verdict,
		Threshold: c.Rule.Describe(),
		Insight:   c.Insight,
	}
}

// Set is a fixed, ordered collection of criteria for one perspective.
// Order determines the display order in the rationale, not the outcome.
type Set struct {
	Perspective Perspective
	Criteria    []Criterion
}

// Evaluate runs every criterion in table order.
func (s Set) Evaluate(b *metrics.Bundle) []CriterionVerdict {
	verdicts := make([]CriterionVerdict, 0, len(s.Criteria))
	for _, c := range s.Criteria {
		verdicts = append(verdicts, c.Evaluate(b))
	}
	return verdicts
}

// ForPerspective returns the rule set for the given perspective.
func ForPerspective(p Perspective) (Set, error) {
	switch p {
	case PerspectiveValue:
		return ValueSet(), nil
	case PerspectiveGrowth:
		return GrowthSet(), nil
	default:
		return Set{}, fmt.Errorf("unknown perspective: %q", p)
	}
}
