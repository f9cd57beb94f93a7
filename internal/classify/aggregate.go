package classify

import (
	"fmt"
	"math"

	"github.com/Chinmay4285/Stock-Comparer/internal/rules"
)

// Label is the categorical classification for one perspective.
type Label string

const (
	LabelGreatBuy   Label = "GREAT BUY"
	LabelGoodBuy    Label = "GOOD BUY"
	LabelNoBuy      Label = "NO BUY"
	LabelGreatGrowth Label = "GREAT GROWTH OPPORTUNITY"
	LabelGoodGrowth  Label = "GOOD GROWTH OPPORTUNITY"
	LabelPoorGrowth  Label = "POOR GROWTH OPPORTUNITY"

	// LabelInsufficientData is reported when no core criterion could be
	// evaluated. It never silently degrades to NO BUY.
	LabelInsufficientData Label = "INSUFFICIENT DATA"
)

// tally holds verdict counts split by weight tier. UNKNOWN verdicts are
// excluded everywhere; BORDERLINE counts toward the evaluable total but
// toward neither passes nor fails.
type tally struct {
	corePass       int
	coreFail       int
	coreEvaluable  int
	secondaryPass  int
	secondaryFail  int
}

func count(verdicts []rules.CriterionVerdict) tally {
	var t tally
	for _, v := range verdicts {
		if v.Verdict == rules.VerdictUnknown {
			continue
		}

		if v.Tier == rules.TierCore {
			t.coreEvaluable++
			switch v.Verdict {
			case rules.VerdictPass:
				t.corePass++
			case rules.VerdictFail:
				t.coreFail++
			}
		} else {
			switch v.Verdict {
			case rules.VerdictPass:
				t.secondaryPass++
			case rules.VerdictFail:
				t.secondaryFail++
			}
		}
	}
	return t
}

// Classify turns an ordered sequence of criterion verdicts into one
// categorical label. The first matching rule wins:
//
//  1. no core failures, core passes >= 75% of evaluable core criteria,
//     and at most one secondary failure: GREAT.
//  2. at most one core failure and core passes >= 50% of evaluable core
//     criteria: GOOD.
//  3. otherwise: NO BUY / POOR GROWTH OPPORTUNITY.
//
// When no core criterion was evaluable the result is INSUFFICIENT DATA.
func Classify(p rules.Perspective, verdicts []rules.CriterionVerdict) Label {
	t := count(verdicts)

	if t.coreEvaluable == 0 {
		return LabelInsufficientData
	}

	greatCutoff := int(math.Ceil(0.75 * float64(t.coreEvaluable)))
	goodCutoff := int(math.Ceil(0.5 * float64(t.coreEvaluable)))

	switch {
	case t.coreFail == 0 && t.corePass >= greatCutoff && t.secondaryFail <= 1:
		return greatLabel(p)
	case t.coreFail <= 1 && t.corePass >= goodCutoff:
		return goodLabel(p)
	default:
		return poorLabel(p)
	}
}

func greatLabel(p rules.Perspective) Label {
	if p == rules.PerspectiveGrowth {
		return LabelGreatGrowth
	}
	return LabelGreatBuy
}

func goodLabel(p rules.Perspective) Label {
	if p == rules.PerspectiveGrowth {
		return LabelGoodGrowth
	}
	return LabelGoodBuy
}

func poorLabel(p rules.Perspective) Label {
	if p == rules.PerspectiveGrowth {
		return LabelPoorGrowth
	}
	return LabelNoBuy
}

// Rationale lists every FAIL and UNKNOWN criterion with its explanation,
// in rule-set order.
func Rationale(verdicts []rules.CriterionVerdict) []string {
	var lines []string
	for _, v := range verdicts {
		switch v.Verdict {
		case rules.VerdictFail:
			lines = append(lines, fmt.Sprintf("%s (%s): FAIL. %s. Threshold: %s.",
				v.Label, v.Value, v.Insight, v.Threshold))
		case rules.VerdictUnknown:
			lines = append(lines, fmt.Sprintf("%s: data unavailable.", v.Label))
		}
	}
	return lines
}
