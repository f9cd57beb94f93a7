package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testTime() time.Time {
	return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
}

func TestCombineTableIsTotal(t *testing.T) {
	valueLabels := []Label{LabelGreatBuy, LabelGoodBuy, LabelNoBuy, LabelInsufficientData}
	growthLabels := []Label{LabelGreatGrowth, LabelGoodGrowth, LabelPoorGrowth, LabelInsufficientData}

	valid := map[Rating]bool{
		RatingStrongBuy:    true,
		RatingModerateBuy:  true,
		RatingSpeculative:  true,
		RatingAvoid:        true,
		RatingInsufficient: true,
	}

	// All 16 admissible pairs map to exactly one documented rating.
	for _, v := range valueLabels {
		for _, g := range growthLabels {
			rating := Combine(v, g)
			assert.True(t, valid[rating], "Combine(%s, %s) produced %q", v, g, rating)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name   string
		value  Label
		growth Label
		want   Rating
	}{
		{"great both sides", LabelGreatBuy, LabelGreatGrowth, RatingStrongBuy},
		{"great value good growth", LabelGreatBuy, LabelGoodGrowth, RatingModerateBuy},
		{"good value great growth", LabelGoodBuy, LabelGreatGrowth, RatingModerateBuy},
		{"good both sides", LabelGoodBuy, LabelGoodGrowth, RatingModerateBuy},
		{"great value poor growth", LabelGreatBuy, LabelPoorGrowth, RatingSpeculative},
		{"no value good growth", LabelNoBuy, LabelGoodGrowth, RatingSpeculative},
		{"poor both sides", LabelNoBuy, LabelPoorGrowth, RatingAvoid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combine(tt.value, tt.growth))
		})
	}
}

func TestCombineInsufficientDataDominates(t *testing.T) {
	others := []Label{LabelGreatBuy, LabelGoodBuy, LabelNoBuy, LabelGreatGrowth, LabelGoodGrowth, LabelPoorGrowth}

	for _, other := range others {
		assert.Equal(t, RatingInsufficient, Combine(LabelInsufficientData, other))
		assert.Equal(t, RatingInsufficient, Combine(other, LabelInsufficientData))
	}

	assert.Equal(t, RatingInsufficient, Combine(LabelInsufficientData, LabelInsufficientData))
}
