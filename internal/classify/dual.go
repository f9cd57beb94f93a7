package classify

// Rating is the combined dual-perspective recommendation.
type Rating string

const (
	RatingStrongBuy    Rating = "⭐⭐⭐ STRONG BUY"
	RatingModerateBuy  Rating = "⭐⭐ MODERATE BUY"
	RatingSpeculative  Rating = "⭐ SPECULATIVE"
	RatingAvoid        Rating = "❌ AVOID"
	RatingInsufficient Rating = "INSUFFICIENT DATA"
)

// ordinal normalizes perspective labels to a 4-level scale for the
// combination lookup.
type ordinal int

const (
	ordinalGreat ordinal = iota
	ordinalGood
	ordinalNone
	ordinalInsufficient
)

func ordinalOf(label Label) ordinal {
	switch label {
	case LabelGreatBuy, LabelGreatGrowth:
		return ordinalGreat
	case LabelGoodBuy, LabelGoodGrowth:
		return ordinalGood
	case LabelInsufficientData:
		return ordinalInsufficient
	default:
		return ordinalNone
	}
}

// combination is the full dual rating table. The two perspectives use
// incompatible metrics, so their labels are combined by lookup, never by
// averaging scores across them.
var combination = map[[2]ordinal]Rating{
	{ordinalGreat, ordinalGreat}: RatingStrongBuy,
	{ordinalGreat, ordinalGood}:  RatingModerateBuy,
	{ordinalGood, ordinalGreat}:  RatingModerateBuy,
	{ordinalGood, ordinalGood}:   RatingModerateBuy,
	{ordinalGreat, ordinalNone}:  RatingSpeculative,
	{ordinalGood, ordinalNone}:   RatingSpeculative,
	{ordinalNone, ordinalGreat}:  RatingSpeculative,
	{ordinalNone, ordinalGood}:   RatingSpeculative,
	{ordinalNone, ordinalNone}:   RatingAvoid,
}

// Combine maps a (value label, growth label) pair to the combined rating.
// INSUFFICIENT DATA on either side forces the combined result to
// INSUFFICIENT DATA regardless of the other perspective.
func Combine(valueLabel, growthLabel Label) Rating {
	v := ordinalOf(valueLabel)
	g := ordinalOf(growthLabel)

	if v == ordinalInsufficient || g == ordinalInsufficient {
		return RatingInsufficient
	}

	return combination[[2]ordinal{v, g}]
}
