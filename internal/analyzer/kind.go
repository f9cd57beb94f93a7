package analyzer

import (
	"errors"
	"fmt"
)

// Kind selects which rule set(s) an analysis runs.
type Kind string

const (
	KindValue  Kind = "value"
	KindGrowth Kind = "growth_momentum"
	KindDual   Kind = "dual"
)

// ErrUnknownAnalysisType is returned for an invalid analysis-type selector.
// An invalid selector is fatal to that request; it is never silently
// substituted with a default rule set.
var ErrUnknownAnalysisType = errors.New("unknown analysis type")

// ParseKind validates an analysis-type selector from the CLI or API.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindValue, KindGrowth, KindDual:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected value, growth_momentum or dual)", ErrUnknownAnalysisType, s)
	}
}

// Valid reports whether the kind is one of the known selectors.
func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}
