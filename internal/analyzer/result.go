package analyzer

import (
	"time"

	"github.com/Chinmay4285/Stock-Comparer/internal/classify"
	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/internal/rules"
)

// PerspectiveResult is the ordered verdict list for one rule set plus the
// derived label and rationale. It is read-only structured data for the
// reporting layer; the engine performs no formatting beyond the rationale
// strings.
type PerspectiveResult struct {
	Perspective rules.Perspective        `json:"perspective"`
	Verdicts    []rules.CriterionVerdict `json:"verdicts"`
	Label       classify.Label           `json:"label"`
	Rationale   []string                 `json:"rationale"`
}

// DualResult pairs the two perspective results with the combined rating.
// It exists only when both perspectives were evaluated for the same
// ticker and snapshot.
type DualResult struct {
	Value    *PerspectiveResult `json:"value"`
	Growth   *PerspectiveResult `json:"growth"`
	Combined classify.Rating    `json:"combined"`
}

// Outcome is the full result of analyzing one ticker.
type Outcome struct {
	Ticker     string             `json:"ticker"`
	Kind       Kind               `json:"kind"`
	Bundle     *metrics.Bundle    `json:"bundle"`
	AnalyzedAt time.Time          `json:"analyzed_at"`
	Value      *PerspectiveResult `json:"value,omitempty"`
	Growth     *PerspectiveResult `json:"growth,omitempty"`
	Combined   classify.Rating    `json:"combined,omitempty"`
}

// Dual returns the paired result, or nil unless both perspectives ran.
func (o *Outcome) Dual() *DualResult {
	if o.Value == nil || o.Growth == nil {
		return nil
	}
	return &DualResult{Value: o.Value, Growth: o.Growth, Combined: o.Combined}
}

// BatchEntry is the per-ticker result of a batch analysis. A provider
// failure is recorded here instead of aborting the batch.
type BatchEntry struct {
	Ticker  string
	Outcome *Outcome
	Err     error
}
