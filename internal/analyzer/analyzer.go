package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Chinmay4285/Stock-Comparer/internal/classify"
	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
	"github.com/Chinmay4285/Stock-Comparer/internal/rules"
	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

// Analyzer orchestrates metric fetching, rule evaluation and
// classification. Evaluation itself is pure; the analyzer only adds the
// provider seam and batch dispatch around it.
type Analyzer struct {
	provider    provider.Provider
	logger      *logger.Logger
	valueSet    rules.Set
	growthSet   rules.Set
	concurrency int
	timeout     time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithConcurrency bounds the batch worker pool. Sized to respect the
// provider's rate limits.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithTimeout bounds each provider lookup.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// New creates an Analyzer with the fixed rule-set configuration.
func New(p provider.Provider, log *logger.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider:    p,
		logger:      log,
		valueSet:    rules.ValueSet(),
		growthSet:   rules.GrowthSet(),
		concurrency: 4,
		timeout:     15 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze fetches metrics for one ticker and runs the selected rule sets.
// A provider timeout degrades to an all-absent bundle so the classifier's
// insufficient-data path applies; other provider failures are returned to
// the caller.
func (a *Analyzer) Analyze(ctx context.Context, ticker string, kind Kind) (*Outcome, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysisType, kind)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	bundle, err := a.provider.FetchMetrics(fetchCtx, ticker)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			a.logger.WithField("ticker", ticker).Warn("Provider timed out, classifying with empty bundle")
			bundle = metrics.Empty(ticker, time.Now().UTC())
		} else {
			return nil, fmt.Errorf("provider lookup for %s failed: %w", ticker, err)
		}
	}

	outcome := a.AnalyzeBundle(bundle, kind)

	fields := map[string]interface{}{
		"ticker": ticker,
		"kind":   string(kind),
	}
	if outcome.Value != nil {
		fields["value_label"] = string(outcome.Value.Label)
	}
	if outcome.Growth != nil {
		fields["growth_label"] = string(outcome.Growth.Label)
	}
	if outcome.Combined != "" {
		fields["combined"] = string(outcome.Combined)
	}
	a.logger.WithFields(fields).Info("Analysis completed")

	return outcome, nil
}

// AnalyzeBundle classifies an already-fetched bundle. Pure and
// deterministic: the same bundle always yields an identical outcome.
func (a *Analyzer) AnalyzeBundle(bundle *metrics.Bundle, kind Kind) *Outcome {
	outcome := &Outcome{
		Ticker:     bundle.Ticker,
		Kind:       kind,
		Bundle:     bundle,
		AnalyzedAt: bundle.AsOf,
	}

	if kind == KindValue || kind == KindDual {
		outcome.Value = evaluatePerspective(a.valueSet, bundle)
	}
	if kind == KindGrowth || kind == KindDual {
		outcome.Growth = evaluatePerspective(a.growthSet, bundle)
	}
	if kind == KindDual {
		outcome.Combined = classify.Combine(outcome.Value.Label, outcome.Growth.Label)
	}

	return outcome
}

func evaluatePerspective(set rules.Set, bundle *metrics.Bundle) *PerspectiveResult {
	verdicts := set.Evaluate(bundle)
	return &PerspectiveResult{
		Perspective: set.Perspective,
		Verdicts:    verdicts,
		Label:       classify.Classify(set.Perspective, verdicts),
		Rationale:   classify.Rationale(verdicts),
	}
}

// AnalyzeBatch analyzes many tickers through a bounded worker pool. Each
// ticker's provider failure is isolated into its batch entry; the batch
// itself never fails once the kind is validated.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, tickers []string, kind Kind) ([]BatchEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysisType, kind)
	}

	a.logger.WithFields(map[string]interface{}{
		"tickers": len(tickers),
		"kind":    string(kind),
		"workers": a.concurrency,
	}).Info("Starting batch analysis")

	entries := make([]BatchEntry, len(tickers))
	sem := make(chan struct{}, a.concurrency)

	var wg sync.WaitGroup
	for i, ticker := range tickers {
		wg.Add(1)
		go func(i int, ticker string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			outcome, err := a.Analyze(ctx, ticker, kind)
			if err != nil {
				a.logger.WithError(err).WithField("ticker", ticker).Warn("Ticker analysis failed")
			}
			entries[i] = BatchEntry{Ticker: ticker, Outcome: outcome, Err: err}
		}(i, ticker)
	}
	wg.Wait()

	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}

	a.logger.WithFields(map[string]interface{}{
		"total":   len(tickers),
		"success": len(tickers) - failed,
		"failed":  failed,
	}).Info("Batch analysis completed")

	return entries, nil
}
