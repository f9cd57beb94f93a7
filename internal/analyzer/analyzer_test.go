package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmay4285/Stock-Comparer/internal/classify"
	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider"
	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

// fakeProvider serves canned bundles and errors, no network.
type fakeProvider struct {
	bundles map[string]*metrics.Bundle
	errs    map[string]error
	calls   int32
}

func (f *fakeProvider) FetchMetrics(ctx context.Context, ticker string) (*metrics.Bundle, error) {
	atomic.AddInt32(&f.calls, 1)
	if err, ok := f.errs[ticker]; ok {
		return nil, err
	}
	if b, ok := f.bundles[ticker]; ok {
		return b, nil
	}
	return nil, provider.ErrTickerNotFound
}

func testLogger() *logger.Logger {
	return logger.NewWriter(io.Discard, "error")
}

func snapshotTime() time.Time {
	return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
}

func strongBundle(ticker string) *metrics.Bundle {
	return &metrics.Bundle{
		Ticker:                ticker,
		AsOf:                  snapshotTime(),
		PERatio:               metrics.Some(12),
		PBRatio:               metrics.Some(1.1),
		PSRatio:               metrics.Some(1.4),
		DebtToEquity:          metrics.Some(0.3),
		ROE:                   metrics.Some(0.22),
		CurrentRatio:          metrics.Some(2.1),
		DividendYield:         metrics.Some(0.035),
		ProfitMargin:          metrics.Some(0.18),
		PEGRatio:              metrics.Some(0.9),
		RevenueGrowth:         metrics.Some(0.25),
		EarningsGrowth:        metrics.Some(0.3),
		EPSGrowth:             metrics.Some(0.2),
		PricePerf6M:           metrics.Some(0.2),
		PricePerf1Y:           metrics.Some(0.3),
		GrossMargin:           metrics.Some(0.45),
		OperatingMargin:       metrics.Some(0.25),
		RelativeStrength:      metrics.Some(0.12),
		AnalystRecommendation: metrics.Some(1.9),
		PEGrowthScore:         metrics.Some(1.0),
	}
}

func TestAnalyzeValue(t *testing.T) {
	p := &fakeProvider{bundles: map[string]*metrics.Bundle{"AAPL": strongBundle("AAPL")}}
	a := New(p, testLogger())

	outcome, err := a.Analyze(context.Background(), "AAPL", KindValue)
	require.NoError(t, err)

	require.NotNil(t, outcome.Value)
	assert.Nil(t, outcome.Growth)
	assert.Nil(t, outcome.Dual())
	assert.Equal(t, classify.LabelGreatBuy, outcome.Value.Label)
	assert.Empty(t, outcome.Combined)
}

func TestAnalyzeDual(t *testing.T) {
	p := &fakeProvider{bundles: map[string]*metrics.Bundle{"AAPL": strongBundle("AAPL")}}
	a := New(p, testLogger())

	outcome, err := a.Analyze(context.Background(), "AAPL", KindDual)
	require.NoError(t, err)

	require.NotNil(t, outcome.Value)
	require.NotNil(t, outcome.Growth)
	assert.Equal(t, classify.LabelGreatBuy, outcome.Value.Label)
	assert.Equal(t, classify.LabelGreatGrowth, outcome.Growth.Label)
	assert.Equal(t, classify.RatingStrongBuy, outcome.Combined)

	dual := outcome.Dual()
	require.NotNil(t, dual)
	assert.Equal(t, classify.RatingStrongBuy, dual.Combined)
}

func TestAnalyzeRejectsUnknownKind(t *testing.T) {
	p := &fakeProvider{}
	a := New(p, testLogger())

	_, err := a.Analyze(context.Background(), "AAPL", Kind("technical"))
	assert.ErrorIs(t, err, ErrUnknownAnalysisType)
	assert.Zero(t, atomic.LoadInt32(&p.calls), "invalid kind must fail before any fetch")
}

func TestAnalyzeTimeoutDegradesToInsufficientData(t *testing.T) {
	p := &fakeProvider{errs: map[string]error{"SLOW": context.DeadlineExceeded}}
	a := New(p, testLogger())

	outcome, err := a.Analyze(context.Background(), "SLOW", KindDual)
	require.NoError(t, err)

	assert.Equal(t, classify.LabelInsufficientData, outcome.Value.Label)
	assert.Equal(t, classify.LabelInsufficientData, outcome.Growth.Label)
	assert.Equal(t, classify.RatingInsufficient, outcome.Combined)
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	p := &fakeProvider{
		bundles: map[string]*metrics.Bundle{
			"AAPL": strongBundle("AAPL"),
			"MSFT": strongBundle("MSFT"),
			"GOOG": strongBundle("GOOG"),
		},
		errs: map[string]error{"BAD": fmt.Errorf("lookup: %w", provider.ErrTickerNotFound)},
	}
	a := New(p, testLogger(), WithConcurrency(2))

	entries, err := a.AnalyzeBatch(context.Background(), []string{"AAPL", "BAD", "MSFT", "GOOG"}, KindValue)
	require.NoError(t, err, "a single bad ticker must not fail the batch")
	require.Len(t, entries, 4)

	// Input order is preserved
	assert.Equal(t, "AAPL", entries[0].Ticker)
	assert.Equal(t, "BAD", entries[1].Ticker)

	var failed, succeeded int
	for _, e := range entries {
		if e.Err != nil {
			failed++
			assert.True(t, errors.Is(e.Err, provider.ErrTickerNotFound))
			assert.Nil(t, e.Outcome)
		} else {
			succeeded++
			require.NotNil(t, e.Outcome)
			assert.Equal(t, classify.LabelGreatBuy, e.Outcome.Value.Label)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 3, succeeded)
}

func TestAnalyzeBatchRejectsUnknownKind(t *testing.T) {
	a := New(&fakeProvider{}, testLogger())

	_, err := a.AnalyzeBatch(context.Background(), []string{"AAPL"}, Kind("momentum"))
	assert.ErrorIs(t, err, ErrUnknownAnalysisType)
}

func TestAnalyzeBundleIsIdempotent(t *testing.T) {
	a := New(&fakeProvider{}, testLogger())
	bundle := strongBundle("AAPL")

	first := a.AnalyzeBundle(bundle, KindDual)
	second := a.AnalyzeBundle(bundle, KindDual)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"value", KindValue, false},
		{"growth_momentum", KindGrowth, false},
		{"dual", KindDual, false},
		{"", "", true},
		{"Value", "", true},
		{"growth", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAnalysisType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
