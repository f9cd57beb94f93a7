package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/classify"
	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
	"github.com/Chinmay4285/Stock-Comparer/pkg/config"
	"github.com/Chinmay4285/Stock-Comparer/pkg/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	// Skip if DATABASE_URL is not set
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	repo := NewRepository(db.Pool)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	return repo
}

func testOutcome(ticker string, at time.Time) *analyzer.Outcome {
	bundle := metrics.Empty(ticker, at)
	bundle.CompanyName = "Test Corp"
	bundle.PERatio = metrics.Some(12)

	return &analyzer.Outcome{
		Ticker:     ticker,
		Kind:       analyzer.KindDual,
		Bundle:     bundle,
		AnalyzedAt: at,
		Combined:   classify.RatingInsufficient,
	}
}

func TestRepositorySaveAndLatest(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	ticker := "ZZTEST-" + time.Now().Format("150405.000")
	first := testOutcome(ticker, time.Now().Add(-time.Hour).UTC().Truncate(time.Millisecond))
	second := testOutcome(ticker, time.Now().UTC().Truncate(time.Millisecond))

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.Latest(ctx, ticker)
	require.NoError(t, err)

	assert.Equal(t, ticker, latest.Ticker)
	assert.Equal(t, analyzer.KindDual, latest.Kind)
	assert.True(t, second.AnalyzedAt.Equal(latest.AnalyzedAt))

	require.NotNil(t, latest.Outcome)
	pe, ok := latest.Outcome.Bundle.PERatio.Float64()
	require.True(t, ok)
	assert.Equal(t, 12.0, pe)
}

func TestRepositoryHistory(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	ticker := "ZZHIST-" + time.Now().Format("150405.000")
	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 3; i++ {
		outcome := testOutcome(ticker, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Save(ctx, outcome))
	}

	snapshots, err := repo.History(ctx, ticker, 2)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	// Newest first
	assert.True(t, snapshots[0].AnalyzedAt.After(snapshots[1].AnalyzedAt))
}

func TestRepositoryLatestMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Latest(context.Background(), "ZZNONE-NEVER-SAVED")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
