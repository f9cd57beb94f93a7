package jobs

import (
	"context"
	"fmt"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/store"
	"github.com/Chinmay4285/Stock-Comparer/pkg/config"
	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

// Broadcaster pushes completed outcomes to connected clients
type Broadcaster interface {
	Broadcast(v interface{})
}

// WatchlistJob re-analyzes the configured watchlist on a schedule,
// persists the outcomes, and pushes them to live subscribers.
type WatchlistJob struct {
	analyzer    *analyzer.Analyzer
	repo        *store.Repository
	broadcaster Broadcaster
	config      *config.Config
	logger      *logger.Logger
}

// NewWatchlistJob creates a new watchlist job. The repository and
// broadcaster are optional; nil disables persistence or streaming.
func NewWatchlistJob(
	a *analyzer.Analyzer,
	repo *store.Repository,
	broadcaster Broadcaster,
	cfg *config.Config,
	log *logger.Logger,
) *WatchlistJob {
	return &WatchlistJob{
		analyzer:    a,
		repo:        repo,
		broadcaster: broadcaster,
		config:      cfg,
		logger:      log,
	}
}

// Name returns the job name
func (j *WatchlistJob) Name() string {
	return "watchlist_refresh"
}

// Schedule returns the cron schedule from configuration
func (j *WatchlistJob) Schedule() string {
	return j.config.Watchlist.Schedule
}

// Run analyzes every watchlist ticker from both perspectives
func (j *WatchlistJob) Run(ctx context.Context) error {
	tickers := j.config.Watchlist.Tickers
	if len(tickers) == 0 {
		j.logger.Warn("Watchlist is empty, nothing to refresh")
		return nil
	}

	j.logger.WithField("tickers", len(tickers)).Info("Refreshing watchlist")

	entries, err := j.analyzer.AnalyzeBatch(ctx, tickers, analyzer.KindDual)
	if err != nil {
		return fmt.Errorf("watchlist analysis: %w", err)
	}

	var failed int
	for _, entry := range entries {
		if entry.Err != nil {
			failed++
			j.logger.WithFields(map[string]interface{}{
				"ticker": entry.Ticker,
				"error":  entry.Err.Error(),
			}).Warn("Watchlist ticker failed")
			continue
		}

		if j.repo != nil {
			if err := j.repo.Save(ctx, entry.Outcome); err != nil {
				j.logger.WithError(err).WithField("ticker", entry.Ticker).
					Error("Failed to persist outcome")
			}
		}

		if j.broadcaster != nil {
			j.broadcaster.Broadcast(entry.Outcome)
		}
	}

	if failed == len(tickers) {
		return fmt.Errorf("all %d watchlist tickers failed", failed)
	}

	j.logger.WithFields(map[string]interface{}{
		"analyzed": len(tickers) - failed,
		"failed":   failed,
	}).Info("Watchlist refresh completed")

	return nil
}
