package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Chinmay4285/Stock-Comparer/internal/scheduler"
	"github.com/Chinmay4285/Stock-Comparer/internal/scheduler/jobs"
	"github.com/Chinmay4285/Stock-Comparer/internal/store"
	"github.com/Chinmay4285/Stock-Comparer/pkg/database"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the watchlist scheduler",
	Long: `Runs the watchlist scheduler as a foreground daemon.

The tickers in WATCHLIST_TICKERS are re-analyzed on the cron schedule
in WATCHLIST_SCHEDULE (default: top of every hour). With DATABASE_URL
set, every outcome is persisted as a snapshot.

Example:
  WATCHLIST_TICKERS=AAPL,MSFT go run ./cmd/analyzer watch
  go run ./cmd/analyzer watch --once`,
	RunE: runWatch,
}

var watchOnce bool

func init() {
	rootCmd.AddCommand(watchCmd)

	// Flags
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "run one refresh immediately and exit")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(cfg.Watchlist.Tickers) == 0 {
		return fmt.Errorf("WATCHLIST_TICKERS is empty")
	}

	var repo *store.Repository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		repo = store.NewRepository(db.Pool)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("Connected to database")
	} else {
		log.Warn("DATABASE_URL not set, outcomes will not be persisted")
	}

	a := newAnalyzer(cfg, log)
	job := jobs.NewWatchlistJob(a, repo, nil, cfg, log)

	if watchOnce {
		return job.Run(context.Background())
	}

	sched := scheduler.New(log)
	if err := sched.AddJob(job); err != nil {
		return fmt.Errorf("schedule watchlist job: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	log.WithFields(map[string]interface{}{
		"tickers":  len(cfg.Watchlist.Tickers),
		"schedule": cfg.Watchlist.Schedule,
	}).Info("Watchlist scheduler running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.WithField("signal", sig.String()).Info("Shutdown signal received")
	return nil
}
