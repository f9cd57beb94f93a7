package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chinmay4285/Stock-Comparer/internal/api"
	"github.com/Chinmay4285/Stock-Comparer/internal/api/handlers"
	"github.com/Chinmay4285/Stock-Comparer/internal/api/ws"
	"github.com/Chinmay4285/Stock-Comparer/internal/scheduler"
	"github.com/Chinmay4285/Stock-Comparer/internal/scheduler/jobs"
	"github.com/Chinmay4285/Stock-Comparer/internal/store"
	"github.com/Chinmay4285/Stock-Comparer/pkg/database"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server with a live websocket stream.

Endpoints:
  GET  /health                  - Health check
  GET  /api/analysis/{ticker}   - Analyze one ticker
  POST /api/analyze             - Analyze a batch of tickers
  GET  /api/history/{ticker}    - Stored snapshots (requires DATABASE_URL)
  GET  /ws                      - Websocket stream of watchlist outcomes

When DATABASE_URL is set, outcomes are persisted and the history
endpoint is available. When WATCHLIST_TICKERS is set, the watchlist
scheduler runs alongside the server and pushes fresh outcomes to
websocket subscribers.

Example:
  go run ./cmd/analyzer api
  go run ./cmd/analyzer api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// Persistence is optional
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
		log.Warn("DATABASE_URL not set, history endpoint disabled")
	}

	a := newAnalyzer(cfg, log)
	hub := ws.NewHub(log)

	analysisHandler := handlers.NewAnalysisHandler(a, repo, log)
	router := api.NewRouter(analysisHandler, hub, log)
	server := api.New(cfg, log, router)

	// Watchlist refresh runs alongside the server when configured
	var sched *scheduler.Scheduler
	if len(cfg.Watchlist.Tickers) > 0 {
		sched = scheduler.New(log)
		job := jobs.NewWatchlistJob(a, repo, hub, cfg, log)
		if err := sched.AddJob(job); err != nil {
			return fmt.Errorf("schedule watchlist job: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Start the server
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
