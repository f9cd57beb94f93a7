package commands

import (
	"github.com/spf13/cobra"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/provider/yahoo"
	"github.com/Chinmay4285/Stock-Comparer/pkg/config"
	"github.com/Chinmay4285/Stock-Comparer/pkg/httputil"
	"github.com/Chinmay4285/Stock-Comparer/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Stock Comparer - rule based stock classification",
	Long: `Stock Comparer CLI

Classifies stocks from two perspectives: value investing and
growth/momentum. Each perspective evaluates a fixed rule set against
fetched fundamentals and produces a classification; running both
yields a combined star rating.

Usage:
  go run ./cmd/analyzer [command]

Examples:
  go run ./cmd/analyzer analyze AAPL
  go run ./cmd/analyzer analyze AAPL MSFT --type value
  go run ./cmd/analyzer compare AAPL MSFT GOOG
  go run ./cmd/analyzer api
  go run ./cmd/analyzer watch`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and creates the logger
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}

// newAnalyzer wires the metric provider and the analysis engine
func newAnalyzer(cfg *config.Config, log *logger.Logger) *analyzer.Analyzer {
	httpClient := httputil.New(log, cfg.Provider.Timeout).
		WithRateLimit(cfg.Provider.RequestsPerSec).
		WithUserAgent(cfg.Provider.UserAgent)

	prov := yahoo.NewClient(cfg.Provider, httpClient, log)

	return analyzer.New(prov, log,
		analyzer.WithConcurrency(cfg.Provider.MaxConcurrency),
		analyzer.WithTimeout(cfg.Provider.Timeout),
	)
}
