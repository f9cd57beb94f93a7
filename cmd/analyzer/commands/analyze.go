package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/report"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze TICKER [TICKER...]",
	Short: "Analyze one or more tickers",
	Long: `Fetches fundamentals for each ticker and classifies it.

Analysis types:
  value            - value investing rules only
  growth_momentum  - growth/momentum rules only
  dual             - both rule sets plus a combined star rating

Example:
  go run ./cmd/analyzer analyze AAPL
  go run ./cmd/analyzer analyze AAPL MSFT GOOG --type value
  go run ./cmd/analyzer analyze AAPL --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeType string
	analyzeJSON bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags
	analyzeCmd.Flags().StringVar(&analyzeType, "type", "dual", "analysis type (value|growth_momentum|dual)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit raw JSON instead of the console report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	kind, err := analyzer.ParseKind(analyzeType)
	if err != nil {
		return err
	}

	a := newAnalyzer(cfg, log)
	ctx := context.Background()

	tickers := make([]string, len(args))
	for i, arg := range args {
		tickers[i] = strings.ToUpper(strings.TrimSpace(arg))
	}

	if len(tickers) == 1 {
		outcome, err := a.Analyze(ctx, tickers[0], kind)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", tickers[0], err)
		}
		return emitOutcome(outcome)
	}

	entries, err := a.AnalyzeBatch(ctx, tickers, kind)
	if err != nil {
		return err
	}

	if analyzeJSON {
		return emitJSON(entries)
	}

	renderer := report.NewRenderer(os.Stdout)
	for _, entry := range entries {
		if entry.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", entry.Ticker, entry.Err)
			continue
		}
		renderer.WriteOutcome(entry.Outcome)
		fmt.Println()
	}

	renderer.WriteBatchSummary(entries)
	return nil
}

func emitOutcome(outcome *analyzer.Outcome) error {
	if analyzeJSON {
		return emitJSON(outcome)
	}
	report.NewRenderer(os.Stdout).WriteOutcome(outcome)
	return nil
}

func emitJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
