package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/report"
	"github.com/Chinmay4285/Stock-Comparer/internal/rules"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare TICKER TICKER [TICKER...]",
	Short: "Compare tickers side by side as a markdown table",
	Long: `Analyzes several tickers and renders one markdown table per
perspective, with tickers as columns and criteria as rows. Passing
values are bold, borderline values italic.

Example:
  go run ./cmd/analyzer compare AAPL MSFT GOOG
  go run ./cmd/analyzer compare KO PEP --type value`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

var compareType string

func init() {
	rootCmd.AddCommand(compareCmd)

	// Flags
	compareCmd.Flags().StringVar(&compareType, "type", "dual", "analysis type (value|growth_momentum|dual)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	kind, err := analyzer.ParseKind(compareType)
	if err != nil {
		return err
	}

	a := newAnalyzer(cfg, log)

	tickers := make([]string, len(args))
	for i, arg := range args {
		tickers[i] = strings.ToUpper(strings.TrimSpace(arg))
	}

	entries, err := a.AnalyzeBatch(context.Background(), tickers, kind)
	if err != nil {
		return err
	}

	var failed int
	for _, entry := range entries {
		if entry.Err != nil {
			failed++
			fmt.Printf("> %s: %v\n", entry.Ticker, entry.Err)
		}
	}
	if failed == len(entries) {
		return fmt.Errorf("no ticker could be analyzed")
	}
	if failed > 0 {
		fmt.Println()
	}

	for _, p := range perspectivesFor(kind) {
		if table := report.ComparisonTable(entries, p); table != "" {
			fmt.Printf("## %s\n\n%s\n", perspectiveHeading(p), table)
		}
	}

	return nil
}

func perspectivesFor(kind analyzer.Kind) []rules.Perspective {
	switch kind {
	case analyzer.KindValue:
		return []rules.Perspective{rules.PerspectiveValue}
	case analyzer.KindGrowth:
		return []rules.Perspective{rules.PerspectiveGrowth}
	default:
		return []rules.Perspective{rules.PerspectiveValue, rules.PerspectiveGrowth}
	}
}

func perspectiveHeading(p rules.Perspective) string {
	if p == rules.PerspectiveValue {
		return "Value Perspective"
	}
	return "Growth/Momentum Perspective"
}
