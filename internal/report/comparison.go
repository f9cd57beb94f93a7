package report

import (
	"fmt"
	"strings"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/rules"
)

// ComparisonTable builds a markdown pipe table comparing every criterion
// across the successfully analyzed tickers of one perspective. Returns an
// empty string when no entry carries that perspective.
func ComparisonTable(entries []analyzer.BatchEntry, p rules.Perspective) string {
	var results []*analyzer.PerspectiveResult
	var headers []string

	for _, e := range entries {
		if e.Err != nil {
			continue
		}
		res := perspectiveOf(e.Outcome, p)
		if res == nil {
			continue
		}
		results = append(results, res)

		name := e.Outcome.Bundle.CompanyName
		if name == "" {
			name = e.Ticker
		}
		headers = append(headers, fmt.Sprintf("%s (%s)", name, e.Ticker))
	}

	if len(results) == 0 {
		return ""
	}

	var b strings.Builder

	writeRow(&b, append([]string{"Metric"}, headers...))
	writeRow(&b, dividerRow(len(headers)+1))

	// Criterion rows follow rule-set order; every result shares it
	for i, v := range results[0].Verdicts {
		row := []string{v.Label}
		for _, res := range results {
			row = append(row, cell(res.Verdicts[i]))
		}
		writeRow(&b, row)
	}

	classifications := []string{"**Classification**"}
	for _, res := range results {
		classifications = append(classifications, fmt.Sprintf("**%s**", res.Label))
	}
	writeRow(&b, classifications)

	return b.String()
}

func perspectiveOf(o *analyzer.Outcome, p rules.Perspective) *analyzer.PerspectiveResult {
	if p == rules.PerspectiveGrowth {
		return o.Growth
	}
	return o.Value
}

// cell renders one verdict: bold for PASS, italic for BORDERLINE
func cell(v rules.CriterionVerdict) string {
	switch v.Verdict {
	case rules.VerdictUnknown:
		return "N/A"
	case rules.VerdictPass:
		return fmt.Sprintf("**%s** (Pass)", v.Value)
	case rules.VerdictBorderline:
		return fmt.Sprintf("*%s* (Borderline)", v.Value)
	default:
		return fmt.Sprintf("%s (Fail)", v.Value)
	}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func dividerRow(n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = "---"
	}
	return row
}
