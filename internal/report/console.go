package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
	"github.com/Chinmay4285/Stock-Comparer/internal/rules"
)

// Renderer writes human-readable analysis reports. The engine exposes
// structured results only; all formatting lives here.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a console renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// WriteOutcome renders a full per-ticker report: header, one verdict
// table per perspective, rationale and classification.
func (r *Renderer) WriteOutcome(o *analyzer.Outcome) {
	r.rule('=')
	name := o.Bundle.CompanyName
	if name == "" {
		name = o.Ticker
	}
	fmt.Fprintf(r.w, "%s (%s)\n", name, o.Ticker)
	if price, ok := o.Bundle.Price.Float64(); ok {
		fmt.Fprintf(r.w, "Price: %.2f %s\n", price, o.Bundle.Currency)
	}
	fmt.Fprintf(r.w, "Snapshot: %s\n", o.Bundle.AsOf.Format("2006-01-02 15:04:05 MST"))
	r.rule('=')

	if o.Value != nil {
		r.writePerspective(o.Value)
	}
	if o.Growth != nil {
		r.writePerspective(o.Growth)
	}

	if dual := o.Dual(); dual != nil {
		r.rule('-')
		fmt.Fprintf(r.w, "OVERALL RATING: %s\n", dual.Combined)
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) writePerspective(res *analyzer.PerspectiveResult) {
	fmt.Fprintf(r.w, "\n%s ANALYSIS\n", perspectiveTitle(res.Perspective))

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CRITERION\tVALUE\tVERDICT\tTHRESHOLD")
	for _, v := range res.Verdicts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Label, v.Value, v.Verdict, v.Threshold)
	}
	tw.Flush()

	if len(res.Rationale) > 0 {
		fmt.Fprintln(r.w, "\nNotes:")
		for _, line := range res.Rationale {
			fmt.Fprintf(r.w, "  - %s\n", line)
		}
	}

	fmt.Fprintf(r.w, "\nCLASSIFICATION: %s\n", res.Label)
}

// WriteBatchSummary renders the multi-ticker summary table plus the
// per-label grouping.
func (r *Renderer) WriteBatchSummary(entries []analyzer.BatchEntry) {
	r.rule('=')
	fmt.Fprintln(r.w, "BATCH ANALYSIS SUMMARY")
	r.rule('=')

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tVALUE\tGROWTH\tOVERALL\tSTRENGTH")
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(tw, "%s\tERROR\t-\t-\t%s\n", e.Ticker, e.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Ticker,
			labelOrDash(e.Outcome.Value),
			labelOrDash(e.Outcome.Growth),
			stringOrDash(string(e.Outcome.Combined)),
			strength(e.Outcome))
	}
	tw.Flush()

	r.writeGroups(entries)
}

// writeGroups prints tickers grouped by label, errors last
func (r *Renderer) writeGroups(entries []analyzer.BatchEntry) {
	groups := map[string][]string{}
	var order []string
	var failed []string

	for _, e := range entries {
		if e.Err != nil {
			failed = append(failed, e.Ticker)
			continue
		}
		key := groupKey(e.Outcome)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e.Ticker)
	}

	fmt.Fprintln(r.w)
	for _, key := range order {
		fmt.Fprintf(r.w, "%s (%d): %s\n", key, len(groups[key]), strings.Join(groups[key], ", "))
	}
	if len(failed) > 0 {
		fmt.Fprintf(r.w, "ERRORS (%d): %s\n", len(failed), strings.Join(failed, ", "))
	}
}

func groupKey(o *analyzer.Outcome) string {
	if o.Combined != "" {
		return string(o.Combined)
	}
	if o.Value != nil {
		return string(o.Value.Label)
	}
	return string(o.Growth.Label)
}

// strength summarizes pass counts across evaluated perspectives
func strength(o *analyzer.Outcome) string {
	pass, total := 0, 0
	for _, res := range []*analyzer.PerspectiveResult{o.Value, o.Growth} {
		if res == nil {
			continue
		}
		for _, v := range res.Verdicts {
			if v.Verdict == rules.VerdictUnknown {
				continue
			}
			total++
			if v.Verdict == rules.VerdictPass {
				pass++
			}
		}
	}
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", pass, total, float64(pass)/float64(total)*100)
}

func labelOrDash(res *analyzer.PerspectiveResult) string {
	if res == nil {
		return "-"
	}
	return string(res.Label)
}

func stringOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func perspectiveTitle(p rules.Perspective) string {
	if p == rules.PerspectiveGrowth {
		return "GROWTH & MOMENTUM"
	}
	return "VALUE INVESTING"
}

func (r *Renderer) rule(ch byte) {
	fmt.Fprintln(r.w, strings.Repeat(string(ch), 72))
}
