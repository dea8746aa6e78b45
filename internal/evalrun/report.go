package evalrun

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	nereval "github.com/entext/go-nereval"
	"github.com/entext/go-nereval/markup"
)

// SummaryTable renders the aggregated metrics as a table with one row
// per evaluated entity type plus the overall row.
func (r *Runner) SummaryTable(totals map[string]nereval.Metrics) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Format.Footer = text.FormatDefault

	tbl.AppendHeader(table.Row{"Type", "Precision", "Recall", "F1", "TP", "In Std.", "In Test"})
	for _, tag := range r.Tags() {
		tbl.AppendRow(metricsRow(strings.ToUpper(tag.String()), totals[tag.String()]))
	}
	tbl.AppendFooter(metricsRow("Overall", totals[nereval.OverallKey]))

	return tbl.Render()
}

func metricsRow(label string, m nereval.Metrics) table.Row {
	return table.Row{
		label,
		fmt.Sprintf("%.4f", m.Precision),
		fmt.Sprintf("%.4f", m.Recall),
		fmt.Sprintf("%.4f", m.F1),
		fmt.Sprintf("%.2f", m.TP),
		m.NStd,
		m.NTest,
	}
}

// buildReport produces the detailed per-document comparison: how every
// standard and test mention was matched, followed by the metrics table.
func (r *Runner) buildReport(m *nereval.Matcher[*markup.TokenSet], pairs []nereval.Pair, metrics map[string]nereval.Metrics) string {
	byStd := make(map[int]int, len(pairs))
	byTest := make(map[int]int, len(pairs))
	for _, p := range pairs {
		byStd[p.Std] = p.Test
		byTest[p.Test] = p.Std
	}

	var b strings.Builder

	b.WriteString("------STANDARD------\n")
	for i, ts := range m.Standard() {
		if j, ok := byStd[i]; ok {
			fmt.Fprintf(&b, "%s\n  -> %s\n", ts, m.Test()[j])
		} else {
			fmt.Fprintf(&b, "%s\n  -> unmatched\n", ts)
		}
	}

	b.WriteString("\n--------TEST--------\n")
	for j, ts := range m.Test() {
		if i, ok := byTest[j]; ok {
			fmt.Fprintf(&b, "%s\n  -> %s\n", ts, m.Standard()[i])
		} else {
			fmt.Fprintf(&b, "%s\n  -> unmatched\n", ts)
		}
	}

	b.WriteString("\n-------METRICS------\n")
	b.WriteString(r.SummaryTable(metrics))
	b.WriteString("\n")

	return b.String()
}
