package report

import (
	"fmt"
	"strings"

	"yotracker/internal/chart"
)

// Summary describes the newest run as markdown.
func Summary(res *Result, reference string) string {
	var b strings.Builder

	b.WriteString("# Portfolio\n\n")
	if len(res.Totals) == 0 {
		b.WriteString("No snapshot stored yet.\n")
		return b.String()
	}

	last := res.Totals[len(res.Totals)-1]
	fmt.Fprintf(&b, "Value on %s: **%s** over %d snapshots.\n\n",
		last.Time.Format(chart.TimeFormat), chart.FormatMoney(last.Total, reference), len(res.Totals))

	if len(res.Overlay) > 0 {
		final := res.Overlay[len(res.Overlay)-1]
		fmt.Fprintf(&b, "Deposited %s, withdrawn %s.\n\n",
			chart.FormatMoney(final.Deposits, reference), chart.FormatMoney(final.Withdrawals, reference))
	}

	b.WriteString("## Top holdings\n\n| Coin | Value |\n|---|---:|\n")
	for i := len(res.Top) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "| %s | %s |\n", res.Top[i].Label, chart.FormatMoney(res.Top[i].Value, reference))
	}

	if n := len(res.Leaders); n > 0 {
		best, worst := res.Leaders[n-1], res.Leaders[0]
		b.WriteString("\n## Price change\n\n")
		fmt.Fprintf(&b, "- Best: %s %+.1f%%\n", best.Coin, best.Change*100)
		fmt.Fprintf(&b, "- Worst: %s %+.1f%%\n", worst.Coin, worst.Change*100)
	}
	return b.String()
}
