package app

import (
	"fmt"
	"strings"
	"time"
)

// buildReport renders solved results as a small Markdown document with one
// table row per answer.
func buildReport(results []Result) string {
	var b strings.Builder
	b.WriteString("# goadvent results\n\n")
	b.WriteString("| Day | Part | Answer | Elapsed |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, res := range results {
		for _, ans := range res.Answers {
			part := "-"
			if ans.Label != "" {
				part = fmt.Sprintf("%d", ans.Part)
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
				res.Day, part, ans.Value, res.Elapsed.Round(100*time.Microsecond))
		}
	}
	return b.String()
}
