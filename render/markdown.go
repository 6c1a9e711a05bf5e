package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/spyder1211/cc-daily-reports/history"
)

func init() {
	Register(&Markdown{})
}

// Markdown renders the report as the daily-report markdown document.
type Markdown struct{}

// Name returns the format name.
func (m *Markdown) Name() string {
	return "markdown"
}

// Render writes the markdown document to w.
func (m *Markdown) Render(w io.Writer, report *history.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Daily Report - %s\n\n", report.Date)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Total time: %s\n", formatDuration(report.Summary.TotalDurationMinutes))
	fmt.Fprintf(&b, "- Messages: %d\n", report.Summary.TotalMessageCount)
	fmt.Fprintf(&b, "- Projects: %d\n", report.Summary.ProjectCount)
	fmt.Fprintf(&b, "- Sessions: %d\n", report.Summary.SessionCount)

	if len(report.Projects) == 0 {
		fmt.Fprintf(&b, "\nNo activity recorded.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, p := range report.Projects {
		fmt.Fprintf(&b, "\n## %s\n\n", p.Name)
		fmt.Fprintf(&b, "Path: `%s`  \n", p.Path)
		fmt.Fprintf(&b, "Total: %s, %d messages, %d sessions\n",
			formatDuration(p.TotalDurationMinutes), p.TotalMessageCount, len(p.Sessions))

		for _, s := range p.Sessions {
			fmt.Fprintf(&b, "\n### %s - %s (%s)\n\n",
				s.StartTime.Format("15:04"),
				s.EndTime.Format("15:04"),
				formatDuration(s.DurationMinutes))
			for i, text := range s.Instructions {
				fmt.Fprintf(&b, "%d. %s\n", i+1, firstLine(text))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// firstLine flattens a multi-line instruction into its first
// non-empty line so list items stay list items.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return s
}
