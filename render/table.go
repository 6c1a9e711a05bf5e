package render

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/spyder1211/cc-daily-reports/history"
)

func init() {
	Register(&Table{})
}

// Table renders the report as a console table. When the destination is
// a terminal, headers are bold and first-instruction previews are
// truncated to the terminal width.
type Table struct{}

// Name returns the format name.
func (t *Table) Name() string {
	return "table"
}

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"

	// Rough width of the non-preview columns in a table row.
	fixedColumns = 50
	minPreview   = 20
)

// Render writes the report table to w.
func (t *Table) Render(w io.Writer, report *history.Report) error {
	colored := false
	preview := 80 - fixedColumns
	if f, ok := w.(*os.File); ok && isTerminal(f.Fd()) {
		colored = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			preview = width - fixedColumns
		}
	}
	if preview < minPreview {
		preview = minPreview
	}

	title := fmt.Sprintf("Daily report for %s", report.Date)
	if colored {
		title = ansiBold + title + ansiReset
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(report.Projects) == 0 {
		fmt.Fprintln(w, "No activity recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Project\tSessions\tMessages\tDuration\tFirst instruction")

	for _, p := range report.Projects {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
			p.Name,
			len(p.Sessions),
			p.TotalMessageCount,
			formatDuration(p.TotalDurationMinutes),
			truncate(firstInstruction(p), preview),
		)
	}

	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%s\t\n",
		report.Summary.SessionCount,
		report.Summary.TotalMessageCount,
		formatDuration(report.Summary.TotalDurationMinutes),
	)

	return tw.Flush()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func firstInstruction(p history.ProjectRecord) string {
	for _, s := range p.Sessions {
		for _, text := range s.Instructions {
			if text != "" {
				return text
			}
		}
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
