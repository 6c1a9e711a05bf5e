package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/spyder1211/cc-daily-reports/config"
	"github.com/spyder1211/cc-daily-reports/history"
	"github.com/spyder1211/cc-daily-reports/render"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the daily work report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().String("date", "", "Target date (format: 2006-01-02, default: today)")
	reportCmd.Flags().String("project", "", "Only report on the project with this name")
	reportCmd.Flags().String("format", "table", "Output format: table, markdown, json")
	reportCmd.Flags().Bool("write", false, "Also write the markdown report file")
	reportCmd.Flags().String("output-dir", "", "Directory for written report files")
	reportCmd.Flags().String("projects-dir", "", "Override the Claude Code projects directory")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	dateStr, _ := cmd.Flags().GetString("date")
	project, _ := cmd.Flags().GetString("project")
	format, _ := cmd.Flags().GetString("format")
	write, _ := cmd.Flags().GetBool("write")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	projectsDir, _ := cmd.Flags().GetString("projects-dir")

	date, err := resolveTargetDate(dateStr, time.Now())
	if err != nil {
		return err
	}

	renderer, err := render.Lookup(format)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	root, err := cfg.ResolveProjectsDir(projectsDir)
	if err != nil {
		return err
	}

	parser := history.NewParser(root)
	var report *history.Report
	if project != "" {
		report, err = parser.ParseProject(project, date)
	} else {
		report, err = parser.ParseForDate(date)
	}
	if err != nil {
		return err
	}

	if err := renderer.Render(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	printDiagnostics(cmd.ErrOrStderr(), report)

	if write {
		path, err := render.WriteReport(cfg.ResolveOutputDir(outputDir), report)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "report written to %s\n", path)
	}
	return nil
}

// resolveTargetDate validates a --date value, defaulting to today.
func resolveTargetDate(value string, now time.Time) (string, error) {
	if value == "" {
		return now.Format(history.DateLayout), nil
	}
	if _, err := time.Parse(history.DateLayout, value); err != nil {
		return "", fmt.Errorf("invalid --date: %w", err)
	}
	return value, nil
}

// printDiagnostics writes accumulated warnings and per-file failures
// to w, keeping them out of the report itself.
func printDiagnostics(w io.Writer, report *history.Report) {
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	for _, f := range report.Failures {
		if f.Line > 0 {
			fmt.Fprintf(w, "parse failure: %s:%d: %s\n", f.File, f.Line, f.Message)
			continue
		}
		fmt.Fprintf(w, "parse failure: %s: %s\n", f.File, f.Message)
	}
}
