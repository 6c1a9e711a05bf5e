package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spyder1211/cc-daily-reports/history"
)

// WriteReport renders the markdown document into dir as <date>.md,
// creating the directory if needed, and returns the written path.
func WriteReport(dir string, report *history.Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, report.Date+".md")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	if err := (&Markdown{}).Render(f, report); err != nil {
		f.Close()
		return "", fmt.Errorf("write report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}
