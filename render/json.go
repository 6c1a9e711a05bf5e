package render

import (
	"encoding/json"
	"io"

	"github.com/spyder1211/cc-daily-reports/history"
)

func init() {
	Register(&JSON{})
}

// JSON renders the report as indented JSON.
type JSON struct{}

// Name returns the format name.
func (j *JSON) Name() string {
	return "json"
}

// Render writes the report to w.
func (j *JSON) Render(w io.Writer, report *history.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
