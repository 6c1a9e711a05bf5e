// Package history reconstructs daily work sessions from Claude Code's
// append-only JSONL session logs under the projects directory.
package history

import "time"

// Event kinds recognized in a session log. Lines with any other type
// are dropped at read time.
const (
	KindSummary   = "summary"
	KindUser      = "user"
	KindAssistant = "assistant"
)

// RawEvent is one parsed line from a session log file.
type RawEvent struct {
	Kind      string
	Timestamp time.Time // zero when the line carries no timestamp
	Role      string
	Content   EventContent
}

// EventContent holds a message body, which on disk is either a plain
// string or an array of typed blocks.
type EventContent struct {
	Text   string
	Blocks []ContentBlock
	IsText bool // Text is valid; otherwise Blocks (possibly empty) is
}

// ContentBlock is one element of an array-form message body.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SessionRecord is one reconstructed unit of work: a single log file
// restricted to a single calendar date.
type SessionRecord struct {
	SessionID       string    `json:"session_id"`
	ProjectPath     string    `json:"project_path"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	MessageCount    int       `json:"message_count"`
	Instructions    []string  `json:"instructions"`
}

// ProjectRecord is one project's aggregated activity for the target date.
type ProjectRecord struct {
	Name                 string          `json:"name"`
	Path                 string          `json:"path"`
	Sessions             []SessionRecord `json:"sessions"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
	TotalMessageCount    int             `json:"total_message_count"`
}

// Summary rolls the per-project totals up across the whole report.
type Summary struct {
	TotalDurationMinutes int `json:"total_duration_minutes"`
	TotalMessageCount    int `json:"total_message_count"`
	ProjectCount         int `json:"project_count"`
	SessionCount         int `json:"session_count"`
}

// ParseFailure records a recoverable problem with one file or one line.
// Line is 0 for file-level failures.
type ParseFailure struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// Report is the top-level result of a parse run. A Report returned
// without an error may still carry Failures and Warnings; callers must
// inspect both.
type Report struct {
	Date     string          `json:"date"`
	Projects []ProjectRecord `json:"projects"`
	Summary  Summary         `json:"summary"`
	Failures []ParseFailure  `json:"failures,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}
