package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// LogSuffix is the extension of session log files.
const LogSuffix = ".jsonl"

// logLine mirrors the on-disk shape of one session log entry.
type logLine struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Message   logMsg `json:"message"`
}

type logMsg struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// ReadEventLog reads one session log file and parses each line as an
// independent record. Malformed lines are reported as ParseFailures and
// skipped; only failure to open or scan the file is returned as an
// error. Lines with an unrecognized type are dropped silently.
func ReadEventLog(path string) ([]RawEvent, []ParseFailure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	var events []RawEvent
	var failures []ParseFailure

	scanner := bufio.NewScanner(f)
	// Allow long lines: tool results and pasted content can be large.
	scanner.Buffer(make([]byte, 0, 1024*1024), 8*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec logLine
		if err := json.Unmarshal(line, &rec); err != nil {
			failures = append(failures, ParseFailure{
				File:    path,
				Line:    lineNo,
				Message: err.Error(),
			})
			continue
		}

		switch rec.Type {
		case KindSummary, KindUser, KindAssistant:
		default:
			continue
		}

		events = append(events, RawEvent{
			Kind:      rec.Type,
			Timestamp: parseTimestamp(rec.Timestamp),
			Role:      rec.Message.Role,
			Content:   decodeContent(rec.Message.Content),
		})
	}

	if err := scanner.Err(); err != nil {
		return events, failures, fmt.Errorf("scan session log: %w", err)
	}
	return events, failures, nil
}

// parseTimestamp parses an RFC3339 timestamp, keeping the recorded
// offset. Missing or unparseable values yield the zero time; such
// events are excluded from date filtering and duration math.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts
	}
	ts, _ := time.Parse(time.RFC3339, value)
	return ts
}

// decodeContent handles the two content encodings: a plain string or
// an array of typed blocks. Anything else decodes to an empty block
// list rather than an error.
func decodeContent(raw json.RawMessage) EventContent {
	if len(raw) == 0 {
		return EventContent{}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return EventContent{Text: s, IsText: true}
	}

	var blocks []ContentBlock
	if err := json.Unmarshal(raw, &blocks); err == nil {
		return EventContent{Blocks: blocks}
	}

	return EventContent{}
}
