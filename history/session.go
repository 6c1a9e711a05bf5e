package history

import "time"

// DateLayout is the calendar-date form used throughout: flag values,
// report names, and day comparison.
const DateLayout = "2006-01-02"

// NoTextPlaceholder stands in for a user instruction whose content had
// no text block (e.g. a bare tool result or image).
const NoTextPlaceholder = "[No text content]"

// ReconstructSession derives at most one session from a parsed event
// stream: the events whose timestamps fall on date, bounded by the
// earliest and latest timestamp in that window. The window includes
// assistant events because the last assistant reply best approximates
// when work ended. Returns false when the date's window holds no user
// instruction or no timestamp at all.
func ReconstructSession(events []RawEvent, date, projectPath, sessionID string) (SessionRecord, bool) {
	var instructions []string
	var start, end time.Time

	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			continue
		}
		// Calendar-day equality in the timestamp's own recorded offset.
		if ev.Timestamp.Format(DateLayout) != date {
			continue
		}

		if start.IsZero() || ev.Timestamp.Before(start) {
			start = ev.Timestamp
		}
		if ev.Timestamp.After(end) {
			end = ev.Timestamp
		}

		if ev.Kind == KindUser && ev.Role == "user" {
			instructions = append(instructions, instructionText(ev.Content))
		}
	}

	if len(instructions) == 0 || start.IsZero() {
		return SessionRecord{}, false
	}

	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	return SessionRecord{
		SessionID:       sessionID,
		ProjectPath:     projectPath,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: minutes,
		MessageCount:    len(instructions),
		Instructions:    instructions,
	}, true
}

// instructionText resolves a user message body to display text: the
// string itself, or the first text block, or a placeholder.
func instructionText(c EventContent) string {
	if c.IsText {
		return c.Text
	}
	for _, b := range c.Blocks {
		if b.Type == "text" {
			return b.Text
		}
	}
	return NoTextPlaceholder
}
