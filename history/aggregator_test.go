package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSessionFile(t *testing.T, root, dirName, fileName string, lines ...string) {
	t.Helper()
	dir := filepath.Join(root, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func userLine(ts, text string) string {
	return `{"type":"user","timestamp":"` + ts + `","message":{"role":"user","content":"` + text + `"}}`
}

func assistantLine(ts string) string {
	return `{"type":"assistant","timestamp":"` + ts + `","message":{"role":"assistant","content":[{"type":"text","text":"ok"}]}}`
}

func TestParseForDate_SingleProject(t *testing.T) {
	root := t.TempDir()
	writeSessionFile(t, root, "-Users-dev-app", "abc.jsonl",
		userLine("2025-07-03T09:00:00.000Z", "fix bug"),
		assistantLine("2025-07-03T09:15:00.000Z"),
		userLine("2025-07-04T09:20:00.000Z", "next day"),
	)

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("got %d failures, want 0: %v", len(report.Failures), report.Failures)
	}
	if len(report.Projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(report.Projects))
	}

	p := report.Projects[0]
	if p.Name != "app" {
		t.Errorf("Name = %q, want %q", p.Name, "app")
	}
	wantPath := strings.Join([]string{"Users", "dev", "app"}, string(filepath.Separator))
	if p.Path != wantPath {
		t.Errorf("Path = %q, want %q", p.Path, wantPath)
	}
	if len(p.Sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(p.Sessions))
	}

	s := p.Sessions[0]
	if s.SessionID != "abc" {
		t.Errorf("SessionID = %q, want %q", s.SessionID, "abc")
	}
	if s.DurationMinutes != 15 {
		t.Errorf("DurationMinutes = %d, want 15", s.DurationMinutes)
	}
	if s.MessageCount != 1 {
		t.Errorf("MessageCount = %d, want 1", s.MessageCount)
	}

	if report.Summary.ProjectCount != 1 || report.Summary.SessionCount != 1 {
		t.Errorf("Summary = %+v, want 1 project, 1 session", report.Summary)
	}
	if report.Summary.TotalDurationMinutes != 15 {
		t.Errorf("Summary.TotalDurationMinutes = %d, want 15", report.Summary.TotalDurationMinutes)
	}
}

func TestParseForDate_MalformedLineIsIsolated(t *testing.T) {
	root := t.TempDir()
	writeSessionFile(t, root, "-Users-dev-app", "abc.jsonl",
		userLine("2025-07-03T09:00:00Z", "start"),
		"{broken",
		assistantLine("2025-07-03T09:10:00Z"),
	)

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("got %d failures, want 1: %v", len(report.Failures), report.Failures)
	}
	if report.Failures[0].Line != 2 {
		t.Errorf("failure line = %d, want 2", report.Failures[0].Line)
	}
	// The session is still built from the valid lines.
	if len(report.Projects) != 1 || len(report.Projects[0].Sessions) != 1 {
		t.Fatal("expected one session despite the malformed line")
	}
	if report.Projects[0].Sessions[0].DurationMinutes != 10 {
		t.Errorf("DurationMinutes = %d, want 10", report.Projects[0].Sessions[0].DurationMinutes)
	}
}

func TestParseForDate_Ordering(t *testing.T) {
	root := t.TempDir()
	// Project "small": one 5-minute session.
	writeSessionFile(t, root, "-Users-dev-small", "s1.jsonl",
		userLine("2025-07-03T14:00:00Z", "later"),
		assistantLine("2025-07-03T14:05:00Z"),
	)
	// Project "big": two sessions out of start order, 60 minutes total.
	writeSessionFile(t, root, "-Users-dev-big", "b2.jsonl",
		userLine("2025-07-03T13:00:00Z", "afternoon"),
		assistantLine("2025-07-03T13:30:00Z"),
	)
	writeSessionFile(t, root, "-Users-dev-big", "b1.jsonl",
		userLine("2025-07-03T09:00:00Z", "morning"),
		assistantLine("2025-07-03T09:30:00Z"),
	)

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(report.Projects))
	}

	// Projects by total duration, descending.
	if report.Projects[0].Name != "big" || report.Projects[1].Name != "small" {
		t.Errorf("project order = [%s %s], want [big small]",
			report.Projects[0].Name, report.Projects[1].Name)
	}

	// Sessions within a project by start time, ascending.
	big := report.Projects[0]
	if len(big.Sessions) != 2 {
		t.Fatalf("got %d sessions for big, want 2", len(big.Sessions))
	}
	if big.Sessions[0].SessionID != "b1" || big.Sessions[1].SessionID != "b2" {
		t.Errorf("session order = [%s %s], want [b1 b2]",
			big.Sessions[0].SessionID, big.Sessions[1].SessionID)
	}

	if big.TotalDurationMinutes != 60 {
		t.Errorf("big TotalDurationMinutes = %d, want 60", big.TotalDurationMinutes)
	}
	if report.Summary.SessionCount != 3 {
		t.Errorf("Summary.SessionCount = %d, want 3", report.Summary.SessionCount)
	}
	if report.Summary.TotalDurationMinutes != 65 {
		t.Errorf("Summary.TotalDurationMinutes = %d, want 65", report.Summary.TotalDurationMinutes)
	}
	if report.Summary.ProjectCount != len(report.Projects) {
		t.Errorf("ProjectCount = %d, want %d", report.Summary.ProjectCount, len(report.Projects))
	}
}

func TestParseForDate_ProjectWithoutQualifyingSessions(t *testing.T) {
	root := t.TempDir()
	// Activity exists, but on a different date.
	writeSessionFile(t, root, "-Users-dev-app", "a.jsonl",
		userLine("2025-07-01T09:00:00Z", "old work"),
	)

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Projects) != 0 {
		t.Errorf("got %d projects, want 0", len(report.Projects))
	}
	if len(report.Warnings) != 0 {
		t.Errorf("got warnings %v, want none", report.Warnings)
	}
}

func TestParseForDate_NoLogFilesWarning(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "-Users-dev-empty"), 0755); err != nil {
		t.Fatal(err)
	}

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(report.Warnings), report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "no session log files") {
		t.Errorf("warning = %q, want a no-session-log-files warning", report.Warnings[0])
	}
}

func TestParseForDate_EmptyRoot(t *testing.T) {
	report, err := NewParser(t.TempDir()).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Projects) != 0 {
		t.Errorf("got %d projects, want 0", len(report.Projects))
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "no project directories") {
		t.Errorf("warnings = %v, want a no-project-directories warning", report.Warnings)
	}
}

func TestParseForDate_MissingRoot(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "nope")).ParseForDate("2025-07-03")
	if err == nil {
		t.Fatal("expected error for missing root directory")
	}
}

func TestParseForDate_InvalidDate(t *testing.T) {
	_, err := NewParser(t.TempDir()).ParseForDate("07/03/2025")
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestParseForDate_SkipsNonEncodedEntries(t *testing.T) {
	root := t.TempDir()
	// Not delimiter-prefixed, and a stray file: both skipped silently.
	if err := os.MkdirAll(filepath.Join(root, "notes"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "-stray.jsonl"), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	writeSessionFile(t, root, "-Users-dev-app", "a.jsonl",
		userLine("2025-07-03T09:00:00Z", "work"),
	)

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Projects) != 1 || report.Projects[0].Name != "app" {
		t.Errorf("projects = %+v, want only app", report.Projects)
	}
}

func TestParseProject(t *testing.T) {
	root := t.TempDir()
	writeSessionFile(t, root, "-Users-dev-app", "a.jsonl",
		userLine("2025-07-03T09:00:00Z", "app work"),
	)
	writeSessionFile(t, root, "-Users-dev-other", "o.jsonl",
		userLine("2025-07-03T10:00:00Z", "other work"),
	)

	report, err := NewParser(root).ParseProject("app", "2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Projects) != 1 || report.Projects[0].Name != "app" {
		t.Fatalf("projects = %+v, want only app", report.Projects)
	}

	// The raw directory name is also an accepted spelling.
	report, err = NewParser(root).ParseProject("-Users-dev-other", "2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Projects) != 1 || report.Projects[0].Name != "other" {
		t.Fatalf("projects = %+v, want only other", report.Projects)
	}
}

func TestParseProject_NotFound(t *testing.T) {
	root := t.TempDir()
	writeSessionFile(t, root, "-Users-dev-app", "a.jsonl",
		userLine("2025-07-03T09:00:00Z", "work"),
	)

	_, err := NewParser(root).ParseProject("missing", "2025-07-03")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestListProjects(t *testing.T) {
	root := t.TempDir()
	writeSessionFile(t, root, "-Users-dev-alpha", "a.jsonl", userLine("2025-07-03T09:00:00Z", "x"))
	writeSessionFile(t, root, "-Users-dev-beta", "b.jsonl", userLine("2025-07-03T09:00:00Z", "y"))
	if err := os.MkdirAll(filepath.Join(root, "skipped"), 0755); err != nil {
		t.Fatal(err)
	}

	names := NewParser(root).ListProjects()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("ListProjects = %v, want [alpha beta]", names)
	}
}

func TestListProjects_MissingRoot(t *testing.T) {
	names := NewParser(filepath.Join(t.TempDir(), "nope")).ListProjects()
	if len(names) != 0 {
		t.Errorf("ListProjects = %v, want empty", names)
	}
}

func TestParseForDate_UnreadableLogFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}
	root := t.TempDir()
	writeSessionFile(t, root, "-Users-dev-app", "good.jsonl",
		userLine("2025-07-03T09:00:00Z", "fine"),
	)
	locked := filepath.Join(root, "-Users-dev-app", "locked.jsonl")
	if err := os.WriteFile(locked, []byte("{}\n"), 0000); err != nil {
		t.Fatal(err)
	}

	report, err := NewParser(root).ParseForDate("2025-07-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Failures) != 1 || report.Failures[0].File != locked {
		t.Fatalf("failures = %v, want one for the unreadable file", report.Failures)
	}
	// The readable file still produced its session.
	if len(report.Projects) != 1 || len(report.Projects[0].Sessions) != 1 {
		t.Error("expected the readable file's session to survive")
	}
}
