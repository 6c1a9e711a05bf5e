package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrProjectNotFound is returned when a requested project name matches
// no encoded directory under the root.
var ErrProjectNotFound = errors.New("project not found")

// Parser scans a Claude Code projects directory and reconstructs daily
// activity. The root is injected explicitly; the parser never reads
// ambient environment state.
type Parser struct {
	root string
}

// NewParser returns a Parser reading from root.
func NewParser(root string) *Parser {
	return &Parser{root: root}
}

// ParseForDate builds the daily report for every project with activity
// on date (in 2006-01-02 form). Configuration problems (bad date,
// missing root) return an error; per-file and per-project problems are
// accumulated in the report's Failures and Warnings.
func (p *Parser) ParseForDate(date string) (*Report, error) {
	candidates, report, err := p.scanRoot(date)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		report.Warnings = append(report.Warnings, "no project directories found")
		return report, nil
	}

	for _, dirName := range candidates {
		p.collectProject(report, dirName, date)
	}

	finishReport(report)
	return report, nil
}

// ParseProject is ParseForDate scoped to a single project, matched by
// decoded display name or raw directory name. First match wins; decoded
// names are not guaranteed unique.
func (p *Parser) ParseProject(name, date string) (*Report, error) {
	candidates, report, err := p.scanRoot(date)
	if err != nil {
		return nil, err
	}

	for _, dirName := range candidates {
		if DecodeName(dirName) != name && dirName != name {
			continue
		}
		p.collectProject(report, dirName, date)
		finishReport(report)
		return report, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrProjectNotFound)
}

// ListProjects returns the decoded names of every project directory
// under the root, in directory-listing order. Best-effort: discovery
// errors yield an empty list.
func (p *Parser) ListProjects() []string {
	candidates, err := p.projectDirs()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(candidates))
	for _, dirName := range candidates {
		names = append(names, DecodeName(dirName))
	}
	return names
}

// parseDate validates a target date in 2006-01-02 form.
func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return d, nil
}

// scanRoot validates the date, lists candidate project directories, and
// seeds an empty report.
func (p *Parser) scanRoot(date string) ([]string, *Report, error) {
	if _, err := parseDate(date); err != nil {
		return nil, nil, err
	}
	candidates, err := p.projectDirs()
	if err != nil {
		return nil, nil, fmt.Errorf("reading projects directory %s: %w", p.root, err)
	}
	return candidates, &Report{Date: date}, nil
}

// projectDirs lists directory entries under the root whose names carry
// the path-encoding marker. Everything else is skipped silently.
func (p *Parser) projectDirs() ([]string, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), Delimiter) {
			continue
		}
		dirs = append(dirs, e.Name())
	}
	return dirs, nil
}

// collectProject reconstructs one project's sessions for date and, when
// any exist, appends the merged ProjectRecord to the report. File-level
// problems become ParseFailures; a directory with no log files becomes
// a warning. Neither stops the scan.
func (p *Parser) collectProject(report *Report, dirName, date string) {
	projectDir := filepath.Join(p.root, dirName)

	entries, err := os.ReadDir(projectDir)
	if err != nil {
		report.Failures = append(report.Failures, ParseFailure{
			File:    projectDir,
			Message: err.Error(),
		})
		return
	}

	name := DecodeName(dirName)
	path := DecodePath(dirName)

	var sessions []SessionRecord
	found := false
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), LogSuffix) {
			continue
		}
		found = true

		logPath := filepath.Join(projectDir, e.Name())
		events, failures, err := ReadEventLog(logPath)
		report.Failures = append(report.Failures, failures...)
		if err != nil {
			report.Failures = append(report.Failures, ParseFailure{
				File:    logPath,
				Message: err.Error(),
			})
			continue
		}

		sessionID := strings.TrimSuffix(e.Name(), LogSuffix)
		if s, ok := ReconstructSession(events, date, path, sessionID); ok {
			sessions = append(sessions, s)
		}
	}

	if !found {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s: no session log files", name))
		return
	}
	if len(sessions) == 0 {
		return
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	record := ProjectRecord{Name: name, Path: path, Sessions: sessions}
	for _, s := range sessions {
		record.TotalDurationMinutes += s.DurationMinutes
		record.TotalMessageCount += s.MessageCount
	}
	report.Projects = append(report.Projects, record)
}

// finishReport orders projects by total duration (stable, so input
// order breaks ties) and computes the roll-up summary.
func finishReport(report *Report) {
	sort.SliceStable(report.Projects, func(i, j int) bool {
		return report.Projects[i].TotalDurationMinutes > report.Projects[j].TotalDurationMinutes
	})

	for _, pr := range report.Projects {
		report.Summary.TotalDurationMinutes += pr.TotalDurationMinutes
		report.Summary.TotalMessageCount += pr.TotalMessageCount
		report.Summary.SessionCount += len(pr.Sessions)
	}
	report.Summary.ProjectCount = len(report.Projects)
}
