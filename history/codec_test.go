package history

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodePath(t *testing.T) {
	want := strings.Join([]string{"Users", "me", "app"}, string(filepath.Separator))
	got := DecodePath("-Users-me-app")
	if got != want {
		t.Errorf("DecodePath = %q, want %q", got, want)
	}

	// No delimiters remain, so decoding again changes nothing.
	if again := DecodePath(got); again != got {
		t.Errorf("DecodePath twice = %q, want %q", again, got)
	}
}

func TestDecodeName(t *testing.T) {
	tests := []struct {
		dirName string
		want    string
	}{
		// Single-character third segment signals a short ancestry, so
		// the project name is the last two segments.
		{"-Users-x-table-expense-checker", "expense-checker"},
		// Six segments without that signal: everything past the
		// ancestry prefix is the project name.
		{"-Users-me-personal-claude-daily-reports", "claude-daily-reports"},
		{"-Users-dev-app", "app"},
		{"-Users-dev-work-tools-cli", "tools-cli"},
		{"-home-alice-p-web-admin-panel", "admin-panel"},
		{"-srv-app", "app"},
		{"project", "project"},
		{"a-b", "b"},
	}

	for _, tt := range tests {
		if got := DecodeName(tt.dirName); got != tt.want {
			t.Errorf("DecodeName(%q) = %q, want %q", tt.dirName, got, tt.want)
		}
	}
}

func TestDecodeName_DelimiterOnly(t *testing.T) {
	// Nothing left after trimming: fall back to the raw input.
	if got := DecodeName("---"); got != "---" {
		t.Errorf("DecodeName(%q) = %q, want input unchanged", "---", got)
	}
}
