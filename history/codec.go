package history

import (
	"path/filepath"
	"strings"
)

// Delimiter is the character Claude Code uses to flatten a project's
// working-directory path into a single directory name. A leading
// delimiter marks the filesystem root.
const Delimiter = "-"

// DecodePath reverses the flattening: it strips the leading delimiter
// and turns every remaining delimiter back into the platform path
// separator. Lossless as long as no path segment contained the
// delimiter itself.
func DecodePath(dirName string) string {
	trimmed := strings.TrimPrefix(dirName, Delimiter)
	return strings.ReplaceAll(trimmed, Delimiter, string(filepath.Separator))
}

// DecodeName guesses a human-readable project name from an encoded
// directory name. The encoding collapses filesystem ancestry and the
// project directory into one flat token stream, so segment count is the
// only signal for where the project name starts. Best-effort display
// logic only: never use the result as an identity key, use DecodePath
// or the raw directory name for that.
func DecodeName(dirName string) string {
	trimmed := strings.Trim(dirName, Delimiter)
	if trimmed == "" {
		return dirName
	}
	parts := strings.Split(trimmed, Delimiter)

	switch {
	case len(parts) == 6:
		// Ambiguous between "user + 1-letter dir + 2-part project" and
		// "deeper ancestry + short project". A single-character third
		// segment is the only available disambiguator.
		if len(parts[2]) == 1 {
			return strings.Join(parts[len(parts)-2:], Delimiter)
		}
		return strings.Join(parts[3:], Delimiter)
	case len(parts) >= 4:
		return strings.Join(parts[len(parts)-2:], Delimiter)
	case len(parts) >= 2:
		return parts[len(parts)-1]
	default:
		return parts[0]
	}
}
