// Package render turns a parsed daily report into output documents.
package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/spyder1211/cc-daily-reports/history"
)

// Renderer writes a report in one named output format.
type Renderer interface {
	Name() string
	Render(w io.Writer, report *history.Report) error
}

var (
	registryMu sync.Mutex
	registry   = map[string]Renderer{}
)

// Register adds a renderer to the registry. Renderers call this from
// an init() function.
func Register(r Renderer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[r.Name()] = r
}

// Lookup returns the renderer registered under name.
func Lookup(name string) (Renderer, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (allowed: %v)", name, names())
	}
	return r, nil
}

// Names returns all registered format names, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// formatDuration renders whole minutes as "2h05m" or "45m".
func formatDuration(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
