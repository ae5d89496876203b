// Package report renders a finished check or enhance result into an
// exportable document. Formats register themselves in a Registry keyed by
// file extension.
package report

import (
	"sort"

	"redline/internal/ports"
)

type Registry struct{ byFormat map[string]ports.ReportRenderer }

func NewRegistry() *Registry { return &Registry{byFormat: map[string]ports.ReportRenderer{}} }

func (r *Registry) Register(rend ports.ReportRenderer) { r.byFormat[rend.Format()] = rend }

func (r *Registry) Get(format string) (ports.ReportRenderer, bool) {
	rend, ok := r.byFormat[format]
	return rend, ok
}

func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Default returns a registry with every built-in renderer registered.
func Default() *Registry {
	reg := NewRegistry()
	reg.Register(Text{})
	reg.Register(Markdown{})
	reg.Register(HTML{})
	return reg
}
