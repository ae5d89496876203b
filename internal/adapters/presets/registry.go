// Package presets holds the built-in style presets and merges in
// user-defined ones from an optional YAML file.
package presets

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"redline/internal/domain"
)

type Registry struct {
	byKey map[string]domain.StylePreset
}

// New returns a registry seeded with the built-in presets.
func New() *Registry {
	return &Registry{byKey: map[string]domain.StylePreset{
		"casual": {
			Name:         "Casual",
			Tone:         "friendly, conversational",
			Formality:    "informal",
			Instructions: "Use simple words, contractions are okay, keep it natural and relaxed",
		},
		"business": {
			Name:         "Business",
			Tone:         "professional, polite",
			Formality:    "formal",
			Instructions: "Clear and concise, avoid slang, maintain professional courtesy",
		},
		"academic": {
			Name:         "Academic",
			Tone:         "objective, analytical",
			Formality:    "highly formal",
			Instructions: "Use precise terminology, passive voice acceptable, maintain scholarly tone",
		},
		"creative": {
			Name:         "Creative",
			Tone:         "expressive, vivid",
			Formality:    "flexible",
			Instructions: "Encourage creativity, use varied sentence structures, be engaging",
		},
	}}
}

// LoadFile merges presets from a YAML file into the registry. Entries
// override built-ins with the same key. A missing file is not an error.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read presets file: %w", err)
	}

	var file struct {
		Presets map[string]domain.StylePreset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse presets file: %w", err)
	}

	for key, p := range file.Presets {
		r.byKey[key] = p
	}
	return nil
}

func (r *Registry) Get(key string) (domain.StylePreset, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Keys returns all preset keys sorted for a stable picker order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) All() map[string]domain.StylePreset {
	out := make(map[string]domain.StylePreset, len(r.byKey))
	for k, p := range r.byKey {
		out[k] = p
	}
	return out
}
