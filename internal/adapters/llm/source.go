// Package llm holds provider-independent plumbing shared by the LLM
// adapters and their callers.
package llm

import (
	"sync"

	"redline/internal/ports"
)

// Source hands out the currently configured generator. The session
// controller swaps the generator when the credential changes while
// operation goroutines read it concurrently, so access is guarded.
type Source struct {
	mu  sync.RWMutex
	gen ports.Generator
}

func NewSource() *Source { return &Source{} }

// Set installs gen as the current generator. A nil gen marks the
// application as unconfigured.
func (s *Source) Set(gen ports.Generator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen = gen
}

// Current returns the generator in use, or nil while unconfigured. The
// method value satisfies the Provider dependency of the operation
// services.
func (s *Source) Current() ports.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Configured reports whether a generator is installed.
func (s *Source) Configured() bool { return s.Current() != nil }
