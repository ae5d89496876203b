// Package checker implements the grammar check operation: prompt the
// model, strip formatting artifacts, decode the structured reply.
package checker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"redline/internal/adapters/llm/fence"
	"redline/internal/domain"
	"redline/internal/ports"
)

// temperature is fixed low. This is a correctness tool; variance between
// runs on the same text is a bug, not a feature.
const temperature = 0.2

type Deps struct {
	Prompts ports.PromptBuilder
	// Provider returns the current generator, or nil while no credential
	// is configured.
	Provider func() ports.Generator
	// Cache is optional; nil disables response caching.
	Cache ports.ResponseCache
}

type Service struct {
	d   Deps
	log zerolog.Logger
}

func New(d Deps) *Service {
	return &Service{d: d, log: log.With().Str("component", "checker").Logger()}
}

// Check runs one grammar check. lang is the display name of the language
// the model must explain issues in.
func (s *Service) Check(ctx context.Context, text, lang string) (*domain.CheckResult, error) {
	gen := s.generator()
	if gen == nil {
		return nil, ports.ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, ports.ErrEmptyInput
	}

	key := ports.CacheKey(domain.KindCheck, lang, text)
	payload, cached := s.lookup(ctx, key)
	if !cached {
		raw, err := gen.Generate(ctx, s.d.Prompts.CheckPrompt(text, lang), temperature)
		if err != nil {
			return nil, err
		}
		payload = fence.Strip(raw)
	}

	var res domain.CheckResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, &ports.DecodeError{Err: err}
	}
	if res.Issues == nil {
		res.Issues = []domain.GrammarIssue{}
	}
	// Only decodable payloads go into the cache, so hits never replay a
	// parse failure.
	if !cached {
		s.store(ctx, key, payload)
	}
	return &res, nil
}

func (s *Service) generator() ports.Generator {
	if s.d.Provider == nil {
		return nil
	}
	return s.d.Provider()
}

func (s *Service) lookup(ctx context.Context, key string) (string, bool) {
	if s.d.Cache == nil {
		return "", false
	}
	payload, ok, err := s.d.Cache.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("cache lookup")
		return "", false
	}
	return payload, ok
}

func (s *Service) store(ctx context.Context, key, payload string) {
	if s.d.Cache == nil {
		return
	}
	if err := s.d.Cache.Store(ctx, key, domain.KindCheck, payload); err != nil {
		s.log.Warn().Err(err).Msg("cache store")
	}
}
