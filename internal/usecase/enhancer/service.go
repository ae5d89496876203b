// Package enhancer implements the style rewrite operation.
package enhancer

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
	return &Service{d: d, log: log.With().Str("component", "enhancer").Logger()}
}

// Enhance rewrites text in the preset's style. lang is the display name
// of the language the model must describe its changes in.
func (s *Service) Enhance(ctx context.Context, text string, preset domain.StylePreset, lang string) (*domain.EnhanceResult, error) {
	gen := s.generator()
	if gen == nil {
		return nil, ports.ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, ports.ErrEmptyInput
	}

	// The preset body is part of the key: an external presets file can
	// redefine a key without renaming it.
	key := ports.CacheKey(domain.KindEnhance, lang, preset.Name, preset.Instructions, text)
	payload, cached := s.lookup(ctx, key)
	if !cached {
		raw, err := gen.Generate(ctx, s.d.Prompts.EnhancePrompt(text, preset, lang), temperature)
		if err != nil {
			return nil, err
		}
		payload = fence.Strip(raw)
	}

	var res domain.EnhanceResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, &ports.DecodeError{Err: err}
	}
	if res.ChangesMade == nil {
		res.ChangesMade = []string{}
	}
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
	if err := s.d.Cache.Store(ctx, key, domain.KindEnhance, payload); err != nil {
		s.log.Warn().Err(err).Msg("cache store")
	}
}
