package ports

import "redline/internal/domain"

// PromptBuilder renders the operation prompts. Rendering is pure: no I/O,
// no state, fully determined by the arguments. lang is the interface
// language display name the model must answer in.
type PromptBuilder interface {
	CheckPrompt(text, lang string) string
	EnhancePrompt(text string, preset domain.StylePreset, lang string) string
}
