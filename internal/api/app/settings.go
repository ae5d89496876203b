package app

import (
	"context"

	"redline/internal/i18n"
	"redline/internal/ports"
	"redline/internal/usecase/session"
)

// SettingsAPI serves the settings view. Reads go straight to the
// repository; writes go through the controller so the loop stays the
// single owner of live state.
type SettingsAPI struct {
	ctrl *session.Controller
	repo ports.SettingsRepository
}

func NewSettingsAPI(ctrl *session.Controller, repo ports.SettingsRepository) *SettingsAPI {
	return &SettingsAPI{ctrl: ctrl, repo: repo}
}

// SettingsDTO is the persisted configuration with the credential masked.
// The full key never leaves the backend.
type SettingsDTO struct {
	APIKeyMasked  string `json:"api_key_masked"`
	DefaultPreset string `json:"default_preset"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	AutoCopy      bool   `json:"auto_copy"`
}

func (a *SettingsAPI) Get() (SettingsDTO, error) {
	ctx := context.Background()
	s, err := a.repo.Load(ctx)
	if err != nil {
		return SettingsDTO{}, err
	}
	return SettingsDTO{
		APIKeyMasked:  mask(s.APIKey),
		DefaultPreset: s.DefaultPreset,
		Theme:         s.Theme,
		Language:      s.Language,
		AutoCopy:      s.AutoCopy,
	}, nil
}

func (a *SettingsAPI) SaveAPIKey(key string)  { a.ctrl.SaveAPIKey(key) }
func (a *SettingsAPI) SetTheme(name string)   { a.ctrl.SetTheme(name) }
func (a *SettingsAPI) SetLanguage(key string) { a.ctrl.SetLanguage(key) }

type LanguageDTO struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// Languages lists the interface languages in picker order.
func (a *SettingsAPI) Languages() []LanguageDTO {
	langs := i18n.All()
	out := make([]LanguageDTO, 0, len(langs))
	for _, l := range langs {
		out = append(out, LanguageDTO{Key: l.Key(), DisplayName: l.DisplayName()})
	}
	return out
}

// mask hides the credential body; the UI only needs the tail to recognize
// which key is stored.
func mask(s string) string {
	if len(s) <= 4 {
		return s
	}
	return "****" + s[len(s)-4:]
}
