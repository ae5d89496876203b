package app

import (
	"redline/internal/i18n"
	"redline/internal/ports"
	"redline/internal/usecase/session"
)

type PresetsAPI struct {
	ctrl    *session.Controller
	catalog ports.PresetCatalog
}

func NewPresetsAPI(ctrl *session.Controller, catalog ports.PresetCatalog) *PresetsAPI {
	return &PresetsAPI{ctrl: ctrl, catalog: catalog}
}

type PresetDTO struct {
	Key          string `json:"key"`
	DisplayName  string `json:"display_name"`
	Name         string `json:"name"`
	Tone         string `json:"tone"`
	Formality    string `json:"formality"`
	Instructions string `json:"instructions"`
}

// List returns every preset in stable key order, display-named in the
// current interface language.
func (a *PresetsAPI) List() []PresetDTO {
	s := i18n.Parse(a.ctrl.Snapshot().Language).Strings()
	keys := a.catalog.Keys()
	out := make([]PresetDTO, 0, len(keys))
	for _, key := range keys {
		p, ok := a.catalog.Get(key)
		if !ok {
			continue
		}
		out = append(out, PresetDTO{
			Key:          key,
			DisplayName:  s.PresetDisplayName(key),
			Name:         p.Name,
			Tone:         p.Tone,
			Formality:    p.Formality,
			Instructions: p.Instructions,
		})
	}
	return out
}
