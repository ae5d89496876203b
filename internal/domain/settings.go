package domain

// Settings is the persistent user configuration. Language holds the
// preference key ("chinese" or "english"), not a display name.
type Settings struct {
	APIKey        string `json:"api_key"`
	DefaultPreset string `json:"default_preset"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	AutoCopy      bool   `json:"auto_copy"`
}

// DefaultSettings returns the first-run configuration.
func DefaultSettings() Settings {
	return Settings{
		DefaultPreset: "casual",
		Theme:         "dark",
		Language:      "chinese",
		AutoCopy:      true,
	}
}
