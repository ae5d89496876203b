package ports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"redline/internal/domain"
)

// SettingsRepository persists the user configuration. Load falls back to
// defaults for keys that were never written.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// ResponseCache stores raw model payloads keyed by a request hash so a
// repeated request can skip the network.
type ResponseCache interface {
	Lookup(ctx context.Context, hash string) (payload string, ok bool, err error)
	Store(ctx context.Context, hash string, kind domain.OperationKind, payload string) error
}

// CacheKey derives the ResponseCache hash for one request. Every field
// that influences the model reply must be part of the key.
func CacheKey(kind domain.OperationKind, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// PresetCatalog serves the style presets offered in the picker. Lookup by
// key and key enumeration are the only access patterns.
type PresetCatalog interface {
	Get(key string) (domain.StylePreset, bool)
	Keys() []string
}
