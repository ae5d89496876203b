package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	"redline/internal/domain"
)

// Settings live in a key/value table so adding a preference never needs a
// migration.
const (
	keyAPIKey        = "gemini_api_key"
	keyDefaultPreset = "default_preset"
	keyTheme         = "theme"
	keyLanguage      = "language"
	keyAutoCopy      = "auto_copy"
)

type SettingsRepo struct{ *Repo }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{NewRepo(db)} }

// Load reads all stored settings. Keys missing from the table keep their
// defaults, so a fresh database yields domain.DefaultSettings.
func (r *SettingsRepo) Load(ctx context.Context) (domain.Settings, error) {
	s := domain.DefaultSettings()

	q := r.SQ.Select("key", "value").From("settings")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return s, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return s, err
		}
		switch key {
		case keyAPIKey:
			s.APIKey = value
		case keyDefaultPreset:
			s.DefaultPreset = value
		case keyTheme:
			s.Theme = value
		case keyLanguage:
			s.Language = value
		case keyAutoCopy:
			s.AutoCopy = value == "true"
		}
	}
	return s, rows.Err()
}

// Save upserts every setting in one transaction.
func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	pairs := map[string]string{
		keyAPIKey:        s.APIKey,
		keyDefaultPreset: s.DefaultPreset,
		keyTheme:         s.Theme,
		keyLanguage:      s.Language,
		keyAutoCopy:      strconv.FormatBool(s.AutoCopy),
	}
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		for key, value := range pairs {
			q := r.SQ.Insert("settings").
				Columns("key", "value").
				Values(key, value).
				Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value")
			sqlStr, args, _ := q.ToSql()
			if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
				return err
			}
		}
		return nil
	})
}
