package sqlite

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"redline/internal/domain"
)

// CacheRepo stores decoded model payloads keyed by a request hash. The
// model is slow and billed per call; identical requests within one install
// are common enough (re-checking the same paragraph) to be worth a table.
type CacheRepo struct{ *Repo }

func NewCacheRepo(db *sql.DB) *CacheRepo { return &CacheRepo{NewRepo(db)} }

func (r *CacheRepo) Lookup(ctx context.Context, hash string) (string, bool, error) {
	q := r.SQ.Select("payload").
		From("response_cache").
		Where(sq.Eq{"hash": hash}).
		Limit(1)
	sqlStr, args, _ := q.ToSql()

	var payload string
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return payload, true, nil
}

func (r *CacheRepo) Store(ctx context.Context, hash string, kind domain.OperationKind, payload string) error {
	q := r.SQ.Insert("response_cache").
		Columns("hash", "kind", "payload", "created_at").
		Values(hash, string(kind), payload, utcNow()).
		Suffix("ON CONFLICT(hash) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
