package sqlite

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Repo is the shared base for Squirrel-built repositories.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}

// utcNow is the timestamp format stored in text columns.
func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
