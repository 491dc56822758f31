package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/example/job-board/internal/db"
)

var _ PostingStore = (*PostgresStore)(nil)

// PostgresStore is the primary, networked PostingStore.
type PostgresStore struct {
	gormStore
}

func NewPostgresStore(database *db.Database, opTimeout time.Duration) *PostgresStore {
	return &PostgresStore{gormStore{
		database:  database,
		backend:   BackendPostgres,
		opTimeout: opTimeout,
		// skills @> '["go"]' containment lookups
		extraIndexes: []string{
			"CREATE INDEX IF NOT EXISTS idx_posts_skills_gin ON posts USING GIN (skills jsonb_path_ops)",
		},
		describe: describePQ,
	}}
}

// describePQ names the SQLSTATE condition of a server-side error.
func describePQ(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name()
	}
	return ""
}
