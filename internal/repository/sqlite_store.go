package repository

import (
	"time"

	"github.com/example/job-board/internal/db"
)

var _ PostingStore = (*SQLiteStore)(nil)

// SQLiteStore is the embedded fallback PostingStore. Its single pooled
// connection serializes writers.
type SQLiteStore struct {
	gormStore
}

func NewSQLiteStore(database *db.Database, opTimeout time.Duration) *SQLiteStore {
	return &SQLiteStore{gormStore{
		database:  database,
		backend:   BackendSQLite,
		opTimeout: opTimeout,
	}}
}
