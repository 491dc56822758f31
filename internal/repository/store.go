package repository

import (
	"context"

	"github.com/example/job-board/internal/models"
)

// Backend names reported by PostingStore.Backend.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// PostingStore persists job postings. Implementations must behave identically;
// callers never branch on which one is active.
type PostingStore interface {
	// Upsert inserts candidate, or updates the row sharing its JobReqID.
	// It returns the row as stored.
	Upsert(ctx context.Context, candidate *models.JobPosting) (*models.JobPosting, error)
	// List returns one page, newest first, and the total row count.
	List(ctx context.Context, page int) ([]models.JobPosting, int64, error)
	// GetByID returns a NotFound domain error when no row has id.
	GetByID(ctx context.Context, id uint) (*models.JobPosting, error)
	// EnsureSchema creates the posts table and its indexes if absent.
	EnsureSchema(ctx context.Context) error
	Backend() string
	Close() error
}
