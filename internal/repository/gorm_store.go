package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/job-board/internal/db"
	apperrors "github.com/example/job-board/internal/errors"
	"github.com/example/job-board/internal/models"
	"github.com/example/job-board/internal/pagination"
)

var baseIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_job_req_id ON posts (job_req_id)",
	"CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC, id DESC)",
}

// gormStore holds the dialect-neutral part of both stores.
type gormStore struct {
	database     *db.Database
	backend      string
	opTimeout    time.Duration
	extraIndexes []string
	describe     func(error) string
}

// opContext detaches the operation from caller cancellation and bounds it by
// opTimeout, which covers waiting for a pooled connection as well.
func (s *gormStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if s.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *gormStore) fail(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Persistence("store operation timed out", err)
	}
	if s.describe != nil {
		if d := s.describe(err); d != "" {
			op += " (" + d + ")"
		}
	}
	return apperrors.Persistence(op, err)
}

func (s *gormStore) Backend() string { return s.backend }

func (s *gormStore) Close() error { return s.database.Close() }

func (s *gormStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	tx := s.database.Gorm.WithContext(ctx)
	m := tx.Migrator()
	if !m.HasTable(&models.JobPosting{}) {
		if err := m.CreateTable(&models.JobPosting{}); err != nil {
			return s.fail("create posts table", err)
		}
	}

	stmts := append(append([]string{}, baseIndexes...), s.extraIndexes...)
	for _, stmt := range stmts {
		if err := tx.Exec(stmt).Error; err != nil {
			return s.fail("create index", err)
		}
	}
	return nil
}

func (s *gormStore) Upsert(ctx context.Context, candidate *models.JobPosting) (*models.JobPosting, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := *candidate
	row.ID = 0
	row.CreatedAt = time.Time{}
	row.UpdatedAt = time.Time{}
	if row.Skills == nil {
		row.Skills = models.Skills{}
	}

	tx := s.database.Gorm.WithContext(ctx)
	var stored models.JobPosting

	if row.JobReqID == nil {
		if err := tx.Create(&row).Error; err != nil {
			return nil, s.fail("insert posting", err)
		}
		if err := tx.Take(&stored, row.ID).Error; err != nil {
			return nil, s.fail("reload posting", err)
		}
		return &stored, nil
	}

	// The unique index on job_req_id arbitrates concurrent writers; the last
	// statement to run wins the non-key columns.
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_req_id"}},
		DoUpdates: clause.AssignmentColumns(conflictColumns(&row)),
	}).Create(&row).Error
	if err != nil {
		return nil, s.fail("upsert posting", err)
	}

	if err := tx.Where("job_req_id = ?", *row.JobReqID).Take(&stored).Error; err != nil {
		return nil, s.fail("reload posting", err)
	}
	return &stored, nil
}

// conflictColumns lists the columns refreshed on a job_req_id conflict. Optional
// columns the candidate carries no value for are left untouched.
func conflictColumns(p *models.JobPosting) []string {
	cols := []string{"title", "description", "updated_at"}

	optional := []struct {
		name string
		set  bool
	}{
		{"company_name", p.CompanyName != nil},
		{"company_logo", p.CompanyLogo != nil},
		{"apply_link", p.ApplyLink != nil},
		{"location", p.Location != nil},
		{"experience", p.Experience != nil},
		{"skills", len(p.Skills) > 0},
		{"remote_type", p.RemoteType != nil},
		{"time_type", p.TimeType != nil},
		{"posted_date", p.PostedDate != nil},
	}
	for _, c := range optional {
		if c.set {
			cols = append(cols, c.name)
		}
	}
	return cols
}

func (s *gormStore) List(ctx context.Context, page int) ([]models.JobPosting, int64, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	tx := s.database.Gorm.WithContext(ctx)

	var total int64
	if err := tx.Model(&models.JobPosting{}).Count(&total).Error; err != nil {
		return nil, 0, s.fail("count posts", err)
	}

	posts := make([]models.JobPosting, 0, pagination.PageSize)
	offset := pagination.Offset(page, pagination.PageSize)
	if offset >= total {
		return posts, total, nil
	}

	err := tx.Order("created_at DESC").Order("id DESC").
		Limit(pagination.PageSize).
		Offset(int(offset)).
		Find(&posts).Error
	if err != nil {
		return nil, 0, s.fail("list posts", err)
	}
	return posts, total, nil
}

func (s *gormStore) GetByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var p models.JobPosting
	err := s.database.Gorm.WithContext(ctx).Take(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Post not found", nil)
	}
	if err != nil {
		return nil, s.fail("get post", err)
	}
	return &p, nil
}
