package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/job-board/internal/cache"
	"github.com/example/job-board/internal/models"
	"github.com/example/job-board/internal/normalize"
	"github.com/example/job-board/internal/pagination"
	"github.com/example/job-board/internal/repository"
	"github.com/example/job-board/internal/telemetry"
)

var tracer = telemetry.GetTracer(telemetry.ServiceName)

type PostService struct {
	store  repository.PostingStore
	cache  cache.Cache
	logger *zap.Logger
}

func NewPostService(store repository.PostingStore, c cache.Cache, logger *zap.Logger) *PostService {
	return &PostService{store: store, cache: c, logger: logger}
}

type ListResult struct {
	Jobs       []models.JobPosting `json:"jobs"`
	Pagination pagination.Result   `json:"pagination"`
}

func postKey(id uint) string { return fmt.Sprintf("post:%d", id) }

// CreatePost normalizes payload and upserts it on job_req_id. The stored row
// is returned.
func (s *PostService) CreatePost(ctx context.Context, payload map[string]any) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "PostService.CreatePost")
	defer span.End()

	candidate, err := normalize.Posting(payload)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.Upsert(ctx, candidate)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("post.id", int(saved.ID)))

	if err := s.cache.Del(ctx, postKey(saved.ID)); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Uint("id", saved.ID), zap.Error(err))
	}
	return saved, nil
}

func (s *PostService) ListPosts(ctx context.Context, page int) (*ListResult, error) {
	ctx, span := tracer.Start(ctx, "PostService.ListPosts")
	defer span.End()

	page = pagination.ClampPage(page)
	span.SetAttributes(telemetry.Int("page", page))

	jobs, total, err := s.store.List(ctx, page)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}
	return &ListResult{
		Jobs:       jobs,
		Pagination: pagination.Assemble(page, total, pagination.PageSize),
	}, nil
}

// GetPost reads through the cache. Cache failures fall through to the store.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "PostService.GetPost")
	defer span.End()

	key := postKey(id)
	var post models.JobPosting
	err := s.cache.GetJSON(ctx, key, &post)
	if err == nil {
		return &post, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, key, p); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return p, nil
}

func (s *PostService) Backend() string {
	return s.store.Backend()
}
