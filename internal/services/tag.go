package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
)

//go:generate mockgen -source=tag.go -destination=mock_tag.go -package=services

// TagRepository persists tags.
type TagRepository interface {
	List(ctx context.Context, ownerID *int64) ([]models.Tag, error)
	Get(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error)
	Create(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error)
	Update(ctx context.Context, ownerID *int64, id int64, patch models.TagPatch) (*models.Tag, error)
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error)
}

// TagCache caches tag lists per owner.
type TagCache interface {
	Get(ctx context.Context, ownerID *int64) ([]models.Tag, error)
	Set(ctx context.Context, ownerID *int64, tags []models.Tag) error
	Invalidate(ctx context.Context, ownerID *int64) error
}

// TagService manages tags. Lists are served from the cache when one is
// configured; every mutation invalidates it after commit.
type TagService struct {
	repo     TagRepository
	cache    TagCache
	onCommit CommitHook
}

// NewTagService creates a new TagService. cache and onCommit are optional.
func NewTagService(repo TagRepository, cache TagCache, onCommit CommitHook) *TagService {
	if onCommit == nil {
		onCommit = runNow
	}
	return &TagService{repo: repo, cache: cache, onCommit: onCommit}
}

// List returns the tags of ownerID, or every tag when ownerID is nil.
func (s *TagService) List(ctx context.Context, ownerID *int64) ([]models.Tag, error) {
	if s.cache != nil {
		tags, err := s.cache.Get(ctx, ownerID)
		if err == nil {
			return tags, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Errorw("failed to read tag cache", "error", err)
		}
	}

	tags, err := s.repo.List(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ownerID, tags); err != nil {
			logger.Log.Errorw("failed to cache tags", "error", err)
		}
	}
	return tags, nil
}

// Get returns one tag.
func (s *TagService) Get(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error) {
	tag, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		logger.Log.Errorw("failed to get tag", "id", id, "error", err)
		return nil, err
	}
	return tag, nil
}

// Create stores a tag; an empty colorClass selects the default color.
func (s *TagService) Create(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error) {
	if colorClass == "" {
		colorClass = models.DefaultTagColor
	}

	tag, err := s.repo.Create(ctx, ownerID, name, colorClass)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTagAlreadyExists
		}
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to create tag", "name", name, "error", err)
		return nil, err
	}

	s.invalidate(ctx, tag.UserID)
	return tag, nil
}

// Update renames and/or recolors a tag.
func (s *TagService) Update(ctx context.Context, ownerID *int64, id int64, patch models.TagPatch) (*models.Tag, error) {
	if patch.Name == nil && patch.ColorClass == nil {
		return nil, ErrNothingToUpdate
	}

	tag, err := s.repo.Update(ctx, ownerID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrTagNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrTagAlreadyExists
		}
		logger.Log.Errorw("failed to update tag", "id", id, "error", err)
		return nil, err
	}

	s.invalidate(ctx, tag.UserID)
	return tag, nil
}

// Delete removes a tag from every application and returns it.
func (s *TagService) Delete(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error) {
	tag, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		logger.Log.Errorw("failed to delete tag", "id", id, "error", err)
		return nil, err
	}

	s.invalidate(ctx, tag.UserID)
	return tag, nil
}

func (s *TagService) invalidate(ctx context.Context, ownerID *int64) {
	if s.cache == nil {
		return
	}
	s.onCommit(ctx, func() { invalidateTags(ctx, s.cache, ownerID) })
}
