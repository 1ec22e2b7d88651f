package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
)

//go:generate mockgen -source=application_tag.go -destination=mock_application_tag.go -package=services

// ApplicationTagRepository persists job application ↔ tag associations.
type ApplicationTagRepository interface {
	Create(ctx context.Context, jobApplicationID, tagID int64) (*models.ApplicationTag, error)
	ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationTagDetail, error)
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationTag, error)
	DeleteByPair(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error)
}

// JobApplicationChecker tells whether a job application is visible to an owner.
type JobApplicationChecker interface {
	Exists(ctx context.Context, ownerID *int64, id int64) (bool, error)
}

// TagLookup finds tags by id or by name.
type TagLookup interface {
	Get(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error)
	FindOrCreate(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error)
}

// ApplicationTagService manages single associations between job
// applications and tags.
type ApplicationTagService struct {
	links    ApplicationTagRepository
	jobs     JobApplicationChecker
	tags     TagLookup
	cache    TagCacheInvalidator
	onCommit CommitHook
}

// NewApplicationTagService creates a new ApplicationTagService.
// cache and onCommit are optional.
func NewApplicationTagService(
	links ApplicationTagRepository,
	jobs JobApplicationChecker,
	tags TagLookup,
	cache TagCacheInvalidator,
	onCommit CommitHook,
) *ApplicationTagService {
	if onCommit == nil {
		onCommit = runNow
	}
	return &ApplicationTagService{
		links:    links,
		jobs:     jobs,
		tags:     tags,
		cache:    cache,
		onCommit: onCommit,
	}
}

// Create links an existing tag to a job application.
func (s *ApplicationTagService) Create(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error) {
	if err := s.ensureJob(ctx, ownerID, jobApplicationID); err != nil {
		return nil, err
	}

	if _, err := s.tags.Get(ctx, ownerID, tagID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		logger.Log.Errorw("failed to get tag", "id", tagID, "error", err)
		return nil, err
	}

	link, err := s.links.Create(ctx, jobApplicationID, tagID)
	if err != nil {
		return nil, linkError(err)
	}
	return link, nil
}

// CreateByName links the tag called name to a job application, creating the
// tag with colorClass (or the default color) when it does not exist.
func (s *ApplicationTagService) CreateByName(ctx context.Context, ownerID *int64, jobApplicationID int64, name, colorClass string) (*models.ApplicationTagDetail, error) {
	if err := s.ensureJob(ctx, ownerID, jobApplicationID); err != nil {
		return nil, err
	}

	if colorClass == "" {
		colorClass = models.DefaultTagColor
	}
	tag, err := s.tags.FindOrCreate(ctx, ownerID, name, colorClass)
	if err != nil {
		logger.Log.Errorw("failed to resolve tag", "name", name, "error", err)
		return nil, err
	}

	link, err := s.links.Create(ctx, jobApplicationID, tag.ID)
	if err != nil {
		return nil, linkError(err)
	}

	s.onCommit(ctx, func() { invalidateTags(ctx, s.cache, tag.UserID) })

	return &models.ApplicationTagDetail{
		ID:               link.ID,
		JobApplicationID: link.JobApplicationID,
		TagID:            tag.ID,
		Name:             tag.Name,
		ColorClass:       tag.ColorClass,
	}, nil
}

// ListByJob returns the associations of a job application with tag details.
func (s *ApplicationTagService) ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationTagDetail, error) {
	if err := s.ensureJob(ctx, ownerID, jobApplicationID); err != nil {
		return nil, err
	}

	links, err := s.links.ListByJob(ctx, ownerID, jobApplicationID)
	if err != nil {
		logger.Log.Errorw("failed to list application tags", "job_application_id", jobApplicationID, "error", err)
		return nil, err
	}
	return links, nil
}

// Delete removes the association with the given id.
func (s *ApplicationTagService) Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationTag, error) {
	link, err := s.links.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationTagNotFound
		}
		logger.Log.Errorw("failed to delete application tag", "id", id, "error", err)
		return nil, err
	}
	return link, nil
}

// DeleteByPair removes the association of a job application and a tag.
func (s *ApplicationTagService) DeleteByPair(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error) {
	link, err := s.links.DeleteByPair(ctx, ownerID, jobApplicationID, tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationTagNotFound
		}
		logger.Log.Errorw("failed to delete application tag",
			"job_application_id", jobApplicationID, "tag_id", tagID, "error", err)
		return nil, err
	}
	return link, nil
}

func (s *ApplicationTagService) ensureJob(ctx context.Context, ownerID *int64, id int64) error {
	return ensureJobApplication(ctx, s.jobs, ownerID, id)
}

func ensureJobApplication(ctx context.Context, jobs JobApplicationChecker, ownerID *int64, id int64) error {
	exists, err := jobs.Exists(ctx, ownerID, id)
	if err != nil {
		logger.Log.Errorw("failed to check job application", "id", id, "error", err)
		return err
	}
	if !exists {
		return ErrJobApplicationNotFound
	}
	return nil
}

func linkError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return ErrTagAlreadyLinked
	case errors.Is(err, repositories.ErrForeignKey):
		return ErrJobApplicationNotFound
	}
	logger.Log.Errorw("failed to link tag", "error", err)
	return err
}
