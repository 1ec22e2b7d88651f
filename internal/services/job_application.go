package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
)

//go:generate mockgen -source=job_application.go -destination=mock_job_application.go -package=services

// JobApplicationRepository persists job applications.
type JobApplicationRepository interface {
	List(ctx context.Context, filter models.JobApplicationFilter) ([]models.JobApplication, error)
	Get(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error)
	Create(ctx context.Context, in models.JobApplicationInput) (int64, error)
	Update(ctx context.Context, ownerID *int64, id int64, in models.JobApplicationInput) error
	Delete(ctx context.Context, ownerID *int64, id int64) error
}

// TagFinder resolves tag names to tags, creating missing ones.
type TagFinder interface {
	FindOrCreate(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error)
}

// TagLinker manages the tag set of a job application.
type TagLinker interface {
	Link(ctx context.Context, jobApplicationID, tagID int64) error
	UnlinkAll(ctx context.Context, jobApplicationID int64) error
}

// TagCacheInvalidator drops cached tag lists.
type TagCacheInvalidator interface {
	Invalidate(ctx context.Context, ownerID *int64) error
}

// EventPublisher announces committed job application changes.
type EventPublisher interface {
	Publish(ctx context.Context, event models.JobApplicationEvent)
}

// CommitHook defers fn until the surrounding transaction has committed.
type CommitHook func(ctx context.Context, fn func())

func runNow(_ context.Context, fn func()) { fn() }

// JobApplicationService manages job applications and their tag sets.
// Create and Update issue several statements and expect to run inside one
// transaction carried by ctx.
type JobApplicationService struct {
	jobs     JobApplicationRepository
	tags     TagFinder
	links    TagLinker
	cache    TagCacheInvalidator
	events   EventPublisher
	onCommit CommitHook
}

// NewJobApplicationService creates a new JobApplicationService.
// cache, events and onCommit are optional.
func NewJobApplicationService(
	jobs JobApplicationRepository,
	tags TagFinder,
	links TagLinker,
	cache TagCacheInvalidator,
	events EventPublisher,
	onCommit CommitHook,
) *JobApplicationService {
	if onCommit == nil {
		onCommit = runNow
	}
	return &JobApplicationService{
		jobs:     jobs,
		tags:     tags,
		links:    links,
		cache:    cache,
		events:   events,
		onCommit: onCommit,
	}
}

// List returns the applications matching filter, tags included.
func (s *JobApplicationService) List(ctx context.Context, filter models.JobApplicationFilter) ([]models.JobApplication, error) {
	apps, err := s.jobs.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list job applications", "error", err)
		return nil, err
	}
	return apps, nil
}

// Get returns one application with its tags.
func (s *JobApplicationService) Get(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error) {
	app, err := s.jobs.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobApplicationNotFound
		}
		logger.Log.Errorw("failed to get job application", "id", id, "error", err)
		return nil, err
	}
	return app, nil
}

// Create stores a new application owned by ownerID and links its tags,
// creating tags that do not exist yet.
func (s *JobApplicationService) Create(ctx context.Context, ownerID *int64, in models.JobApplicationInput) (*models.JobApplication, error) {
	in.UserID = ownerID
	if in.ApplicationStatus == "" {
		in.ApplicationStatus = models.StatusWishlist
	}

	id, err := s.jobs.Create(ctx, in)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to create job application", "error", err)
		return nil, err
	}

	if err := s.linkTags(ctx, ownerID, id, in.Tags); err != nil {
		return nil, err
	}

	app, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, models.OperationCreated, app, len(in.Tags) > 0)
	return app, nil
}

// Update replaces every field of an application. Its tag set becomes exactly
// the submitted one.
func (s *JobApplicationService) Update(ctx context.Context, ownerID *int64, id int64, in models.JobApplicationInput) (*models.JobApplication, error) {
	if in.ApplicationStatus == "" {
		in.ApplicationStatus = models.StatusWishlist
	}

	if err := s.jobs.Update(ctx, ownerID, id, in); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobApplicationNotFound
		}
		logger.Log.Errorw("failed to update job application", "id", id, "error", err)
		return nil, err
	}

	if err := s.links.UnlinkAll(ctx, id); err != nil {
		logger.Log.Errorw("failed to unlink tags", "id", id, "error", err)
		return nil, err
	}

	if err := s.linkTags(ctx, ownerID, id, in.Tags); err != nil {
		return nil, err
	}

	app, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, models.OperationUpdated, app, len(in.Tags) > 0)
	return app, nil
}

// Delete removes an application and returns it as it was.
func (s *JobApplicationService) Delete(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error) {
	app, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobApplicationNotFound
		}
		logger.Log.Errorw("failed to delete job application", "id", id, "error", err)
		return nil, err
	}

	s.afterWrite(ctx, models.OperationDeleted, app, false)
	return app, nil
}

func (s *JobApplicationService) linkTags(ctx context.Context, ownerID *int64, id int64, names []string) error {
	for _, name := range NormalizeTagNames(names) {
		tag, err := s.tags.FindOrCreate(ctx, ownerID, name, models.DefaultTagColor)
		if err != nil {
			logger.Log.Errorw("failed to resolve tag", "name", name, "error", err)
			return err
		}
		if err := s.links.Link(ctx, id, tag.ID); err != nil {
			logger.Log.Errorw("failed to link tag", "id", id, "tag_id", tag.ID, "error", err)
			return err
		}
	}
	return nil
}

// afterWrite schedules the change event and, when tags may have been
// created, the tag cache invalidation.
func (s *JobApplicationService) afterWrite(ctx context.Context, operation string, app *models.JobApplication, tagsTouched bool) {
	event := models.JobApplicationEvent{
		EventID:           uuid.NewString(),
		Timestamp:         time.Now().Unix(),
		Operation:         operation,
		JobApplicationID:  app.ID,
		UserID:            app.UserID,
		ApplicationStatus: app.ApplicationStatus,
		Tags:              app.TagNames(),
	}
	ownerID := app.UserID

	s.onCommit(ctx, func() {
		if tagsTouched {
			invalidateTags(ctx, s.cache, ownerID)
		}
		if s.events != nil {
			s.events.Publish(ctx, event)
		}
	})
}

// NormalizeTagNames trims the names and drops blanks and repeats, keeping
// the first occurrence order.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// invalidateTags drops the owner's cached tag list and the unscoped one,
// which includes every owner's tags.
func invalidateTags(ctx context.Context, cache TagCacheInvalidator, ownerID *int64) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, nil); err != nil {
		logger.Log.Errorw("failed to invalidate tag cache", "owner_id", nil, "error", err)
	}
	if ownerID == nil {
		return
	}
	if err := cache.Invalidate(ctx, ownerID); err != nil {
		logger.Log.Errorw("failed to invalidate tag cache", "owner_id", *ownerID, "error", err)
	}
}
