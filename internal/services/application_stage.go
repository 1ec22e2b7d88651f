package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
)

//go:generate mockgen -source=application_stage.go -destination=mock_application_stage.go -package=services

// ApplicationStageRepository persists pipeline stages.
type ApplicationStageRepository interface {
	Create(ctx context.Context, in models.ApplicationStageInput) (*models.ApplicationStage, error)
	Get(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error)
	ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationStage, error)
	Update(ctx context.Context, ownerID *int64, id int64, in models.ApplicationStageInput) (*models.ApplicationStage, error)
	Patch(ctx context.Context, ownerID *int64, id int64, patch models.ApplicationStagePatch) (*models.ApplicationStage, error)
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error)
}

// ApplicationStageService manages the stage history of job applications.
type ApplicationStageService struct {
	stages ApplicationStageRepository
	jobs   JobApplicationChecker
}

// NewApplicationStageService creates a new ApplicationStageService.
func NewApplicationStageService(stages ApplicationStageRepository, jobs JobApplicationChecker) *ApplicationStageService {
	return &ApplicationStageService{stages: stages, jobs: jobs}
}

// Create records a stage of a job application.
func (s *ApplicationStageService) Create(ctx context.Context, ownerID *int64, in models.ApplicationStageInput) (*models.ApplicationStage, error) {
	if err := ensureJobApplication(ctx, s.jobs, ownerID, in.JobApplicationID); err != nil {
		return nil, err
	}

	stage, err := s.stages.Create(ctx, in)
	if err != nil {
		return nil, s.writeError("create", err)
	}
	return stage, nil
}

// Get returns one stage.
func (s *ApplicationStageService) Get(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error) {
	stage, err := s.stages.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStageNotFound
		}
		logger.Log.Errorw("failed to get application stage", "id", id, "error", err)
		return nil, err
	}
	return stage, nil
}

// ListByJob returns the stage history of a job application in date order.
func (s *ApplicationStageService) ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationStage, error) {
	if err := ensureJobApplication(ctx, s.jobs, ownerID, jobApplicationID); err != nil {
		return nil, err
	}

	stages, err := s.stages.ListByJob(ctx, ownerID, jobApplicationID)
	if err != nil {
		logger.Log.Errorw("failed to list application stages", "job_application_id", jobApplicationID, "error", err)
		return nil, err
	}
	return stages, nil
}

// Update replaces every field of a stage.
func (s *ApplicationStageService) Update(ctx context.Context, ownerID *int64, id int64, in models.ApplicationStageInput) (*models.ApplicationStage, error) {
	if err := ensureJobApplication(ctx, s.jobs, ownerID, in.JobApplicationID); err != nil {
		return nil, err
	}

	stage, err := s.stages.Update(ctx, ownerID, id, in)
	if err != nil {
		return nil, s.writeError("update", err)
	}
	return stage, nil
}

// Patch changes the given fields of a stage.
func (s *ApplicationStageService) Patch(ctx context.Context, ownerID *int64, id int64, patch models.ApplicationStagePatch) (*models.ApplicationStage, error) {
	if patch.Empty() {
		return nil, ErrNothingToUpdate
	}
	if patch.JobApplicationID != nil {
		if err := ensureJobApplication(ctx, s.jobs, ownerID, *patch.JobApplicationID); err != nil {
			return nil, err
		}
	}

	stage, err := s.stages.Patch(ctx, ownerID, id, patch)
	if err != nil {
		return nil, s.writeError("patch", err)
	}
	return stage, nil
}

// Delete removes a stage and returns it.
func (s *ApplicationStageService) Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error) {
	stage, err := s.stages.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStageNotFound
		}
		logger.Log.Errorw("failed to delete application stage", "id", id, "error", err)
		return nil, err
	}
	return stage, nil
}

func (s *ApplicationStageService) writeError(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrStageNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return ErrStageAlreadyExists
	case errors.Is(err, repositories.ErrForeignKey):
		return ErrJobApplicationNotFound
	}
	logger.Log.Errorw("failed to "+op+" application stage", "error", err)
	return err
}
