package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=application_stage.go -destination=mock_application_stage.go -package=handlers

// ApplicationStageCreator creates stages.
type ApplicationStageCreator interface {
	Create(ctx context.Context, ownerID *int64, in models.ApplicationStageInput) (*models.ApplicationStage, error)
}

// ApplicationStageGetter returns a single stage.
type ApplicationStageGetter interface {
	Get(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error)
}

// ApplicationStageLister lists the stage history of a job application.
type ApplicationStageLister interface {
	ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationStage, error)
}

// ApplicationStageUpdater replaces or patches stages.
type ApplicationStageUpdater interface {
	Update(ctx context.Context, ownerID *int64, id int64, in models.ApplicationStageInput) (*models.ApplicationStage, error)
	Patch(ctx context.Context, ownerID *int64, id int64, patch models.ApplicationStagePatch) (*models.ApplicationStage, error)
}

// ApplicationStageDeleter deletes stages.
type ApplicationStageDeleter interface {
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error)
}

// ApplicationStageRequest is the body of stage create and replace requests.
// swagger:model ApplicationStageRequest
type ApplicationStageRequest struct {
	// required: true
	// default: 1
	JobApplicationID int64 `json:"job_application_id" validate:"required,gt=0"`

	// required: true
	// default: phone screen
	StageType string `json:"stage_type" validate:"required,max=100"`

	// YYYY-MM-DD or RFC 3339
	// default: 2024-03-05
	StageDate *string `json:"stage_date" validate:"omitempty,date"`

	Notes *string `json:"notes"`
}

// ApplicationStagePatchRequest is the body of a partial stage update.
// swagger:model ApplicationStagePatchRequest
type ApplicationStagePatchRequest struct {
	JobApplicationID *int64 `json:"job_application_id" validate:"omitempty,gt=0"`

	// default: onsite
	StageType *string `json:"stage_type" validate:"omitempty,min=1,max=100"`

	StageDate *string `json:"stage_date" validate:"omitempty,date"`

	Notes *string `json:"notes"`
}

func writeApplicationStageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrStageNotFound):
		writeError(w, http.StatusNotFound, "Application stage not found")
	case errors.Is(err, services.ErrJobApplicationNotFound):
		writeError(w, http.StatusNotFound, "Job application not found")
	case errors.Is(err, services.ErrStageAlreadyExists):
		writeError(w, http.StatusConflict, "Application stage already exists for this job application")
	case errors.Is(err, services.ErrNothingToUpdate):
		writeError(w, http.StatusBadRequest, "No fields to update")
	default:
		writeInternalError(w, err)
	}
}

func decodeApplicationStage(w http.ResponseWriter, r *http.Request) (models.ApplicationStageInput, bool) {
	var req ApplicationStageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidBody(w)
		return models.ApplicationStageInput{}, false
	}

	req.StageType = strings.TrimSpace(req.StageType)
	req.StageDate = trimmed(req.StageDate)
	req.Notes = trimmed(req.Notes)
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return models.ApplicationStageInput{}, false
	}

	return models.ApplicationStageInput{
		JobApplicationID: req.JobApplicationID,
		StageType:        req.StageType,
		StageDate:        parseOptionalDate(req.StageDate),
		Notes:            req.Notes,
	}, true
}

func stageID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid application stage ID")
		return 0, false
	}
	return id, true
}

// NewCreateApplicationStageHandler returns an HTTP handler creating a stage.
// @Summary Create an application stage
// @Tags application-stages
// @Accept json
// @Produce json
// @Param request body handlers.ApplicationStageRequest true "Stage"
// @Success 201 {object} models.ApplicationStage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown job application"
// @Failure 409 {object} handlers.ErrorResponse "Stage type already recorded"
// @Security BearerAuth
// @Router /application-stages [post]
func NewCreateApplicationStageHandler(svc ApplicationStageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeApplicationStage(w, r)
		if !ok {
			return
		}

		stage, err := svc.Create(r.Context(), ownerID(r), in)
		if err != nil {
			writeApplicationStageError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stage)
	}
}

// NewGetApplicationStageHandler returns an HTTP handler returning one stage.
// @Summary Get an application stage
// @Tags application-stages
// @Produce json
// @Param id path int true "Stage ID"
// @Success 200 {object} models.ApplicationStage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-stages/{id} [get]
func NewGetApplicationStageHandler(svc ApplicationStageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := stageID(w, r)
		if !ok {
			return
		}

		stage, err := svc.Get(r.Context(), ownerID(r), id)
		if err != nil {
			writeApplicationStageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stage)
	}
}

// NewListApplicationStagesHandler returns an HTTP handler listing the stage
// history of a job application.
// @Summary List the stages of a job application
// @Tags application-stages
// @Produce json
// @Param id path int true "Job application ID"
// @Success 200 {array} models.ApplicationStage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /job-applications/{id}/stages [get]
func NewListApplicationStagesHandler(svc ApplicationStageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid job application ID")
			return
		}

		stages, err := svc.ListByJob(r.Context(), ownerID(r), jobID)
		if err != nil {
			writeApplicationStageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stages)
	}
}

// NewUpdateApplicationStageHandler returns an HTTP handler replacing a stage.
// @Summary Replace an application stage
// @Tags application-stages
// @Accept json
// @Produce json
// @Param id path int true "Stage ID"
// @Param request body handlers.ApplicationStageRequest true "Stage"
// @Success 200 {object} models.ApplicationStage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-stages/{id} [put]
func NewUpdateApplicationStageHandler(svc ApplicationStageUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := stageID(w, r)
		if !ok {
			return
		}

		in, ok := decodeApplicationStage(w, r)
		if !ok {
			return
		}

		stage, err := svc.Update(r.Context(), ownerID(r), id, in)
		if err != nil {
			writeApplicationStageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stage)
	}
}

// NewPatchApplicationStageHandler returns an HTTP handler changing a subset of a stage.
// @Summary Patch an application stage
// @Tags application-stages
// @Accept json
// @Produce json
// @Param id path int true "Stage ID"
// @Param request body handlers.ApplicationStagePatchRequest true "Changes"
// @Success 200 {object} models.ApplicationStage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-stages/{id} [patch]
func NewPatchApplicationStageHandler(svc ApplicationStageUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := stageID(w, r)
		if !ok {
			return
		}

		var req ApplicationStagePatchRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.StageType = trimmedKeepEmpty(req.StageType)
		req.StageDate = trimmed(req.StageDate)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		stage, err := svc.Patch(r.Context(), ownerID(r), id, models.ApplicationStagePatch{
			JobApplicationID: req.JobApplicationID,
			StageType:        req.StageType,
			StageDate:        parseOptionalDate(req.StageDate),
			Notes:            req.Notes,
		})
		if err != nil {
			writeApplicationStageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stage)
	}
}

// NewDeleteApplicationStageHandler returns an HTTP handler deleting a stage.
// @Summary Delete an application stage
// @Tags application-stages
// @Produce json
// @Param id path int true "Stage ID"
// @Success 200 {object} models.ApplicationStage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-stages/{id} [delete]
func NewDeleteApplicationStageHandler(svc ApplicationStageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := stageID(w, r)
		if !ok {
			return
		}

		stage, err := svc.Delete(r.Context(), ownerID(r), id)
		if err != nil {
			writeApplicationStageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stage)
	}
}
