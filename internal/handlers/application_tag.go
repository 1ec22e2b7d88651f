package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=application_tag.go -destination=mock_application_tag.go -package=handlers

// ApplicationTagCreator links a tag to a job application by tag id.
type ApplicationTagCreator interface {
	Create(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error)
}

// ApplicationTagNameCreator links a tag to a job application by tag name.
type ApplicationTagNameCreator interface {
	CreateByName(ctx context.Context, ownerID *int64, jobApplicationID int64, name, colorClass string) (*models.ApplicationTagDetail, error)
}

// ApplicationTagLister lists the tags of a job application.
type ApplicationTagLister interface {
	ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationTagDetail, error)
}

// ApplicationTagDeleter unlinks tags from job applications.
type ApplicationTagDeleter interface {
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationTag, error)
	DeleteByPair(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error)
}

// ApplicationTagRequest identifies an association by its job application and tag.
// swagger:model ApplicationTagRequest
type ApplicationTagRequest struct {
	// required: true
	// default: 1
	JobApplicationID int64 `json:"job_application_id" validate:"required,gt=0"`

	// required: true
	// default: 1
	TagID int64 `json:"tag_id" validate:"required,gt=0"`
}

// ApplicationTagByNameRequest links a tag by name, creating it when missing.
// swagger:model ApplicationTagByNameRequest
type ApplicationTagByNameRequest struct {
	// required: true
	// default: 1
	JobApplicationID int64 `json:"job_application_id" validate:"required,gt=0"`

	// required: true
	// default: remote
	TagName string `json:"tag_name" validate:"required,max=64"`

	// Color of a newly created tag
	// default: bg-blue-100 text-blue-800
	ColorClass *string `json:"color_class" validate:"omitempty,max=100"`
}

func writeApplicationTagError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrJobApplicationNotFound):
		writeError(w, http.StatusNotFound, "Job application not found")
	case errors.Is(err, services.ErrTagNotFound):
		writeError(w, http.StatusNotFound, "Tag not found")
	case errors.Is(err, services.ErrApplicationTagNotFound):
		writeError(w, http.StatusNotFound, "Application tag not found")
	case errors.Is(err, services.ErrTagAlreadyLinked):
		writeError(w, http.StatusConflict, "Tag is already linked to this job application")
	default:
		writeInternalError(w, err)
	}
}

func decodeApplicationTag(w http.ResponseWriter, r *http.Request) (ApplicationTagRequest, bool) {
	var req ApplicationTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidBody(w)
		return req, false
	}
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return req, false
	}
	return req, true
}

// NewCreateApplicationTagHandler returns an HTTP handler linking a tag to a job application.
// @Summary Link a tag to a job application
// @Tags application-tags
// @Accept json
// @Produce json
// @Param request body handlers.ApplicationTagRequest true "Association"
// @Success 201 {object} models.ApplicationTag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown job application or tag"
// @Failure 409 {object} handlers.ErrorResponse "Already linked"
// @Security BearerAuth
// @Router /application-tags [post]
func NewCreateApplicationTagHandler(svc ApplicationTagCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeApplicationTag(w, r)
		if !ok {
			return
		}

		link, err := svc.Create(r.Context(), ownerID(r), req.JobApplicationID, req.TagID)
		if err != nil {
			writeApplicationTagError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, link)
	}
}

// NewCreateApplicationTagByNameHandler returns an HTTP handler linking a tag by name.
// @Summary Link a tag to a job application by name
// @Description Resolves the tag by name, creating it when missing, and links it in one transaction.
// @Tags application-tags
// @Accept json
// @Produce json
// @Param request body handlers.ApplicationTagByNameRequest true "Association"
// @Success 201 {object} models.ApplicationTagDetail
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-tags/by-name [post]
func NewCreateApplicationTagByNameHandler(svc ApplicationTagNameCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplicationTagByNameRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.TagName = strings.TrimSpace(req.TagName)
		req.ColorClass = trimmed(req.ColorClass)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		colorClass := ""
		if req.ColorClass != nil {
			colorClass = *req.ColorClass
		}

		detail, err := svc.CreateByName(r.Context(), ownerID(r), req.JobApplicationID, req.TagName, colorClass)
		if err != nil {
			writeApplicationTagError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, detail)
	}
}

// NewListApplicationTagsHandler returns an HTTP handler listing the tags of a job application.
// @Summary List the tags of a job application
// @Tags application-tags
// @Produce json
// @Param jobId path int true "Job application ID"
// @Success 200 {array} models.ApplicationTagDetail
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-tags/job/{jobId} [get]
func NewListApplicationTagsHandler(svc ApplicationTagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := pathID(r, "jobId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid job application ID")
			return
		}

		details, err := svc.ListByJob(r.Context(), ownerID(r), jobID)
		if err != nil {
			writeApplicationTagError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, details)
	}
}

// NewDeleteApplicationTagHandler returns an HTTP handler removing an association by id.
// @Summary Unlink a tag by association id
// @Tags application-tags
// @Produce json
// @Param id path int true "Association ID"
// @Success 200 {object} models.ApplicationTag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-tags/{id} [delete]
func NewDeleteApplicationTagHandler(svc ApplicationTagDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid application tag ID")
			return
		}

		link, err := svc.Delete(r.Context(), ownerID(r), id)
		if err != nil {
			writeApplicationTagError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}

// NewDeleteApplicationTagByPairHandler returns an HTTP handler removing an
// association by job application and tag.
// @Summary Unlink a tag by job application and tag id
// @Tags application-tags
// @Accept json
// @Produce json
// @Param request body handlers.ApplicationTagRequest true "Association"
// @Success 200 {object} models.ApplicationTag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /application-tags/by-composite [delete]
func NewDeleteApplicationTagByPairHandler(svc ApplicationTagDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeApplicationTag(w, r)
		if !ok {
			return
		}

		link, err := svc.DeleteByPair(r.Context(), ownerID(r), req.JobApplicationID, req.TagID)
		if err != nil {
			writeApplicationTagError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}
