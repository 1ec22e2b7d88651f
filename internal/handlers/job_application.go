package handlers

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=job_application.go -destination=mock_job_application.go -package=handlers

// JobApplicationLister lists job applications.
type JobApplicationLister interface {
	List(ctx context.Context, filter models.JobApplicationFilter) ([]models.JobApplication, error)
}

// JobApplicationGetter returns a single job application.
type JobApplicationGetter interface {
	Get(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error)
}

// JobApplicationCreator creates job applications.
type JobApplicationCreator interface {
	Create(ctx context.Context, ownerID *int64, in models.JobApplicationInput) (*models.JobApplication, error)
}

// JobApplicationUpdater replaces job applications.
type JobApplicationUpdater interface {
	Update(ctx context.Context, ownerID *int64, id int64, in models.JobApplicationInput) (*models.JobApplication, error)
}

// JobApplicationDeleter deletes job applications.
type JobApplicationDeleter interface {
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error)
}

// JobApplicationRequest is the body of create and full-replace requests.
// swagger:model JobApplicationRequest
type JobApplicationRequest struct {
	// required: true
	// default: Backend Engineer
	JobTitle string `json:"job_title" validate:"required,max=255"`

	// required: true
	// default: Acme
	CompanyName string `json:"company_name" validate:"required,max=255"`

	// default: Berlin
	Location *string `json:"location" validate:"omitempty,max=255"`

	// One of wishlist, applied, interviewing, offer, rejected. Defaults to wishlist.
	// default: applied
	ApplicationStatus string `json:"application_status" validate:"omitempty,oneof=wishlist applied interviewing offer rejected"`

	// default: https://example.com/jobs/1
	JobPostingURL *string `json:"job_posting_url" validate:"omitempty,url"`

	// YYYY-MM-DD or RFC 3339
	// default: 2024-03-01
	AppliedDate *string `json:"applied_date" validate:"omitempty,date"`

	Notes *string `json:"notes"`

	IsDemo bool `json:"is_demo"`

	// Tag names; missing tags are created. On update the list replaces the current tags.
	Tags []string `json:"tags" validate:"omitempty,dive,max=64"`
}

func (req *JobApplicationRequest) normalize() {
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.ApplicationStatus = strings.TrimSpace(req.ApplicationStatus)
	req.Location = trimmed(req.Location)
	req.JobPostingURL = trimmed(req.JobPostingURL)
	req.AppliedDate = trimmed(req.AppliedDate)
	req.Notes = trimmed(req.Notes)
	for i, tag := range req.Tags {
		req.Tags[i] = strings.TrimSpace(tag)
	}
}

func (req *JobApplicationRequest) input() models.JobApplicationInput {
	return models.JobApplicationInput{
		JobTitle:          req.JobTitle,
		CompanyName:       req.CompanyName,
		Location:          req.Location,
		ApplicationStatus: req.ApplicationStatus,
		JobPostingURL:     req.JobPostingURL,
		AppliedDate:       parseOptionalDate(req.AppliedDate),
		Notes:             req.Notes,
		IsDemo:            req.IsDemo,
		Tags:              services.NormalizeTagNames(req.Tags),
	}
}

// decodeJobApplication decodes and validates the request body, writing the
// 400 response itself when it fails.
func decodeJobApplication(w http.ResponseWriter, r *http.Request) (models.JobApplicationInput, bool) {
	var req JobApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidBody(w)
		return models.JobApplicationInput{}, false
	}

	req.normalize()
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return models.JobApplicationInput{}, false
	}

	return req.input(), true
}

func writeJobApplicationError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrJobApplicationNotFound) {
		writeError(w, http.StatusNotFound, "Job application not found")
		return
	}
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeInternalError(w, err)
}

// NewListJobApplicationsHandler returns an HTTP handler listing job applications.
// @Summary List job applications
// @Description Returns all job applications with their tags, most recently updated first.
// @Tags job-applications
// @Produce json
// @Param q query string false "Case-insensitive search in title, company, location and notes"
// @Param status query string false "Application status"
// @Param tag query string false "Tag name"
// @Param include_demo query bool false "Include demo applications (default true)"
// @Success 200 {array} models.JobApplication
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /job-applications [get]
func NewListJobApplicationsHandler(svc JobApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := models.JobApplicationFilter{
			UserID:      ownerID(r),
			Query:       strings.TrimSpace(query.Get("q")),
			Status:      strings.TrimSpace(query.Get("status")),
			Tag:         strings.TrimSpace(query.Get("tag")),
			IncludeDemo: true,
		}

		fields := map[string]string{}
		if filter.Status != "" && !slices.Contains(models.ApplicationStatuses, filter.Status) {
			fields["status"] = "must be one of: " + strings.Join(models.ApplicationStatuses, ", ")
		}
		if v := query.Get("include_demo"); v != "" {
			includeDemo, err := strconv.ParseBool(v)
			if err != nil {
				fields["include_demo"] = "must be a boolean"
			}
			filter.IncludeDemo = includeDemo
		}
		if len(fields) > 0 {
			writeValidationError(w, fields)
			return
		}

		apps, err := svc.List(r.Context(), filter)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, apps)
	}
}

// NewGetJobApplicationHandler returns an HTTP handler returning one job application.
// @Summary Get a job application
// @Tags job-applications
// @Produce json
// @Param id path int true "Job application ID"
// @Success 200 {object} models.JobApplication
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /job-applications/{id} [get]
func NewGetJobApplicationHandler(svc JobApplicationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid job application ID")
			return
		}

		app, err := svc.Get(r.Context(), ownerID(r), id)
		if err != nil {
			writeJobApplicationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}

// NewCreateJobApplicationHandler returns an HTTP handler creating a job application.
// @Summary Create a job application
// @Description Creates the application and links its tags, creating missing tags, in one transaction.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param request body handlers.JobApplicationRequest true "Job application"
// @Success 201 {object} models.JobApplication
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Owner no longer exists"
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /job-applications [post]
func NewCreateJobApplicationHandler(svc JobApplicationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeJobApplication(w, r)
		if !ok {
			return
		}

		app, err := svc.Create(r.Context(), ownerID(r), in)
		if err != nil {
			writeJobApplicationError(w, err)
			return
		}

		w.Header().Set("Location", "/job-applications/"+strconv.FormatInt(app.ID, 10))
		writeJSON(w, http.StatusCreated, app)
	}
}

// NewUpdateJobApplicationHandler returns an HTTP handler replacing a job application.
// @Summary Replace a job application
// @Description Overwrites every field; the submitted tags become the complete tag set.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param id path int true "Job application ID"
// @Param request body handlers.JobApplicationRequest true "Job application"
// @Success 200 {object} models.JobApplication
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /job-applications/{id} [put]
func NewUpdateJobApplicationHandler(svc JobApplicationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid job application ID")
			return
		}

		in, ok := decodeJobApplication(w, r)
		if !ok {
			return
		}

		app, err := svc.Update(r.Context(), ownerID(r), id, in)
		if err != nil {
			writeJobApplicationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}

// NewDeleteJobApplicationHandler returns an HTTP handler deleting a job application.
// @Summary Delete a job application
// @Description Deletes the application with its tag links and stages and returns it as it was.
// @Tags job-applications
// @Produce json
// @Param id path int true "Job application ID"
// @Success 200 {object} models.JobApplication
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /job-applications/{id} [delete]
func NewDeleteJobApplicationHandler(svc JobApplicationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid job application ID")
			return
		}

		app, err := svc.Delete(r.Context(), ownerID(r), id)
		if err != nil {
			writeJobApplicationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}
