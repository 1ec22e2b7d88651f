// Package web serves the server-rendered job tracker pages.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=web.go -destination=mock_web.go -package=web

// BasePath is where the pages are mounted.
const BasePath = "/app"

// showDemoCookie keeps the "show demo jobs" toggle for the browser session.
const showDemoCookie = "show_demo"

//go:embed templates/*.html
var templatesFS embed.FS

// JobApplicationService is the subset of job application operations the pages use.
type JobApplicationService interface {
	List(ctx context.Context, filter models.JobApplicationFilter) ([]models.JobApplication, error)
	Get(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error)
	Create(ctx context.Context, ownerID *int64, in models.JobApplicationInput) (*models.JobApplication, error)
	Update(ctx context.Context, ownerID *int64, id int64, in models.JobApplicationInput) (*models.JobApplication, error)
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error)
}

// TagManager adds and removes the tags of a job application.
type TagManager interface {
	CreateByName(ctx context.Context, ownerID *int64, jobApplicationID int64, name, colorClass string) (*models.ApplicationTagDetail, error)
	DeleteByPair(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error)
}

// Handler renders the dashboard and the application pages.
type Handler struct {
	apps  JobApplicationService
	tags  TagManager
	pages map[string]*template.Template
}

// NewHandler parses the embedded templates.
func NewHandler(apps JobApplicationService, tags TagManager) (*Handler, error) {
	funcs := template.FuncMap{
		"join":  strings.Join,
		"date":  formatDate,
		"deref": deref,
		"path":  pagePath,
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{"dashboard.html", "form.html", "detail.html", "error.html"} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/fields.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{apps: apps, tags: tags, pages: pages}, nil
}

// Routes returns the page router. Writes run through tx when it is set.
func (h *Handler) Routes(tx func(http.Handler) http.Handler) http.Handler {
	var write []func(http.Handler) http.Handler
	if tx != nil {
		write = append(write, tx)
	}

	r := chi.NewRouter()
	r.Get("/", h.dashboard)
	r.Get("/applications/new", h.newApplication)
	r.With(write...).Post("/applications", h.createApplication)
	r.Get("/applications/{id}", h.showApplication)
	r.With(write...).Post("/applications/{id}", h.updateApplication)
	r.With(write...).Post("/applications/{id}/delete", h.deleteApplication)
	r.With(write...).Post("/applications/{id}/tags", h.addTag)
	r.With(write...).Post("/applications/{id}/tags/{tagId}/delete", h.removeTag)
	return r
}

type dashboardView struct {
	Applications []models.JobApplication
	Query        string
	Status       string
	Statuses     []string
	ShowDemo     bool
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	showDemo := showDemoJobs(w, r)

	status := strings.TrimSpace(query.Get("status"))
	if !isStatus(status) {
		status = ""
	}

	view := dashboardView{
		Query:    strings.TrimSpace(query.Get("q")),
		Status:   status,
		Statuses: models.ApplicationStatuses,
		ShowDemo: showDemo,
	}

	apps, err := h.apps.List(r.Context(), models.JobApplicationFilter{
		Query:       view.Query,
		Status:      view.Status,
		IncludeDemo: showDemo,
	})
	if err != nil {
		h.internalError(w, err)
		return
	}
	view.Applications = apps

	h.render(w, http.StatusOK, "dashboard.html", view)
}

// showDemoJobs reads the demo toggle, remembering an explicit choice in a
// session cookie. Demo jobs are shown by default.
func showDemoJobs(w http.ResponseWriter, r *http.Request) bool {
	if v := r.URL.Query().Get("show_demo"); v != "" {
		show, err := strconv.ParseBool(v)
		if err == nil {
			http.SetCookie(w, &http.Cookie{
				Name:     showDemoCookie,
				Value:    strconv.FormatBool(show),
				Path:     BasePath,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return show
		}
	}

	if c, err := r.Cookie(showDemoCookie); err == nil {
		if show, err := strconv.ParseBool(c.Value); err == nil {
			return show
		}
	}
	return true
}

type formView struct {
	Heading  string
	Action   string
	Form     applicationForm
	Errors   map[string]string
	Statuses []string
}

func (h *Handler) newApplication(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "form.html", formView{
		Heading:  "New application",
		Action:   pagePath("applications"),
		Form:     applicationForm{ApplicationStatus: models.StatusWishlist},
		Statuses: models.ApplicationStatuses,
	})
}

func (h *Handler) createApplication(w http.ResponseWriter, r *http.Request) {
	form, errs := parseApplicationForm(r)
	if errs != nil {
		h.render(w, http.StatusBadRequest, "form.html", formView{
			Heading:  "New application",
			Action:   pagePath("applications"),
			Form:     form,
			Errors:   errs,
			Statuses: models.ApplicationStatuses,
		})
		return
	}

	app, err := h.apps.Create(r.Context(), nil, form.input())
	if err != nil {
		h.internalError(w, err)
		return
	}

	http.Redirect(w, r, applicationPath(app.ID), http.StatusSeeOther)
}

type detailView struct {
	Application *models.JobApplication
	Form        applicationForm
	Errors      map[string]string
	TagError    string
	TagName     string
	Statuses    []string
}

func (h *Handler) showApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	app, err := h.apps.Get(r.Context(), nil, id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.render(w, http.StatusOK, "detail.html", detailView{
		Application: app,
		Form:        formFromApplication(app),
		Statuses:    models.ApplicationStatuses,
	})
}

func (h *Handler) updateApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	form, errs := parseApplicationForm(r)
	if errs != nil {
		app, err := h.apps.Get(r.Context(), nil, id)
		if err != nil {
			h.serviceError(w, err)
			return
		}
		h.render(w, http.StatusBadRequest, "detail.html", detailView{
			Application: app,
			Form:        form,
			Errors:      errs,
			Statuses:    models.ApplicationStatuses,
		})
		return
	}

	if _, err := h.apps.Update(r.Context(), nil, id, form.input()); err != nil {
		h.serviceError(w, err)
		return
	}

	http.Redirect(w, r, applicationPath(id), http.StatusSeeOther)
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	if _, err := h.apps.Delete(r.Context(), nil, id); err != nil {
		h.serviceError(w, err)
		return
	}

	http.Redirect(w, r, pagePath(""), http.StatusSeeOther)
}

func (h *Handler) addTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	name := strings.TrimSpace(r.PostFormValue("tag_name"))

	var (
		status  int
		message string
	)
	switch {
	case name == "":
		status, message = http.StatusBadRequest, "Tag name is required"
	case len(name) > 64:
		status, message = http.StatusBadRequest, "Tag name must be at most 64 characters"
	default:
		_, err := h.tags.CreateByName(r.Context(), nil, id, name, "")
		switch {
		case err == nil:
			http.Redirect(w, r, applicationPath(id), http.StatusSeeOther)
			return
		case errors.Is(err, services.ErrTagAlreadyLinked):
			status, message = http.StatusConflict, fmt.Sprintf("Tag %q is already on this application", name)
		default:
			h.serviceError(w, err)
			return
		}
	}

	app, err := h.apps.Get(r.Context(), nil, id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.render(w, status, "detail.html", detailView{
		Application: app,
		Form:        formFromApplication(app),
		TagError:    message,
		TagName:     name,
		Statuses:    models.ApplicationStatuses,
	})
}

func (h *Handler) removeTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.applicationID(w, r)
	if !ok {
		return
	}

	tagID, err := strconv.ParseInt(chi.URLParam(r, "tagId"), 10, 64)
	if err != nil || tagID <= 0 {
		h.renderError(w, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	if _, err := h.tags.DeleteByPair(r.Context(), nil, id, tagID); err != nil && !errors.Is(err, services.ErrApplicationTagNotFound) {
		h.serviceError(w, err)
		return
	}

	http.Redirect(w, r, applicationPath(id), http.StatusSeeOther)
}

func (h *Handler) applicationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(w, http.StatusBadRequest, "Invalid job application ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrJobApplicationNotFound) {
		h.renderError(w, http.StatusNotFound, "Job application not found")
		return
	}
	h.internalError(w, err)
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("web page failed", "err", err)
	h.renderError(w, http.StatusInternalServerError, "Something went wrong")
}

type errorView struct {
	Status  int
	Message string
}

func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	h.render(w, status, "error.html", errorView{Status: status, Message: message})
}

// render executes the page into a buffer first so that a template failure
// still produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log.Errorw("failed to write page", "page", page, "err", err)
	}
}

func pagePath(rel string) string {
	return BasePath + "/" + rel
}

func applicationPath(id int64) string {
	return pagePath("applications/" + strconv.FormatInt(id, 10))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
