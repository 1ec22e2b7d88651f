package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=tag.go -destination=mock_tag.go -package=handlers

// TagLister lists tags.
type TagLister interface {
	List(ctx context.Context, ownerID *int64) ([]models.Tag, error)
}

// TagGetter returns a single tag.
type TagGetter interface {
	Get(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error)
}

// TagCreator creates tags.
type TagCreator interface {
	Create(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error)
}

// TagUpdater renames and recolors tags.
type TagUpdater interface {
	Update(ctx context.Context, ownerID *int64, id int64, patch models.TagPatch) (*models.Tag, error)
}

// TagDeleter deletes tags.
type TagDeleter interface {
	Delete(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error)
}

// TagRequest is the body of a tag creation request.
// swagger:model TagRequest
type TagRequest struct {
	// Owner of the tag; ignored for authenticated callers, who always own their tags
	UserID *int64 `json:"user_id" validate:"omitempty,gt=0"`

	// required: true
	// default: remote
	Name string `json:"name" validate:"required,max=64"`

	// CSS classes used to render the tag
	// default: bg-blue-100 text-blue-800
	ColorClass *string `json:"color_class" validate:"omitempty,max=100"`
}

// TagPatchRequest is the body of a tag update request.
// swagger:model TagPatchRequest
type TagPatchRequest struct {
	// default: remote-first
	Name *string `json:"name" validate:"omitempty,min=1,max=64"`

	// default: bg-green-100 text-green-800
	ColorClass *string `json:"color_class" validate:"omitempty,min=1,max=100"`
}

// tagOwner scopes tag requests: the authenticated caller when there is one,
// otherwise the explicitly requested owner (nil for the shared namespace).
func tagOwner(r *http.Request, explicit *int64) *int64 {
	if id := ownerID(r); id != nil {
		return id
	}
	return explicit
}

func writeTagError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTagNotFound):
		writeError(w, http.StatusNotFound, "Tag not found")
	case errors.Is(err, services.ErrTagAlreadyExists):
		writeError(w, http.StatusConflict, "Tag with this name already exists")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrNothingToUpdate):
		writeError(w, http.StatusBadRequest, "No fields to update")
	default:
		writeInternalError(w, err)
	}
}

// NewListTagsHandler returns an HTTP handler listing tags.
// @Summary List tags
// @Description Returns the caller's tags sorted by name. Unauthenticated requests may narrow the list with user_id.
// @Tags tags
// @Produce json
// @Param user_id query int false "Owner ID"
// @Success 200 {array} models.Tag
// @Failure 400 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /tags [get]
func NewListTagsHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var explicit *int64
		if v := r.URL.Query().Get("user_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				writeValidationError(w, map[string]string{"user_id": "must be a positive number"})
				return
			}
			explicit = &id
		}

		tags, err := svc.List(r.Context(), tagOwner(r, explicit))
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tags)
	}
}

// NewGetTagHandler returns an HTTP handler returning one tag.
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /tags/{id} [get]
func NewGetTagHandler(svc TagGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		tag, err := svc.Get(r.Context(), ownerID(r), id)
		if err != nil {
			writeTagError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tag)
	}
}

// NewCreateTagHandler returns an HTTP handler creating a tag.
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param request body handlers.TagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Name already used by the owner"
// @Security BearerAuth
// @Router /tags [post]
func NewCreateTagHandler(svc TagCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TagRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.ColorClass = trimmed(req.ColorClass)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		colorClass := ""
		if req.ColorClass != nil {
			colorClass = *req.ColorClass
		}

		tag, err := svc.Create(r.Context(), tagOwner(r, req.UserID), req.Name, colorClass)
		if err != nil {
			writeTagError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, tag)
	}
}

// NewUpdateTagHandler returns an HTTP handler renaming and/or recoloring a tag.
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param request body handlers.TagPatchRequest true "Changes"
// @Success 200 {object} models.Tag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /tags/{id} [patch]
func NewUpdateTagHandler(svc TagUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		var req TagPatchRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.Name = trimmedKeepEmpty(req.Name)
		req.ColorClass = trimmedKeepEmpty(req.ColorClass)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		tag, err := svc.Update(r.Context(), ownerID(r), id, models.TagPatch{Name: req.Name, ColorClass: req.ColorClass})
		if err != nil {
			writeTagError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tag)
	}
}

// NewDeleteTagHandler returns an HTTP handler deleting a tag.
// @Summary Delete a tag
// @Description Deletes the tag and unlinks it from every job application.
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /tags/{id} [delete]
func NewDeleteTagHandler(svc TagDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		tag, err := svc.Delete(r.Context(), ownerID(r), id)
		if err != nil {
			writeTagError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tag)
	}
}
