package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

// UserCreator creates accounts.
type UserCreator interface {
	Create(ctx context.Context, email string, username, password *string, provider string, providerID *string) (*models.User, error)
}

// UserGetter returns a single account.
type UserGetter interface {
	Get(ctx context.Context, callerID *int64, id int64) (*models.User, error)
}

// UserUpdater changes accounts.
type UserUpdater interface {
	Update(ctx context.Context, callerID *int64, id int64, email, username, password *string) (*models.User, error)
}

// UserDeleter deletes accounts.
type UserDeleter interface {
	Delete(ctx context.Context, callerID *int64, id int64) error
}

// CreateUserRequest is the body of an account creation request.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// default: ann@example.com
	Email string `json:"email" validate:"required,email"`

	// default: ann
	Username *string `json:"username" validate:"omitempty,max=255"`

	// Required for local accounts
	// default: secret123
	Password *string `json:"password" validate:"omitempty,min=6,max=72,bcryptlen"`

	// default: local
	Provider string `json:"provider" validate:"omitempty,oneof=local google github"`

	// Required for google and github accounts
	ProviderID *string `json:"provider_id" validate:"omitempty,max=255"`
}

// UpdateUserRequest is the body of an account update request.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// default: ann@example.org
	Email *string `json:"email" validate:"omitempty,email"`

	Username *string `json:"username" validate:"omitempty,max=255"`

	Password *string `json:"password" validate:"omitempty,min=6,max=72,bcryptlen"`
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, "Email already in use")
	case errors.Is(err, services.ErrNothingToUpdate):
		writeError(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, services.ErrPasswordRequired):
		writeValidationError(w, map[string]string{"password": "is required"})
	case errors.Is(err, services.ErrProviderIDRequired):
		writeValidationError(w, map[string]string{"provider_id": "is required"})
	case errors.Is(err, services.ErrInvalidProvider):
		writeValidationError(w, map[string]string{"provider": "must be one of: local, google, github"})
	default:
		writeInternalError(w, err)
	}
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}

// NewCreateUserHandler returns an HTTP handler creating an account.
// @Summary Create a user
// @Description Local accounts need a password, google and github accounts a provider_id.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Username = trimmed(req.Username)
		req.ProviderID = trimmed(req.ProviderID)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		user, err := svc.Create(r.Context(), req.Email, req.Username, req.Password, req.Provider, req.ProviderID)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler returning one account.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), ownerID(r), id)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler changing an account.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.UpdateUserRequest true "Changes"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.Email = trimmedKeepEmpty(req.Email)
		req.Username = trimmed(req.Username)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		user, err := svc.Update(r.Context(), ownerID(r), id, req.Email, req.Username, req.Password)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting an account with everything it owns.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), ownerID(r), id); err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted"})
	}
}
