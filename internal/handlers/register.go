package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email string, username *string, password string) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Display name
	// default: john_doe
	Username *string `json:"username" validate:"omitempty,max=255"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72,bcryptlen"`
}

// TokenResponse represents a successful registration or login
// swagger:model TokenResponse
type TokenResponse struct {
	// Success message
	// default: User created
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a local account and returns a bearer token for it. Emails are unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.TokenResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeInvalidBody(w)
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Username = trimmed(req.Username)
		if fields := validateStruct(req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		token, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusConflict, "User already exists")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Message: "User created", Token: token})
	}
}
