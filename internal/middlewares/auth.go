package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-job-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type identityKey struct{}

// AuthMiddleware returns a middleware that verifies the bearer token and
// stores the decoded identity in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, claims.UserPayload)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, payload models.UserPayload) context.Context {
	return context.WithValue(ctx, identityKey{}, payload)
}

// IdentityFromContext returns the caller identity, if the request was authenticated.
func IdentityFromContext(ctx context.Context) (models.UserPayload, bool) {
	payload, ok := ctx.Value(identityKey{}).(models.UserPayload)
	return payload, ok
}

// UserIDFromContext returns the numeric id of the authenticated caller, or nil.
func UserIDFromContext(ctx context.Context) *int64 {
	payload, ok := IdentityFromContext(ctx)
	if !ok {
		return nil
	}
	id, err := strconv.ParseInt(payload.ID, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
