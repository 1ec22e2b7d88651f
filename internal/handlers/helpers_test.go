package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

// newRequest builds a request with chi URL params and, when owner is set,
// an authenticated identity.
func newRequest(method, target, body string, params map[string]string, owner *int64) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)

	if owner != nil {
		ctx = middlewares.WithIdentity(ctx, models.UserPayload{ID: strconv.FormatInt(*owner, 10), Email: "ann@example.com"})
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }
