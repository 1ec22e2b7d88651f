package middlewares

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMiddleware_Settle(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		setupMock    func(mock sqlmock.Sqlmock)
		expectedCode int
		expectedBody string
		hookRuns     bool
	}{
		{
			name:   "created response commits and runs hooks",
			status: http.StatusCreated,
			body:   `{"id":1}`,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1}`,
			hookRuns:     true,
		},
		{
			name:   "conflict response rolls back",
			status: http.StatusConflict,
			body:   `{"error":"Tag is already linked to this job application"}`,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Tag is already linked to this job application"}`,
		},
		{
			name:   "failed commit replaces the response",
			status: http.StatusOK,
			body:   `{"id":1}`,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			hookRuns := 0
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotNil(t, GetTxFromContext(r.Context()))
				OnCommit(r.Context(), func() { hookRuns++ })
				assert.Zero(t, hookRuns)
				w.Header().Set("Location", "/job-applications/1")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
			if tt.hookRuns {
				assert.Equal(t, 1, hookRuns)
			} else {
				assert.Zero(t, hookRuns)
			}
			if tt.expectedCode == http.StatusInternalServerError {
				assert.Empty(t, rr.Header().Get("Location"))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	// Close db so Begin fails
	db.Close()

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_Panic(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	assert.Panics(t, func() {
		handler.ServeHTTP(rr, req)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnCommit_WithoutTransaction(t *testing.T) {
	called := false
	OnCommit(context.Background(), func() { called = true })
	assert.True(t, called)
	assert.Nil(t, GetTxFromContext(context.Background()))
}
