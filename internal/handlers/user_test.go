package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserCreator(ctrl)
	tooLong := strings.Repeat("пароль", 7)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedField  string
	}{
		{
			name: "local user",
			body: `{"email":"ann@example.com","password":"secret123"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "ann@example.com", nil, strPtr("secret123"), "", nil).
					Return(&models.User{ID: 1, Email: "ann@example.com", Provider: models.ProviderLocal}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "oauth user",
			body: `{"email":"bob@example.com","provider":"github","provider_id":"gh-42"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "bob@example.com", nil, nil, models.ProviderGitHub, strPtr("gh-42")).
					Return(&models.User{ID: 2, Email: "bob@example.com", Provider: models.ProviderGitHub}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           `{"email":"nope","password":"secret123"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "email",
		},
		{
			name:           "multibyte password over 72 bytes",
			body:           `{"email":"ann@example.com","password":"` + tooLong + `"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "password",
		},
		{
			name:           "unknown provider",
			body:           `{"email":"ann@example.com","provider":"gitlab"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "provider",
		},
		{
			name: "local user without password",
			body: `{"email":"ann@example.com"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "ann@example.com", nil, nil, "", nil).
					Return(nil, services.ErrPasswordRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "password",
		},
		{
			name: "duplicate email",
			body: `{"email":"ann@example.com","password":"secret123"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "ann@example.com", nil, strPtr("secret123"), "", nil).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCreateUserHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, "/users", tt.body, nil, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			body := decodeBody(t, rr)
			if tt.expectedStatus == http.StatusCreated {
				assert.NotContains(t, body, "password_hash")
			}
			if tt.expectedField != "" {
				fields, ok := body["fields"].(map[string]any)
				if assert.True(t, ok) {
					assert.Contains(t, fields, tt.expectedField)
				}
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), int64Ptr(1), int64(1)).Return(&models.User{ID: 1, Email: "ann@example.com"}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), int64Ptr(1), int64(2)).Return(nil, services.ErrUserNotFound)

	handler := NewGetUserHandler(mockSvc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/users/1", "", map[string]string{"id": "1"}, int64Ptr(1)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ann@example.com", decodeBody(t, rr)["email"])

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/users/2", "", map[string]string{"id": "2"}, int64Ptr(1)))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/users/me", "", map[string]string{"id": "me"}, int64Ptr(1)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserUpdater(ctrl)
	tooLong := strings.Repeat("пароль", 7)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "rename",
			body: `{"username":" ann "}`,
			setupMocks: func() {
				mockSvc.EXPECT().Update(gomock.Any(), nil, int64(1), nil, strPtr("ann"), nil).
					Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "empty body",
			body: `{}`,
			setupMocks: func() {
				mockSvc.EXPECT().Update(gomock.Any(), nil, int64(1), nil, nil, nil).
					Return(nil, services.ErrNothingToUpdate)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank email",
			body:           `{"email":" "}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           `{"password":"123"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "multibyte password over 72 bytes",
			body:           `{"password":"` + tooLong + `"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email collision",
			body: `{"email":"bob@example.com"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Update(gomock.Any(), nil, int64(1), strPtr("bob@example.com"), nil, nil).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "service error",
			body: `{"password":"secret123"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Update(gomock.Any(), nil, int64(1), nil, nil, strPtr("secret123")).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewUpdateUserHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPatch, "/users/1", tt.body, map[string]string{"id": "1"}, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserDeleter(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), nil, int64(1)).Return(nil)
	mockSvc.EXPECT().Delete(gomock.Any(), nil, int64(2)).Return(services.ErrUserNotFound)

	handler := NewDeleteUserHandler(mockSvc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/users/1", "", map[string]string{"id": "1"}, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User deleted", decodeBody(t, rr)["message"])

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/users/2", "", map[string]string{"id": "2"}, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
