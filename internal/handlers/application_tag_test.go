package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

func TestCreateApplicationTagHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationTagCreator(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedError  string
	}{
		{
			name: "linked",
			body: `{"job_application_id":1,"tag_id":2}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), nil, int64(1), int64(2)).
					Return(&models.ApplicationTag{ID: 10, JobApplicationID: 1, TagID: 2}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing tag id",
			body:           `{"job_application_id":1}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation failed",
		},
		{
			name: "already linked",
			body: `{"job_application_id":1,"tag_id":2}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), nil, int64(1), int64(2)).Return(nil, services.ErrTagAlreadyLinked)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Tag is already linked to this job application",
		},
		{
			name: "unknown job application",
			body: `{"job_application_id":9,"tag_id":2}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), nil, int64(9), int64(2)).Return(nil, services.ErrJobApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Job application not found",
		},
		{
			name: "unknown tag",
			body: `{"job_application_id":1,"tag_id":9}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), nil, int64(1), int64(9)).Return(nil, services.ErrTagNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Tag not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCreateApplicationTagHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, "/application-tags", tt.body, nil, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			body := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.EqualValues(t, 10, body["id"])
			}
		})
	}
}

func TestCreateApplicationTagByNameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationTagNameCreator(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "linked",
			body: `{"job_application_id":1,"tag_name":" remote "}`,
			setupMocks: func() {
				mockSvc.EXPECT().CreateByName(gomock.Any(), int64Ptr(3), int64(1), "remote", "").
					Return(&models.ApplicationTagDetail{ID: 4, JobApplicationID: 1, TagID: 2, Name: "remote"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "blank name",
			body:           `{"job_application_id":1,"tag_name":"  "}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"job_application_id":1,"tag_name":"remote","color_class":"bg-red-100"}`,
			setupMocks: func() {
				mockSvc.EXPECT().CreateByName(gomock.Any(), int64Ptr(3), int64(1), "remote", "bg-red-100").
					Return(nil, services.ErrTagAlreadyLinked)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "service error",
			body: `{"job_application_id":1,"tag_name":"remote"}`,
			setupMocks: func() {
				mockSvc.EXPECT().CreateByName(gomock.Any(), int64Ptr(3), int64(1), "remote", "").
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCreateApplicationTagByNameHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, "/application-tags/by-name", tt.body, nil, int64Ptr(3)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestListApplicationTagsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationTagLister(ctrl)
	mockSvc.EXPECT().ListByJob(gomock.Any(), nil, int64(1)).Return([]models.ApplicationTagDetail{
		{ID: 1, JobApplicationID: 1, TagID: 2, Name: "remote", ColorClass: models.DefaultTagColor},
	}, nil)
	mockSvc.EXPECT().ListByJob(gomock.Any(), nil, int64(2)).Return(nil, services.ErrJobApplicationNotFound)

	handler := NewListApplicationTagsHandler(mockSvc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/application-tags/job/1", "", map[string]string{"jobId": "1"}, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"remote"`)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/application-tags/job/2", "", map[string]string{"jobId": "2"}, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/application-tags/job/x", "", map[string]string{"jobId": "x"}, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteApplicationTagHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationTagDeleter(ctrl)

	t.Run("by id", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), nil, int64(5)).Return(&models.ApplicationTag{ID: 5}, nil)
		mockSvc.EXPECT().Delete(gomock.Any(), nil, int64(6)).Return(nil, services.ErrApplicationTagNotFound)

		handler := NewDeleteApplicationTagHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/application-tags/5", "", map[string]string{"id": "5"}, nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/application-tags/6", "", map[string]string{"id": "6"}, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Application tag not found", decodeBody(t, rr)["error"])
	})

	t.Run("by pair", func(t *testing.T) {
		mockSvc.EXPECT().DeleteByPair(gomock.Any(), nil, int64(1), int64(2)).Return(&models.ApplicationTag{ID: 5}, nil)
		mockSvc.EXPECT().DeleteByPair(gomock.Any(), nil, int64(1), int64(3)).Return(nil, services.ErrApplicationTagNotFound)

		handler := NewDeleteApplicationTagByPairHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/application-tags/by-composite", `{"job_application_id":1,"tag_id":2}`, nil, nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/application-tags/by-composite", `{"job_application_id":1,"tag_id":3}`, nil, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/application-tags/by-composite", `{}`, nil, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
