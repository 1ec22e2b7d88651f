package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

func TestListJobApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockJobApplicationLister(ctrl)

	tests := []struct {
		name           string
		target         string
		owner          *int64
		setupMocks     func()
		expectedStatus int
		expectedLen    int
	}{
		{
			name:   "defaults include demo",
			target: "/job-applications",
			setupMocks: func() {
				mockSvc.EXPECT().List(gomock.Any(), models.JobApplicationFilter{IncludeDemo: true}).
					Return([]models.JobApplication{{ID: 1}, {ID: 2}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:   "filters are trimmed and scoped to the caller",
			target: "/job-applications?q=+acme+&status=applied&tag=remote&include_demo=false",
			owner:  int64Ptr(7),
			setupMocks: func() {
				mockSvc.EXPECT().List(gomock.Any(), models.JobApplicationFilter{
					UserID: int64Ptr(7),
					Query:  "acme",
					Status: models.StatusApplied,
					Tag:    "remote",
				}).Return([]models.JobApplication{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "unknown status",
			target:         "/job-applications?status=ghosted",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid include_demo",
			target:         "/job-applications?include_demo=maybe",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "service error",
			target: "/job-applications",
			setupMocks: func() {
				mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewListJobApplicationsHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodGet, tt.target, "", nil, tt.owner))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, decodeBody(t, rr), "error")
				return
			}

			var apps []models.JobApplication
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&apps))
			assert.Len(t, apps, tt.expectedLen)
		})
	}
}

func TestListJobApplicationsHandler_StatusFieldError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewListJobApplicationsHandler(NewMockJobApplicationLister(ctrl))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/job-applications?status=ghosted", "", nil, nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Fields["status"], "wishlist")
}

func TestGetJobApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockJobApplicationGetter(ctrl)

	tests := []struct {
		name           string
		id             string
		setupMocks     func()
		expectedStatus int
		expectedError  string
	}{
		{
			name: "found",
			id:   "3",
			setupMocks: func() {
				mockSvc.EXPECT().Get(gomock.Any(), nil, int64(3)).
					Return(&models.JobApplication{ID: 3, JobTitle: "Backend Engineer"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid id",
			id:             "abc",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid job application ID",
		},
		{
			name:           "zero id",
			id:             "0",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid job application ID",
		},
		{
			name: "not found",
			id:   "99",
			setupMocks: func() {
				mockSvc.EXPECT().Get(gomock.Any(), nil, int64(99)).
					Return(nil, services.ErrJobApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Job application not found",
		},
		{
			name: "service error",
			id:   "4",
			setupMocks: func() {
				mockSvc.EXPECT().Get(gomock.Any(), nil, int64(4)).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewGetJobApplicationHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodGet, "/job-applications/"+tt.id, "", map[string]string{"id": tt.id}, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			body := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, "Backend Engineer", body["job_title"])
			}
		})
	}
}

func TestCreateJobApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockJobApplicationCreator(ctrl)
	applied := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedFields []string
	}{
		{
			name: "created with normalized tags",
			body: `{"job_title":" Backend Engineer ","company_name":"Acme","location":"  ","application_status":"applied",
				"applied_date":"2024-03-01","tags":["remote"," urgent ","remote",""]}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64Ptr(5), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *int64, in models.JobApplicationInput) (*models.JobApplication, error) {
						assert.Equal(t, "Backend Engineer", in.JobTitle)
						assert.Nil(t, in.Location)
						require.NotNil(t, in.AppliedDate)
						assert.True(t, applied.Equal(*in.AppliedDate))
						assert.Equal(t, []string{"remote", "urgent"}, in.Tags)
						return &models.JobApplication{ID: 12, JobTitle: in.JobTitle}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing required fields",
			body:           `{"job_title":"  "}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"job_title", "company_name"},
		},
		{
			name:           "invalid status url and date",
			body:           `{"job_title":"x","company_name":"y","application_status":"ghosted","job_posting_url":"not a url","applied_date":"03/01/2024"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"application_status", "job_posting_url", "applied_date"},
		},
		{
			name:           "malformed body",
			body:           `{"job_title":`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "owner account deleted",
			body: `{"job_title":"x","company_name":"y"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64Ptr(5), gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			body: `{"job_title":"x","company_name":"y"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64Ptr(5), gomock.Any()).Return(nil, errors.New("tx failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCreateJobApplicationHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, "/job-applications", tt.body, nil, int64Ptr(5)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, "/job-applications/12", rr.Header().Get("Location"))
				return
			}

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
			for _, f := range tt.expectedFields {
				assert.Contains(t, body.Fields, f)
			}
		})
	}
}

func TestUpdateJobApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockJobApplicationUpdater(ctrl)

	tests := []struct {
		name           string
		id             string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "replaced",
			id:   "8",
			body: `{"job_title":"SRE","company_name":"Acme","application_status":"offer","tags":["remote"]}`,
			setupMocks: func() {
				mockSvc.EXPECT().Update(gomock.Any(), nil, int64(8), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *int64, _ int64, in models.JobApplicationInput) (*models.JobApplication, error) {
						assert.Equal(t, models.StatusOffer, in.ApplicationStatus)
						assert.Equal(t, []string{"remote"}, in.Tags)
						return &models.JobApplication{ID: 8}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid id",
			id:             "-1",
			body:           `{"job_title":"SRE","company_name":"Acme"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			id:             "8",
			body:           `{"company_name":"Acme"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "8",
			body: `{"job_title":"SRE","company_name":"Acme"}`,
			setupMocks: func() {
				mockSvc.EXPECT().Update(gomock.Any(), nil, int64(8), gomock.Any()).
					Return(nil, services.ErrJobApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewUpdateJobApplicationHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPut, "/job-applications/"+tt.id, tt.body, map[string]string{"id": tt.id}, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestDeleteJobApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockJobApplicationDeleter(ctrl)

	tests := []struct {
		name           string
		id             string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "deleted",
			id:   "2",
			setupMocks: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64Ptr(1), int64(2)).
					Return(&models.JobApplication{ID: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid id",
			id:             "x",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "2",
			setupMocks: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64Ptr(1), int64(2)).
					Return(nil, services.ErrJobApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewDeleteJobApplicationHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/job-applications/"+tt.id, "", map[string]string{"id": tt.id}, int64Ptr(1)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
