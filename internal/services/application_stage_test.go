package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

func TestApplicationStageService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStages := services.NewMockApplicationStageRepository(ctrl)
	mockJobs := services.NewMockJobApplicationChecker(ctrl)
	svc := services.NewApplicationStageService(mockStages, mockJobs)
	ctx := context.Background()
	in := models.ApplicationStageInput{JobApplicationID: 1, StageType: "onsite"}

	t.Run("created", func(t *testing.T) {
		mockJobs.EXPECT().Exists(gomock.Any(), nil, int64(1)).Return(true, nil)
		mockStages.EXPECT().Create(gomock.Any(), in).Return(&models.ApplicationStage{ID: 2, JobApplicationID: 1, StageType: "onsite"}, nil)

		stage, err := svc.Create(ctx, nil, in)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stage.ID)
	})

	t.Run("unknown job", func(t *testing.T) {
		mockJobs.EXPECT().Exists(gomock.Any(), nil, int64(1)).Return(false, nil)

		_, err := svc.Create(ctx, nil, in)
		assert.ErrorIs(t, err, services.ErrJobApplicationNotFound)
	})

	t.Run("duplicate stage type", func(t *testing.T) {
		mockJobs.EXPECT().Exists(gomock.Any(), nil, int64(1)).Return(true, nil)
		mockStages.EXPECT().Create(gomock.Any(), in).Return(nil, repositories.ErrDuplicate)

		_, err := svc.Create(ctx, nil, in)
		assert.ErrorIs(t, err, services.ErrStageAlreadyExists)
	})
}

func TestApplicationStageService_UpdatePatchDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStages := services.NewMockApplicationStageRepository(ctrl)
	mockJobs := services.NewMockJobApplicationChecker(ctrl)
	svc := services.NewApplicationStageService(mockStages, mockJobs)
	ctx := context.Background()
	owner := int64Ptr(6)

	t.Run("update missing stage", func(t *testing.T) {
		in := models.ApplicationStageInput{JobApplicationID: 1, StageType: "offer"}
		mockJobs.EXPECT().Exists(gomock.Any(), owner, int64(1)).Return(true, nil)
		mockStages.EXPECT().Update(gomock.Any(), owner, int64(9), in).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, owner, 9, in)
		assert.ErrorIs(t, err, services.ErrStageNotFound)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := svc.Patch(ctx, owner, 9, models.ApplicationStagePatch{})
		assert.ErrorIs(t, err, services.ErrNothingToUpdate)
	})

	t.Run("patch moving to unknown job", func(t *testing.T) {
		jobID := int64(77)
		mockJobs.EXPECT().Exists(gomock.Any(), owner, jobID).Return(false, nil)

		_, err := svc.Patch(ctx, owner, 9, models.ApplicationStagePatch{JobApplicationID: &jobID})
		assert.ErrorIs(t, err, services.ErrJobApplicationNotFound)
	})

	t.Run("patch notes", func(t *testing.T) {
		patch := models.ApplicationStagePatch{Notes: strPtr("went well")}
		mockStages.EXPECT().Patch(gomock.Any(), owner, int64(9), patch).
			Return(&models.ApplicationStage{ID: 9, Notes: strPtr("went well")}, nil)

		stage, err := svc.Patch(ctx, owner, 9, patch)
		require.NoError(t, err)
		assert.Equal(t, "went well", *stage.Notes)
	})

	t.Run("delete", func(t *testing.T) {
		mockStages.EXPECT().Delete(gomock.Any(), owner, int64(9)).Return(&models.ApplicationStage{ID: 9}, nil)
		mockStages.EXPECT().Delete(gomock.Any(), owner, int64(9)).Return(nil, sql.ErrNoRows)

		_, err := svc.Delete(ctx, owner, 9)
		assert.NoError(t, err)
		_, err = svc.Delete(ctx, owner, 9)
		assert.ErrorIs(t, err, services.ErrStageNotFound)
	})

	t.Run("list for unknown job", func(t *testing.T) {
		mockJobs.EXPECT().Exists(gomock.Any(), owner, int64(5)).Return(false, nil)

		_, err := svc.ListByJob(ctx, owner, 5)
		assert.ErrorIs(t, err, services.ErrJobApplicationNotFound)
	})

	t.Run("get missing", func(t *testing.T) {
		mockStages.EXPECT().Get(gomock.Any(), owner, int64(3)).Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, owner, 3)
		assert.ErrorIs(t, err, services.ErrStageNotFound)
	})
}
