package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

type jobApplicationMocks struct {
	jobs   *services.MockJobApplicationRepository
	tags   *services.MockTagFinder
	links  *services.MockTagLinker
	cache  *services.MockTagCacheInvalidator
	events *services.MockEventPublisher
}

// deferredHooks collects commit hooks so tests can run them explicitly.
type deferredHooks struct {
	fns []func()
}

func (d *deferredHooks) hook(_ context.Context, fn func()) {
	d.fns = append(d.fns, fn)
}

func (d *deferredHooks) commit() {
	for _, fn := range d.fns {
		fn()
	}
	d.fns = nil
}

func newJobApplicationService(ctrl *gomock.Controller) (*services.JobApplicationService, jobApplicationMocks, *deferredHooks) {
	m := jobApplicationMocks{
		jobs:   services.NewMockJobApplicationRepository(ctrl),
		tags:   services.NewMockTagFinder(ctrl),
		links:  services.NewMockTagLinker(ctrl),
		cache:  services.NewMockTagCacheInvalidator(ctrl),
		events: services.NewMockEventPublisher(ctrl),
	}
	hooks := &deferredHooks{}
	svc := services.NewJobApplicationService(m.jobs, m.tags, m.links, m.cache, m.events, hooks.hook)
	return svc, m, hooks
}

func TestJobApplicationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, hooks := newJobApplicationService(ctrl)
	ctx := context.Background()

	in := models.JobApplicationInput{
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme",
		Tags:        []string{"remote", " urgent ", "remote", ""},
	}
	stored := &models.JobApplication{
		ID:                10,
		JobTitle:          "Backend Engineer",
		CompanyName:       "Acme",
		ApplicationStatus: models.StatusWishlist,
		Tags: []models.JobApplicationTag{
			{ID: 1, Name: "remote", ColorClass: models.DefaultTagColor},
			{ID: 2, Name: "urgent", ColorClass: models.DefaultTagColor},
		},
	}

	gomock.InOrder(
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got models.JobApplicationInput) (int64, error) {
				assert.Nil(t, got.UserID)
				assert.Equal(t, models.StatusWishlist, got.ApplicationStatus)
				return 10, nil
			}),
		m.tags.EXPECT().FindOrCreate(gomock.Any(), nil, "remote", models.DefaultTagColor).Return(&models.Tag{ID: 1, Name: "remote"}, nil),
		m.links.EXPECT().Link(gomock.Any(), int64(10), int64(1)).Return(nil),
		m.tags.EXPECT().FindOrCreate(gomock.Any(), nil, "urgent", models.DefaultTagColor).Return(&models.Tag{ID: 2, Name: "urgent"}, nil),
		m.links.EXPECT().Link(gomock.Any(), int64(10), int64(2)).Return(nil),
		m.jobs.EXPECT().Get(gomock.Any(), nil, int64(10)).Return(stored, nil),
	)

	app, err := svc.Create(ctx, nil, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"remote", "urgent"}, app.TagNames())

	// nothing is announced before commit
	m.cache.EXPECT().Invalidate(gomock.Any(), nil).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event models.JobApplicationEvent) {
			assert.Equal(t, models.OperationCreated, event.Operation)
			assert.Equal(t, int64(10), event.JobApplicationID)
			assert.Equal(t, []string{"remote", "urgent"}, event.Tags)
			assert.NotEmpty(t, event.EventID)
		})
	hooks.commit()
}

func TestJobApplicationService_CreateScopesToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, hooks := newJobApplicationService(ctrl)
	owner := int64Ptr(5)

	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.JobApplicationInput) (int64, error) {
			assert.Equal(t, owner, got.UserID)
			assert.Equal(t, models.StatusApplied, got.ApplicationStatus)
			return 11, nil
		})
	m.tags.EXPECT().FindOrCreate(gomock.Any(), owner, "remote", models.DefaultTagColor).Return(&models.Tag{ID: 4, UserID: owner}, nil)
	m.links.EXPECT().Link(gomock.Any(), int64(11), int64(4)).Return(nil)
	m.jobs.EXPECT().Get(gomock.Any(), owner, int64(11)).Return(&models.JobApplication{ID: 11, UserID: owner}, nil)

	_, err := svc.Create(context.Background(), owner, models.JobApplicationInput{
		JobTitle: "Dev", CompanyName: "Acme", ApplicationStatus: models.StatusApplied, Tags: []string{"remote"},
	})
	require.NoError(t, err)

	m.cache.EXPECT().Invalidate(gomock.Any(), nil).Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), owner).Return(errors.New("redis down"))
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
	hooks.commit()
}

func TestJobApplicationService_CreateForDeletedOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, hooks := newJobApplicationService(ctrl)

	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repositories.ErrForeignKey)

	_, err := svc.Create(context.Background(), int64Ptr(99), models.JobApplicationInput{
		JobTitle: "Dev", CompanyName: "Acme", Tags: []string{"remote"},
	})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.Empty(t, hooks.fns)
}

func TestJobApplicationService_CreateTagFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, hooks := newJobApplicationService(ctrl)

	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil)
	m.tags.EXPECT().FindOrCreate(gomock.Any(), nil, "remote", models.DefaultTagColor).Return(nil, errors.New("db error"))

	_, err := svc.Create(context.Background(), nil, models.JobApplicationInput{
		JobTitle: "Dev", CompanyName: "Acme", Tags: []string{"remote"},
	})
	assert.EqualError(t, err, "db error")
	assert.Empty(t, hooks.fns)
}

func TestJobApplicationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, hooks := newJobApplicationService(ctrl)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		m.jobs.EXPECT().Update(gomock.Any(), nil, int64(99), gomock.Any()).Return(sql.ErrNoRows)

		_, err := svc.Update(ctx, nil, 99, models.JobApplicationInput{JobTitle: "x", CompanyName: "y"})
		assert.ErrorIs(t, err, services.ErrJobApplicationNotFound)
		assert.Empty(t, hooks.fns)
	})

	t.Run("replaces tag set", func(t *testing.T) {
		gomock.InOrder(
			m.jobs.EXPECT().Update(gomock.Any(), nil, int64(10), gomock.Any()).Return(nil),
			m.links.EXPECT().UnlinkAll(gomock.Any(), int64(10)).Return(nil),
			m.tags.EXPECT().FindOrCreate(gomock.Any(), nil, "remote", models.DefaultTagColor).Return(&models.Tag{ID: 1, Name: "remote"}, nil),
			m.links.EXPECT().Link(gomock.Any(), int64(10), int64(1)).Return(nil),
			m.jobs.EXPECT().Get(gomock.Any(), nil, int64(10)).Return(&models.JobApplication{
				ID:   10,
				Tags: []models.JobApplicationTag{{ID: 1, Name: "remote"}},
			}, nil),
		)

		app, err := svc.Update(ctx, nil, 10, models.JobApplicationInput{
			JobTitle: "x", CompanyName: "y", ApplicationStatus: models.StatusOffer, Tags: []string{"remote"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"remote"}, app.TagNames())

		m.cache.EXPECT().Invalidate(gomock.Any(), nil).Return(nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event models.JobApplicationEvent) {
				assert.Equal(t, models.OperationUpdated, event.Operation)
			})
		hooks.commit()
	})

	t.Run("clearing tags", func(t *testing.T) {
		m.jobs.EXPECT().Update(gomock.Any(), nil, int64(10), gomock.Any()).Return(nil)
		m.links.EXPECT().UnlinkAll(gomock.Any(), int64(10)).Return(nil)
		m.jobs.EXPECT().Get(gomock.Any(), nil, int64(10)).Return(&models.JobApplication{ID: 10, Tags: []models.JobApplicationTag{}}, nil)

		app, err := svc.Update(ctx, nil, 10, models.JobApplicationInput{JobTitle: "x", CompanyName: "y"})
		require.NoError(t, err)
		assert.Empty(t, app.Tags)

		m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
		hooks.commit()
	})
}

func TestJobApplicationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, hooks := newJobApplicationService(ctrl)
	ctx := context.Background()
	existing := &models.JobApplication{ID: 3, ApplicationStatus: models.StatusRejected, Tags: []models.JobApplicationTag{{Name: "remote"}}}

	t.Run("returns deleted record", func(t *testing.T) {
		m.jobs.EXPECT().Get(gomock.Any(), nil, int64(3)).Return(existing, nil)
		m.jobs.EXPECT().Delete(gomock.Any(), nil, int64(3)).Return(nil)

		app, err := svc.Delete(ctx, nil, 3)
		require.NoError(t, err)
		assert.Equal(t, existing, app)

		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event models.JobApplicationEvent) {
				assert.Equal(t, models.OperationDeleted, event.Operation)
				assert.Equal(t, []string{"remote"}, event.Tags)
			})
		hooks.commit()
	})

	t.Run("unknown id", func(t *testing.T) {
		m.jobs.EXPECT().Get(gomock.Any(), nil, int64(4)).Return(nil, sql.ErrNoRows)

		_, err := svc.Delete(ctx, nil, 4)
		assert.ErrorIs(t, err, services.ErrJobApplicationNotFound)
	})
}

func TestJobApplicationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m, _ := newJobApplicationService(ctrl)

	m.jobs.EXPECT().Get(gomock.Any(), int64Ptr(1), int64(2)).Return(nil, sql.ErrNoRows)
	m.jobs.EXPECT().Get(gomock.Any(), nil, int64(3)).Return(nil, errors.New("db error"))

	_, err := svc.Get(context.Background(), int64Ptr(1), 2)
	assert.ErrorIs(t, err, services.ErrJobApplicationNotFound)

	_, err = svc.Get(context.Background(), nil, 3)
	assert.EqualError(t, err, "db error")
}

func TestJobApplicationService_WithoutOptionalDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := services.NewMockJobApplicationRepository(ctrl)
	svc := services.NewJobApplicationService(jobs, services.NewMockTagFinder(ctrl), services.NewMockTagLinker(ctrl), nil, nil, nil)

	jobs.EXPECT().Get(gomock.Any(), nil, int64(1)).Return(&models.JobApplication{ID: 1}, nil)
	jobs.EXPECT().Delete(gomock.Any(), nil, int64(1)).Return(nil)

	_, err := svc.Delete(context.Background(), nil, 1)
	assert.NoError(t, err)
}

func TestNormalizeTagNames(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"trims and drops blanks", []string{" remote ", "", "   "}, []string{"remote"}},
		{"dedupes keeping order", []string{"urgent", "remote", "urgent", " remote"}, []string{"urgent", "remote"}},
		{"case sensitive", []string{"Remote", "remote"}, []string{"Remote", "remote"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeTagNames(tt.in))
		})
	}
}
