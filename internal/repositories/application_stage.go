package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

const stageColumns = `s.id, s.job_application_id, s.stage_type, s.stage_date, s.notes, s.created_at`

// ApplicationStageRepository persists pipeline stages. Owner scoping is
// applied through the parent job application.
type ApplicationStageRepository struct {
	base
}

func NewApplicationStageRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationStageRepository {
	return &ApplicationStageRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a stage. A stage type already used by the application
// yields ErrDuplicate, a missing application ErrForeignKey.
func (r *ApplicationStageRepository) Create(ctx context.Context, in models.ApplicationStageInput) (*models.ApplicationStage, error) {
	const query = `
		INSERT INTO application_stages AS s (job_application_id, stage_type, stage_date, notes, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + stageColumns
	args := []any{in.JobApplicationID, in.StageType, in.StageDate, in.Notes}

	var stage models.ApplicationStage
	err := sqlx.GetContext(ctx, r.executor(ctx), &stage, query, args...)
	logQuery(query, args, stage.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &stage, nil
}

// Get returns one stage, or sql.ErrNoRows.
func (r *ApplicationStageRepository) Get(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error) {
	const query = `
		SELECT ` + stageColumns + `
		FROM application_stages s
		JOIN job_applications ja ON ja.id = s.job_application_id
		WHERE s.id = $1 AND ($2::BIGINT IS NULL OR ja.user_id = $2)
	`

	var stage models.ApplicationStage
	err := sqlx.GetContext(ctx, r.executor(ctx), &stage, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, stage.ID, err)
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// ListByJob returns the stage history of a job application in date order.
func (r *ApplicationStageRepository) ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationStage, error) {
	const query = `
		SELECT ` + stageColumns + `
		FROM application_stages s
		JOIN job_applications ja ON ja.id = s.job_application_id
		WHERE s.job_application_id = $1 AND ($2::BIGINT IS NULL OR ja.user_id = $2)
		ORDER BY s.stage_date ASC NULLS LAST, s.id ASC
	`

	stages := []models.ApplicationStage{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &stages, query, jobApplicationID, ownerID)
	logQuery(query, []any{jobApplicationID, ownerID}, len(stages), err)
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// Update overwrites every field of a stage. It returns sql.ErrNoRows when no
// stage matched and ErrDuplicate when the stage type is taken.
func (r *ApplicationStageRepository) Update(ctx context.Context, ownerID *int64, id int64, in models.ApplicationStageInput) (*models.ApplicationStage, error) {
	const query = `
		UPDATE application_stages s
		SET job_application_id = $3,
		    stage_type = $4,
		    stage_date = $5,
		    notes = $6
		FROM job_applications ja
		WHERE s.id = $1
		  AND ja.id = s.job_application_id
		  AND ($2::BIGINT IS NULL OR ja.user_id = $2)
		RETURNING ` + stageColumns
	args := []any{id, ownerID, in.JobApplicationID, in.StageType, in.StageDate, in.Notes}

	var stage models.ApplicationStage
	err := sqlx.GetContext(ctx, r.executor(ctx), &stage, query, args...)
	logQuery(query, args, stage.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &stage, nil
}

// Patch changes the non-nil fields of a stage, with the same errors as Update.
func (r *ApplicationStageRepository) Patch(ctx context.Context, ownerID *int64, id int64, patch models.ApplicationStagePatch) (*models.ApplicationStage, error) {
	const query = `
		UPDATE application_stages s
		SET job_application_id = COALESCE($3, s.job_application_id),
		    stage_type = COALESCE($4, s.stage_type),
		    stage_date = COALESCE($5, s.stage_date),
		    notes = COALESCE($6, s.notes)
		FROM job_applications ja
		WHERE s.id = $1
		  AND ja.id = s.job_application_id
		  AND ($2::BIGINT IS NULL OR ja.user_id = $2)
		RETURNING ` + stageColumns
	args := []any{id, ownerID, patch.JobApplicationID, patch.StageType, patch.StageDate, patch.Notes}

	var stage models.ApplicationStage
	err := sqlx.GetContext(ctx, r.executor(ctx), &stage, query, args...)
	logQuery(query, args, stage.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &stage, nil
}

// Delete removes a stage and returns it, or sql.ErrNoRows.
func (r *ApplicationStageRepository) Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationStage, error) {
	const query = `
		DELETE FROM application_stages s
		USING job_applications ja
		WHERE s.id = $1
		  AND ja.id = s.job_application_id
		  AND ($2::BIGINT IS NULL OR ja.user_id = $2)
		RETURNING ` + stageColumns

	var stage models.ApplicationStage
	err := sqlx.GetContext(ctx, r.executor(ctx), &stage, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, stage.ID, err)
	if err != nil {
		return nil, err
	}
	return &stage, nil
}
