package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

// ApplicationTagRepository persists job application ↔ tag associations.
// Owner scoping is applied through the parent job application.
type ApplicationTagRepository struct {
	base
}

func NewApplicationTagRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationTagRepository {
	return &ApplicationTagRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts one association. An existing pair yields ErrDuplicate,
// a missing job application or tag ErrForeignKey.
func (r *ApplicationTagRepository) Create(ctx context.Context, jobApplicationID, tagID int64) (*models.ApplicationTag, error) {
	const query = `
		INSERT INTO job_application_tags (job_application_id, tag_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, job_application_id, tag_id, created_at
	`

	var link models.ApplicationTag
	err := sqlx.GetContext(ctx, r.executor(ctx), &link, query, jobApplicationID, tagID)
	logQuery(query, []any{jobApplicationID, tagID}, link.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

// Link associates the pair unless it already is.
func (r *ApplicationTagRepository) Link(ctx context.Context, jobApplicationID, tagID int64) error {
	const query = `
		INSERT INTO job_application_tags (job_application_id, tag_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (job_application_id, tag_id) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, jobApplicationID, tagID)
	logQuery(query, []any{jobApplicationID, tagID}, nil, err)
	return translate(err)
}

// UnlinkAll removes every association of the job application.
func (r *ApplicationTagRepository) UnlinkAll(ctx context.Context, jobApplicationID int64) error {
	const query = `DELETE FROM job_application_tags WHERE job_application_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, jobApplicationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{jobApplicationID}, rowsAffected, err)
	return err
}

// ListByJob returns the associations of a job application joined with their tags.
func (r *ApplicationTagRepository) ListByJob(ctx context.Context, ownerID *int64, jobApplicationID int64) ([]models.ApplicationTagDetail, error) {
	const query = `
		SELECT jat.id, jat.job_application_id, jat.tag_id, t.name, t.color_class
		FROM job_application_tags jat
		JOIN tags t ON t.id = jat.tag_id
		JOIN job_applications ja ON ja.id = jat.job_application_id
		WHERE jat.job_application_id = $1
		  AND ($2::BIGINT IS NULL OR ja.user_id = $2)
		ORDER BY t.name ASC
	`

	links := []models.ApplicationTagDetail{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &links, query, jobApplicationID, ownerID)
	logQuery(query, []any{jobApplicationID, ownerID}, len(links), err)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Delete removes the association with the given id and returns it,
// or sql.ErrNoRows.
func (r *ApplicationTagRepository) Delete(ctx context.Context, ownerID *int64, id int64) (*models.ApplicationTag, error) {
	const query = `
		DELETE FROM job_application_tags jat
		USING job_applications ja
		WHERE jat.id = $1
		  AND ja.id = jat.job_application_id
		  AND ($2::BIGINT IS NULL OR ja.user_id = $2)
		RETURNING jat.id, jat.job_application_id, jat.tag_id, jat.created_at
	`

	var link models.ApplicationTag
	err := sqlx.GetContext(ctx, r.executor(ctx), &link, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, link.ID, err)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteByPair removes the association of the (job application, tag) pair
// and returns it, or sql.ErrNoRows.
func (r *ApplicationTagRepository) DeleteByPair(ctx context.Context, ownerID *int64, jobApplicationID, tagID int64) (*models.ApplicationTag, error) {
	const query = `
		DELETE FROM job_application_tags jat
		USING job_applications ja
		WHERE jat.job_application_id = $1
		  AND jat.tag_id = $2
		  AND ja.id = jat.job_application_id
		  AND ($3::BIGINT IS NULL OR ja.user_id = $3)
		RETURNING jat.id, jat.job_application_id, jat.tag_id, jat.created_at
	`

	var link models.ApplicationTag
	err := sqlx.GetContext(ctx, r.executor(ctx), &link, query, jobApplicationID, tagID, ownerID)
	logQuery(query, []any{jobApplicationID, tagID, ownerID}, link.ID, err)
	if err != nil {
		return nil, err
	}
	return &link, nil
}
