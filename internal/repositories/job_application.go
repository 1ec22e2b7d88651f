package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

const jobApplicationColumns = `ja.id, ja.user_id, ja.job_title, ja.company_name, ja.location,
	ja.application_status, ja.job_posting_url, ja.applied_date, ja.notes, ja.is_demo,
	ja.created_at, ja.updated_at`

// JobApplicationRepository persists job applications. Every method taking an
// ownerID restricts itself to that owner's rows when ownerID is not nil.
type JobApplicationRepository struct {
	base
}

func NewJobApplicationRepository(db *sqlx.DB, txGetter TxGetter) *JobApplicationRepository {
	return &JobApplicationRepository{base{db: db, txGetter: txGetter}}
}

// List returns the matching applications with their tags, most recently
// updated first and newest first among never updated ones.
func (r *JobApplicationRepository) List(ctx context.Context, filter models.JobApplicationFilter) ([]models.JobApplication, error) {
	const query = `
		SELECT ` + jobApplicationColumns + `
		FROM job_applications ja
		WHERE ($1::BIGINT IS NULL OR ja.user_id = $1)
		  AND ($2::TEXT = ''
		       OR ja.job_title ILIKE $2
		       OR ja.company_name ILIKE $2
		       OR COALESCE(ja.location, '') ILIKE $2
		       OR COALESCE(ja.notes, '') ILIKE $2)
		  AND ($3::TEXT = '' OR ja.application_status = $3)
		  AND ($4::TEXT = '' OR EXISTS (
		       SELECT 1 FROM job_application_tags jat
		       JOIN tags t ON t.id = jat.tag_id
		       WHERE jat.job_application_id = ja.id AND t.name = $4))
		  AND ($5::BOOLEAN OR NOT ja.is_demo)
		ORDER BY ja.updated_at DESC NULLS LAST, ja.id DESC
	`

	pattern := ""
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern = "%" + likeEscaper.Replace(q) + "%"
	}
	args := []any{filter.UserID, pattern, filter.Status, filter.Tag, filter.IncludeDemo}

	apps := []models.JobApplication{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &apps, query, args...)
	logQuery(query, args, len(apps), err)
	if err != nil {
		return nil, err
	}

	if err := r.attachTags(ctx, apps); err != nil {
		return nil, err
	}
	return apps, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Get returns one application with its tags, or sql.ErrNoRows.
func (r *JobApplicationRepository) Get(ctx context.Context, ownerID *int64, id int64) (*models.JobApplication, error) {
	const query = `
		SELECT ` + jobApplicationColumns + `
		FROM job_applications ja
		WHERE ja.id = $1 AND ($2::BIGINT IS NULL OR ja.user_id = $2)
	`

	var app models.JobApplication
	err := sqlx.GetContext(ctx, r.executor(ctx), &app, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, app.ID, err)
	if err != nil {
		return nil, err
	}

	apps := []models.JobApplication{app}
	if err := r.attachTags(ctx, apps); err != nil {
		return nil, err
	}
	return &apps[0], nil
}

// attachTags loads the tags of all given applications with one query.
func (r *JobApplicationRepository) attachTags(ctx context.Context, apps []models.JobApplication) error {
	if len(apps) == 0 {
		return nil
	}

	ids := make([]int64, len(apps))
	for i, app := range apps {
		ids[i] = app.ID
		apps[i].Tags = []models.JobApplicationTag{}
	}

	query, args, err := sqlx.In(`
		SELECT jat.job_application_id, t.id, t.name, t.color_class
		FROM job_application_tags jat
		JOIN tags t ON t.id = jat.tag_id
		WHERE jat.job_application_id IN (?)
		ORDER BY t.name
	`, ids)
	if err != nil {
		return err
	}

	exec := r.executor(ctx)
	query = exec.Rebind(query)

	var tags []models.JobApplicationTag
	err = sqlx.SelectContext(ctx, exec, &tags, query, args...)
	logQuery(query, args, len(tags), err)
	if err != nil {
		return err
	}

	index := make(map[int64]int, len(apps))
	for i, app := range apps {
		index[app.ID] = i
	}
	for _, tag := range tags {
		if i, ok := index[tag.JobApplicationID]; ok {
			apps[i].Tags = append(apps[i].Tags, tag)
		}
	}
	return nil
}

// Create inserts the application row and returns its id. Tags are linked separately.
func (r *JobApplicationRepository) Create(ctx context.Context, in models.JobApplicationInput) (int64, error) {
	const query = `
		INSERT INTO job_applications
			(user_id, job_title, company_name, location, application_status,
			 job_posting_url, applied_date, notes, is_demo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id
	`
	args := []any{in.UserID, in.JobTitle, in.CompanyName, in.Location, in.ApplicationStatus,
		in.JobPostingURL, in.AppliedDate, in.Notes, in.IsDemo}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)
	logQuery(query, args, id, err)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// Update overwrites every scalar field and stamps updated_at.
// It returns sql.ErrNoRows when no application matched.
func (r *JobApplicationRepository) Update(ctx context.Context, ownerID *int64, id int64, in models.JobApplicationInput) error {
	const query = `
		UPDATE job_applications
		SET job_title = $3,
		    company_name = $4,
		    location = $5,
		    application_status = $6,
		    job_posting_url = $7,
		    applied_date = $8,
		    notes = $9,
		    is_demo = $10,
		    updated_at = NOW()
		WHERE id = $1 AND ($2::BIGINT IS NULL OR user_id = $2)
	`
	args := []any{id, ownerID, in.JobTitle, in.CompanyName, in.Location, in.ApplicationStatus,
		in.JobPostingURL, in.AppliedDate, in.Notes, in.IsDemo}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return translate(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the application; associations and stages cascade.
// It returns sql.ErrNoRows when no application matched.
func (r *JobApplicationRepository) Delete(ctx context.Context, ownerID *int64, id int64) error {
	const query = `DELETE FROM job_applications WHERE id = $1 AND ($2::BIGINT IS NULL OR user_id = $2)`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, ownerID}, rowsAffected, err)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Exists reports whether the application exists within the owner's scope.
func (r *JobApplicationRepository) Exists(ctx context.Context, ownerID *int64, id int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM job_applications
			WHERE id = $1 AND ($2::BIGINT IS NULL OR user_id = $2)
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, exists, err)
	return exists, err
}
