package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

const tagColumns = `id, user_id, name, color_class, created_at`

// TagRepository persists tags. A nil ownerID addresses the shared namespace
// on writes and means "unscoped" on reads.
type TagRepository struct {
	base
}

func NewTagRepository(db *sqlx.DB, txGetter TxGetter) *TagRepository {
	return &TagRepository{base{db: db, txGetter: txGetter}}
}

// List returns the owner's tags sorted by name.
func (r *TagRepository) List(ctx context.Context, ownerID *int64) ([]models.Tag, error) {
	const query = `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE ($1::BIGINT IS NULL OR user_id = $1)
		ORDER BY name ASC, id ASC
	`

	tags := []models.Tag{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &tags, query, ownerID)
	logQuery(query, []any{ownerID}, len(tags), err)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Get returns one tag, or sql.ErrNoRows.
func (r *TagRepository) Get(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error) {
	const query = `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE id = $1 AND ($2::BIGINT IS NULL OR user_id = $2)
	`

	var tag models.Tag
	err := sqlx.GetContext(ctx, r.executor(ctx), &tag, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, tag.ID, err)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create inserts a tag. An existing (owner, name) pair yields ErrDuplicate.
func (r *TagRepository) Create(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error) {
	const query = `
		INSERT INTO tags (user_id, name, color_class, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + tagColumns

	var tag models.Tag
	err := sqlx.GetContext(ctx, r.executor(ctx), &tag, query, ownerID, name, colorClass)
	logQuery(query, []any{ownerID, name, colorClass}, tag.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

// FindOrCreate returns the owner's tag called name, creating it with
// colorClass when absent.
func (r *TagRepository) FindOrCreate(ctx context.Context, ownerID *int64, name, colorClass string) (*models.Tag, error) {
	const insert = `
		INSERT INTO tags (user_id, name, color_class, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT DO NOTHING
		RETURNING ` + tagColumns

	exec := r.executor(ctx)

	var tag models.Tag
	err := sqlx.GetContext(ctx, exec, &tag, insert, ownerID, name, colorClass)
	logQuery(insert, []any{ownerID, name, colorClass}, tag.ID, err)
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, translate(err)
	}

	const query = `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE user_id IS NOT DISTINCT FROM $1 AND name = $2
	`
	err = sqlx.GetContext(ctx, exec, &tag, query, ownerID, name)
	logQuery(query, []any{ownerID, name}, tag.ID, err)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update renames and/or recolors a tag. It returns sql.ErrNoRows when no tag
// matched and ErrDuplicate when the new name is taken.
func (r *TagRepository) Update(ctx context.Context, ownerID *int64, id int64, patch models.TagPatch) (*models.Tag, error) {
	const query = `
		UPDATE tags
		SET name = COALESCE($3, name),
		    color_class = COALESCE($4, color_class)
		WHERE id = $1 AND ($2::BIGINT IS NULL OR user_id = $2)
		RETURNING ` + tagColumns

	var tag models.Tag
	err := sqlx.GetContext(ctx, r.executor(ctx), &tag, query, id, ownerID, patch.Name, patch.ColorClass)
	logQuery(query, []any{id, ownerID, patch.Name, patch.ColorClass}, tag.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

// Delete removes a tag and returns it; associations cascade.
// It returns sql.ErrNoRows when no tag matched.
func (r *TagRepository) Delete(ctx context.Context, ownerID *int64, id int64) (*models.Tag, error) {
	const query = `
		DELETE FROM tags
		WHERE id = $1 AND ($2::BIGINT IS NULL OR user_id = $2)
		RETURNING ` + tagColumns

	var tag models.Tag
	err := sqlx.GetContext(ctx, r.executor(ctx), &tag, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, tag.ID, err)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
