package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

const userColumns = `id, email, username, password_hash, provider, provider_id, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	base
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{base{db: db}}
}

// GetByEmail returns the user registered with email, or sql.ErrNoRows.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, email)
	logQuery(query, []any{email}, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or sql.ErrNoRows.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	base
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{base{db: db}}
}

// Create inserts the user. A taken email yields ErrDuplicate.
func (r *UserWriteRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, provider, provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	var created models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query,
		user.Email, user.Username, user.PasswordHash, user.Provider, user.ProviderID)
	// password hash is never logged
	logQuery(query, []any{user.Email, user.Username, user.Provider, user.ProviderID}, created.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch. A missing user yields
// sql.ErrNoRows, a taken email ErrDuplicate.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
		    username = COALESCE($3, username),
		    password_hash = COALESCE($4, password_hash),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var updated models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, id, patch.Email, patch.Username, patch.PasswordHash)
	logQuery(query, []any{id, patch.Email, patch.Username}, updated.ID, err)
	if err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

// Delete removes the user and, through cascading keys, everything it owns.
// It reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
