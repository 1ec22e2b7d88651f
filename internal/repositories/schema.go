package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
)

// schema creates every table idempotently. Unique (user_id, name) treats NULL
// owners as equal so the shared tag namespace stays unique (PostgreSQL 15+).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		username VARCHAR(100),
		password_hash VARCHAR(255),
		provider VARCHAR(20) NOT NULL DEFAULT 'local'
			CHECK (provider IN ('local', 'google', 'github')),
		provider_id VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (provider <> 'local' OR password_hash IS NOT NULL),
		CHECK (provider = 'local' OR provider_id IS NOT NULL)
	)`,
	`CREATE TABLE IF NOT EXISTS job_applications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
		job_title VARCHAR(255) NOT NULL,
		company_name VARCHAR(255) NOT NULL,
		location VARCHAR(255),
		application_status VARCHAR(20) NOT NULL DEFAULT 'wishlist'
			CHECK (application_status IN ('wishlist', 'applied', 'interviewing', 'offer', 'rejected')),
		job_posting_url TEXT,
		applied_date DATE,
		notes TEXT,
		is_demo BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS job_applications_user_id_idx ON job_applications (user_id)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(64) NOT NULL,
		color_class VARCHAR(100) NOT NULL DEFAULT 'bg-blue-100 text-blue-800',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT tags_user_id_name_key UNIQUE NULLS NOT DISTINCT (user_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS job_application_tags (
		id BIGSERIAL PRIMARY KEY,
		job_application_id BIGINT NOT NULL REFERENCES job_applications(id) ON DELETE CASCADE,
		tag_id BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT job_application_tags_pair_key UNIQUE (job_application_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS application_stages (
		id BIGSERIAL PRIMARY KEY,
		job_application_id BIGINT NOT NULL REFERENCES job_applications(id) ON DELETE CASCADE,
		stage_type VARCHAR(100) NOT NULL,
		stage_date DATE,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT application_stages_type_key UNIQUE (job_application_id, stage_type)
	)`,
}

// Migrate creates the tables required by the repositories.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logQuery(stmt, nil, nil, err)
			return err
		}
	}
	logger.Log.Infow("database schema is up to date", "statements", len(schema))
	return nil
}
