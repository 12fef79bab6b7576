package posgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Statements are idempotent so Apply can run on every startup. The partial
// unique indexes are the authoritative uniqueness guard; service-level
// existence checks are a fast path only.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		external_id TEXT NOT NULL,
		personal_number TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		hashed_password TEXT NOT NULL,
		role TEXT NOT NULL,
		personal_number_verified BOOLEAN NOT NULL DEFAULT FALSE,
		personal_number_verified_at BIGINT,
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		email_verified_at BIGINT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL,
		deleted_at BIGINT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx
		ON users (email) WHERE deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_personal_number_unique_idx
		ON users (personal_number) WHERE deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_phone_number_unique_idx
		ON users (phone_number) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT NOT NULL,
		location TEXT NOT NULL,
		salary NUMERIC,
		status TEXT NOT NULL,
		application_deadline BIGINT NOT NULL,
		max_applications BIGINT,
		created_by BIGINT NOT NULL REFERENCES users (id),
		updated_by TEXT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL,
		deleted_at BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS job_applications (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL REFERENCES jobs (id),
		applicant_id BIGINT NOT NULL REFERENCES users (id),
		resume TEXT NOT NULL,
		cover_letter TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		applied_at BIGINT NOT NULL,
		reviewed_by_user_id BIGINT REFERENCES users (id),
		reviewed_at BIGINT,
		review_notes TEXT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL,
		deleted_at BIGINT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS job_applications_job_applicant_unique_idx
		ON job_applications (job_id, applicant_id) WHERE deleted_at IS NULL`,
}

func Apply(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Error().Err(err).Str("component", "Apply").Msg("")
			return err
		}
	}

	return nil
}
