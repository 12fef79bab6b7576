package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type JobRepository interface {
	AddJob(ctx context.Context, data domain.Job) (id int64, err error)
	GetJobByID(ctx context.Context, id int64) (data domain.Job, err error)
	GetJobs(ctx context.Context) (data []domain.Job, err error)
	GetJobsByStatus(ctx context.Context, status domain.JobStatus) (data []domain.Job, err error)
	GetActiveJobs(ctx context.Context, now int64) (data []domain.Job, err error)
	UpdateJob(ctx context.Context, data domain.Job) (err error)
	UpdateJobStatus(ctx context.Context, id int64, status domain.JobStatus) (err error)
	SoftDeleteJob(ctx context.Context, id int64) (err error)
}

type JobRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewJobRepository(db *sqlx.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) AddJob(ctx context.Context, data domain.Job) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO jobs(title, description, requirements, location, salary, status, application_deadline, max_applications, created_by, created_at, updated_at)
		VALUES (:title, :description, :requirements, :location, :salary, :status, :application_deadline, :max_applications, :created_by, :created_at, :updated_at) RETURNING id`)
	if err != nil {
		log.Error().Err(err).Str("component", "AddJob").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddJob").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *JobRepositoryImpl) GetJobByID(ctx context.Context, id int64) (data domain.Job, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM jobs WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetJobByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *JobRepositoryImpl) GetJobs(ctx context.Context) (data []domain.Job, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM jobs WHERE deleted_at IS NULL ORDER BY id")
	if err != nil {
		log.Error().Err(err).Str("component", "GetJobs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *JobRepositoryImpl) GetJobsByStatus(ctx context.Context, status domain.JobStatus) (data []domain.Job, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM jobs WHERE status = $1 AND deleted_at IS NULL ORDER BY id", status)
	if err != nil {
		log.Error().Err(err).Str("component", "GetJobsByStatus").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *JobRepositoryImpl) GetActiveJobs(ctx context.Context, now int64) (data []domain.Job, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM jobs WHERE status = $1 AND application_deadline >= $2 AND deleted_at IS NULL ORDER BY id", domain.JobStatusActive, now)
	if err != nil {
		log.Error().Err(err).Str("component", "GetActiveJobs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *JobRepositoryImpl) UpdateJob(ctx context.Context, data domain.Job) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, `UPDATE jobs SET title=:title, description=:description, requirements=:requirements, location=:location, salary=:salary, application_deadline=:application_deadline, max_applications=:max_applications, updated_by=:updated_by, updated_at=:updated_at
		WHERE id=:id AND deleted_at IS NULL`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateJob").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *JobRepositoryImpl) UpdateJobStatus(ctx context.Context, id int64, status domain.JobStatus) (err error) {
	timestamp := time.Now().UnixMilli()

	_, err = r.db.ExecContext(ctx, "UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL", status, timestamp, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateJobStatus").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *JobRepositoryImpl) SoftDeleteJob(ctx context.Context, id int64) (err error) {
	timestamp := time.Now().UnixMilli()

	_, err = r.db.ExecContext(ctx, "UPDATE jobs SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL", timestamp, id)
	if err != nil {
		log.Error().Err(err).Str("component", "SoftDeleteJob").Msg("")
		return errs.ErrInternalServer
	}

	return
}
