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

type ApplicationRepository interface {
	AddApplication(ctx context.Context, data domain.JobApplication) (id int64, err error)
	GetApplicationByID(ctx context.Context, id int64) (data domain.JobApplication, err error)
	GetApplicationsByJob(ctx context.Context, jobID int64) (data []domain.JobApplication, err error)
	GetApplicationsByApplicant(ctx context.Context, applicantID int64) (data []domain.JobApplication, err error)
	GetApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus) (data []domain.JobApplication, err error)
	HasUserApplied(ctx context.Context, jobID, applicantID int64) (applied bool, err error)
	CountApplicationsByJob(ctx context.Context, jobID int64) (count int64, err error)
	UpdateApplicationReview(ctx context.Context, data domain.JobApplication) (err error)
}

type ApplicationRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) AddApplication(ctx context.Context, data domain.JobApplication) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO job_applications(job_id, applicant_id, resume, cover_letter, status, applied_at, created_at, updated_at)
		VALUES (:job_id, :applicant_id, :resume, :cover_letter, :status, :applied_at, :created_at, :updated_at) RETURNING id`)
	if err != nil {
		log.Error().Err(err).Str("component", "AddApplication").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddApplication").Msg("")
		return 0, uniqueViolationError(err)
	}

	return
}

func (r *ApplicationRepositoryImpl) GetApplicationByID(ctx context.Context, id int64) (data domain.JobApplication, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM job_applications WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetApplicationByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ApplicationRepositoryImpl) GetApplicationsByJob(ctx context.Context, jobID int64) (data []domain.JobApplication, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM job_applications WHERE job_id = $1 AND deleted_at IS NULL ORDER BY id", jobID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetApplicationsByJob").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ApplicationRepositoryImpl) GetApplicationsByApplicant(ctx context.Context, applicantID int64) (data []domain.JobApplication, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM job_applications WHERE applicant_id = $1 AND deleted_at IS NULL ORDER BY id", applicantID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetApplicationsByApplicant").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ApplicationRepositoryImpl) GetApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus) (data []domain.JobApplication, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM job_applications WHERE status = $1 AND deleted_at IS NULL ORDER BY id", status)
	if err != nil {
		log.Error().Err(err).Str("component", "GetApplicationsByStatus").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ApplicationRepositoryImpl) HasUserApplied(ctx context.Context, jobID, applicantID int64) (applied bool, err error) {
	err = r.db.GetContext(ctx, &applied, "SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2 AND deleted_at IS NULL)", jobID, applicantID)
	if err != nil {
		log.Error().Err(err).Str("component", "HasUserApplied").Msg("")
		return false, errs.ErrInternalServer
	}

	return
}

func (r *ApplicationRepositoryImpl) CountApplicationsByJob(ctx context.Context, jobID int64) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM job_applications WHERE job_id = $1 AND deleted_at IS NULL", jobID)
	if err != nil {
		log.Error().Err(err).Str("component", "CountApplicationsByJob").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ApplicationRepositoryImpl) UpdateApplicationReview(ctx context.Context, data domain.JobApplication) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, `UPDATE job_applications SET status=:status, reviewed_by_user_id=:reviewed_by_user_id, reviewed_at=:reviewed_at, review_notes=:review_notes, updated_at=:updated_at
		WHERE id=:id AND deleted_at IS NULL`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateApplicationReview").Msg("")
		return errs.ErrInternalServer
	}

	return
}
