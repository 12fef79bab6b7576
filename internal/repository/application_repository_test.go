package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddApplication(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO job_applications")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := repo.AddApplication(context.Background(), domain.JobApplication{
		JobID:       9,
		ApplicantID: 1,
		Resume:      "resume.pdf",
		Status:      domain.ApplicationStatusPending,
		AppliedAt:   time.Now().UnixMilli(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddApplicationDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO job_applications")).
		ExpectQuery().
		WillReturnError(&pq.Error{Code: "23505", Constraint: "job_applications_job_applicant_unique_idx"})

	_, err := repo.AddApplication(context.Background(), domain.JobApplication{JobID: 9, ApplicantID: 1})
	assert.ErrorIs(t, err, errs.ErrDuplicateApplication)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApplicationByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM job_applications WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	application, err := repo.GetApplicationByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, application.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUserApplied(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2 AND deleted_at IS NULL)")).
		WithArgs(int64(9), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	applied, err := repo.HasUserApplied(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.True(t, applied)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountApplicationsByJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(id) FROM job_applications WHERE job_id = $1 AND deleted_at IS NULL")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountApplicationsByJob(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationReview(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE job_applications SET status=")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	reviewerID := int64(2)
	reviewedAt := time.Now().UnixMilli()
	err := repo.UpdateApplicationReview(context.Background(), domain.JobApplication{
		ID:               4,
		Status:           domain.ApplicationStatusApproved,
		ReviewedByUserID: &reviewerID,
		ReviewedAt:       &reviewedAt,
	})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApplicationsByStatusQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewApplicationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "job_id", "applicant_id", "status"}).
		AddRow(int64(4), int64(9), int64(1), "pending")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM job_applications WHERE status = $1 AND deleted_at IS NULL ORDER BY id")).
		WithArgs(domain.ApplicationStatusPending).
		WillReturnRows(rows)

	applications, err := repo.GetApplicationsByStatus(context.Background(), domain.ApplicationStatusPending)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, domain.ApplicationStatusPending, applications[0].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}
