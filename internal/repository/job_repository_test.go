package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO jobs")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.AddJob(context.Background(), domain.Job{
		Title:               "Backend Engineer",
		Status:              domain.JobStatusDraft,
		ApplicationDeadline: time.Now().Add(24 * time.Hour).UnixMilli(),
		CreatedBy:           1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJobByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "status", "created_by"}).
		AddRow(int64(9), "Backend Engineer", "draft", int64(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM jobs WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	job, err := repo.GetJobByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDraft, job.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJobByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM jobs WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	job, err := repo.GetJobByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, job.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveJobsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	now := time.Now().UnixMilli()
	rows := sqlmock.NewRows([]string{"id", "title", "status"}).
		AddRow(int64(1), "Open", "active")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM jobs WHERE status = $1 AND application_deadline >= $2 AND deleted_at IS NULL ORDER BY id")).
		WithArgs(domain.JobStatusActive, now).
		WillReturnRows(rows)

	jobs, err := repo.GetActiveJobs(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Open", jobs[0].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJobsByStatusQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM jobs WHERE status = $1 AND deleted_at IS NULL ORDER BY id")).
		WithArgs(domain.JobStatusClosed).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(int64(2), "closed"))

	jobs, err := repo.GetJobsByStatus(context.Background(), domain.JobStatusClosed)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateJobStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL")).
		WithArgs(domain.JobStatusActive, sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateJobStatus(context.Background(), 9, domain.JobStatusActive)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateJobFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET title=")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateJob(context.Background(), domain.Job{ID: 9, Title: "Senior Backend Engineer"})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateNewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL")).
		WithArgs(sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDeleteJob(context.Background(), 9)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
