package service

import (
	"context"
	"time"

	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/internal/infrastructure/verification"
	pkgdto "github.com/jobmanagement/job-service/pkg/dto"
	"github.com/jobmanagement/job-service/pkg/errs"
)

type fakeUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]domain.User{}}
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (domain.User, error) {
	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return domain.User{}, nil
	}
	return user, nil
}

func (r *fakeUserRepo) PersonalNumberExists(_ context.Context, personalNumber string) (bool, error) {
	for _, user := range r.users {
		if user.PersonalNumber == personalNumber && user.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) PhoneNumberExists(_ context.Context, phoneNumber string) (bool, error) {
	for _, user := range r.users {
		if user.PhoneNumber == phoneNumber && user.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) AddUser(_ context.Context, data domain.User) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, data domain.User) error {
	r.users[data.ID] = data
	return nil
}

func (r *fakeUserRepo) SoftDeleteUser(_ context.Context, id int64) error {
	user, ok := r.users[id]
	if !ok {
		return nil
	}
	timestamp := time.Now().UnixMilli()
	user.DeletedAt = &timestamp
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) GetUsers(_ context.Context, _ pkgdto.Filter) ([]domain.User, error) {
	var data []domain.User
	for _, user := range r.users {
		if user.DeletedAt == nil {
			data = append(data, user)
		}
	}
	return data, nil
}

func (r *fakeUserRepo) CountUsers(_ context.Context, _ pkgdto.Filter) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

type fakeJobRepo struct {
	jobs   map[int64]domain.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]domain.Job{}}
}

func (r *fakeJobRepo) AddJob(_ context.Context, data domain.Job) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp
	r.jobs[data.ID] = data
	return data.ID, nil
}

func (r *fakeJobRepo) GetJobByID(_ context.Context, id int64) (domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok || job.DeletedAt != nil {
		return domain.Job{}, nil
	}
	return job, nil
}

func (r *fakeJobRepo) GetJobs(_ context.Context) ([]domain.Job, error) {
	var data []domain.Job
	for _, job := range r.jobs {
		if job.DeletedAt == nil {
			data = append(data, job)
		}
	}
	return data, nil
}

func (r *fakeJobRepo) GetJobsByStatus(_ context.Context, status domain.JobStatus) ([]domain.Job, error) {
	var data []domain.Job
	for _, job := range r.jobs {
		if job.DeletedAt == nil && job.Status == status {
			data = append(data, job)
		}
	}
	return data, nil
}

func (r *fakeJobRepo) GetActiveJobs(_ context.Context, now int64) ([]domain.Job, error) {
	var data []domain.Job
	for _, job := range r.jobs {
		if job.DeletedAt == nil && job.AcceptsApplications(now) {
			data = append(data, job)
		}
	}
	return data, nil
}

func (r *fakeJobRepo) UpdateJob(_ context.Context, data domain.Job) error {
	data.UpdatedAt = time.Now().UnixMilli()
	r.jobs[data.ID] = data
	return nil
}

func (r *fakeJobRepo) UpdateJobStatus(_ context.Context, id int64, status domain.JobStatus) error {
	job, ok := r.jobs[id]
	if !ok {
		return nil
	}
	job.Status = status
	job.UpdatedAt = time.Now().UnixMilli()
	r.jobs[id] = job
	return nil
}

func (r *fakeJobRepo) SoftDeleteJob(_ context.Context, id int64) error {
	job, ok := r.jobs[id]
	if !ok {
		return nil
	}
	timestamp := time.Now().UnixMilli()
	job.DeletedAt = &timestamp
	r.jobs[id] = job
	return nil
}

type fakeApplicationRepo struct {
	applications map[int64]domain.JobApplication
	nextID       int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[int64]domain.JobApplication{}}
}

func (r *fakeApplicationRepo) AddApplication(_ context.Context, data domain.JobApplication) (int64, error) {
	// Mirrors the partial unique index on (job_id, applicant_id).
	for _, application := range r.applications {
		if application.DeletedAt == nil && application.JobID == data.JobID && application.ApplicantID == data.ApplicantID {
			return 0, errs.ErrDuplicateApplication
		}
	}

	r.nextID++
	data.ID = r.nextID
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp
	r.applications[data.ID] = data
	return data.ID, nil
}

func (r *fakeApplicationRepo) GetApplicationByID(_ context.Context, id int64) (domain.JobApplication, error) {
	application, ok := r.applications[id]
	if !ok || application.DeletedAt != nil {
		return domain.JobApplication{}, nil
	}
	return application, nil
}

func (r *fakeApplicationRepo) GetApplicationsByJob(_ context.Context, jobID int64) ([]domain.JobApplication, error) {
	var data []domain.JobApplication
	for _, application := range r.applications {
		if application.DeletedAt == nil && application.JobID == jobID {
			data = append(data, application)
		}
	}
	return data, nil
}

func (r *fakeApplicationRepo) GetApplicationsByApplicant(_ context.Context, applicantID int64) ([]domain.JobApplication, error) {
	var data []domain.JobApplication
	for _, application := range r.applications {
		if application.DeletedAt == nil && application.ApplicantID == applicantID {
			data = append(data, application)
		}
	}
	return data, nil
}

func (r *fakeApplicationRepo) GetApplicationsByStatus(_ context.Context, status domain.ApplicationStatus) ([]domain.JobApplication, error) {
	var data []domain.JobApplication
	for _, application := range r.applications {
		if application.DeletedAt == nil && application.Status == status {
			data = append(data, application)
		}
	}
	return data, nil
}

func (r *fakeApplicationRepo) HasUserApplied(_ context.Context, jobID, applicantID int64) (bool, error) {
	for _, application := range r.applications {
		if application.DeletedAt == nil && application.JobID == jobID && application.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) CountApplicationsByJob(_ context.Context, jobID int64) (int64, error) {
	var count int64
	for _, application := range r.applications {
		if application.DeletedAt == nil && application.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) UpdateApplicationReview(_ context.Context, data domain.JobApplication) error {
	data.UpdatedAt = time.Now().UnixMilli()
	r.applications[data.ID] = data
	return nil
}

type fakePersonalNumberVerifier struct {
	result verification.PersonalNumberResult
	err    error
}

func (f fakePersonalNumberVerifier) Verify(_ context.Context, _ string) (verification.PersonalNumberResult, error) {
	return f.result, f.err
}

type fakePhoneValidator struct {
	result verification.PhoneResult
	err    error
}

func (f fakePhoneValidator) Validate(_ context.Context, _ string) (verification.PhoneResult, error) {
	return f.result, f.err
}
