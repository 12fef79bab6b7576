package service

import (
	"context"
	"time"

	"github.com/jobmanagement/job-service/config"
	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/internal/dto"
	"github.com/jobmanagement/job-service/internal/repository"
	"github.com/jobmanagement/job-service/pkg/errs"
)

type JobService interface {
	CreateJob(ctx context.Context, req dto.JobRequest, creatorID int64) (resp dto.JobResponse, err error)
	PublishJob(ctx context.Context, jobID, publisherID int64) (err error)
	UpdateJob(ctx context.Context, req dto.JobRequest, updaterID int64) (err error)
	DeleteJob(ctx context.Context, jobID, callerID int64) (err error)
	GetJob(ctx context.Context, id int64) (resp dto.JobResponse, err error)
	GetAllJobs(ctx context.Context) (resp []dto.JobResponse, err error)
	GetActiveJobs(ctx context.Context) (resp []dto.JobResponse, err error)
	GetJobsByStatus(ctx context.Context, status string) (resp []dto.JobResponse, err error)
}

type JobServiceImpl struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	config   config.Config
}

func CreateNewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, config config.Config) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, userRepo: userRepo, config: config}
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, req dto.JobRequest, creatorID int64) (resp dto.JobResponse, err error) {
	creator, err := s.userRepo.GetUserByID(ctx, creatorID)
	if err != nil {
		return
	}
	if creator.ID == 0 {
		return resp, errs.ErrUserNotFound
	}
	if !creator.Role.CanManageJobs() {
		return resp, errs.ErrForbidden
	}

	if req.Title == "" || req.ApplicationDeadline <= time.Now().UnixMilli() {
		return resp, errs.ErrClient
	}

	// Whether new postings go live immediately is a deployment decision,
	// not a code path the creator can pick.
	status := domain.JobStatusDraft
	if s.config.JobInitialStatus == string(domain.JobStatusActive) {
		status = domain.JobStatusActive
	}

	job := domain.Job{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		Salary:              req.Salary,
		Status:              status,
		ApplicationDeadline: req.ApplicationDeadline,
		MaxApplications:     req.MaxApplications,
		CreatedBy:           creatorID,
	}

	id, err := s.jobRepo.AddJob(ctx, job)
	if err != nil {
		return
	}

	job.ID = id

	return convertJobToResponse(job), nil
}

func (s *JobServiceImpl) PublishJob(ctx context.Context, jobID, publisherID int64) (err error) {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return
	}
	if job.ID == 0 {
		return errs.ErrJobNotFound
	}

	publisher, err := s.userRepo.GetUserByID(ctx, publisherID)
	if err != nil {
		return
	}
	if publisher.ID == 0 {
		return errs.ErrUserNotFound
	}
	if publisher.ID != job.CreatedBy && publisher.Role != domain.RoleAdmin {
		return errs.ErrForbidden
	}

	if job.Status != domain.JobStatusDraft {
		return errs.ErrJobNotDraft
	}

	return s.jobRepo.UpdateJobStatus(ctx, jobID, domain.JobStatusActive)
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, req dto.JobRequest, updaterID int64) (err error) {
	job, err := s.jobRepo.GetJobByID(ctx, req.ID)
	if err != nil {
		return
	}
	if job.ID == 0 {
		return errs.ErrJobNotFound
	}

	updater, err := s.userRepo.GetUserByID(ctx, updaterID)
	if err != nil {
		return
	}
	if updater.ID == 0 {
		return errs.ErrUserNotFound
	}
	if updater.ID != job.CreatedBy && updater.Role != domain.RoleAdmin {
		return errs.ErrForbidden
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Requirements != "" {
		job.Requirements = req.Requirements
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.ApplicationDeadline != 0 {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.MaxApplications != nil {
		job.MaxApplications = req.MaxApplications
	}
	job.UpdatedBy = &updater.Email

	return s.jobRepo.UpdateJob(ctx, job)
}

func (s *JobServiceImpl) DeleteJob(ctx context.Context, jobID, callerID int64) (err error) {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return
	}
	if job.ID == 0 {
		return errs.ErrJobNotFound
	}

	caller, err := s.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		return
	}
	if caller.ID == 0 {
		return errs.ErrUserNotFound
	}
	if caller.ID != job.CreatedBy && caller.Role != domain.RoleAdmin {
		return errs.ErrForbidden
	}

	return s.jobRepo.SoftDeleteJob(ctx, jobID)
}

func (s *JobServiceImpl) GetJob(ctx context.Context, id int64) (resp dto.JobResponse, err error) {
	job, err := s.jobRepo.GetJobByID(ctx, id)
	if err != nil {
		return
	}
	if job.ID == 0 {
		return resp, errs.ErrJobNotFound
	}

	return convertJobToResponse(job), nil
}

func (s *JobServiceImpl) GetAllJobs(ctx context.Context) (resp []dto.JobResponse, err error) {
	jobs, err := s.jobRepo.GetJobs(ctx)
	if err != nil {
		return
	}

	return convertJobsToResponses(jobs), nil
}

func (s *JobServiceImpl) GetActiveJobs(ctx context.Context) (resp []dto.JobResponse, err error) {
	jobs, err := s.jobRepo.GetActiveJobs(ctx, time.Now().UnixMilli())
	if err != nil {
		return
	}

	return convertJobsToResponses(jobs), nil
}

func (s *JobServiceImpl) GetJobsByStatus(ctx context.Context, status string) (resp []dto.JobResponse, err error) {
	jobStatus := domain.JobStatus(status)
	if !jobStatus.Valid() {
		return resp, errs.ErrClient
	}

	jobs, err := s.jobRepo.GetJobsByStatus(ctx, jobStatus)
	if err != nil {
		return
	}

	return convertJobsToResponses(jobs), nil
}

func convertJobToResponse(job domain.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                  job.ID,
		Title:               job.Title,
		Description:         job.Description,
		Requirements:        job.Requirements,
		Location:            job.Location,
		Salary:              job.Salary,
		Status:              string(job.Status),
		ApplicationDeadline: job.ApplicationDeadline,
		MaxApplications:     job.MaxApplications,
		CreatedBy:           job.CreatedBy,
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}
}

func convertJobsToResponses(jobs []domain.Job) []dto.JobResponse {
	resp := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, convertJobToResponse(job))
	}
	return resp
}
