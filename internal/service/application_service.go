package service

import (
	"context"
	"time"

	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/internal/dto"
	"github.com/jobmanagement/job-service/internal/repository"
	"github.com/jobmanagement/job-service/pkg/errs"
)

type ApplicationService interface {
	SubmitApplication(ctx context.Context, req dto.ApplicationSubmissionRequest) (resp dto.ApplicationSubmissionResponse, err error)
	ReviewApplication(ctx context.Context, req dto.ApplicationReviewRequest, reviewerID int64) (err error)
	GetApplicationsByJob(ctx context.Context, jobID int64) (resp []dto.ApplicationResponse, err error)
	GetApplicationsByApplicant(ctx context.Context, applicantID int64) (resp []dto.ApplicationResponse, err error)
	GetPendingApplications(ctx context.Context) (resp []dto.ApplicationResponse, err error)
}

type ApplicationServiceImpl struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	userRepo        repository.UserRepository
}

func CreateNewApplicationService(applicationRepo repository.ApplicationRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// SubmitApplication validates in a fixed order so callers get stable errors:
// job exists, job active, deadline not passed, applicant exists, applicant
// role, no duplicate, cap not reached.
func (s *ApplicationServiceImpl) SubmitApplication(ctx context.Context, req dto.ApplicationSubmissionRequest) (resp dto.ApplicationSubmissionResponse, err error) {
	job, err := s.jobRepo.GetJobByID(ctx, req.JobID)
	if err != nil {
		return
	}
	if job.ID == 0 {
		return resp, errs.ErrJobNotFound
	}

	now := time.Now().UnixMilli()
	if job.Status != domain.JobStatusActive {
		return resp, errs.ErrJobNotAcceptingApplications
	}
	if now > job.ApplicationDeadline {
		return resp, errs.ErrDeadlinePassed
	}

	applicant, err := s.userRepo.GetUserByID(ctx, req.ApplicantID)
	if err != nil {
		return
	}
	if applicant.ID == 0 {
		return resp, errs.ErrApplicantNotFound
	}
	if applicant.Role != domain.RoleApplicant {
		return resp, errs.ErrForbidden
	}

	applied, err := s.applicationRepo.HasUserApplied(ctx, req.JobID, req.ApplicantID)
	if err != nil {
		return
	}
	if applied {
		return resp, errs.ErrDuplicateApplication
	}

	if job.MaxApplications != nil {
		count, countErr := s.applicationRepo.CountApplicationsByJob(ctx, req.JobID)
		if countErr != nil {
			return resp, countErr
		}
		if count >= *job.MaxApplications {
			return resp, errs.ErrApplicationCapReached
		}
	}

	application := domain.JobApplication{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Status:      domain.ApplicationStatusPending,
		AppliedAt:   now,
	}

	id, err := s.applicationRepo.AddApplication(ctx, application)
	if err != nil {
		return resp, err
	}

	resp.ApplicationID = id
	resp.Message = "Application submitted successfully"

	return resp, nil
}

func (s *ApplicationServiceImpl) ReviewApplication(ctx context.Context, req dto.ApplicationReviewRequest, reviewerID int64) (err error) {
	application, err := s.applicationRepo.GetApplicationByID(ctx, req.ApplicationID)
	if err != nil {
		return
	}
	if application.ID == 0 {
		return errs.ErrApplicationNotFound
	}

	reviewer, err := s.userRepo.GetUserByID(ctx, reviewerID)
	if err != nil {
		return
	}
	if reviewer.ID == 0 {
		return errs.ErrReviewerNotFound
	}
	if !reviewer.Role.CanManageJobs() {
		return errs.ErrForbidden
	}

	newStatus := domain.ApplicationStatus(req.Status)
	if !newStatus.ReviewOutcome() {
		return errs.ErrClient
	}

	// Approved, rejected, and withdrawn are final.
	if application.Status.Terminal() {
		return errs.ErrApplicationAlreadyDecided
	}

	now := time.Now().UnixMilli()
	application.Status = newStatus
	application.ReviewedByUserID = &reviewerID
	application.ReviewedAt = &now
	application.ReviewNotes = req.ReviewNotes

	return s.applicationRepo.UpdateApplicationReview(ctx, application)
}

func (s *ApplicationServiceImpl) GetApplicationsByJob(ctx context.Context, jobID int64) (resp []dto.ApplicationResponse, err error) {
	applications, err := s.applicationRepo.GetApplicationsByJob(ctx, jobID)
	if err != nil {
		return
	}

	return convertApplicationsToResponses(applications), nil
}

func (s *ApplicationServiceImpl) GetApplicationsByApplicant(ctx context.Context, applicantID int64) (resp []dto.ApplicationResponse, err error) {
	applications, err := s.applicationRepo.GetApplicationsByApplicant(ctx, applicantID)
	if err != nil {
		return
	}

	return convertApplicationsToResponses(applications), nil
}

func (s *ApplicationServiceImpl) GetPendingApplications(ctx context.Context) (resp []dto.ApplicationResponse, err error) {
	applications, err := s.applicationRepo.GetApplicationsByStatus(ctx, domain.ApplicationStatusPending)
	if err != nil {
		return
	}

	return convertApplicationsToResponses(applications), nil
}

func convertApplicationsToResponses(applications []domain.JobApplication) []dto.ApplicationResponse {
	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		resp = append(resp, dto.ApplicationResponse{
			ID:               application.ID,
			JobID:            application.JobID,
			ApplicantID:      application.ApplicantID,
			Resume:           application.Resume,
			CoverLetter:      application.CoverLetter,
			Status:           string(application.Status),
			AppliedAt:        application.AppliedAt,
			ReviewedByUserID: application.ReviewedByUserID,
			ReviewedAt:       application.ReviewedAt,
			ReviewNotes:      application.ReviewNotes,
		})
	}
	return resp
}
