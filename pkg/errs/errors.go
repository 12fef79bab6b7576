package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrForbidden      = errors.New("Forbidden access")
	ErrNotFound       = errors.New("Resource not found")

	ErrInvalidCredentials        = errors.New("Email or password is incorrect")
	ErrEmailAlreadyUsed          = errors.New("Email has already been used")
	ErrPersonalNumberAlreadyUsed = errors.New("Personal number has already been used")
	ErrPhoneNumberAlreadyUsed    = errors.New("Phone number has already been used")
	ErrUserNotFound              = errors.New("User not found")
	ErrVerificationRejected      = errors.New("Identity verification rejected the submitted value")
	ErrVerificationUnavailable   = errors.New("Verification service temporarily unavailable")

	ErrJobNotFound                 = errors.New("Job not found")
	ErrJobNotDraft                 = errors.New("Only draft jobs can be published")
	ErrJobNotAcceptingApplications = errors.New("Job is not accepting applications")
	ErrDeadlinePassed              = errors.New("Application deadline has passed")
	ErrApplicationCapReached       = errors.New("Job has reached its application limit")

	ErrApplicantNotFound         = errors.New("Applicant not found")
	ErrReviewerNotFound          = errors.New("Reviewer not found")
	ErrApplicationNotFound       = errors.New("Application not found")
	ErrDuplicateApplication      = errors.New("An application for this job already exists")
	ErrApplicationAlreadyDecided = errors.New("Application has already reached a final decision")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusNotLoggedIn,
	ErrForbidden:      ErrStatusNoPermission,
	ErrNotFound:       ErrStatusNotFound,

	ErrInvalidCredentials:        ErrStatusNotLoggedIn,
	ErrEmailAlreadyUsed:          ErrStatusClient,
	ErrPersonalNumberAlreadyUsed: ErrStatusClient,
	ErrPhoneNumberAlreadyUsed:    ErrStatusClient,
	ErrUserNotFound:              ErrStatusNotFound,
	ErrVerificationRejected:      ErrStatusClient,
	ErrVerificationUnavailable:   ErrStatusBadGateway,

	ErrJobNotFound:                 ErrStatusNotFound,
	ErrJobNotDraft:                 ErrStatusClient,
	ErrJobNotAcceptingApplications: ErrStatusClient,
	ErrDeadlinePassed:              ErrStatusClient,
	ErrApplicationCapReached:       ErrStatusClient,

	ErrApplicantNotFound:         ErrStatusNotFound,
	ErrReviewerNotFound:          ErrStatusNotFound,
	ErrApplicationNotFound:       ErrStatusNotFound,
	ErrDuplicateApplication:      ErrStatusConflict,
	ErrApplicationAlreadyDecided: ErrStatusConflict,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
