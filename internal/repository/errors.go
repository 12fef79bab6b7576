package repository

import (
	"errors"

	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// uniqueViolationError maps a postgres unique_violation to the typed
// duplicate error for the constraint that fired. The partial unique indexes
// are the authoritative guard; existence pre-checks in the services only
// provide a friendlier fast path.
func uniqueViolationError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return errs.ErrInternalServer
	}

	switch pqErr.Constraint {
	case "users_email_unique_idx":
		return errs.ErrEmailAlreadyUsed
	case "users_personal_number_unique_idx":
		return errs.ErrPersonalNumberAlreadyUsed
	case "users_phone_number_unique_idx":
		return errs.ErrPhoneNumberAlreadyUsed
	case "job_applications_job_applicant_unique_idx":
		return errs.ErrDuplicateApplication
	}

	return errs.ErrInternalServer
}
