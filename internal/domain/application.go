package domain

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusUnderReview,
		ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of the status.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

// ReviewOutcome reports whether the status is a value a reviewer may set.
// Pending is reserved for submission.
func (s ApplicationStatus) ReviewOutcome() bool {
	return s.Valid() && s != ApplicationStatusPending
}

type JobApplication struct {
	ID               int64             `db:"id"`
	JobID            int64             `db:"job_id"`
	ApplicantID      int64             `db:"applicant_id"`
	Resume           string            `db:"resume"`
	CoverLetter      string            `db:"cover_letter"`
	Status           ApplicationStatus `db:"status"`
	AppliedAt        int64             `db:"applied_at"`
	ReviewedByUserID *int64            `db:"reviewed_by_user_id"`
	ReviewedAt       *int64            `db:"reviewed_at"`
	ReviewNotes      *string           `db:"review_notes"`
	CreatedAt        int64             `db:"created_at"`
	UpdatedAt        int64             `db:"updated_at"`
	DeletedAt        *int64            `db:"deleted_at"`
}
