package dto

type ApplicationSubmissionResponse struct {
	ApplicationID int64  `json:"application_id"`
	Message       string `json:"message"`
}

type ApplicationResponse struct {
	ID               int64   `json:"id"`
	JobID            int64   `json:"job_id"`
	ApplicantID      int64   `json:"applicant_id"`
	Resume           string  `json:"resume"`
	CoverLetter      string  `json:"cover_letter"`
	Status           string  `json:"status"`
	AppliedAt        int64   `json:"applied_at"`
	ReviewedByUserID *int64  `json:"reviewed_by_user_id"`
	ReviewedAt       *int64  `json:"reviewed_at"`
	ReviewNotes      *string `json:"review_notes"`
}
