package dto

type ApplicationSubmissionRequest struct {
	JobID       int64  `json:"job_id"`
	ApplicantID int64  `json:"applicant_id"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

type ApplicationReviewRequest struct {
	ApplicationID int64
	Status        string  `json:"status"`
	ReviewNotes   *string `json:"review_notes"`
}
