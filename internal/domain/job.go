package domain

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusDraft || s == JobStatusActive || s == JobStatusClosed
}

type Job struct {
	ID                  int64     `db:"id"`
	Title               string    `db:"title"`
	Description         string    `db:"description"`
	Requirements        string    `db:"requirements"`
	Location            string    `db:"location"`
	Salary              *float64  `db:"salary"`
	Status              JobStatus `db:"status"`
	ApplicationDeadline int64     `db:"application_deadline"`
	MaxApplications     *int64    `db:"max_applications"`
	CreatedBy           int64     `db:"created_by"`
	UpdatedBy           *string   `db:"updated_by"`
	CreatedAt           int64     `db:"created_at"`
	UpdatedAt           int64     `db:"updated_at"`
	DeletedAt           *int64    `db:"deleted_at"`
}

// AcceptsApplications reports whether the job takes new applications at the
// given unix-millisecond instant. A job accepts applications only while it is
// active and the deadline has not passed.
func (j Job) AcceptsApplications(now int64) bool {
	return j.Status == JobStatusActive && now <= j.ApplicationDeadline
}
