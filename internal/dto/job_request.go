package dto

type JobRequest struct {
	ID                  int64
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Requirements        string   `json:"requirements"`
	Location            string   `json:"location"`
	Salary              *float64 `json:"salary"`
	ApplicationDeadline int64    `json:"application_deadline"`
	MaxApplications     *int64   `json:"max_applications"`
}
