package dto

type JobResponse struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Requirements        string   `json:"requirements"`
	Location            string   `json:"location"`
	Salary              *float64 `json:"salary"`
	Status              string   `json:"status"`
	ApplicationDeadline int64    `json:"application_deadline"`
	MaxApplications     *int64   `json:"max_applications"`
	CreatedBy           int64    `json:"created_by"`
	CreatedAt           int64    `json:"created_at"`
	UpdatedAt           int64    `json:"updated_at"`
}
