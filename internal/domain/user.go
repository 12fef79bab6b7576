package domain

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleHR        Role = "hr"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleHR || r == RoleAdmin
}

// CanManageJobs reports whether the role may create jobs and review applications.
func (r Role) CanManageJobs() bool {
	return r == RoleHR || r == RoleAdmin
}

type User struct {
	ID                       int64   `db:"id"`
	ExternalID               string  `db:"external_id"`
	PersonalNumber           string  `db:"personal_number"`
	FirstName                string  `db:"first_name"`
	LastName                 string  `db:"last_name"`
	Email                    string  `db:"email"`
	PhoneNumber              string  `db:"phone_number"`
	HashedPassword           string  `db:"hashed_password"`
	Role                     Role    `db:"role"`
	PersonalNumberVerified   bool    `db:"personal_number_verified"`
	PersonalNumberVerifiedAt *int64  `db:"personal_number_verified_at"`
	EmailVerified            bool    `db:"email_verified"`
	EmailVerifiedAt          *int64  `db:"email_verified_at"`
	CreatedAt                int64   `db:"created_at"`
	UpdatedAt                int64   `db:"updated_at"`
	DeletedAt                *int64  `db:"deleted_at"`
}
