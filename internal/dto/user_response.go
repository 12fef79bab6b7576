package dto

type RegistrationResponse struct {
	UserID              int64  `json:"user_id"`
	Message             string `json:"message"`
	PhoneNumberVerified bool   `json:"phone_number_verified"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type UserResponse struct {
	ID                     int64  `json:"id"`
	ExternalID             string `json:"external_id"`
	PersonalNumber         string `json:"personal_number"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	Email                  string `json:"email"`
	PhoneNumber            string `json:"phone_number"`
	Role                   string `json:"role"`
	PersonalNumberVerified bool   `json:"personal_number_verified"`
	EmailVerified          bool   `json:"email_verified"`
	CreatedAt              int64  `json:"created_at"`
}
