package dtos

// CreateUserRequest provisions a local Tenant or Manager row for a
// cognito identity.
type CreateUserRequest struct {
	CognitoID   string `json:"cognitoId" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}
