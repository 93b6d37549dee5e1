package models

type Tenant struct {
	ID          int64  `json:"id"`
	CognitoID   string `json:"cognitoId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	// Favorited properties, populated on tenant fetches.
	Favorites []*Property `json:"favorites,omitempty"`
}
