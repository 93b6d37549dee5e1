package models

// Coordinates is the API-facing view of the stored PostGIS point.
type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Location struct {
	ID          int64       `json:"id"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	PostalCode  string      `json:"postalCode"`
	Coordinates Coordinates `json:"coordinates"`
}
