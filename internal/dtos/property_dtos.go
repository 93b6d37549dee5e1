package dtos

// CreatePropertyForm carries the text fields of the multipart property
// creation request. Everything arrives as strings; numeric and boolean
// parsing happens in the service so malformed values fail with a
// validation error instead of a 500.
type CreatePropertyForm struct {
	Name              string `validate:"required"`
	Description       string
	PricePerMonth     string `validate:"required"`
	SecurityDeposit   string `validate:"required"`
	ApplicationFee    string `validate:"required"`
	IsPetsAllowed     string
	IsParkingIncluded string
	PropertyType      string `validate:"required"`
	Beds              string `validate:"required"`
	Baths             string `validate:"required"`
	SquareFeet        string `validate:"required"`
	Amenities         string
	Highlights        string

	Address    string `validate:"required"`
	City       string `validate:"required"`
	State      string `validate:"required"`
	Country    string `validate:"required"`
	PostalCode string `validate:"required"`
}
