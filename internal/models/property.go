package models

import (
	"time"
)

type Property struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	PricePerMonth     float64      `json:"pricePerMonth"`
	SecurityDeposit   float64      `json:"securityDeposit"`
	ApplicationFee    float64      `json:"applicationFee"`
	PhotoUrls         []string     `json:"photoUrls"`
	Amenities         []string     `json:"amenities"`
	Highlights        []string     `json:"highlights"`
	IsPetsAllowed     bool         `json:"isPetsAllowed"`
	IsParkingIncluded bool         `json:"isParkingIncluded"`
	Beds              int          `json:"beds"`
	Baths             float64      `json:"baths"`
	SquareFeet        int          `json:"squareFeet"`
	PropertyType      PropertyType `json:"propertyType"`
	PostedDate        time.Time    `json:"postedDate"`
	LocationID        int64        `json:"locationId"`
	ManagerCognitoID  string       `json:"managerCognitoId"`

	Location *Location `json:"location,omitempty"`
	Manager  *Manager  `json:"manager,omitempty"`

	// Crow-flies distance from the search center, set only on
	// geographic searches.
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
}
