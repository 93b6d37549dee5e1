package models

// PropertyType mirrors the "PropertyType" Postgres enum.
type PropertyType string

const (
	PropertyTypeRooms     PropertyType = "Rooms"
	PropertyTypeTinyhouse PropertyType = "Tinyhouse"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeCottage   PropertyType = "Cottage"
)

var validPropertyTypes = map[PropertyType]bool{
	PropertyTypeRooms:     true,
	PropertyTypeTinyhouse: true,
	PropertyTypeApartment: true,
	PropertyTypeVilla:     true,
	PropertyTypeTownhouse: true,
	PropertyTypeCottage:   true,
}

func IsValidPropertyType(s string) bool {
	return validPropertyTypes[PropertyType(s)]
}

// ValidAmenities is the closed set backing the "Amenity" Postgres enum.
// Tokens outside this set are dropped silently wherever amenity lists are
// parsed; tolerating unknown tokens is deliberate, not an error path.
var ValidAmenities = map[string]bool{
	"WasherDryer":       true,
	"AirConditioning":   true,
	"Dishwasher":        true,
	"HighSpeedInternet": true,
	"HardwoodFloors":    true,
	"WalkInClosets":     true,
	"Microwave":         true,
	"Refrigerator":      true,
	"Pool":              true,
	"Gym":               true,
	"Parking":           true,
	"PetsAllowed":       true,
	"WiFi":              true,
}

// ValidHighlights backs the "Highlight" Postgres enum.
var ValidHighlights = map[string]bool{
	"HighSpeedInternetAccess": true,
	"WasherDryer":             true,
	"AirConditioning":         true,
	"Heating":                 true,
	"SmokeFree":               true,
	"CableReady":              true,
	"SatelliteTV":             true,
	"DoubleVanities":          true,
	"TubShower":               true,
	"Intercom":                true,
	"SprinklerSystem":         true,
	"RecentlyRenovated":       true,
	"CloseToTransit":          true,
	"GreatView":               true,
	"QuietNeighborhood":       true,
}

// FilterValidTags keeps the tokens present in valid, preserving input order.
func FilterValidTags(tokens []string, valid map[string]bool) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if valid[t] {
			out = append(out, t)
		}
	}
	return out
}

// PaymentStatus mirrors the "PaymentStatus" Postgres enum.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "Pending"
	PaymentStatusPaid          PaymentStatus = "Paid"
	PaymentStatusPartiallyPaid PaymentStatus = "PartiallyPaid"
	PaymentStatusOverdue       PaymentStatus = "Overdue"
)
