package repositories

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
)

// Search radius for geographic filtering. Kilometers are converted to the
// coordinate system's degrees by dividing by 111 - a deliberate flat-earth
// approximation, not a geodesic calculation.
const (
	SearchRadiusKm   = 1000.0
	kmPerDegreeLL    = 111.0
	availableFromFmt = "2006-01-02"
)

// PropertyFilter holds the parsed, independently-optional search criteria.
// A zero PropertyFilter matches every property.
type PropertyFilter struct {
	FavoriteIDs   []int64
	PriceMin      *float64
	PriceMax      *float64
	Beds          *int
	Baths         *float64
	PropertyType  *models.PropertyType
	SquareFeetMin *int
	SquareFeetMax *int
	Amenities     []string
	AvailableFrom *time.Time
	Latitude      *float64
	Longitude     *float64
}

// ParsePropertyFilter translates raw query parameters into a PropertyFilter,
// applying the sentinel rules: absent values, "any", empty strings and
// all-null arrays are ignored; unknown amenity tokens and unparseable dates
// are dropped silently.
func ParsePropertyFilter(q url.Values) PropertyFilter {
	var f PropertyFilter

	if ids := splitList(q.Get("favoriteIds")); len(ids) > 0 {
		for _, tok := range ids {
			if id, err := strconv.ParseInt(tok, 10, 64); err == nil {
				f.FavoriteIDs = append(f.FavoriteIDs, id)
			}
		}
	}

	f.PriceMin = parseFloatParam(q.Get("priceMin"))
	f.PriceMax = parseFloatParam(q.Get("priceMax"))
	f.SquareFeetMin = parseIntParam(q.Get("squareFeetMin"))
	f.SquareFeetMax = parseIntParam(q.Get("squareFeetMax"))

	if v := q.Get("beds"); v != "" && v != "any" {
		f.Beds = parseIntParam(v)
	}
	if v := q.Get("baths"); v != "" && v != "any" {
		f.Baths = parseFloatParam(v)
	}

	if v := q.Get("propertyType"); v != "" && v != "any" && models.IsValidPropertyType(v) {
		pt := models.PropertyType(v)
		f.PropertyType = &pt
	}

	if v := q.Get("amenities"); v != "" && v != "any" {
		f.Amenities = models.FilterValidTags(splitList(v), models.ValidAmenities)
	}

	if v := q.Get("availableFrom"); v != "" && v != "any" {
		if t, err := parseDate(v); err == nil {
			f.AvailableFrom = &t
		}
	}

	lat := parseFloatParam(q.Get("latitude"))
	lng := parseFloatParam(q.Get("longitude"))
	if lat != nil && lng != nil {
		f.Latitude = lat
		f.Longitude = lng
	}

	return f
}

// splitList tokenizes a comma-joined parameter, dropping empty and "null"
// elements. An array whose every element is null therefore parses to nil.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || tok == "null" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(availableFromFmt, raw)
}

/* ------------------------------------------------------------------
   Typed predicates

   Each variant renders one parameterized SQL fragment. Values are never
   interpolated into the SQL text; fragment(n) receives the 1-based index
   of its first placeholder.
------------------------------------------------------------------ */

type predicate interface {
	fragment(n int) (string, []interface{})
}

// rangeCond renders `column op $n` for numeric bounds and thresholds.
type rangeCond struct {
	column string
	op     string
	value  interface{}
}

func (c rangeCond) fragment(n int) (string, []interface{}) {
	return fmt.Sprintf("%s %s $%d", c.column, c.op, n), []interface{}{c.value}
}

// equalityCond renders `column = $n`, with an optional enum cast.
type equalityCond struct {
	column string
	cast   string
	value  interface{}
}

func (c equalityCond) fragment(n int) (string, []interface{}) {
	return fmt.Sprintf("%s = $%d%s", c.column, n, c.cast), []interface{}{c.value}
}

// arrayContainsCond renders `column @> $n::cast` ("contains all of").
type arrayContainsCond struct {
	column string
	cast   string
	values []string
}

func (c arrayContainsCond) fragment(n int) (string, []interface{}) {
	return fmt.Sprintf("%s @> $%d::%s", c.column, n, c.cast), []interface{}{c.values}
}

// idMembershipCond renders `column = ANY($n)`.
type idMembershipCond struct {
	column string
	ids    []int64
}

func (c idMembershipCond) fragment(n int) (string, []interface{}) {
	return fmt.Sprintf("%s = ANY($%d)", c.column, n), []interface{}{c.ids}
}

// availableFromCond excludes properties with any lease starting strictly
// after the cutoff, i.e. "available by this date".
type availableFromCond struct {
	date time.Time
}

func (c availableFromCond) fragment(n int) (string, []interface{}) {
	sql := fmt.Sprintf(
		`NOT EXISTS (SELECT 1 FROM "Lease" l2 WHERE l2."propertyId" = p.id AND l2."startDate" > $%d)`, n)
	return sql, []interface{}{c.date}
}

// withinDistanceCond renders the ST_DWithin spatial fragment against the
// joined Location point.
type withinDistanceCond struct {
	latitude  float64
	longitude float64
	degrees   float64
}

func (c withinDistanceCond) fragment(n int) (string, []interface{}) {
	sql := fmt.Sprintf(
		`ST_DWithin(l.coordinates::geometry, ST_SetSRID(ST_MakePoint($%d, $%d), 4326), $%d)`,
		n, n+1, n+2)
	return sql, []interface{}{c.longitude, c.latitude, c.degrees}
}

// predicates turns the filter into its list of typed predicates. Criteria
// left nil or empty contribute nothing.
func (f PropertyFilter) predicates() []predicate {
	var preds []predicate

	if len(f.FavoriteIDs) > 0 {
		preds = append(preds, idMembershipCond{column: "p.id", ids: f.FavoriteIDs})
	}
	if f.PriceMin != nil {
		preds = append(preds, rangeCond{column: `p."pricePerMonth"`, op: ">=", value: *f.PriceMin})
	}
	if f.PriceMax != nil {
		preds = append(preds, rangeCond{column: `p."pricePerMonth"`, op: "<=", value: *f.PriceMax})
	}
	if f.Beds != nil {
		preds = append(preds, rangeCond{column: "p.beds", op: ">=", value: *f.Beds})
	}
	if f.Baths != nil {
		preds = append(preds, rangeCond{column: "p.baths", op: ">=", value: *f.Baths})
	}
	if f.SquareFeetMin != nil {
		preds = append(preds, rangeCond{column: `p."squareFeet"`, op: ">=", value: *f.SquareFeetMin})
	}
	if f.SquareFeetMax != nil {
		preds = append(preds, rangeCond{column: `p."squareFeet"`, op: "<=", value: *f.SquareFeetMax})
	}
	if f.PropertyType != nil {
		preds = append(preds, equalityCond{column: `p."propertyType"`, cast: `::"PropertyType"`, value: string(*f.PropertyType)})
	}
	if len(f.Amenities) > 0 {
		preds = append(preds, arrayContainsCond{column: "p.amenities", cast: `"Amenity"[]`, values: f.Amenities})
	}
	if f.AvailableFrom != nil {
		preds = append(preds, availableFromCond{date: *f.AvailableFrom})
	}
	if f.Latitude != nil && f.Longitude != nil {
		preds = append(preds, withinDistanceCond{
			latitude:  *f.Latitude,
			longitude: *f.Longitude,
			degrees:   SearchRadiusKm / kmPerDegreeLL,
		})
	}

	return preds
}

// BuildWhere reduces the filter's predicates into one parameterized WHERE
// clause (leading space included) and its ordered bind values. An empty
// filter yields "" - the unfiltered, all-rows query.
func (f PropertyFilter) BuildWhere() (string, []interface{}) {
	preds := f.predicates()
	if len(preds) == 0 {
		return "", nil
	}

	frags := make([]string, 0, len(preds))
	var args []interface{}
	for _, p := range preds {
		frag, vals := p.fragment(len(args) + 1)
		frags = append(frags, frag)
		args = append(args, vals...)
	}
	return " WHERE " + strings.Join(frags, " AND "), args
}
