package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const geocodeTimeout = 5 * time.Second

// Address is the structured input to a geocoding lookup.
type Address struct {
	Street     string
	City       string
	State      string
	Country    string
	PostalCode string
}

// Point is a resolved coordinate pair. Approximate is set when the lookup
// matched a record that carried no usable coordinates and the adapter fell
// back to (0, 0); (0, 0) alone is a valid ocean coordinate, so callers must
// check the flag rather than the values.
type Point struct {
	Longitude   float64
	Latitude    float64
	Approximate bool
}

type Geocoder interface {
	Geocode(ctx context.Context, addr Address) (Point, error)
}

/* ------------------------------------------------------------------
   Nominatim implementation
------------------------------------------------------------------ */

type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: geocodeTimeout,
		},
	}
}

type nominatimResult struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

// Geocode issues a single lookup and takes the first/best match. Zero
// matches fail with ErrGeocodeNotFound; any transport-level fault,
// timeout or non-200 surfaces as ErrUpstreamUnavailable. No retries.
func (g *NominatimGeocoder) Geocode(ctx context.Context, addr Address) (Point, error) {
	params := url.Values{}
	params.Set("street", addr.Street)
	params.Set("city", addr.City)
	params.Set("state", addr.State)
	params.Set("country", addr.Country)
	params.Set("postalcode", addr.PostalCode)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqCtx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Point{}, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		Logger.WithError(err).Warn("[Geocoder] Lookup request failed")
		return Point{}, ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger.Warnf("[Geocoder] Lookup returned status %d", resp.StatusCode)
		return Point{}, ErrUpstreamUnavailable
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		Logger.WithError(err).Warn("[Geocoder] Failed to decode lookup response")
		return Point{}, ErrUpstreamUnavailable
	}

	if len(results) == 0 {
		return Point{}, ErrGeocodeNotFound
	}

	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	if results[0].Lon == "" || results[0].Lat == "" || lonErr != nil || latErr != nil {
		Logger.Warnf("[Geocoder] Best match for %q, %q is missing coordinates; falling back to (0, 0)",
			addr.Street, addr.City)
		return Point{Longitude: 0, Latitude: 0, Approximate: true}, nil
	}

	return Point{Longitude: lon, Latitude: lat}, nil
}
