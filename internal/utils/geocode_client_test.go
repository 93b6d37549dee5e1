package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	InitLogger("rental-api-test")
}

func TestNominatimGeocodeBestMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "123 Main St", q.Get("street"))
		require.Equal(t, "Springfield", q.Get("city"))
		require.Equal(t, "json", q.Get("format"))
		require.Equal(t, "1", q.Get("limit"))
		require.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lon":"-73.9857","lat":"40.7484"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "rental-api-test/1.0")
	pt, err := g.Geocode(context.Background(), Address{
		Street: "123 Main St",
		City:   "Springfield",
		State:  "IL",
	})
	require.NoError(t, err)
	require.Equal(t, -73.9857, pt.Longitude)
	require.Equal(t, 40.7484, pt.Latitude)
	require.False(t, pt.Approximate)
}

func TestNominatimGeocodeNoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "rental-api-test/1.0")
	_, err := g.Geocode(context.Background(), Address{City: "Nowhere"})
	require.ErrorIs(t, err, ErrGeocodeNotFound)
}

func TestNominatimGeocodeMissingCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"display_name":"somewhere"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "rental-api-test/1.0")
	pt, err := g.Geocode(context.Background(), Address{City: "Springfield"})
	require.NoError(t, err)
	require.True(t, pt.Approximate, "missing coordinates must be flagged, not silently zeroed")
	require.Zero(t, pt.Longitude)
	require.Zero(t, pt.Latitude)
}

func TestNominatimGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "rental-api-test/1.0")
	_, err := g.Geocode(context.Background(), Address{City: "Springfield"})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestNominatimGeocodeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "rental-api-test/1.0")
	_, err := g.Geocode(context.Background(), Address{City: "Springfield"})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestNominatimGeocodeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	g := NewNominatimGeocoder(srv.URL, "rental-api-test/1.0")
	_, err := g.Geocode(context.Background(), Address{City: "Springfield"})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}
