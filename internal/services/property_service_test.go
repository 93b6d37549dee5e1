package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/dtos"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

func validCreateForm() dtos.CreatePropertyForm {
	return dtos.CreatePropertyForm{
		Name:            "Sunny Loft",
		Description:     "Top floor, lots of light",
		PricePerMonth:   "1850",
		SecurityDeposit: "1850",
		ApplicationFee:  "50",
		PropertyType:    "Apartment",
		Beds:            "2",
		Baths:           "1.5",
		SquareFeet:      "900",
		Amenities:       "Pool,Gym",
		Highlights:      "GreatView",
		IsPetsAllowed:   "true",
		Address:         "123 Main St",
		City:            "Springfield",
		State:           "IL",
		Country:         "USA",
		PostalCode:      "62701",
	}
}

func newPropertyServiceForTest() (*PropertyService, *fakePropertyRepo, *fakeManagerRepo, *fakeGeocoder, *fakeStorage) {
	propRepo := newFakePropertyRepo()
	managerRepo := newFakeManagerRepo()
	geocoder := &fakeGeocoder{point: utils.Point{Longitude: -89.65, Latitude: 39.78}}
	storage := &fakeStorage{}
	svc := NewPropertyService(propRepo, managerRepo, geocoder, storage)
	return svc, propRepo, managerRepo, geocoder, storage
}

func TestCreateProperty(t *testing.T) {
	svc, propRepo, managerRepo, _, _ := newPropertyServiceForTest()
	managerRepo.managers["mgr-1"] = &models.Manager{ID: 1, CognitoID: "mgr-1", Name: "Alice"}

	photos := []utils.PhotoUpload{
		{Filename: "front.jpg", Body: strings.NewReader("a")},
		{Filename: "kitchen.jpg", Body: strings.NewReader("b")},
	}

	p, err := svc.Create(context.Background(), validCreateForm(), photos, "mgr-1")
	require.NoError(t, err)
	require.Equal(t, 1, propRepo.createCalls)

	require.Equal(t, "Sunny Loft", p.Name)
	require.Equal(t, 1850.0, p.PricePerMonth)
	require.Equal(t, models.PropertyType("Apartment"), p.PropertyType)
	require.True(t, p.IsPetsAllowed)
	require.False(t, p.IsParkingIncluded)
	require.Equal(t, []string{"Pool", "Gym"}, p.Amenities)
	require.Equal(t, "mgr-1", p.ManagerCognitoID)
	require.NotNil(t, p.Manager)
	require.Equal(t, "Alice", p.Manager.Name)

	// Uploaded URLs keep the attachment order.
	require.Len(t, p.PhotoUrls, 2)
	require.Contains(t, p.PhotoUrls[0], "front.jpg")
	require.Contains(t, p.PhotoUrls[1], "kitchen.jpg")

	require.NotNil(t, p.Location)
	require.Equal(t, -89.65, p.Location.Coordinates.Longitude)
	require.Equal(t, 39.78, p.Location.Coordinates.Latitude)
}

func TestCreatePropertyInvalidNumericField(t *testing.T) {
	svc, propRepo, _, geocoder, storage := newPropertyServiceForTest()

	form := validCreateForm()
	form.PricePerMonth = "a lot"

	_, err := svc.Create(context.Background(), form, nil, "mgr-1")
	requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)

	// Parsing fails before any side effect.
	require.Zero(t, storage.calls)
	require.Zero(t, geocoder.calls)
	require.Zero(t, propRepo.createCalls)
}

func TestCreatePropertyInvalidPropertyType(t *testing.T) {
	svc, _, _, _, _ := newPropertyServiceForTest()

	form := validCreateForm()
	form.PropertyType = "Castle"

	_, err := svc.Create(context.Background(), form, nil, "mgr-1")
	requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)
}

func TestCreatePropertyUploadFailureSkipsPersistence(t *testing.T) {
	svc, propRepo, _, geocoder, storage := newPropertyServiceForTest()
	storage.err = utils.ErrStorageUploadFailed

	_, err := svc.Create(context.Background(), validCreateForm(), nil, "mgr-1")
	requireAppError(t, err, http.StatusBadGateway, utils.ErrCodeStorageUploadFailed)

	require.Zero(t, geocoder.calls, "geocoding must not run after a failed upload")
	require.Zero(t, propRepo.createCalls, "nothing may be written after a failed upload")
}

func TestCreatePropertyGeocodeNotFound(t *testing.T) {
	svc, propRepo, _, geocoder, _ := newPropertyServiceForTest()
	geocoder.err = utils.ErrGeocodeNotFound

	_, err := svc.Create(context.Background(), validCreateForm(), nil, "mgr-1")
	requireAppError(t, err, http.StatusUnprocessableEntity, utils.ErrCodeGeocodeNotFound)
	require.Zero(t, propRepo.createCalls)
}

func TestCreatePropertyGeocodeUpstreamFailure(t *testing.T) {
	svc, propRepo, _, geocoder, _ := newPropertyServiceForTest()
	geocoder.err = utils.ErrUpstreamUnavailable

	_, err := svc.Create(context.Background(), validCreateForm(), nil, "mgr-1")
	requireAppError(t, err, http.StatusBadGateway, utils.ErrCodeUpstreamUnavailable)
	require.Zero(t, propRepo.createCalls)
}

func TestCreatePropertyApproximateCoordinatesStored(t *testing.T) {
	svc, propRepo, _, geocoder, _ := newPropertyServiceForTest()
	geocoder.point = utils.Point{Approximate: true}

	p, err := svc.Create(context.Background(), validCreateForm(), nil, "mgr-1")
	require.NoError(t, err)
	require.Equal(t, 1, propRepo.createCalls)
	require.Zero(t, p.Location.Coordinates.Longitude)
	require.Zero(t, p.Location.Coordinates.Latitude)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _, _, _ := newPropertyServiceForTest()
	_, err := svc.GetByID(context.Background(), 42)
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}

func TestSearchAnnotatesDistanceOnGeoQueries(t *testing.T) {
	svc, propRepo, _, _, _ := newPropertyServiceForTest()
	propRepo.searchOut = []*models.Property{
		{
			ID: 1,
			Location: &models.Location{
				Coordinates: models.Coordinates{Longitude: -74.006, Latitude: 40.7128},
			},
		},
		{ID: 2}, // no location joined, left unannotated
	}

	lat, lng := 40.7128, -74.006
	props, err := svc.Search(context.Background(), repositories.PropertyFilter{Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)
	require.Len(t, props, 2)

	require.NotNil(t, props[0].DistanceMiles)
	require.InDelta(t, 0.0, *props[0].DistanceMiles, 1e-6, "same point is zero miles away")
	require.Nil(t, props[1].DistanceMiles)
}

func TestSearchWithoutCenterLeavesDistanceUnset(t *testing.T) {
	svc, propRepo, _, _, _ := newPropertyServiceForTest()
	propRepo.searchOut = []*models.Property{{
		ID:       1,
		Location: &models.Location{Coordinates: models.Coordinates{Longitude: 1, Latitude: 1}},
	}}

	props, err := svc.Search(context.Background(), repositories.PropertyFilter{})
	require.NoError(t, err)
	require.Nil(t, props[0].DistanceMiles)
}

func TestSearchEmptyResultIsNotNil(t *testing.T) {
	svc, _, _, _, _ := newPropertyServiceForTest()
	props, err := svc.Search(context.Background(), repositories.PropertyFilter{})
	require.NoError(t, err)
	require.NotNil(t, props)
	require.Empty(t, props)
}

func requireAppError(t *testing.T, err error, wantStatus int, wantCode string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok, "expected *utils.AppError, got %T: %v", err, err)
	require.Equal(t, wantStatus, appErr.StatusCode)
	require.Equal(t, wantCode, appErr.Code)
}
