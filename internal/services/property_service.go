package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/umahmood/haversine"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/dtos"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

type PropertyService struct {
	propRepo    repositories.PropertyRepository
	managerRepo repositories.ManagerRepository
	geocoder    utils.Geocoder
	storage     utils.StorageClient
}

func NewPropertyService(
	propRepo repositories.PropertyRepository,
	managerRepo repositories.ManagerRepository,
	geocoder utils.Geocoder,
	storage utils.StorageClient,
) *PropertyService {
	return &PropertyService{
		propRepo:    propRepo,
		managerRepo: managerRepo,
		geocoder:    geocoder,
		storage:     storage,
	}
}

// Search answers a filtered listing query with a fresh read against the
// store. On geographic searches each hit is annotated with its crow-flies
// distance from the search center.
func (s *PropertyService) Search(ctx context.Context, filter repositories.PropertyFilter) ([]*models.Property, error) {
	props, err := s.propRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Latitude != nil && filter.Longitude != nil {
		center := haversine.Coord{Lat: *filter.Latitude, Lon: *filter.Longitude}
		for _, p := range props {
			if p.Location == nil {
				continue
			}
			mi, _ := haversine.Distance(center, haversine.Coord{
				Lat: p.Location.Coordinates.Latitude,
				Lon: p.Location.Coordinates.Longitude,
			})
			p.DistanceMiles = &mi
		}
	}

	if props == nil {
		props = []*models.Property{}
	}
	return props, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.propRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			fmt.Sprintf("Property %d not found", id), utils.ErrNotFound)
	}
	return p, nil
}

// Create runs the ingestion pipeline: upload photos, geocode the address,
// then insert Location and Property in one transaction. A failure at any
// stage aborts the rest and leaves no rows behind.
func (s *PropertyService) Create(
	ctx context.Context,
	form dtos.CreatePropertyForm,
	photos []utils.PhotoUpload,
	managerCognitoID string,
) (*models.Property, error) {
	prop, err := parsePropertyForm(form)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), err)
	}
	prop.ManagerCognitoID = managerCognitoID

	photoUrls, err := s.storage.UploadPhotos(ctx, photos)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadGateway, utils.ErrCodeStorageUploadFailed,
			"Failed to upload property photos", err)
	}
	prop.PhotoUrls = photoUrls

	point, err := s.geocoder.Geocode(ctx, utils.Address{
		Street:     form.Address,
		City:       form.City,
		State:      form.State,
		Country:    form.Country,
		PostalCode: form.PostalCode,
	})
	switch err {
	case nil:
	case utils.ErrGeocodeNotFound:
		return nil, utils.NewAppError(http.StatusUnprocessableEntity, utils.ErrCodeGeocodeNotFound,
			"No location found for the given address", err)
	default:
		return nil, utils.NewAppError(http.StatusBadGateway, utils.ErrCodeUpstreamUnavailable,
			"Geocoding service unavailable", err)
	}
	if point.Approximate {
		utils.Logger.Warnf("Geocoded %q, %q without usable coordinates; storing (0, 0)", form.Address, form.City)
	}

	loc := &models.Location{
		Address:    form.Address,
		City:       form.City,
		State:      form.State,
		Country:    form.Country,
		PostalCode: form.PostalCode,
		Coordinates: models.Coordinates{
			Longitude: point.Longitude,
			Latitude:  point.Latitude,
		},
	}

	if err := s.propRepo.CreateWithLocation(ctx, loc, prop); err != nil {
		return nil, err
	}

	mgr, err := s.managerRepo.GetByCognitoID(ctx, managerCognitoID)
	if err != nil {
		return nil, err
	}
	prop.Manager = mgr

	return prop, nil
}

func parsePropertyForm(form dtos.CreatePropertyForm) (*models.Property, error) {
	if !models.IsValidPropertyType(form.PropertyType) {
		return nil, fmt.Errorf("invalid propertyType %q", form.PropertyType)
	}

	price, err := strconv.ParseFloat(form.PricePerMonth, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pricePerMonth %q", form.PricePerMonth)
	}
	deposit, err := strconv.ParseFloat(form.SecurityDeposit, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid securityDeposit %q", form.SecurityDeposit)
	}
	fee, err := strconv.ParseFloat(form.ApplicationFee, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid applicationFee %q", form.ApplicationFee)
	}
	beds, err := strconv.Atoi(form.Beds)
	if err != nil {
		return nil, fmt.Errorf("invalid beds %q", form.Beds)
	}
	// baths may be fractional (1.5 baths)
	baths, err := strconv.ParseFloat(form.Baths, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid baths %q", form.Baths)
	}
	squareFeet, err := strconv.Atoi(form.SquareFeet)
	if err != nil {
		return nil, fmt.Errorf("invalid squareFeet %q", form.SquareFeet)
	}

	return &models.Property{
		Name:              form.Name,
		Description:       form.Description,
		PricePerMonth:     price,
		SecurityDeposit:   deposit,
		ApplicationFee:    fee,
		Amenities:         parseTagList(form.Amenities, models.ValidAmenities),
		Highlights:        parseTagList(form.Highlights, models.ValidHighlights),
		IsPetsAllowed:     form.IsPetsAllowed == "true",
		IsParkingIncluded: form.IsParkingIncluded == "true",
		Beds:              beds,
		Baths:             baths,
		SquareFeet:        squareFeet,
		PropertyType:      models.PropertyType(form.PropertyType),
	}, nil
}

// parseTagList splits a comma-joined tag string; an empty string yields an
// empty set and unknown tokens are dropped.
func parseTagList(raw string, valid map[string]bool) []string {
	if raw == "" {
		return []string{}
	}
	tokens := strings.Split(raw, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	return models.FilterValidTags(tokens, valid)
}
