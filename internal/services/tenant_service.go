package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/dtos"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

const pgUniqueViolation = "23505"

type TenantService struct {
	tenantRepo repositories.TenantRepository
	propRepo   repositories.PropertyRepository
}

func NewTenantService(tenantRepo repositories.TenantRepository, propRepo repositories.PropertyRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, propRepo: propRepo}
}

func (s *TenantService) Get(ctx context.Context, cognitoID string) (*models.Tenant, error) {
	return s.getWithFavorites(ctx, cognitoID)
}

func (s *TenantService) Create(ctx context.Context, req dtos.CreateUserRequest) (*models.Tenant, error) {
	t := &models.Tenant{
		CognitoID:   req.CognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.tenantRepo.Create(ctx, t); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict,
				"Tenant already exists", err)
		}
		return nil, err
	}
	return t, nil
}

func (s *TenantService) Update(ctx context.Context, cognitoID string, req dtos.UpdateUserRequest) (*models.Tenant, error) {
	t := &models.Tenant{
		CognitoID:   cognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.tenantRepo.Update(ctx, t); err != nil {
		if err == pgx.ErrNoRows {
			return nil, tenantNotFound(cognitoID, err)
		}
		return nil, err
	}
	return s.getWithFavorites(ctx, cognitoID)
}

func (s *TenantService) CurrentResidences(ctx context.Context, cognitoID string) ([]*models.Property, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tenantNotFound(cognitoID, utils.ErrNotFound)
	}
	props, err := s.tenantRepo.ListCurrentResidences(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []*models.Property{}
	}
	return props, nil
}

// AddFavorite is strict: favoriting an already-favorited property is a
// conflict, not a silent success.
func (s *TenantService) AddFavorite(ctx context.Context, cognitoID string, propertyID int64) (*models.Tenant, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tenantNotFound(cognitoID, utils.ErrNotFound)
	}

	prop, err := s.propRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			fmt.Sprintf("Property %d not found", propertyID), utils.ErrNotFound)
	}

	present, err := s.tenantRepo.HasFavorite(ctx, t.ID, propertyID)
	if err != nil {
		return nil, err
	}
	if present {
		return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict,
			"Property already added as favorite", utils.ErrAlreadyFavorited)
	}

	if err := s.tenantRepo.AddFavorite(ctx, t.ID, propertyID); err != nil {
		return nil, err
	}
	return s.getWithFavorites(ctx, cognitoID)
}

// RemoveFavorite makes no existence check on the favorite itself; removing
// an absent favorite succeeds. The asymmetry with AddFavorite is the
// documented behavior.
func (s *TenantService) RemoveFavorite(ctx context.Context, cognitoID string, propertyID int64) (*models.Tenant, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tenantNotFound(cognitoID, utils.ErrNotFound)
	}

	if err := s.tenantRepo.RemoveFavorite(ctx, t.ID, propertyID); err != nil {
		return nil, err
	}
	return s.getWithFavorites(ctx, cognitoID)
}

func (s *TenantService) getWithFavorites(ctx context.Context, cognitoID string) (*models.Tenant, error) {
	t, err := s.tenantRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tenantNotFound(cognitoID, utils.ErrNotFound)
	}

	favs, err := s.tenantRepo.ListFavorites(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []*models.Property{}
	}
	t.Favorites = favs
	return t, nil
}

func tenantNotFound(cognitoID string, err error) *utils.AppError {
	return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
		fmt.Sprintf("Tenant %s not found", cognitoID), err)
}
