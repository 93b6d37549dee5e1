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

type ManagerService struct {
	managerRepo repositories.ManagerRepository
	propRepo    repositories.PropertyRepository
}

func NewManagerService(managerRepo repositories.ManagerRepository, propRepo repositories.PropertyRepository) *ManagerService {
	return &ManagerService{managerRepo: managerRepo, propRepo: propRepo}
}

func (s *ManagerService) Get(ctx context.Context, cognitoID string) (*models.Manager, error) {
	m, err := s.managerRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, managerNotFound(cognitoID, utils.ErrNotFound)
	}
	return m, nil
}

func (s *ManagerService) Create(ctx context.Context, req dtos.CreateUserRequest) (*models.Manager, error) {
	m := &models.Manager{
		CognitoID:   req.CognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.managerRepo.Create(ctx, m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict,
				"Manager already exists", err)
		}
		return nil, err
	}
	return m, nil
}

func (s *ManagerService) Update(ctx context.Context, cognitoID string, req dtos.UpdateUserRequest) (*models.Manager, error) {
	m := &models.Manager{
		CognitoID:   cognitoID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.managerRepo.Update(ctx, m); err != nil {
		if err == pgx.ErrNoRows {
			return nil, managerNotFound(cognitoID, err)
		}
		return nil, err
	}
	return s.Get(ctx, cognitoID)
}

func (s *ManagerService) ListProperties(ctx context.Context, cognitoID string) ([]*models.Property, error) {
	m, err := s.managerRepo.GetByCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, managerNotFound(cognitoID, utils.ErrNotFound)
	}

	props, err := s.propRepo.ListByManagerCognitoID(ctx, cognitoID)
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []*models.Property{}
	}
	return props, nil
}

func managerNotFound(cognitoID string, err error) *utils.AppError {
	return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
		fmt.Sprintf("Manager %s not found", cognitoID), err)
}
