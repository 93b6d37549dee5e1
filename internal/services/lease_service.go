package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

type LeaseService struct {
	leaseRepo repositories.LeaseRepository
	propRepo  repositories.PropertyRepository
}

func NewLeaseService(leaseRepo repositories.LeaseRepository, propRepo repositories.PropertyRepository) *LeaseService {
	return &LeaseService{leaseRepo: leaseRepo, propRepo: propRepo}
}

func (s *LeaseService) List(ctx context.Context) ([]*models.Lease, error) {
	leases, err := s.leaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if leases == nil {
		leases = []*models.Lease{}
	}
	return leases, nil
}

func (s *LeaseService) ListForProperty(ctx context.Context, propertyID int64) ([]*models.Lease, error) {
	p, err := s.propRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			fmt.Sprintf("Property %d not found", propertyID), utils.ErrNotFound)
	}

	leases, err := s.leaseRepo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if leases == nil {
		leases = []*models.Lease{}
	}
	return leases, nil
}

func (s *LeaseService) ListPayments(ctx context.Context, leaseID int64) ([]*models.Payment, error) {
	payments, err := s.leaseRepo.ListPayments(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, nil
}
