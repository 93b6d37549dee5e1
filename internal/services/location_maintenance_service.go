package services

import (
	"context"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

// LocationMaintenanceService sweeps Location rows that no Property
// references. New writes cannot orphan a location (the inserts share a
// transaction), so anything the sweep finds predates that hardening.
type LocationMaintenanceService struct {
	locRepo repositories.LocationRepository
}

func NewLocationMaintenanceService(locRepo repositories.LocationRepository) *LocationMaintenanceService {
	return &LocationMaintenanceService{locRepo: locRepo}
}

func (s *LocationMaintenanceService) RunOrphanSweep(ctx context.Context) error {
	removed, err := s.locRepo.DeleteOrphans(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		utils.Logger.Infof("Orphan sweep removed %d location rows", removed)
	} else {
		utils.Logger.Debug("Orphan sweep found no orphaned locations")
	}
	return nil
}
