package service

import (
	"context"

	"tridash/internal/domain"
	"tridash/internal/redis"
	"tridash/internal/repository"
)

// DriverModerationService handles driver onboarding and moderation actions.
type DriverModerationService struct {
	driverRepo  repository.DriverRepository
	vehicleRepo repository.VehicleRepository
	cacheStore  redis.CacheStoreInterface
}

// NewDriverModerationService creates a new DriverModerationService.
// cacheStore may be nil; when set, moderation writes invalidate the
// dashboard overview snapshot.
func NewDriverModerationService(
	driverRepo repository.DriverRepository,
	vehicleRepo repository.VehicleRepository,
	cacheStore redis.CacheStoreInterface,
) *DriverModerationService {
	return &DriverModerationService{
		driverRepo:  driverRepo,
		vehicleRepo: vehicleRepo,
		cacheStore:  cacheStore,
	}
}

// DriverDetail bundles a driver with their registered vehicles.
type DriverDetail struct {
	Driver   *domain.Driver
	Vehicles []*domain.DriverVehicle
}

// GetDriver returns a driver with their vehicles.
func (s *DriverModerationService) GetDriver(ctx context.Context, driverID string) (*DriverDetail, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.GetByDriverID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return &DriverDetail{Driver: driver, Vehicles: vehicles}, nil
}

// ListDrivers returns all drivers.
func (s *DriverModerationService) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}

// Approve marks a driver as approved and verified, clearing any rejection.
func (s *DriverModerationService) Approve(ctx context.Context, driverID string) error {
	if driverID == "" {
		return ErrInvalidDriverID
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return err
	}

	err = s.driverRepo.SetDisposition(ctx, driverID,
		true, false, driver.Suspended, domain.VerificationVerified)
	if err != nil {
		return err
	}

	s.invalidateOverview(ctx)
	return nil
}

// Reject marks a driver as rejected, clearing approval.
func (s *DriverModerationService) Reject(ctx context.Context, driverID string) error {
	if driverID == "" {
		return ErrInvalidDriverID
	}

	err := s.driverRepo.SetDisposition(ctx, driverID,
		false, true, false, domain.VerificationRejected)
	if err != nil {
		return err
	}

	s.invalidateOverview(ctx)
	return nil
}

// Suspend marks a driver as suspended. Approval is deliberately retained:
// suspension is an override, and reinstating must restore the old standing.
func (s *DriverModerationService) Suspend(ctx context.Context, driverID string) error {
	if driverID == "" {
		return ErrInvalidDriverID
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return err
	}
	if driver.Suspended {
		return ErrDriverAlreadySuspended
	}

	err = s.driverRepo.SetDisposition(ctx, driverID,
		driver.Approved, driver.Rejected, true, driver.VerificationStatus)
	if err != nil {
		return err
	}

	s.invalidateOverview(ctx)
	return nil
}

// Reinstate lifts a suspension, restoring the driver's prior disposition.
func (s *DriverModerationService) Reinstate(ctx context.Context, driverID string) error {
	if driverID == "" {
		return ErrInvalidDriverID
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return err
	}
	if !driver.Suspended {
		return ErrDriverNotSuspended
	}

	err = s.driverRepo.SetDisposition(ctx, driverID,
		driver.Approved, driver.Rejected, false, driver.VerificationStatus)
	if err != nil {
		return err
	}

	s.invalidateOverview(ctx)
	return nil
}

func (s *DriverModerationService) invalidateOverview(ctx context.Context) {
	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateOverview(ctx)
	}
}
