package availability

import (
	"context"
	"time"

	appointmentRepo "agendapro/database/repository/appointment"
	availabilityRepo "agendapro/database/repository/availability"
	serviceRepo "agendapro/database/repository/service"

	"agendapro/models"
)

// AvailabilityService manages weekly schedule blocks and generates the
// bookable slot grid for the public page.
type AvailabilityService interface {
	ListBlocks(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error)
	CreateBlock(ctx context.Context, professionalID string, in models.AvailabilityCreate) (*models.AvailabilityBlock, error)
	DeleteBlock(ctx context.Context, professionalID, blockID string) error
	// BulkReplace swaps the professional's entire weekly schedule.
	BulkReplace(ctx context.Context, professionalID string, in []models.AvailabilityCreate) ([]models.AvailabilityBlock, error)
	// ComputeSlots generates the slot grid for one calendar date, with
	// occupied and past slots marked unavailable.
	ComputeSlots(ctx context.Context, professionalID string, date time.Time, serviceID string) (*models.SlotsResult, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Blocks       availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Services     serviceRepo.ServiceRepository
	// Now returns the current instant; overridable so the slot grid stays
	// deterministic under test. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
