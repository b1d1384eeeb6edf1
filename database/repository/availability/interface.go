package availabilityRepo

import (
	"context"

	"agendapro/models"
)

// AvailabilityRepository defines data access for availability blocks.
type AvailabilityRepository interface {
	// Create inserts one block. A second active block with the same
	// (professional, day, start, end) is rejected with a conflict.
	Create(ctx context.Context, block *models.AvailabilityBlock) error
	// ListByProfessional returns all blocks ordered by day then start.
	ListByProfessional(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error)
	// ListForDay returns the active blocks for one weekday, ordered by start.
	ListForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]models.AvailabilityBlock, error)
	// Delete removes one block owned by the professional.
	Delete(ctx context.Context, professionalID, blockID string) error
	// ReplaceAll atomically swaps the professional's whole schedule for the
	// given set. Either the old schedule survives or the new one is in place.
	ReplaceAll(ctx context.Context, professionalID string, blocks []models.AvailabilityBlock) error
}
