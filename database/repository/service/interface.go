package serviceRepo

import (
	"context"

	"agendapro/models"
)

// ServiceRepository defines data access for a professional's service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	// GetByID returns the service regardless of owner; used by the public
	// slot computation, which receives the professional separately.
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.Service, error)
	// ListActive returns only publicly bookable services.
	ListActive(ctx context.Context, professionalID string) ([]models.Service, error)
	Update(ctx context.Context, professionalID string, svc *models.Service) error
	Delete(ctx context.Context, professionalID, serviceID string) error
}
