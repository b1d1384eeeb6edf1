package catalog

import (
	"context"

	serviceRepo "agendapro/database/repository/service"

	"agendapro/models"
)

// CatalogService manages a professional's bookable services. Duration and
// price validation lives here; the slot engine assumes positive durations.
type CatalogService interface {
	Create(ctx context.Context, professionalID string, in models.ServiceCreate) (*models.Service, error)
	List(ctx context.Context, professionalID string) ([]models.Service, error)
	// ListPublic returns only active services, for the booking page.
	ListPublic(ctx context.Context, professionalID string) ([]models.Service, error)
	Get(ctx context.Context, professionalID, serviceID string) (*models.Service, error)
	Update(ctx context.Context, professionalID, serviceID string, in models.ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, professionalID, serviceID string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
