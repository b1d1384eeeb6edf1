package catalog

import (
	"context"

	"agendapro/models"
	"agendapro/utils"

	"go.uber.org/zap"
)

func (s *DefaultCatalogService) Create(ctx context.Context, professionalID string, in models.ServiceCreate) (*models.Service, error) {
	if in.DurationMinutes <= 0 {
		return nil, utils.ValidationError("duration_minutes must be positive")
	}
	if in.Price < 0 {
		return nil, utils.ValidationError("price must not be negative")
	}

	svc := &models.Service{
		ProfessionalID:  professionalID,
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		IsActive:        true,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("service created",
		zap.String("serviceID", svc.ID),
		zap.String("professionalID", professionalID),
		zap.Int("durationMinutes", svc.DurationMinutes))
	return svc, nil
}

func (s *DefaultCatalogService) List(ctx context.Context, professionalID string) ([]models.Service, error) {
	return s.Repo.ListByProfessional(ctx, professionalID)
}

func (s *DefaultCatalogService) ListPublic(ctx context.Context, professionalID string) ([]models.Service, error) {
	return s.Repo.ListActive(ctx, professionalID)
}

func (s *DefaultCatalogService) Get(ctx context.Context, professionalID, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ProfessionalID != professionalID {
		return nil, utils.NotFoundError("service not found")
	}
	return svc, nil
}

// Update applies the non-nil fields of a service edit.
func (s *DefaultCatalogService) Update(ctx context.Context, professionalID, serviceID string, in models.ServiceUpdate) (*models.Service, error) {
	svc, err := s.Get(ctx, professionalID, serviceID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.DurationMinutes != nil {
		if *in.DurationMinutes <= 0 {
			return nil, utils.ValidationError("duration_minutes must be positive")
		}
		svc.DurationMinutes = *in.DurationMinutes
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, utils.ValidationError("price must not be negative")
		}
		svc.Price = *in.Price
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := s.Repo.Update(ctx, professionalID, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, professionalID, serviceID string) error {
	return s.Repo.Delete(ctx, professionalID, serviceID)
}
