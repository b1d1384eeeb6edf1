package professionalRepo

import (
	"context"

	"agendapro/models"
)

// ProfessionalRepository defines data access for professional accounts.
type ProfessionalRepository interface {
	// Create inserts a new account; duplicate email or slug is a conflict.
	Create(ctx context.Context, prof *models.Professional) error
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	// GetBySlug resolves the public booking page owner.
	GetBySlug(ctx context.Context, slug string) (*models.Professional, error)
	Update(ctx context.Context, prof *models.Professional) error
}
