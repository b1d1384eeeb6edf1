package studentRepo

import (
	"context"

	"agendapro/models"
)

// StudentRepository defines data access for a professional's student roster.
type StudentRepository interface {
	// Create inserts a student. A second row with the same
	// (professional, email) is rejected with a conflict by the unique index.
	Create(ctx context.Context, student *models.Student) error
	// FindByEmail looks a student up by (professional, email); returns nil
	// without error when no such student exists.
	FindByEmail(ctx context.Context, professionalID, email string) (*models.Student, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.Student, error)
	GetByID(ctx context.Context, professionalID, studentID string) (*models.Student, error)
	Update(ctx context.Context, professionalID string, student *models.Student) error
	Delete(ctx context.Context, professionalID, studentID string) error
}
