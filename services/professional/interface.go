package professional

import (
	"context"

	professionalRepo "agendapro/database/repository/professional"
	serviceRepo "agendapro/database/repository/service"

	"agendapro/models"
)

// ProfessionalService manages accounts and the public profile that fronts
// the booking page.
type ProfessionalService interface {
	// Signup registers an account and returns it with a signed token.
	Signup(ctx context.Context, in models.SignupRequest) (*models.Professional, string, error)
	// Signin verifies credentials and returns the account with a signed token.
	Signin(ctx context.Context, in models.SigninRequest) (*models.Professional, string, error)
	GetProfile(ctx context.Context, professionalID string) (*models.Professional, error)
	UpdateProfile(ctx context.Context, professionalID string, in models.ProfileUpdate) (*models.Professional, error)
	// GetPublicProfile resolves a booking-page slug to the public view.
	GetPublicProfile(ctx context.Context, slug string) (*models.PublicProfile, error)
}

// DefaultProfessionalService implements ProfessionalService.
type DefaultProfessionalService struct {
	Repo     professionalRepo.ProfessionalRepository
	Services serviceRepo.ServiceRepository
}
