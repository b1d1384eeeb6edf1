package professional

import (
	"context"
	"strings"
	"time"
	"unicode"

	"agendapro/models"
	"agendapro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Signup registers a professional account with a bcrypt-hashed password and
// a unique public slug derived from the display name.
func (s *DefaultProfessionalService) Signup(ctx context.Context, in models.SignupRequest) (*models.Professional, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", utils.InternalError("failed to hash password")
	}

	prof := &models.Professional{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Slug:         slugify(in.FullName),
	}

	if err := s.Repo.Create(ctx, prof); err != nil {
		if utils.ErrorCode(err) == utils.CodeConflict {
			// Retry once with a suffixed slug in case the name collided
			// rather than the email.
			prof.Slug = prof.Slug + "-" + prof.ID[:8]
			if retryErr := s.Repo.Create(ctx, prof); retryErr != nil {
				return nil, "", retryErr
			}
		} else {
			return nil, "", err
		}
	}

	token, err := utils.GenerateToken(prof.ID, prof.Email, tokenTTL)
	if err != nil {
		return nil, "", utils.InternalError("failed to issue token")
	}

	utils.GetLogger().Info("professional registered",
		zap.String("professionalID", prof.ID), zap.String("slug", prof.Slug))
	return prof, token, nil
}

func (s *DefaultProfessionalService) Signin(ctx context.Context, in models.SigninRequest) (*models.Professional, string, error) {
	prof, err := s.Repo.GetByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		if utils.ErrorCode(err) == utils.CodeNotFound {
			return nil, "", utils.ValidationError("invalid email or password")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(prof.PasswordHash), []byte(in.Password)) != nil {
		return nil, "", utils.ValidationError("invalid email or password")
	}

	token, err := utils.GenerateToken(prof.ID, prof.Email, tokenTTL)
	if err != nil {
		return nil, "", utils.InternalError("failed to issue token")
	}
	return prof, token, nil
}

func (s *DefaultProfessionalService) GetProfile(ctx context.Context, professionalID string) (*models.Professional, error) {
	return s.Repo.GetByID(ctx, professionalID)
}

// UpdateProfile applies the non-nil fields of a profile edit.
func (s *DefaultProfessionalService) UpdateProfile(ctx context.Context, professionalID string, in models.ProfileUpdate) (*models.Professional, error) {
	prof, err := s.Repo.GetByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		prof.FullName = *in.FullName
	}
	if in.Bio != nil {
		prof.Bio = *in.Bio
	}
	if in.Phone != nil {
		prof.Phone = *in.Phone
	}

	if err := s.Repo.Update(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// GetPublicProfile returns the booking-page view: public fields plus the
// active services only.
func (s *DefaultProfessionalService) GetPublicProfile(ctx context.Context, slug string) (*models.PublicProfile, error) {
	prof, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	services, err := s.Services.ListActive(ctx, prof.ID)
	if err != nil {
		return nil, err
	}

	return &models.PublicProfile{
		ID:       prof.ID,
		FullName: prof.FullName,
		Slug:     prof.Slug,
		Bio:      prof.Bio,
		Services: services,
	}, nil
}

// slugify lowercases the name and keeps letters and digits, joining runs of
// anything else with single dashes.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
