package booking

import (
	"context"

	"agendapro/models"
	"agendapro/utils"

	"go.uber.org/zap"
)

// UpsertStudent looks up the student by (professional, email) and creates
// one on a miss. Repeat bookings keep the stored name and phone as-is. When
// two first-time bookings race, the unique index rejects the second insert
// and the loser re-reads the winner's row.
func (s *DefaultBookingService) UpsertStudent(ctx context.Context, professionalID, name, email, phone string) (string, error) {
	logger := utils.GetLogger()

	existing, err := s.Students.FindByEmail(ctx, professionalID, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		logger.Debug("existing student matched",
			zap.String("studentID", existing.ID), zap.String("email", email))
		return existing.ID, nil
	}

	student := &models.Student{
		ProfessionalID: professionalID,
		FullName:       name,
		Email:          email,
		Phone:          phone,
	}
	if err := s.Students.Create(ctx, student); err != nil {
		if utils.ErrorCode(err) == utils.CodeConflict {
			// Lost the race; the other booking inserted first.
			winner, findErr := s.Students.FindByEmail(ctx, professionalID, email)
			if findErr != nil {
				return "", findErr
			}
			if winner != nil {
				return winner.ID, nil
			}
		}
		return "", err
	}

	logger.Info("student created",
		zap.String("studentID", student.ID),
		zap.String("professionalID", professionalID),
		zap.String("email", email))
	return student.ID, nil
}

func (s *DefaultBookingService) ListStudents(ctx context.Context, professionalID string) ([]models.Student, error) {
	return s.Students.ListByProfessional(ctx, professionalID)
}

func (s *DefaultBookingService) GetStudent(ctx context.Context, professionalID, studentID string) (*models.Student, error) {
	return s.Students.GetByID(ctx, professionalID, studentID)
}

// UpdateStudent applies the non-nil fields of a roster edit.
func (s *DefaultBookingService) UpdateStudent(ctx context.Context, professionalID, studentID string, in models.StudentUpdate) (*models.Student, error) {
	student, err := s.Students.GetByID(ctx, professionalID, studentID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		student.FullName = *in.FullName
	}
	if in.Email != nil {
		student.Email = *in.Email
	}
	if in.Phone != nil {
		student.Phone = *in.Phone
	}

	if err := s.Students.Update(ctx, professionalID, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *DefaultBookingService) DeleteStudent(ctx context.Context, professionalID, studentID string) error {
	return s.Students.Delete(ctx, professionalID, studentID)
}
