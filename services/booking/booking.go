package booking

import (
	"context"
	"fmt"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// calendarCallTimeout bounds the best-effort calendar calls so an external
// outage cannot stall or fail a booking.
const calendarCallTimeout = 5 * time.Second

// CreatePublicAppointment books a slot for an unauthenticated client.
func (s *DefaultBookingService) CreatePublicAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	logger := utils.GetLogger()

	// 1. Validate the interval before touching the datastore.
	if !in.StartTime.Before(in.EndTime) {
		return nil, utils.ValidationError("start_time must be before end_time")
	}

	// 2. Normalize to UTC.
	startUTC := in.StartTime.UTC()
	endUTC := in.EndTime.UTC()

	// 3. Resolve-or-create the student.
	studentID, err := s.UpsertStudent(ctx, in.ProfessionalID, in.StudentName, in.StudentEmail, in.StudentPhone)
	if err != nil {
		return nil, err
	}

	// 4. Best-effort pre-check against current state.
	if err := s.CheckAvailability(ctx, in.ProfessionalID, startUTC, endUTC, ""); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:             uuid.New().String(),
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		StudentID:      studentID,
		ClientName:     in.StudentName,
		ClientEmail:    in.StudentEmail,
		StartTime:      startUTC,
		EndTime:        endUTC,
		Status:         models.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	// 5. Authoritative conflict-checked insert.
	if err := s.Appointments.CreateIfFree(ctx, appt); err != nil {
		return nil, err
	}

	// 6. Calendar sync, fire-and-forget: a failure is logged and swallowed.
	s.syncCalendarEvent(appt)

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("professionalID", appt.ProfessionalID),
		zap.String("studentID", studentID),
		zap.Time("start", appt.StartTime))
	return appt, nil
}

// syncCalendarEvent pushes the appointment to the external calendar and
// attaches the event ID on success. Deliberately drops the error otherwise.
func (s *DefaultBookingService) syncCalendarEvent(appt *models.Appointment) {
	logger := utils.GetLogger()

	// Detached context: the booking is already committed, and a slow
	// calendar API must not inherit a nearly expired request deadline.
	ctx, cancel := context.WithTimeout(context.Background(), calendarCallTimeout)
	defer cancel()

	serviceName := ""
	if svc, err := s.Services.GetByID(ctx, appt.ServiceID); err == nil {
		serviceName = svc.Name
	}

	eventID, err := s.Calendar.CreateEvent(ctx, appt, serviceName)
	if err != nil {
		logger.Warn("calendar event creation failed, booking unaffected",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	if err := s.Appointments.SetGoogleEventID(ctx, appt.ID, eventID); err != nil {
		logger.Warn("failed to attach calendar event to appointment",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	appt.GoogleEventID = eventID
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context, professionalID, status string) ([]models.Appointment, error) {
	if status != "" && status != models.StatusPending && status != models.StatusConfirmed && status != models.StatusCanceled {
		return nil, utils.ValidationError(fmt.Sprintf("unknown status filter %q", status))
	}
	return s.Appointments.List(ctx, professionalID, status)
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, professionalID, apptID string) (*models.Appointment, error) {
	return s.Appointments.GetByID(ctx, professionalID, apptID)
}

// UpdateAppointmentStatus confirms or cancels an appointment. A canceled
// appointment never changes status again; cancellation removes the synced
// calendar event on a best-effort basis.
func (s *DefaultBookingService) UpdateAppointmentStatus(ctx context.Context, professionalID, apptID, status string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if status != models.StatusConfirmed && status != models.StatusCanceled {
		return nil, utils.ValidationError(fmt.Sprintf("status must be %q or %q", models.StatusConfirmed, models.StatusCanceled))
	}

	existing, err := s.Appointments.GetByID(ctx, professionalID, apptID)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.StatusCanceled {
		return nil, utils.ConflictError("canceled appointments cannot change status")
	}
	if !models.CanTransition(existing.Status, status) {
		return nil, utils.ConflictError(fmt.Sprintf("cannot change status from %q to %q", existing.Status, status))
	}

	if err := s.Appointments.UpdateStatus(ctx, professionalID, apptID, status); err != nil {
		return nil, err
	}
	existing.Status = status

	if status == models.StatusCanceled && existing.GoogleEventID != "" {
		callCtx, cancel := context.WithTimeout(context.Background(), calendarCallTimeout)
		defer cancel()
		if err := s.Calendar.DeleteEvent(callCtx, existing.GoogleEventID); err != nil {
			logger.Warn("calendar event deletion failed, cancellation unaffected",
				zap.String("appointmentID", apptID), zap.Error(err))
		}
	}

	logger.Info("appointment status updated",
		zap.String("appointmentID", apptID),
		zap.String("status", status))
	return existing, nil
}
