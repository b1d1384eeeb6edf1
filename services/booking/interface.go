package booking

import (
	"context"
	"time"

	appointmentRepo "agendapro/database/repository/appointment"
	serviceRepo "agendapro/database/repository/service"
	studentRepo "agendapro/database/repository/student"

	"agendapro/models"
	"agendapro/services/calendar"
)

// BookingService is the conflict guard around appointment writes plus the
// student roster that backs the find-or-create step.
type BookingService interface {
	// CheckAvailability returns a conflict error when any non-canceled
	// appointment of the professional overlaps [start, end). ExcludeID
	// skips one appointment, for reschedule flows.
	CheckAvailability(ctx context.Context, professionalID string, start, end time.Time, excludeID string) error
	// CreatePublicAppointment handles a booking from the public page:
	// validate, normalize to UTC, resolve the student, re-check the
	// interval, insert as pending, then best-effort calendar sync.
	CreatePublicAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error)
	ListAppointments(ctx context.Context, professionalID, status string) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, professionalID, apptID string) (*models.Appointment, error)
	// UpdateAppointmentStatus confirms or cancels. Canceled is terminal.
	UpdateAppointmentStatus(ctx context.Context, professionalID, apptID, status string) (*models.Appointment, error)

	// UpsertStudent finds the student by (professional, email) or creates
	// one; repeat bookings return the existing ID unchanged.
	UpsertStudent(ctx context.Context, professionalID, name, email, phone string) (string, error)
	ListStudents(ctx context.Context, professionalID string) ([]models.Student, error)
	GetStudent(ctx context.Context, professionalID, studentID string) (*models.Student, error)
	UpdateStudent(ctx context.Context, professionalID, studentID string, in models.StudentUpdate) (*models.Student, error)
	DeleteStudent(ctx context.Context, professionalID, studentID string) error
}

// ReminderScheduler enqueues a reminder for a future appointment.
type ReminderScheduler interface {
	Schedule(appt *models.Appointment) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Students     studentRepo.StudentRepository
	Services     serviceRepo.ServiceRepository
	Calendar     calendar.SyncService
	Reminders    ReminderScheduler // optional
}
