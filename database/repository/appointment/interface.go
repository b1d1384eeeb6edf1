package appointmentRepo

import (
	"context"
	"time"

	"agendapro/models"
)

// AppointmentRepository defines data access for appointments. The
// application-level availability check is a best-effort filter; CreateIfFree
// is the authoritative guard against double-booking.
type AppointmentRepository interface {
	// CreateIfFree inserts the appointment only if no non-canceled
	// appointment of the same professional overlaps its interval. Check and
	// insert run in one transaction; an overlap yields a conflict error.
	CreateIfFree(ctx context.Context, appt *models.Appointment) error
	// FindOverlapping returns non-canceled appointments of the professional
	// overlapping [start, end), optionally excluding one appointment ID.
	FindOverlapping(ctx context.Context, professionalID string, start, end time.Time, excludeID string) ([]models.Appointment, error)
	// ListForDay returns non-canceled appointments whose start falls within
	// [dayStart, dayEnd).
	ListForDay(ctx context.Context, professionalID string, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	// List returns the professional's appointments ordered by start time,
	// optionally filtered by status.
	List(ctx context.Context, professionalID, status string) ([]models.Appointment, error)
	// GetByID returns one appointment owned by the professional.
	GetByID(ctx context.Context, professionalID, apptID string) (*models.Appointment, error)
	// UpdateStatus sets the appointment status.
	UpdateStatus(ctx context.Context, professionalID, apptID, status string) error
	// SetGoogleEventID attaches the synced calendar event to the appointment.
	SetGoogleEventID(ctx context.Context, apptID, eventID string) error
}
