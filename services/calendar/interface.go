package calendar

import (
	"context"

	"agendapro/models"
)

// SyncService mirrors confirmed bookings into an external calendar. Both
// operations are fire-and-forget from the booking flow's perspective: the
// caller logs a failure and keeps going, a sync outage never fails a booking.
type SyncService interface {
	// CreateEvent pushes the appointment and returns the external event ID.
	CreateEvent(ctx context.Context, appt *models.Appointment, serviceName string) (string, error)
	// DeleteEvent removes a previously created event.
	DeleteEvent(ctx context.Context, eventID string) error
}
