package calendar

import (
	"context"
	"strings"

	"agendapro/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoopSync stands in when no Google credentials are configured. It hands
// out synthetic event IDs so the rest of the flow behaves identically.
type NoopSync struct {
	Logger *zap.Logger
}

func (n *NoopSync) CreateEvent(_ context.Context, appt *models.Appointment, _ string) (string, error) {
	eventID := "gcal-local-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	n.Logger.Info("calendar sync disabled, issuing local event id",
		zap.String("eventID", eventID),
		zap.String("appointmentID", appt.ID))
	return eventID, nil
}

func (n *NoopSync) DeleteEvent(_ context.Context, eventID string) error {
	n.Logger.Info("calendar sync disabled, dropping event delete", zap.String("eventID", eventID))
	return nil
}
