package calendar

import (
	"context"
	"fmt"
	"time"

	"agendapro/models"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleSync pushes appointments into a Google Calendar.
type GoogleSync struct {
	service    *gcal.Service
	calendarID string
	logger     *zap.Logger
}

// NewGoogleSync builds an authenticated Google Calendar client from OAuth
// credentials plus a stored refresh token.
func NewGoogleSync(ctx context.Context, logger *zap.Logger, clientID, clientSecret, refreshToken, calendarID string) (*GoogleSync, error) {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	client := cfg.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})
	service, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleSync{service: service, calendarID: calendarID, logger: logger}, nil
}

func (g *GoogleSync) CreateEvent(ctx context.Context, appt *models.Appointment, serviceName string) (string, error) {
	summary := serviceName
	if summary == "" {
		summary = "Appointment"
	}
	event := &gcal.Event{
		Summary:     fmt.Sprintf("%s — %s", summary, appt.ClientName),
		Description: fmt.Sprintf("Booked via AgendaPro by %s (%s)", appt.ClientName, appt.ClientEmail),
		Start: &gcal.EventDateTime{
			DateTime: appt.StartTime.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: appt.EndTime.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	g.logger.Info("calendar event created",
		zap.String("eventID", created.Id),
		zap.String("appointmentID", appt.ID))
	return created.Id, nil
}

func (g *GoogleSync) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.service.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	g.logger.Info("calendar event deleted", zap.String("eventID", eventID))
	return nil
}
