package booking

import (
	"context"
	"time"

	"agendapro/utils"

	"go.uber.org/zap"
)

// CheckAvailability is the application-level pass of the overlap test. It
// shares its semantics with the slot grid (models.IntervalsOverlap), so a
// slot shown as free passes here. It is a best-effort filter: the
// authoritative guard is the transactional insert in the appointment
// repository, which re-runs the same test atomically.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, professionalID string, start, end time.Time, excludeID string) error {
	conflicts, err := s.Appointments.FindOverlapping(ctx, professionalID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		utils.GetLogger().Warn("booking conflict detected",
			zap.String("professionalID", professionalID),
			zap.String("conflictingID", conflicts[0].ID),
			zap.Time("start", conflicts[0].StartTime),
			zap.Time("end", conflicts[0].EndTime))
		return utils.ConflictError("time slot is no longer available, please pick another one")
	}
	return nil
}
