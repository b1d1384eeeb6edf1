package availability

import (
	"context"
	"sort"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"go.uber.org/zap"
)

// ComputeSlots turns the professional's recurring weekly schedule plus the
// day's existing appointments into the full slot grid for one date.
//
// The cursor inside each block advances in steps of exactly the service
// duration; a final partial step that would overflow the block end is
// dropped. Overlapping blocks produce overlapping candidates on purpose.
// All candidates are emitted, occupied ones included, in chronological
// order, so the public page can render the whole day.
func (s *DefaultAvailabilityService) ComputeSlots(
	ctx context.Context,
	professionalID string,
	date time.Time,
	serviceID string,
) (*models.SlotsResult, error) {
	logger := utils.GetLogger()
	now := s.now().UTC()
	date = date.UTC()

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dayStart.Before(today) {
		return nil, utils.ValidationError("cannot compute slots for past dates")
	}

	// 1. Resolve the service duration; the step equals the duration.
	svc, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(svc.DurationMinutes) * time.Minute

	// 2. Active blocks for this weekday (0=Sunday..6=Saturday).
	dayOfWeek := utils.DayOfWeek(dayStart)
	blocks, err := s.Blocks.ListForDay(ctx, professionalID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	result := &models.SlotsResult{
		Date:                   dayStart.Format("2006-01-02"),
		ProfessionalID:         professionalID,
		ServiceDurationMinutes: svc.DurationMinutes,
		Slots:                  []models.TimeSlot{},
	}
	if len(blocks) == 0 {
		return result, nil
	}

	// 3. Non-canceled appointments whose start falls on this UTC day. A
	// failed lookup degrades to "no bookings" so a storage hiccup does not
	// blank the public page; the day may transiently show booked slots as
	// free, and the insert-time guard still rejects the conflict.
	dayEnd := dayStart.AddDate(0, 0, 1)
	booked, err := s.Appointments.ListForDay(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		logger.Error("ComputeSlots: appointments lookup failed, treating day as unbooked",
			zap.String("professionalID", professionalID),
			zap.String("date", result.Date),
			zap.Error(err))
		booked = nil
	}

	// 4. Walk each block, emitting one candidate per duration step.
	isToday := dayStart.Equal(today)
	for _, block := range blocks {
		blockEnd := dayStart.Add(time.Duration(block.EndMinute) * time.Minute)
		for cursor := dayStart.Add(time.Duration(block.StartMinute) * time.Minute); !cursor.Add(duration).After(blockEnd); cursor = cursor.Add(duration) {
			slot := models.TimeSlot{
				Start:     cursor,
				End:       cursor.Add(duration),
				Available: true,
			}
			for _, appt := range booked {
				if appt.Overlaps(slot.Start, slot.End) {
					slot.Available = false
					break
				}
			}
			// Slots that already started today are shown but not bookable.
			if isToday && !slot.Start.After(now) {
				slot.Available = false
			}
			result.Slots = append(result.Slots, slot)
		}
	}

	sort.SliceStable(result.Slots, func(i, j int) bool {
		return result.Slots[i].Start.Before(result.Slots[j].Start)
	})

	logger.Debug("ComputeSlots: slot grid generated",
		zap.String("professionalID", professionalID),
		zap.String("date", result.Date),
		zap.Int("slots", len(result.Slots)))

	return result, nil
}
