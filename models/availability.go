package models

import (
	"fmt"
	"time"
)

// AvailabilityBlock is a recurring weekly interval during which a
// professional accepts bookings. Times are stored as minutes from midnight
// (e.g., 480 for 8:00 AM); DayOfWeek uses 0=Sunday..6=Saturday.
type AvailabilityBlock struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professional_id"`
	DayOfWeek      int       `bson:"dayOfWeek" json:"day_of_week"`
	StartMinute    int       `bson:"startMinute" json:"start_minute"`
	EndMinute      int       `bson:"endMinute" json:"end_minute"`
	IsActive       bool      `bson:"isActive" json:"is_active"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// Label renders the block's range, e.g. "08:00 - 12:00".
func (b AvailabilityBlock) Label() string {
	return formatMinutes(b.StartMinute) + " - " + formatMinutes(b.EndMinute)
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AvailabilityCreate defines the payload for creating one block. Times come
// in as "HH:MM" strings from the dashboard.
type AvailabilityCreate struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// BulkReplaceRequest replaces a professional's entire weekly schedule at once.
type BulkReplaceRequest struct {
	Blocks []AvailabilityCreate `json:"blocks"`
}
