package models

import "time"

// TimeSlot is a candidate bookable interval, derived on demand and never
// persisted. Available is false when the slot overlaps a non-canceled
// appointment or has already started.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// SlotsResult is the full slot grid for one (professional, service, date).
// Occupied slots are included so the public page can render the whole day.
type SlotsResult struct {
	Date                   string     `json:"date"`
	ProfessionalID         string     `json:"professional_id"`
	ServiceDurationMinutes int        `json:"service_duration_minutes"`
	Slots                  []TimeSlot `json:"slots"`
}
