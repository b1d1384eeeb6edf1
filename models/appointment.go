package models

import "time"

// Appointment statuses. Canceled is terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

// Appointment represents a booking. StartTime and EndTime are absolute
// instants normalized to UTC; the interval is half-open [StartTime, EndTime).
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professional_id"`
	ServiceID      string    `bson:"serviceId" json:"service_id"`
	StudentID      string    `bson:"studentId,omitempty" json:"student_id,omitempty"`
	ClientName     string    `bson:"clientName" json:"client_name"`
	ClientEmail    string    `bson:"clientEmail" json:"client_email"`
	StartTime      time.Time `bson:"startTime" json:"start_time"`
	EndTime        time.Time `bson:"endTime" json:"end_time"`
	Status         string    `bson:"status" json:"status"`
	GoogleEventID  string    `bson:"googleEventId,omitempty" json:"google_event_id,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// IntervalsOverlap is the single authoritative overlap test: two half-open
// intervals [aStart, aEnd) and [bStart, bEnd) overlap iff
// aStart < bEnd && aEnd > bStart. Both the slot grid and the pre-insert
// conflict check go through this, so a slot shown as free is bookable
// (absent a concurrent insert, which the storage layer rejects).
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Overlaps reports whether the appointment occupies any part of
// [start, end).
func (a Appointment) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(a.StartTime, a.EndTime, start, end)
}

// CanTransition reports whether a status change is allowed:
// pending → confirmed, pending → canceled, confirmed → canceled.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCanceled
	case StatusConfirmed:
		return to == StatusCanceled
	default:
		return false
	}
}

// AppointmentCreate defines the public booking payload. The client details
// feed the student find-or-create before the appointment row is written.
type AppointmentCreate struct {
	ProfessionalID string    `json:"professional_id" binding:"required"`
	ServiceID      string    `json:"service_id" binding:"required"`
	StudentName    string    `json:"student_name" binding:"required"`
	StudentEmail   string    `json:"student_email" binding:"required,email"`
	StudentPhone   string    `json:"student_phone,omitempty"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
}

// AppointmentStatusUpdate defines the payload for confirm/cancel.
type AppointmentStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
