package models

import "time"

// Service defines a bookable offering. DurationMinutes drives the slot
// length on the public page; IsActive gates public visibility.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ProfessionalID  string    `bson:"professionalId" json:"professional_id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"duration_minutes"`
	Price           float64   `bson:"price" json:"price"`
	IsActive        bool      `bson:"isActive" json:"is_active"`
	CreatedAt       time.Time `bson:"createdAt" json:"created_at"`
}

// ServiceCreate defines the payload for creating a service.
type ServiceCreate struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
}

// ServiceUpdate carries the optional fields of a service edit. Only non-nil
// fields are applied.
type ServiceUpdate struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}
