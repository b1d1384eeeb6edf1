package models

import "time"

// Student is a professional-scoped contact record, deduplicated by
// (professionalId, email). Created lazily on a client's first booking.
type Student struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professional_id"`
	FullName       string    `bson:"fullName" json:"full_name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// StudentUpdate carries the optional fields of a roster edit. Only non-nil
// fields are applied.
type StudentUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
