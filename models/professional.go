package models

import "time"

// Professional is the tenant: every other entity is owned by exactly one
// professional and scoped by its ID.
type Professional struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FullName     string    `bson:"fullName" json:"full_name"`
	Slug         string    `bson:"slug" json:"slug"` // public booking page path
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updated_at"`
}

// PublicProfile is the subset of a professional exposed on the public
// booking page.
type PublicProfile struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Slug     string    `json:"slug"`
	Bio      string    `json:"bio,omitempty"`
	Services []Service `json:"services"`
}

// SignupRequest defines the payload for professional registration.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// SigninRequest defines the payload for professional login.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate carries the optional fields of a profile edit. Only non-nil
// fields are applied.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
