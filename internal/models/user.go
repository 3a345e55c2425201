package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values stored in the users.role column.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                 // Primary key
	Email        string    `json:"email" db:"email"`                // Unique email
	Username     string    `json:"username" db:"username"`          // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`            // Never serialized
	Role         string    `json:"role" db:"role"`                  // "admin" or "user"
	FullName     *string   `json:"full_name" db:"full_name"`        // Optional display name
	LabRole      *string   `json:"lab_role" db:"lab_role"`          // Optional lab role label
	Preferences  JSONMap   `json:"preferences" db:"preferences"`    // Opaque UI preferences
	CreatedAt    time.Time `json:"created_at" db:"created_at"`      // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`      // Last update timestamp
}

// SanitizedUser is the caller-facing user representation. The field set
// is an explicit allow-list; the password hash has no field here at all.
type SanitizedUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	FullName    *string   `json:"full_name,omitempty"`
	LabRole     *string   `json:"lab_role,omitempty"`
	Preferences JSONMap   `json:"preferences"`
}

// Sanitize returns the allow-listed view of the user.
func (u *UserDB) Sanitize() SanitizedUser {
	prefs := u.Preferences
	if prefs == nil {
		prefs = JSONMap{}
	}
	return SanitizedUser{
		ID:          u.UserID,
		Email:       u.Email,
		Username:    u.Username,
		Role:        u.Role,
		FullName:    u.FullName,
		LabRole:     u.LabRole,
		Preferences: prefs,
	}
}

// IsAdmin reports whether the user has the admin role.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin
}
