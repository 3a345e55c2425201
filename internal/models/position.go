package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionDB represents a saved stage position.
type PositionDB struct {
	PositionID uuid.UUID `json:"id" db:"position_id"` // Primary key
	Name       string    `json:"name" db:"name"`      // Unique label
	X          float64   `json:"x" db:"x"`            // Stage coordinates
	Y          float64   `json:"y" db:"y"`
	Z          float64   `json:"z" db:"z"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
