package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaDB represents an image or video record. The images and videos
// tables share this column shape; the repository decides which table
// a given instance is read from or written to.
type MediaDB struct {
	MediaID       uuid.UUID  `json:"id" db:"media_id"`                     // Primary key
	OwnerUserID   uuid.UUID  `json:"owner_user_id" db:"owner_user_id"`     // FK to users
	Filename      string     `json:"filename" db:"filename"`               // Unique file name on disk
	CapturedAt    time.Time  `json:"captured_at" db:"captured_at"`         // Capture timestamp
	PositionX     *float64   `json:"position_x" db:"position_x"`           // Stage position at capture
	PositionY     *float64   `json:"position_y" db:"position_y"`
	PositionZ     *float64   `json:"position_z" db:"position_z"`
	Exposure      *float64   `json:"exposure" db:"exposure"`               // Microseconds
	Gain          *float64   `json:"gain" db:"gain"`
	FileSizeBytes int64      `json:"file_size_bytes" db:"file_size_bytes"`
	Width         *int       `json:"width" db:"width"`
	Height        *int       `json:"height" db:"height"`
	Metadata      JSONMap    `json:"metadata" db:"metadata"`               // Free-form capture metadata
	JobID         *string    `json:"job_id" db:"job_id"`                   // External capture job reference
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// Pagination describes one page of a media listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}
