package models

// CameraSettings mirrors the settings exposed by the external camera service.
type CameraSettings struct {
	Exposure float64 `json:"exposure"` // Microseconds
	Gain     float64 `json:"gain"`
}
