package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
)

// CameraSettingsManager defines the settings interface of the camera service.
type CameraSettingsManager interface {
	GetSettings(ctx context.Context) (*models.CameraSettings, error)
	UpdateSettings(ctx context.Context, exposure, gain *float64) (*models.CameraSettings, error)
}

// CameraSettingsRequest represents the JSON body for a settings update
// swagger:model CameraSettingsRequest
type CameraSettingsRequest struct {
	// Exposure in microseconds, unchanged when absent
	Exposure *float64 `json:"exposure"`

	// Gain value, unchanged when absent
	Gain *float64 `json:"gain"`
}

// NewCameraSettingsHandler returns an HTTP handler reading camera settings.
// @Summary Get camera settings
// @Description Returns the camera's current exposure and gain, served from cache when fresh.
// @Tags camera
// @Produce json
// @Success 200 {object} models.CameraSettings "Current settings"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Camera service unavailable"
// @Router /camera/settings [get]
// @Security BearerAuth
func NewCameraSettingsHandler(tokener Tokener, svc CameraSettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		settings, err := svc.GetSettings(r.Context())
		if err != nil {
			writeCameraError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(settings)
	}
}

// NewCameraSettingsUpdateHandler returns an HTTP handler updating camera settings.
// @Summary Update camera settings
// @Description Pushes new exposure/gain values to the camera service and returns the settings now in effect.
// @Tags camera
// @Accept json
// @Produce json
// @Param cameraSettingsRequest body handlers.CameraSettingsRequest true "Settings update"
// @Success 200 {object} models.CameraSettings "Settings in effect"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Camera service unavailable"
// @Router /camera/settings [put]
// @Security BearerAuth
func NewCameraSettingsUpdateHandler(tokener Tokener, svc CameraSettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req CameraSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		settings, err := svc.UpdateSettings(r.Context(), req.Exposure, req.Gain)
		if err != nil {
			writeCameraError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(settings)
	}
}

func writeCameraError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCameraUnavailable):
		writeError(w, http.StatusBadGateway, "Camera service unavailable")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
