package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
)

// CaptureTrigger defines the capture interface of the camera service.
type CaptureTrigger interface {
	Capture(ctx context.Context, ownerID uuid.UUID, exposure, gain *float64) (*models.MediaDB, error)
}

// CaptureRequest represents the JSON body for an image capture
// swagger:model CaptureRequest
type CaptureRequest struct {
	// Exposure in microseconds, camera default when absent
	Exposure *float64 `json:"exposure"`

	// Gain value, camera default when absent
	Gain *float64 `json:"gain"`
}

// NewCaptureHandler returns an HTTP handler triggering an image capture.
// @Summary Capture an image
// @Description Triggers a capture on the camera service and records the result as an image owned by the caller.
// @Tags camera
// @Accept json
// @Produce json
// @Param captureRequest body handlers.CaptureRequest true "Capture request"
// @Success 201 {object} models.MediaDB "Recorded capture"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Camera service unavailable"
// @Router /camera/capture [post]
// @Security BearerAuth
func NewCaptureHandler(tokener Tokener, svc CaptureTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req CaptureRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		record, err := svc.Capture(r.Context(), claims.UserID, req.Exposure, req.Gain)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCameraUnavailable):
				writeError(w, http.StatusBadGateway, "Camera service unavailable")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}
