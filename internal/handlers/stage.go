package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okulab/microscope-backend/internal/facades"
	"github.com/okulab/microscope-backend/internal/logger"
)

// StageLightController defines the light operations of the stage facade.
type StageLightController interface {
	GetLightState(ctx context.Context, channel string) (*facades.LightState, error)
	ToggleLight(ctx context.Context, channel string) (*facades.ToggleResult, error)
}

// lightChannels are the channels wired on the stage controller.
var lightChannels = map[string]bool{
	"led-lamp": true,
	"relay":    true,
	"led-flr":  true,
}

// NewStageLightStateHandler returns an HTTP handler reading a light channel.
// @Summary Get light state
// @Description Reads the on/off state of one stage light channel (led-lamp, relay or led-flr).
// @Tags stage
// @Produce json
// @Param channel path string true "Light channel" Enums(led-lamp, relay, led-flr)
// @Success 200 {object} facades.LightState "Channel state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown channel"
// @Failure 502 {object} handlers.ErrorResponse "Stage service unavailable"
// @Router /stage/light/{channel} [get]
// @Security BearerAuth
func NewStageLightStateHandler(tokener Tokener, stage StageLightController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		channel := chi.URLParam(r, "channel")
		if !lightChannels[channel] {
			writeError(w, http.StatusNotFound, "Unknown light channel")
			return
		}

		state, err := stage.GetLightState(r.Context(), channel)
		if err != nil {
			logger.Log.Errorw("stage request failed", "channel", channel, "err", err)
			writeError(w, http.StatusBadGateway, "Stage service unavailable")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(state)
	}
}

// NewStageLightToggleHandler returns an HTTP handler toggling a light channel.
// @Summary Toggle light
// @Description Flips one stage light channel and returns the state it ended up in.
// @Tags stage
// @Produce json
// @Param channel path string true "Light channel" Enums(led-lamp, relay, led-flr)
// @Success 200 {object} facades.ToggleResult "Toggle result"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown channel"
// @Failure 502 {object} handlers.ErrorResponse "Stage service unavailable"
// @Router /stage/light/{channel}/toggle [post]
// @Security BearerAuth
func NewStageLightToggleHandler(tokener Tokener, stage StageLightController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		channel := chi.URLParam(r, "channel")
		if !lightChannels[channel] {
			writeError(w, http.StatusNotFound, "Unknown light channel")
			return
		}

		result, err := stage.ToggleLight(r.Context(), channel)
		if err != nil {
			logger.Log.Errorw("stage request failed", "channel", channel, "err", err)
			writeError(w, http.StatusBadGateway, "Stage service unavailable")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
