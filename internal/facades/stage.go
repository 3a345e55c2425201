package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okulab/microscope-backend/internal/logger"
)

// LightState is the state of one GPIO-driven light channel on the
// stage controller.
type LightState struct {
	IsOn bool `json:"is_on"`
	Pin  int  `json:"pin"`
}

// ToggleResult is the stage controller's response to a toggle request.
type ToggleResult struct {
	Success bool   `json:"success"`
	IsOn    bool   `json:"is_on"`
	Pin     int    `json:"pin"`
	Message string `json:"message"`
}

// StageHTTPFacade talks to the Raspberry Pi stage controller, which
// exposes named light channels (led-lamp, relay, led-flr) over HTTP.
type StageHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewStageHTTPFacade creates a new facade for the stage controller.
func NewStageHTTPFacade(baseURL string, timeout time.Duration) *StageHTTPFacade {
	return &StageHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetLightState reads the current state of a light channel.
func (f *StageHTTPFacade) GetLightState(ctx context.Context, channel string) (*LightState, error) {
	url := fmt.Sprintf("%s/%s/state", f.baseURL, channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to read light state", "channel", channel, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stage service returned status %d", resp.StatusCode)
	}

	var state LightState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, err
	}

	return &state, nil
}

// ToggleLight flips a light channel on or off.
func (f *StageHTTPFacade) ToggleLight(ctx context.Context, channel string) (*ToggleResult, error) {
	url := fmt.Sprintf("%s/%s/toggle", f.baseURL, channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to toggle light", "channel", channel, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stage service returned status %d", resp.StatusCode)
	}

	var result ToggleResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
