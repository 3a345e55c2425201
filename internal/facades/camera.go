package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
)

// CaptureResult is the metadata returned by the camera service for a
// completed capture.
type CaptureResult struct {
	Success    bool                   `json:"success"`
	Filename   string                 `json:"filename"`
	Filepath   string                 `json:"filepath"`
	CapturedAt time.Time              `json:"capturedAt"`
	Exposure   float64                `json:"exposureTime"`
	Gain       float64                `json:"gain"`
	FileSize   int64                  `json:"fileSize"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// CameraHTTPFacade implements camera control against the external
// Pixelink camera service over HTTP.
type CameraHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewCameraHTTPFacade creates a new facade for the camera service.
func NewCameraHTTPFacade(baseURL string, timeout time.Duration) *CameraHTTPFacade {
	return &CameraHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Capture triggers an image capture. Nil exposure/gain keep the
// camera's current settings.
func (f *CameraHTTPFacade) Capture(ctx context.Context, exposure, gain *float64) (*CaptureResult, error) {
	body := map[string]*float64{
		"exposure": exposure,
		"gain":     gain,
	}

	var result CaptureResult
	if err := f.post(ctx, "/capture", body, &result); err != nil {
		logger.Log.Errorw("failed to capture via camera service", "error", err)
		return nil, err
	}

	return &result, nil
}

// GetSettings fetches the camera's current exposure and gain.
func (f *CameraHTTPFacade) GetSettings(ctx context.Context) (*models.CameraSettings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/settings", nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch camera settings", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera service returned status %d", resp.StatusCode)
	}

	var settings models.CameraSettings
	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateSettings pushes new exposure/gain values to the camera and
// returns the settings now in effect.
func (f *CameraHTTPFacade) UpdateSettings(ctx context.Context, exposure, gain *float64) (*models.CameraSettings, error) {
	body := map[string]*float64{
		"exposure": exposure,
		"gain":     gain,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, f.baseURL+"/settings", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to update camera settings", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera service returned status %d", resp.StatusCode)
	}

	var settings models.CameraSettings
	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (f *CameraHTTPFacade) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("camera service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
