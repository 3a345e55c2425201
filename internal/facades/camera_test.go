package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCameraHTTPFacade_Capture(t *testing.T) {
	var gotBody map[string]*float64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/capture", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"filename":     "capture_20260830_120000.png",
			"filepath":     "/data/captures/capture_20260830_120000.png",
			"capturedAt":   "2026-08-30T12:00:00Z",
			"exposureTime": 5000.0,
			"gain":         2.5,
			"fileSize":     1048576,
			"width":        2048,
			"height":       1536,
			"metadata":     map[string]any{"binning": "1x1"},
		})
	}))
	defer srv.Close()

	facade := NewCameraHTTPFacade(srv.URL, 5*time.Second)

	exposure := 5000.0
	gain := 2.5
	result, err := facade.Capture(context.Background(), &exposure, &gain)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "capture_20260830_120000.png", result.Filename)
	assert.Equal(t, int64(1048576), result.FileSize)
	assert.Equal(t, 2048, result.Width)
	assert.Equal(t, "1x1", result.Metadata["binning"])

	assert.Equal(t, exposure, *gotBody["exposure"])
	assert.Equal(t, gain, *gotBody["gain"])
}

func TestCameraHTTPFacade_Capture_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "camera not connected", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	facade := NewCameraHTTPFacade(srv.URL, 5*time.Second)

	_, err := facade.Capture(context.Background(), nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestCameraHTTPFacade_Capture_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	facade := NewCameraHTTPFacade(srv.URL, time.Second)

	_, err := facade.Capture(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestCameraHTTPFacade_GetSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/settings", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]float64{"exposure": 5000, "gain": 2.5})
	}))
	defer srv.Close()

	facade := NewCameraHTTPFacade(srv.URL, 5*time.Second)

	settings, err := facade.GetSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5000.0, settings.Exposure)
	assert.Equal(t, 2.5, settings.Gain)
}

func TestCameraHTTPFacade_UpdateSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/settings", r.URL.Path)

		var body map[string]*float64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotNil(t, body["exposure"])
		assert.Nil(t, body["gain"])

		json.NewEncoder(w).Encode(map[string]float64{"exposure": *body["exposure"], "gain": 2.5})
	}))
	defer srv.Close()

	facade := NewCameraHTTPFacade(srv.URL, 5*time.Second)

	exposure := 10000.0
	settings, err := facade.UpdateSettings(context.Background(), &exposure, nil)
	assert.NoError(t, err)
	assert.Equal(t, 10000.0, settings.Exposure)
}
