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

func TestStageHTTPFacade_GetLightState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/led-lamp/state", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"is_on": true, "pin": 17})
	}))
	defer srv.Close()

	facade := NewStageHTTPFacade(srv.URL, 5*time.Second)

	state, err := facade.GetLightState(context.Background(), "led-lamp")
	assert.NoError(t, err)
	assert.True(t, state.IsOn)
	assert.Equal(t, 17, state.Pin)
}

func TestStageHTTPFacade_ToggleLight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/relay/toggle", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"is_on":   false,
			"pin":     27,
			"message": "relay turned off",
		})
	}))
	defer srv.Close()

	facade := NewStageHTTPFacade(srv.URL, 5*time.Second)

	result, err := facade.ToggleLight(context.Background(), "relay")
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.IsOn)
	assert.Equal(t, "relay turned off", result.Message)
}

func TestStageHTTPFacade_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gpio busy", http.StatusInternalServerError)
	}))
	defer srv.Close()

	facade := NewStageHTTPFacade(srv.URL, 5*time.Second)

	_, err := facade.GetLightState(context.Background(), "led-flr")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")

	_, err = facade.ToggleLight(context.Background(), "led-flr")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
