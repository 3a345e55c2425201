package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/facades"
	"github.com/okulab/microscope-backend/internal/jwt"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStageLightStateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		channel      string
		setupMocks   func(tokener *MockTokener, stage *MockStageLightController)
		expectedCode int
	}{
		{
			name:    "led lamp state",
			channel: "led-lamp",
			setupMocks: func(tokener *MockTokener, stage *MockStageLightController) {
				expectTokenerClaims(tokener, &jwt.Claims{UserID: userID, Role: models.RoleUser})
				stage.EXPECT().
					GetLightState(gomock.Any(), "led-lamp").
					Return(&facades.LightState{IsOn: true, Pin: 17}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "unknown channel",
			channel: "laser",
			setupMocks: func(tokener *MockTokener, stage *MockStageLightController) {
				expectTokenerClaims(tokener, &jwt.Claims{UserID: userID, Role: models.RoleUser})
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "stage service down",
			channel: "relay",
			setupMocks: func(tokener *MockTokener, stage *MockStageLightController) {
				expectTokenerClaims(tokener, &jwt.Claims{UserID: userID, Role: models.RoleUser})
				stage.EXPECT().
					GetLightState(gomock.Any(), "relay").
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockStage := NewMockStageLightController(ctrl)
			tt.setupMocks(mockTokener, mockStage)

			router := chi.NewRouter()
			router.Get("/stage/light/{channel}", NewStageLightStateHandler(mockTokener, mockStage))

			req := httptest.NewRequest(http.MethodGet, "/stage/light/"+tt.channel, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp facades.LightState
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.IsOn)
				assert.Equal(t, 17, resp.Pin)
			}
		})
	}
}

func TestStageLightToggleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("toggles a known channel", func(t *testing.T) {
		mockTokener := NewMockTokener(ctrl)
		mockStage := NewMockStageLightController(ctrl)
		expectTokenerClaims(mockTokener, &jwt.Claims{UserID: userID, Role: models.RoleUser})
		mockStage.EXPECT().
			ToggleLight(gomock.Any(), "led-flr").
			Return(&facades.ToggleResult{Success: true, IsOn: false, Pin: 27, Message: "led-flr turned off"}, nil)

		router := chi.NewRouter()
		router.Post("/stage/light/{channel}/toggle", NewStageLightToggleHandler(mockTokener, mockStage))

		req := httptest.NewRequest(http.MethodPost, "/stage/light/led-flr/toggle", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp facades.ToggleResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.False(t, resp.IsOn)
	})

	t.Run("unknown channel is rejected before the facade", func(t *testing.T) {
		mockTokener := NewMockTokener(ctrl)
		mockStage := NewMockStageLightController(ctrl)
		expectTokenerClaims(mockTokener, &jwt.Claims{UserID: userID, Role: models.RoleUser})

		router := chi.NewRouter()
		router.Post("/stage/light/{channel}/toggle", NewStageLightToggleHandler(mockTokener, mockStage))

		req := httptest.NewRequest(http.MethodPost, "/stage/light/heater/toggle", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
