package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const cameraSettingsKey = "camera:settings"

// CameraSettingsCacheRepository caches the external camera service's
// settings in Redis so that settings reads do not hit the camera
// service on every request.
type CameraSettingsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached settings
}

// NewCameraSettingsCacheRepository creates a new repository instance with a TTL.
func NewCameraSettingsCacheRepository(client *redis.Client, expiration time.Duration) *CameraSettingsCacheRepository {
	return &CameraSettingsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetSettings fetches the cached camera settings.
func (r *CameraSettingsCacheRepository) GetSettings(ctx context.Context) (*models.CameraSettings, error) {
	val, err := r.client.Get(ctx, cameraSettingsKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", cameraSettingsKey,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("camera settings not found in cache")
		}
		return nil, err
	}

	var settings models.CameraSettings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		logger.Log.Infow(
			"key", cameraSettingsKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	return &settings, nil
}

// SetSettings caches the camera settings with the configured TTL.
func (r *CameraSettingsCacheRepository) SetSettings(ctx context.Context, settings models.CameraSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, cameraSettingsKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", cameraSettingsKey,
		"value", string(data),
		"error", err,
	)

	return err
}
