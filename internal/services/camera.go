package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/facades"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
)

var (
	// ErrCameraUnavailable is returned when the external camera service fails.
	ErrCameraUnavailable = errors.New("camera service unavailable")
)

// Capturer triggers captures on the external camera service.
type Capturer interface {
	Capture(ctx context.Context, exposure, gain *float64) (*facades.CaptureResult, error)
}

// CameraSettingsReader reads and updates settings on the external camera service.
type CameraSettingsReader interface {
	GetSettings(ctx context.Context) (*models.CameraSettings, error)
	UpdateSettings(ctx context.Context, exposure, gain *float64) (*models.CameraSettings, error)
}

// CameraSettingsCache caches camera settings.
type CameraSettingsCache interface {
	GetSettings(ctx context.Context) (*models.CameraSettings, error)
	SetSettings(ctx context.Context, settings models.CameraSettings) error
}

// MediaRecorder persists new media records.
type MediaRecorder interface {
	Save(ctx context.Context, record *models.MediaDB) error
}

// CameraService orchestrates captures and settings against the
// external camera service, recording completed captures as image rows.
type CameraService struct {
	camera      Capturer
	settings    CameraSettingsReader
	cache       CameraSettingsCache
	recorder    MediaRecorder
	kafkaWriter KafkaWriter
}

// NewCameraService creates a new CameraService. cache and kafkaWriter
// may be nil, disabling settings caching and event publishing.
func NewCameraService(
	camera Capturer,
	settings CameraSettingsReader,
	cache CameraSettingsCache,
	recorder MediaRecorder,
	kafkaWriter KafkaWriter,
) *CameraService {
	return &CameraService{
		camera:      camera,
		settings:    settings,
		cache:       cache,
		recorder:    recorder,
		kafkaWriter: kafkaWriter,
	}
}

// Capture triggers a capture, persists the returned metadata as an
// image record owned by ownerID, and publishes a captured event.
func (svc *CameraService) Capture(ctx context.Context, ownerID uuid.UUID, exposure, gain *float64) (*models.MediaDB, error) {
	result, err := svc.camera.Capture(ctx, exposure, gain)
	if err != nil {
		logger.Log.Errorw("capture failed", "err", err)
		return nil, ErrCameraUnavailable
	}

	capturedAt := result.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	width, height := result.Width, result.Height
	exposureVal, gainVal := result.Exposure, result.Gain
	record := &models.MediaDB{
		MediaID:       uuid.New(),
		OwnerUserID:   ownerID,
		Filename:      result.Filename,
		CapturedAt:    capturedAt,
		Exposure:      &exposureVal,
		Gain:          &gainVal,
		FileSizeBytes: result.FileSize,
		Width:         &width,
		Height:        &height,
		Metadata:      models.JSONMap(result.Metadata),
	}
	if record.Metadata == nil {
		record.Metadata = models.JSONMap{}
	}

	if err := svc.recorder.Save(ctx, record); err != nil {
		logger.Log.Errorw("failed to save capture record", "filename", result.Filename, "err", err)
		return nil, err
	}

	publishMediaEvent(ctx, svc.kafkaWriter, "images", record, "captured")
	return record, nil
}

// GetSettings returns the camera settings, preferring the cache and
// falling back to the camera service on a miss.
func (svc *CameraService) GetSettings(ctx context.Context) (*models.CameraSettings, error) {
	if svc.cache != nil {
		settings, err := svc.cache.GetSettings(ctx)
		if err == nil {
			return settings, nil
		}
	}

	settings, err := svc.settings.GetSettings(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read camera settings", "err", err)
		return nil, ErrCameraUnavailable
	}

	if svc.cache != nil {
		if err := svc.cache.SetSettings(ctx, *settings); err != nil {
			logger.Log.Errorw("failed to cache camera settings", "err", err)
		}
	}

	return settings, nil
}

// UpdateSettings pushes new settings to the camera service and
// refreshes the cache with the values now in effect.
func (svc *CameraService) UpdateSettings(ctx context.Context, exposure, gain *float64) (*models.CameraSettings, error) {
	settings, err := svc.settings.UpdateSettings(ctx, exposure, gain)
	if err != nil {
		logger.Log.Errorw("failed to update camera settings", "err", err)
		return nil, ErrCameraUnavailable
	}

	if svc.cache != nil {
		if err := svc.cache.SetSettings(ctx, *settings); err != nil {
			logger.Log.Errorw("failed to cache camera settings", "err", err)
		}
	}

	return settings, nil
}
