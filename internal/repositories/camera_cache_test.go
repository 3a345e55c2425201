package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/okulab/microscope-backend/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCameraSettingsCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewCameraSettingsCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get settings", func(t *testing.T) {
		settings := models.CameraSettings{Exposure: 5000, Gain: 2.5}

		err := repo.SetSettings(ctx, settings)
		assert.NoError(t, err)

		got, err := repo.GetSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, settings, *got)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.SetSettings(ctx, models.CameraSettings{Exposure: 100, Gain: 1})
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.GetSettings(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "camera settings not found")
	})

	t.Run("Missing key returns error", func(t *testing.T) {
		rdb.Del(ctx, "camera:settings")

		_, err := repo.GetSettings(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "camera settings not found")
	})
}
