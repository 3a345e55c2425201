package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
)

var (
	// ErrPositionNotFound is returned when no saved position exists for the id.
	ErrPositionNotFound = errors.New("position not found")
)

// PositionReader defines read operations for saved stage positions.
type PositionReader interface {
	List(ctx context.Context) ([]models.PositionDB, error)
}

// PositionWriter defines write operations for saved stage positions.
type PositionWriter interface {
	Save(ctx context.Context, position *models.PositionDB) error
	Delete(ctx context.Context, positionID uuid.UUID) (int64, error)
}

// PositionService manages saved stage positions.
type PositionService struct {
	reader PositionReader
	writer PositionWriter
}

// NewPositionService creates a new PositionService instance.
func NewPositionService(reader PositionReader, writer PositionWriter) *PositionService {
	return &PositionService{
		reader: reader,
		writer: writer,
	}
}

// List returns all saved positions.
func (svc *PositionService) List(ctx context.Context) ([]models.PositionDB, error) {
	positions, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list positions", "err", err)
		return nil, err
	}
	return positions, nil
}

// Save stores a named position, replacing the coordinates of an
// existing position with the same name.
func (svc *PositionService) Save(ctx context.Context, name string, x, y, z float64) (*models.PositionDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"name": "must not be empty",
		}}
	}

	position := &models.PositionDB{
		PositionID: uuid.New(),
		Name:       name,
		X:          x,
		Y:          y,
		Z:          z,
	}

	if err := svc.writer.Save(ctx, position); err != nil {
		logger.Log.Errorw("failed to save position", "name", name, "err", err)
		return nil, err
	}

	return position, nil
}

// Delete removes a saved position by id.
func (svc *PositionService) Delete(ctx context.Context, positionID uuid.UUID) error {
	removed, err := svc.writer.Delete(ctx, positionID)
	if err != nil {
		logger.Log.Errorw("failed to delete position", "position_id", positionID, "err", err)
		return err
	}
	if removed == 0 {
		return ErrPositionNotFound
	}
	return nil
}
