package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
)

type PositionReadRepository struct {
	db *sqlx.DB
}

func NewPositionReadRepository(db *sqlx.DB) *PositionReadRepository {
	return &PositionReadRepository{db: db}
}

// List returns all saved stage positions, oldest first.
func (r *PositionReadRepository) List(ctx context.Context) ([]models.PositionDB, error) {
	const query = `
		SELECT position_id, name, x, y, z, created_at, updated_at
		FROM positions
		ORDER BY created_at
	`

	positions := []models.PositionDB{}
	err := r.db.SelectContext(ctx, &positions, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(positions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return positions, nil
}

// GetByID returns the position with the given id, or nil when absent.
func (r *PositionReadRepository) GetByID(ctx context.Context, positionID uuid.UUID) (*models.PositionDB, error) {
	const query = `
		SELECT position_id, name, x, y, z, created_at, updated_at
		FROM positions
		WHERE position_id = $1
		LIMIT 1
	`

	var position models.PositionDB
	err := r.db.GetContext(ctx, &position, query, positionID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{positionID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &position, nil
}

type PositionWriteRepository struct {
	db *sqlx.DB
}

func NewPositionWriteRepository(db *sqlx.DB) *PositionWriteRepository {
	return &PositionWriteRepository{db: db}
}

// Save upserts a position by name.
func (r *PositionWriteRepository) Save(ctx context.Context, position *models.PositionDB) error {
	const query = `
		INSERT INTO positions (position_id, name, x, y, z, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE
		SET x = EXCLUDED.x,
		    y = EXCLUDED.y,
		    z = EXCLUDED.z,
		    updated_at = NOW()
	`
	args := []any{position.PositionID, position.Name, position.X, position.Y, position.Z}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{position.PositionID, position.Name},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a position by id and returns the number of rows removed.
func (r *PositionWriteRepository) Delete(ctx context.Context, positionID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM positions
		WHERE position_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, positionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{positionID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
