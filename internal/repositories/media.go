package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
)

// Media table names. Fixed set; the table name is baked into the
// repository at construction and never comes from request input.
const (
	ImagesTable = "images"
	VideosTable = "videos"
)

const mediaColumns = `media_id, owner_user_id, filename, captured_at, position_x, position_y, position_z, exposure, gain, file_size_bytes, width, height, metadata, job_id, created_at`

type MediaReadRepository struct {
	db    *sqlx.DB
	table string
}

func NewMediaReadRepository(db *sqlx.DB, table string) *MediaReadRepository {
	return &MediaReadRepository{db: db, table: table}
}

// List returns one page of records ordered by capture time descending.
// A nil owner returns records for all users.
func (r *MediaReadRepository) List(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]models.MediaDB, error) {
	query := fmt.Sprintf(`
		SELECT `+mediaColumns+`
		FROM %s
		WHERE ($1::UUID IS NULL OR owner_user_id = $1)
		ORDER BY captured_at DESC
		LIMIT $2 OFFSET $3
	`, r.table)

	records := []models.MediaDB{}
	err := r.db.SelectContext(ctx, &records, query, owner, limit, offset)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{owner, limit, offset},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Count returns the total number of records matching the owner filter.
func (r *MediaReadRepository) Count(ctx context.Context, owner *uuid.UUID) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE ($1::UUID IS NULL OR owner_user_id = $1)
	`, r.table)

	var total int64
	err := r.db.GetContext(ctx, &total, query, owner)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{owner},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

// GetByID returns the record with the given id, or nil when absent.
func (r *MediaReadRepository) GetByID(ctx context.Context, mediaID uuid.UUID) (*models.MediaDB, error) {
	query := fmt.Sprintf(`
		SELECT `+mediaColumns+`
		FROM %s
		WHERE media_id = $1
		LIMIT 1
	`, r.table)

	var record models.MediaDB
	err := r.db.GetContext(ctx, &record, query, mediaID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

type MediaWriteRepository struct {
	db    *sqlx.DB
	table string
}

func NewMediaWriteRepository(db *sqlx.DB, table string) *MediaWriteRepository {
	return &MediaWriteRepository{db: db, table: table}
}

// Save inserts a new media record.
func (r *MediaWriteRepository) Save(ctx context.Context, record *models.MediaDB) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (media_id, owner_user_id, filename, captured_at, position_x, position_y, position_z, exposure, gain, file_size_bytes, width, height, metadata, job_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
	`, r.table)
	args := []any{
		record.MediaID, record.OwnerUserID, record.Filename, record.CapturedAt,
		record.PositionX, record.PositionY, record.PositionZ,
		record.Exposure, record.Gain, record.FileSizeBytes,
		record.Width, record.Height, record.Metadata, record.JobID,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{record.MediaID, record.Filename},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a record by id. Deleting an absent row is not an error.
func (r *MediaWriteRepository) Delete(ctx context.Context, mediaID uuid.UUID) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE media_id = $1
	`, r.table)

	res, err := r.db.ExecContext(ctx, query, mediaID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
