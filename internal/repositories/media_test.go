package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func newMediaMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func mediaRows(records ...models.MediaDB) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"media_id", "owner_user_id", "filename", "captured_at",
		"position_x", "position_y", "position_z",
		"exposure", "gain", "file_size_bytes", "width", "height",
		"metadata", "job_id", "created_at",
	})
	for _, r := range records {
		rows.AddRow(
			r.MediaID, r.OwnerUserID, r.Filename, r.CapturedAt,
			r.PositionX, r.PositionY, r.PositionZ,
			r.Exposure, r.Gain, r.FileSizeBytes, r.Width, r.Height,
			[]byte(`{}`), r.JobID, r.CreatedAt,
		)
	}
	return rows
}

func TestMediaReadRepository_List(t *testing.T) {
	sqlxDB, mock := newMediaMockDB(t)
	repo := NewMediaReadRepository(sqlxDB, ImagesTable)

	ownerID := uuid.New()
	record := models.MediaDB{
		MediaID:     uuid.New(),
		OwnerUserID: ownerID,
		Filename:    "capture_001.png",
		CapturedAt:  time.Now().UTC(),
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectQuery("SELECT (.+) FROM images").
		WithArgs(&ownerID, 20, 0).
		WillReturnRows(mediaRows(record))

	records, err := repo.List(context.Background(), &ownerID, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, record.Filename, records[0].Filename)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaReadRepository_List_AllOwners(t *testing.T) {
	sqlxDB, mock := newMediaMockDB(t)
	repo := NewMediaReadRepository(sqlxDB, VideosTable)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WithArgs(nil, 20, 0).
		WillReturnRows(mediaRows())

	records, err := repo.List(context.Background(), nil, 20, 0)
	assert.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaReadRepository_Count(t *testing.T) {
	sqlxDB, mock := newMediaMockDB(t)
	repo := NewMediaReadRepository(sqlxDB, ImagesTable)

	ownerID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(&ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.Count(context.Background(), &ownerID)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaReadRepository_GetByID_Missing(t *testing.T) {
	sqlxDB, mock := newMediaMockDB(t)
	repo := NewMediaReadRepository(sqlxDB, ImagesTable)

	mediaID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM images").
		WithArgs(mediaID).
		WillReturnRows(mediaRows())

	record, err := repo.GetByID(context.Background(), mediaID)
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMediaMockDB(t)
	repo := NewMediaWriteRepository(sqlxDB, ImagesTable)

	record := &models.MediaDB{
		MediaID:     uuid.New(),
		OwnerUserID: uuid.New(),
		Filename:    "capture_001.png",
		CapturedAt:  time.Now().UTC(),
		Metadata:    models.JSONMap{},
	}

	mock.ExpectExec("INSERT INTO images").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), record)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaWriteRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMediaMockDB(t)
	repo := NewMediaWriteRepository(sqlxDB, VideosTable)

	mediaID := uuid.New()

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM videos").
			WithArgs(mediaID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), mediaID)
		assert.NoError(t, err)
	})

	t.Run("absent row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM videos").
			WithArgs(mediaID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), mediaID)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM videos").
			WithArgs(mediaID).
			WillReturnError(errors.New("connection reset"))

		err := repo.Delete(context.Background(), mediaID)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
