package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/afero"
)

var (
	// ErrMediaNotFound is returned when no record exists for the requested id.
	ErrMediaNotFound = errors.New("media record not found")
	// ErrForbidden is returned when a non-admin touches another user's media.
	ErrForbidden = errors.New("not allowed to modify this media record")
)

// MediaReader defines read operations over one media table.
type MediaReader interface {
	List(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]models.MediaDB, error)
	Count(ctx context.Context, owner *uuid.UUID) (int64, error)
	GetByID(ctx context.Context, mediaID uuid.UUID) (*models.MediaDB, error)
}

// MediaRemover defines the delete operation over one media table.
type MediaRemover interface {
	Delete(ctx context.Context, mediaID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Listing page bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MediaService lists and deletes records of one media kind (images or
// videos), reconciling rows against the backing file store as pages
// are read.
type MediaService struct {
	kind        string
	reader      MediaReader
	remover     MediaRemover
	fs          afero.Fs
	dir         string
	kafkaWriter KafkaWriter
}

// NewMediaService creates a service for one media kind. dir is the
// directory holding that kind's files. kafkaWriter may be nil, which
// disables event publishing.
func NewMediaService(kind string, reader MediaReader, remover MediaRemover, fs afero.Fs, dir string, kafkaWriter KafkaWriter) *MediaService {
	return &MediaService{
		kind:        kind,
		reader:      reader,
		remover:     remover,
		fs:          fs,
		dir:         dir,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of records, newest capture first. Every record
// on the page is checked against the file store; rows whose file is
// gone are deleted, dropped from the page, and subtracted from the
// reported total. Records beyond the current page are not reconciled,
// so the total can still count stale rows on later pages.
func (svc *MediaService) List(ctx context.Context, owner *uuid.UUID, page, limit int) ([]models.MediaDB, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := (page - 1) * limit

	records, err := svc.reader.List(ctx, owner, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list media", "kind", svc.kind, "err", err)
		return nil, models.Pagination{}, err
	}

	total, err := svc.reader.Count(ctx, owner)
	if err != nil {
		logger.Log.Errorw("failed to count media", "kind", svc.kind, "err", err)
		return nil, models.Pagination{}, err
	}

	kept := records[:0]
	for i := range records {
		record := records[i]
		exists, err := afero.Exists(svc.fs, filepath.Join(svc.dir, record.Filename))
		if err != nil {
			// A probe failure is treated the same as an absent file.
			logger.Log.Errorw("file probe failed, treating as missing",
				"kind", svc.kind, "filename", record.Filename, "err", err)
			exists = false
		}
		if exists {
			kept = append(kept, record)
			continue
		}

		logger.Log.Infow("pruning stale media record",
			"kind", svc.kind, "media_id", record.MediaID, "filename", record.Filename)
		if err := svc.remover.Delete(ctx, record.MediaID); err != nil {
			logger.Log.Errorw("failed to prune stale media record",
				"kind", svc.kind, "media_id", record.MediaID, "err", err)
			return nil, models.Pagination{}, err
		}
		total--
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	pagination := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
	return kept, pagination, nil
}

// Delete removes a record and its backing file. Only the owner or an
// admin may delete. The file unlink is best-effort: a failure is
// logged and reported via the returned flag, and the row is removed
// regardless.
func (svc *MediaService) Delete(ctx context.Context, mediaID, requesterID uuid.UUID, isAdmin bool) (fileDeleted bool, err error) {
	record, err := svc.reader.GetByID(ctx, mediaID)
	if err != nil {
		logger.Log.Errorw("failed to get media record", "kind", svc.kind, "media_id", mediaID, "err", err)
		return false, err
	}
	if record == nil {
		return false, ErrMediaNotFound
	}

	if !isAdmin && record.OwnerUserID != requesterID {
		logger.Log.Errorw("delete forbidden",
			"kind", svc.kind, "media_id", mediaID, "owner", record.OwnerUserID, "requester", requesterID)
		return false, ErrForbidden
	}

	fileDeleted = true
	if err := svc.fs.Remove(filepath.Join(svc.dir, record.Filename)); err != nil {
		logger.Log.Errorw("failed to unlink media file",
			"kind", svc.kind, "filename", record.Filename, "err", err)
		fileDeleted = false
	}

	if err := svc.remover.Delete(ctx, mediaID); err != nil {
		logger.Log.Errorw("failed to delete media record", "kind", svc.kind, "media_id", mediaID, "err", err)
		return fileDeleted, err
	}

	publishMediaEvent(ctx, svc.kafkaWriter, svc.kind, record, "deleted")
	return fileDeleted, nil
}

// publishMediaEvent publishes a media event to Kafka. A nil writer
// disables publishing.
func publishMediaEvent(ctx context.Context, kafkaWriter KafkaWriter, kind string, record *models.MediaDB, operation string) {
	if kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing",
			"media_id", record.MediaID, "operation", operation)
		return
	}

	event := models.MediaEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		Operation:   operation,
		Kind:        kind,
		MediaID:     record.MediaID.String(),
		Filename:    record.Filename,
		OwnerUserID: record.OwnerUserID.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal media event", "media_id", record.MediaID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.MediaID),
		Value: data,
	}

	if err := kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish media event", "media_id", record.MediaID, "error", err)
	} else {
		logger.Log.Infow("media event published", "media_id", record.MediaID, "operation", operation)
	}
}
