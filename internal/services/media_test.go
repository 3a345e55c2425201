package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const mediaDir = "/data/captures"

func writeMediaFile(t *testing.T, fs afero.Fs, name string) {
	t.Helper()
	err := afero.WriteFile(fs, mediaDir+"/"+name, []byte("jpeg-bytes"), 0644)
	assert.NoError(t, err)
}

func mediaRecord(owner uuid.UUID, filename string, capturedAt time.Time) models.MediaDB {
	return models.MediaDB{
		MediaID:     uuid.New(),
		OwnerUserID: owner,
		Filename:    filename,
		CapturedAt:  capturedAt,
	}
}

func TestMediaService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMediaReader(ctrl)
	mockRemover := services.NewMockMediaRemover(ctrl)
	fs := afero.NewMemMapFs()

	svc := services.NewMediaService("images", mockReader, mockRemover, fs, mediaDir, nil)

	owner := uuid.New()
	now := time.Now()
	first := mediaRecord(owner, "capture_001.jpg", now)
	second := mediaRecord(owner, "capture_002.jpg", now.Add(-time.Minute))
	writeMediaFile(t, fs, first.Filename)
	writeMediaFile(t, fs, second.Filename)

	mockReader.EXPECT().
		List(gomock.Any(), &owner, 20, 0).
		Return([]models.MediaDB{first, second}, nil)
	mockReader.EXPECT().
		Count(gomock.Any(), &owner).
		Return(int64(2), nil)

	records, pagination, err := svc.List(context.Background(), &owner, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 20, Total: 2, TotalPages: 1}, pagination)
}

func TestMediaService_List_PrunesStaleRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMediaReader(ctrl)
	mockRemover := services.NewMockMediaRemover(ctrl)
	fs := afero.NewMemMapFs()

	svc := services.NewMediaService("images", mockReader, mockRemover, fs, mediaDir, nil)

	owner := uuid.New()
	now := time.Now()
	present := mediaRecord(owner, "capture_present.jpg", now)
	stale := mediaRecord(owner, "capture_stale.jpg", now.Add(-time.Minute))
	writeMediaFile(t, fs, present.Filename)
	// stale's file is intentionally never written

	mockReader.EXPECT().
		List(gomock.Any(), &owner, 20, 0).
		Return([]models.MediaDB{present, stale}, nil)
	mockReader.EXPECT().
		Count(gomock.Any(), &owner).
		Return(int64(2), nil)
	mockRemover.EXPECT().
		Delete(gomock.Any(), stale.MediaID).
		Return(nil)

	records, pagination, err := svc.List(context.Background(), &owner, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, present.MediaID, records[0].MediaID)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestMediaService_List_ClampsPageBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMediaReader(ctrl)
	mockRemover := services.NewMockMediaRemover(ctrl)

	svc := services.NewMediaService("images", mockReader, mockRemover, afero.NewMemMapFs(), mediaDir, nil)

	// page 0 and limit 0 fall back to page 1, default page size
	mockReader.EXPECT().
		List(gomock.Any(), nil, services.DefaultPageSize, 0).
		Return([]models.MediaDB{}, nil)
	mockReader.EXPECT().
		Count(gomock.Any(), nil).
		Return(int64(0), nil)

	_, pagination, err := svc.List(context.Background(), nil, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, services.DefaultPageSize, pagination.Limit)

	// oversized limit is clamped
	mockReader.EXPECT().
		List(gomock.Any(), nil, services.MaxPageSize, services.MaxPageSize).
		Return([]models.MediaDB{}, nil)
	mockReader.EXPECT().
		Count(gomock.Any(), nil).
		Return(int64(0), nil)

	_, pagination, err = svc.List(context.Background(), nil, 2, 1000)
	assert.NoError(t, err)
	assert.Equal(t, services.MaxPageSize, pagination.Limit)
}

func TestMediaService_Delete(t *testing.T) {
	owner := uuid.New()
	admin := uuid.New()
	stranger := uuid.New()

	record := mediaRecord(owner, "capture_del.jpg", time.Now())

	tests := []struct {
		name            string
		requester       uuid.UUID
		isAdmin         bool
		record          *models.MediaDB
		fileOnDisk      bool
		wantErr         error
		wantFileDeleted bool
	}{
		{
			name:            "owner deletes own media",
			requester:       owner,
			record:          &record,
			fileOnDisk:      true,
			wantFileDeleted: true,
		},
		{
			name:            "admin deletes another user's media",
			requester:       admin,
			isAdmin:         true,
			record:          &record,
			fileOnDisk:      true,
			wantFileDeleted: true,
		},
		{
			name:      "non-admin cannot delete another user's media",
			requester: stranger,
			record:    &record,
			wantErr:   services.ErrForbidden,
		},
		{
			name:      "record not found",
			requester: owner,
			wantErr:   services.ErrMediaNotFound,
		},
		{
			name:            "missing file is not fatal",
			requester:       owner,
			record:          &record,
			fileOnDisk:      false,
			wantFileDeleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockMediaReader(ctrl)
			mockRemover := services.NewMockMediaRemover(ctrl)
			fs := afero.NewMemMapFs()

			svc := services.NewMediaService("images", mockReader, mockRemover, fs, mediaDir, nil)

			if tt.fileOnDisk {
				writeMediaFile(t, fs, record.Filename)
			}

			mockReader.EXPECT().
				GetByID(gomock.Any(), record.MediaID).
				Return(tt.record, nil)

			if tt.record != nil && tt.wantErr == nil {
				mockRemover.EXPECT().
					Delete(gomock.Any(), record.MediaID).
					Return(nil)
			}

			fileDeleted, err := svc.Delete(context.Background(), record.MediaID, tt.requester, tt.isAdmin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFileDeleted, fileDeleted)

			if tt.fileOnDisk {
				exists, _ := afero.Exists(fs, mediaDir+"/"+record.Filename)
				assert.False(t, exists)
			}
		})
	}
}

func TestMediaService_Delete_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMediaReader(ctrl)
	mockRemover := services.NewMockMediaRemover(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	fs := afero.NewMemMapFs()

	svc := services.NewMediaService("videos", mockReader, mockRemover, fs, mediaDir, mockKafka)

	owner := uuid.New()
	record := mediaRecord(owner, "clip_001.mp4", time.Now())
	writeMediaFile(t, fs, record.Filename)

	mockReader.EXPECT().
		GetByID(gomock.Any(), record.MediaID).
		Return(&record, nil)
	mockRemover.EXPECT().
		Delete(gomock.Any(), record.MediaID).
		Return(nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	fileDeleted, err := svc.Delete(context.Background(), record.MediaID, owner, false)
	assert.NoError(t, err)
	assert.True(t, fileDeleted)
}

func TestMediaService_List_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMediaReader(ctrl)
	mockRemover := services.NewMockMediaRemover(ctrl)

	svc := services.NewMediaService("images", mockReader, mockRemover, afero.NewMemMapFs(), mediaDir, nil)

	mockReader.EXPECT().
		List(gomock.Any(), nil, 20, 0).
		Return(nil, errors.New("db error"))

	_, _, err := svc.List(context.Background(), nil, 1, 20)
	assert.EqualError(t, err, "db error")
}
