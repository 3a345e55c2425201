package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/password"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// ProfileReader reads user records by id.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileWriter persists user profile updates.
type ProfileWriter interface {
	Update(ctx context.Context, user *models.UserDB) error
}

// ProfileUpdate holds the optional fields of a profile update. Nil
// fields are left unchanged.
type ProfileUpdate struct {
	FullName    *string
	LabRole     *string
	Preferences models.JSONMap
	Password    *string
}

// ProfileService reads and updates user profiles.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
	hasher PasswordHasher
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter, hasher PasswordHasher) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		hasher: hasher,
	}
}

// Get returns the sanitized profile of the given user.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.SanitizedUser, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	sanitized := user.Sanitize()
	return &sanitized, nil
}

// Update applies a profile update and returns the sanitized result.
// A password value that already carries a bcrypt marker is stored
// as-is, so saving an already-hashed value never hashes it twice.
func (svc *ProfileService) Update(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*models.SanitizedUser, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if update.FullName != nil {
		user.FullName = update.FullName
	}
	if update.LabRole != nil {
		user.LabRole = update.LabRole
	}
	if update.Preferences != nil {
		user.Preferences = update.Preferences
	}
	if update.Password != nil {
		if len(*update.Password) < 6 {
			return nil, &ValidationError{Fields: map[string]string{
				"password": "must be at least 6 characters",
			}}
		}
		hash := *update.Password
		if !password.IsHashed(hash) {
			hash, err = svc.hasher.Hash(hash)
			if err != nil {
				logger.Log.Errorw("failed to hash password", "err", err)
				return nil, err
			}
		}
		user.PasswordHash = hash
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}

	sanitized := user.Sanitize()
	return &sanitized, nil
}
