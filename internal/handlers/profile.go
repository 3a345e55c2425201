package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
)

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.SanitizedUser, error)
}

// ProfileUpdater applies profile updates.
type ProfileUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, update services.ProfileUpdate) (*models.SanitizedUser, error)
}

// ProfileUpdateRequest represents the JSON body for a profile update
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// Display name
	FullName *string `json:"full_name"`

	// Lab role label
	LabRole *string `json:"lab_role"`

	// Opaque UI preferences, replaces the stored map when present
	Preferences models.JSONMap `json:"preferences"`

	// New password, hashed before storage
	Password *string `json:"password"`
}

// NewProfileHandler returns an HTTP handler for fetching the caller's profile.
// @Summary Get own profile
// @Description Returns the authenticated user's sanitized record. The password hash is never included.
// @Tags profile
// @Produce json
// @Success 200 {object} models.SanitizedUser "Sanitized user record"
// @Failure 401 {object} handlers.ErrorResponse "Missing, invalid or expired token"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(tokener Tokener, svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		profile, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewProfileUpdateHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update own profile
// @Description Updates the mutable profile fields. Absent fields are left unchanged.
// @Tags profile
// @Accept json
// @Produce json
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile update request"
// @Success 200 {object} models.SanitizedUser "Updated sanitized user record"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Missing, invalid or expired token"
// @Router /profile [put]
// @Security BearerAuth
func NewProfileUpdateHandler(tokener Tokener, svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := svc.Update(r.Context(), claims.UserID, services.ProfileUpdate{
			FullName:    req.FullName,
			LabRole:     req.LabRole,
			Preferences: req.Preferences,
			Password:    req.Password,
		})
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeValidationError(w, validationErr)
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
