package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
)

// PositionLister defines the listing interface of the position service.
type PositionLister interface {
	List(ctx context.Context) ([]models.PositionDB, error)
}

// PositionSaver defines the save interface of the position service.
type PositionSaver interface {
	Save(ctx context.Context, name string, x, y, z float64) (*models.PositionDB, error)
}

// PositionDeleter defines the delete interface of the position service.
type PositionDeleter interface {
	Delete(ctx context.Context, positionID uuid.UUID) error
}

// PositionSaveRequest represents the JSON body for saving a stage position
// swagger:model PositionSaveRequest
type PositionSaveRequest struct {
	// Position name, unique per installation
	// required: true
	Name string `json:"name"`

	// Stage X coordinate
	X float64 `json:"x"`

	// Stage Y coordinate
	Y float64 `json:"y"`

	// Stage Z coordinate
	Z float64 `json:"z"`
}

// PositionDeleteResponse represents the result of a position delete
// swagger:model PositionDeleteResponse
type PositionDeleteResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Position deleted
	Message string `json:"message"`
}

// NewPositionListHandler returns an HTTP handler listing saved positions.
// @Summary List saved positions
// @Description Returns every saved stage position.
// @Tags positions
// @Produce json
// @Success 200 {array} models.PositionDB "Saved positions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /positions [get]
// @Security BearerAuth
func NewPositionListHandler(tokener Tokener, svc PositionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		positions, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if positions == nil {
			positions = []models.PositionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(positions)
	}
}

// NewPositionSaveHandler returns an HTTP handler saving a stage position.
// @Summary Save a position
// @Description Saves a named stage position. Saving an existing name replaces its coordinates.
// @Tags positions
// @Accept json
// @Produce json
// @Param positionSaveRequest body handlers.PositionSaveRequest true "Position to save"
// @Success 201 {object} models.PositionDB "Saved position"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /positions [post]
// @Security BearerAuth
func NewPositionSaveHandler(tokener Tokener, svc PositionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req PositionSaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		position, err := svc.Save(r.Context(), req.Name, req.X, req.Y, req.Z)
		if err != nil {
			var validationErr *services.ValidationError
			if errors.As(err, &validationErr) {
				writeValidationError(w, validationErr)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(position)
	}
}

// NewPositionDeleteHandler returns an HTTP handler deleting a saved position.
// @Summary Delete a position
// @Description Removes a saved stage position by id.
// @Tags positions
// @Produce json
// @Param id path string true "Position id" format(uuid)
// @Success 200 {object} handlers.PositionDeleteResponse "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Position not found"
// @Router /positions/{id} [delete]
// @Security BearerAuth
func NewPositionDeleteHandler(tokener Tokener, svc PositionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		positionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Position not found")
			return
		}

		if err := svc.Delete(r.Context(), positionID); err != nil {
			switch {
			case errors.Is(err, services.ErrPositionNotFound):
				writeError(w, http.StatusNotFound, "Position not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PositionDeleteResponse{
			Success: true,
			Message: "Position deleted",
		})
	}
}
