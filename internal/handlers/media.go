package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
)

// MediaLister defines the listing interface of the media service.
type MediaLister interface {
	List(ctx context.Context, owner *uuid.UUID, page, limit int) ([]models.MediaDB, models.Pagination, error)
}

// MediaDeleter defines the delete interface of the media service.
type MediaDeleter interface {
	Delete(ctx context.Context, mediaID, requesterID uuid.UUID, isAdmin bool) (bool, error)
}

// MediaListResponse represents one page of media records
// swagger:model MediaListResponse
type MediaListResponse struct {
	// Media records, newest capture first
	Data []models.MediaDB `json:"data"`

	// Paging information
	Pagination models.Pagination `json:"pagination"`
}

// MediaDeleteResponse represents the result of a media delete
// swagger:model MediaDeleteResponse
type MediaDeleteResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Media deleted
	Message string `json:"message"`

	// Whether the backing file was removed from disk
	// default: true
	FileDeleted bool `json:"file_deleted"`
}

// NewMediaListHandler returns an HTTP handler listing one media kind.
// Records whose backing file is gone are pruned as the page is read.
// @Summary List media records
// @Description Lists image or video records with paging. filter=mine (default) restricts to the caller's records, filter=all lists everyone's.
// @Tags media
// @Produce json
// @Param filter query string false "mine or all" default(mine)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} handlers.MediaListResponse "One page of records"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /images [get]
// @Security BearerAuth
func NewMediaListHandler(tokener Tokener, svc MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		var owner *uuid.UUID
		if r.URL.Query().Get("filter") != "all" {
			owner = &claims.UserID
		}

		records, pagination, err := svc.List(r.Context(), owner, page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MediaListResponse{
			Data:       records,
			Pagination: pagination,
		})
	}
}

// NewMediaDeleteHandler returns an HTTP handler deleting one record.
// @Summary Delete a media record
// @Description Removes a record and best-effort unlinks its file. Owner or admin only.
// @Tags media
// @Produce json
// @Param id path string true "Media record id"
// @Success 200 {object} handlers.MediaDeleteResponse "Record deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "No such record"
// @Router /images/{id} [delete]
// @Security BearerAuth
func NewMediaDeleteHandler(tokener Tokener, svc MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		mediaID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Media record not found")
			return
		}

		isAdmin := claims.Role == models.RoleAdmin
		fileDeleted, err := svc.Delete(r.Context(), mediaID, claims.UserID, isAdmin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMediaNotFound):
				writeError(w, http.StatusNotFound, "Media record not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Not allowed to delete this media record")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MediaDeleteResponse{
			Success:     true,
			Message:     "Media deleted",
			FileDeleted: fileDeleted,
		})
	}
}
