package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password string) (*services.AuthResult, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// default: jane_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful registration or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Signed bearer token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Sanitized user record
	User models.SanitizedUser `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email and username. The password is hashed before storing and an access token is issued immediately.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Email or username already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeValidationError(w, validationErr)
			case errors.Is(err, services.ErrEmailAlreadyExists),
				errors.Is(err, services.ErrUsernameAlreadyExists):
				writeError(w, http.StatusConflict, "Email or username already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AuthResponse{
			AccessToken: result.AccessToken,
			User:        result.User,
		})
	}
}
