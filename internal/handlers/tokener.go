package handlers

import (
	"context"
	"net/http"

	"github.com/okulab/microscope-backend/internal/jwt"
)

// Tokener extracts and decodes bearer tokens for protected handlers.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// requestClaims resolves the caller's claims, or writes 401 and
// returns nil.
func requestClaims(w http.ResponseWriter, r *http.Request, tokener Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		writeUnauthorized(w)
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		writeUnauthorized(w)
		return nil
	}

	return claims
}
