package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/jwt"
	"github.com/okulab/microscope-backend/internal/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokener := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))

	validToken, err := tokener.Generate(context.Background(), uuid.New(), "alice@example.com", "user")
	assert.NoError(t, err)

	expired := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(-time.Minute))
	expiredToken, err := expired.Generate(context.Background(), uuid.New(), "bob@example.com", "user")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
		wantNext   bool
	}{
		{name: "valid token", authHeader: "Bearer " + validToken, wantCode: http.StatusOK, wantNext: true},
		{name: "missing header", authHeader: "", wantCode: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.token", wantCode: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expiredToken, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewares.AuthMiddleware(tokener)(next)

			r := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
