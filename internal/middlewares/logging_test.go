package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okulab/microscope-backend/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	var seenRequestID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID = middlewares.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	handler := middlewares.LoggingMiddleware(log)(next)

	r := httptest.NewRequest(http.MethodGet, "/images", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, seenRequestID)
	assert.Equal(t, seenRequestID, w.Header().Get("X-Request-ID"))
}
