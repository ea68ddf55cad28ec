package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Middleware tags each request with an ID, forces the JSON content type and
// logs the request once it has been served
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		zap.S().Infow("request served",
			"requestId", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
