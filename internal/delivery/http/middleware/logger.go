package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Logger logs each request and feeds the HTTP metrics.
func Logger(log *logger.Logger, m metrics.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			status := strconv.Itoa(rec.status)
			route := r.URL.Path

			m.IncrementHTTPRequests(r.Method, route, status)
			m.RecordHTTPRequestDuration(r.Method, route, status, duration)

			log.Info("HTTP request",
				slog.String("method", r.Method),
				slog.String("path", route),
				slog.Int("status", rec.status),
				slog.Duration("duration", duration))
		})
	}
}
