package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/you-humble/parts-inventory/platform/logger"
)

const RequestIDHeader = "X-Request-ID"

// Logging tags every request with an id, taken from the X-Request-ID header
// when present, and logs method, route, status and duration once the
// handler returns.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		ctx := logger.WithContextFields(r.Context(), logger.String("request_id", reqID))
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Duration("dur", time.Since(start)),
		}

		if status >= http.StatusInternalServerError {
			logger.Error(ctx, "http request", fields...)
			return
		}
		logger.Info(ctx, "http request", fields...)
	})
}
