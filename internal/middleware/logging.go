package api_middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Lutefd/travel-journal/internal/commons"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// RequestID makes sure every request carries an X-Request-ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(commons.RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set(commons.RequestIDHeader, rid)
		ctx := context.WithValue(r.Context(), requestIDKey{}, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromRequest(r *http.Request) string {
	if rid, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// RequestLogging logs each finished request with status and duration.
// 4xx responses are logged at warn level and 5xx at error level.
func RequestLogging(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []interface{}{
				"request_id", RequestIDFromRequest(r),
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"client_ip", clientIP(r),
				"user_id", UserIDFromContext(r.Context()),
			}

			switch {
			case status >= 500:
				logger.Errorw("request completed with server error", fields...)
			case status >= 400:
				logger.Warnw("request completed with client error", fields...)
			default:
				logger.Infow("request completed", fields...)
			}
		})
	}
}

// Recovery turns panics into 500 responses and logs the stack.
func Recovery(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Errorw("panic recovered",
						"request_id", RequestIDFromRequest(r),
						"panic", rec,
						"stack", string(debug.Stack()),
						"method", r.Method,
						"path", r.URL.Path,
					)
					commons.RespondWithJSON(w, http.StatusInternalServerError, map[string]string{
						"error":      "Internal server error",
						"request_id": RequestIDFromRequest(r),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
