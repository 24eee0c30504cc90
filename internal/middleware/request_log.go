package middleware

import (
	"net/http"
	"time"

	"pet-care/internal/platform/logger"
	"pet-care/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog loguea cada request al terminar, con el request id de chi.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"method":      r.Method,
				"route":       metrics.RoutePattern(r),
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
				"remote_addr": r.RemoteAddr,
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error("request failed", fields)
			case status >= http.StatusBadRequest:
				log.Warn("request rejected", fields)
			default:
				log.Info("request completed", fields)
			}
		})
	}
}
