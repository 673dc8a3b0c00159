package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover converts panics into the generic error page. If the response has
// already started transmitting, the fault is logged and nothing more is
// written; a second response is never attempted.
func Recover(logger *slog.Logger, renderError func(w http.ResponseWriter)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"error", v,
					"stack", string(debug.Stack()),
				)
				if rec.started {
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				if renderError != nil {
					renderError(w)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
