package app

import (
	"net/http"
	"strconv"

	"github.com/vk/gridcalc/internal/ctxlog"
)

// withLogger attaches a request-scoped logger to the request context and
// tags the request with a sequential ID, echoed in X-Request-Id.
func (a *App) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strconv.FormatUint(a.requests.Add(1), 10)
		w.Header().Set("X-Request-Id", id)
		ctx := ctxlog.With(ctxlog.WithLogger(r.Context(), a.logger),
			"request_id", id, "method", r.Method, "path", r.URL.Path)
		ctxlog.FromContext(ctx).Debug("Request received.")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withCORS allows any origin and answers preflight requests directly.
func (a *App) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects requests beyond the token bucket with 429.
func (a *App) withRateLimit(next http.Handler) http.Handler {
	if a.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.limiter.Allow() {
			ctxlog.FromContext(r.Context()).Warn("Rate limit exceeded.", "remote_addr", r.RemoteAddr)
			writeJSON(w, http.StatusTooManyRequests, messageResponse{Message: msgTooMany})
			return
		}
		next.ServeHTTP(w, r)
	})
}
