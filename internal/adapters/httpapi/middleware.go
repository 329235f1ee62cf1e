package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

// NewIdentityMiddleware resolves the caller identity from the X-User-Id
// header and stores it in request context. There is no authentication
// boundary here: identity is an opaque caller-supplied token, and absent
// callers are treated as "guest".
func NewIdentityMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := domain.UserID(strings.TrimSpace(r.Header.Get("X-User-Id")))
			if user == "" {
				user = domain.GuestUser
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// NewRequestLogger logs each request as a structured line via slog,
// capturing method, path, status, duration, and the chi request ID.
//
// Wire it after chi's RequestID middleware so the request ID is available.
func NewRequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
