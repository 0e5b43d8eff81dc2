package web

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// withCurrentUser resolves the access-token cookie to a user and stores the
// result in the request context. Resolution is soft: a missing or invalid
// cookie simply leaves the request anonymous.
func (s *Server) withCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(common.AccessTokenCookieName); err == nil {
			token = cookie.Value
		}

		if user := s.users.CurrentUser(r.Context(), token); user != nil {
			r = r.WithContext(context.WithValue(r.Context(), currentUserKey, user))
		}

		next.ServeHTTP(w, r)
	})
}

// userFrom returns the authenticated user stored by withCurrentUser, or nil
// for anonymous requests.
func userFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(currentUserKey).(*models.User)
	return user
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs one line per request: method, path, status, duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
