package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	bkerrors "github.com/edenso/boardkit/pkg/errors"
	"github.com/edenso/boardkit/pkg/session"
)

// ctxKey is the type for context keys used in this package.
type ctxKey int

// sessionKey is the context key for the authenticated session.
const sessionKey ctxKey = 0

// sessionFromContext retrieves the authenticated session from ctx, or nil.
func sessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}

// authenticate resolves the session cookie into a session and stores it on
// the request context. With auth disabled, every request gets the mock
// local session.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.noAuth {
			ctx := context.WithValue(r.Context(), sessionKey, session.MockLocal())
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, bkerrors.New(bkerrors.ErrCodeUnauthorized, "not authenticated"))
			return
		}

		sess, err := s.sessions.Get(r.Context(), cookie.Value)
		switch {
		case errors.Is(err, session.ErrExpired):
			writeError(w, bkerrors.New(bkerrors.ErrCodeSessionExpired, "session expired"))
			return
		case err != nil:
			writeError(w, bkerrors.Wrap(bkerrors.ErrCodeStorage, err, "load session"))
			return
		case sess == nil:
			writeError(w, bkerrors.New(bkerrors.ErrCodeUnauthorized, "not authenticated"))
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests logs one line per request with method, path, status and
// duration. Debug level keeps routine traffic out of default output.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
