// Package api implements the boardkit HTTP API.
//
// The API is a thin JSON layer over the placement engine, the board store,
// and the sharing flow. Requests are authenticated with a session cookie
// (see SessionCookie); the server can also run unauthenticated for local
// development, in which case every request acts as the mock local user.
//
// # Routes
//
//	GET    /healthz
//	GET    /api/boards
//	POST   /api/boards
//	GET    /api/boards/{boardID}
//	DELETE /api/boards/{boardID}
//	POST   /api/boards/{boardID}/arrange
//	POST   /api/boards/{boardID}/nodes
//	POST   /api/boards/{boardID}/nodes/{nodeID}/branch
//	PATCH  /api/boards/{boardID}/nodes/{nodeID}/resize
//	POST   /api/boards/{boardID}/nodes/{nodeID}/duplicate
//	POST   /api/boards/{boardID}/nodes/{nodeID}/share
//
// Errors are returned as {"error": {"code", "message"}} with the HTTP status
// derived from the error code.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/edenso/boardkit/pkg/engine"
	"github.com/edenso/boardkit/pkg/render"
	"github.com/edenso/boardkit/pkg/session"
	"github.com/edenso/boardkit/pkg/store"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "boardkit_session"

// Server holds the dependencies shared by all handlers.
type Server struct {
	boards   store.Store
	sessions session.Store
	engine   *engine.Engine
	logger   *log.Logger

	// shellsMu guards shells, one render cache per board so unchanged nodes
	// reuse their shells across requests.
	shellsMu sync.Mutex
	shells   map[string]*render.Cache

	// noAuth disables session checks; every request runs as session.MockLocal.
	noAuth bool
}

// Option configures a Server.
type Option func(*Server)

// WithoutAuth disables session authentication. Every request acts as the
// mock local user. Only for local development.
func WithoutAuth() Option {
	return func(s *Server) { s.noAuth = true }
}

// NewServer creates an API server. A nil sessions store is only valid
// together with WithoutAuth; a nil logger falls back to the default logger.
func NewServer(boards store.Store, sessions session.Store, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		boards:   boards,
		sessions: sessions,
		engine:   engine.New(logger),
		logger:   logger,
		shells:   make(map[string]*render.Cache),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Route("/boards", func(r chi.Router) {
			r.Get("/", s.handleListBoards)
			r.Post("/", s.handleCreateBoard)

			r.Route("/{boardID}", func(r chi.Router) {
				r.Get("/", s.handleGetBoard)
				r.Delete("/", s.handleDeleteBoard)
				r.Get("/shells", s.handleShells)
				r.Post("/arrange", s.handleArrange)

				r.Route("/nodes", func(r chi.Router) {
					r.Post("/", s.handleAppendNode)
					r.Post("/{nodeID}/branch", s.handleBranch)
					r.Patch("/{nodeID}/resize", s.handleResize)
					r.Post("/{nodeID}/duplicate", s.handleDuplicate)
					r.Post("/{nodeID}/share", s.handleShare)
				})
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
