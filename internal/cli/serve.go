package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/edenso/boardkit/internal/api"
	"github.com/edenso/boardkit/pkg/observability"
	"github.com/edenso/boardkit/pkg/session"
	"github.com/edenso/boardkit/pkg/store"
)

// =============================================================================
// Configuration
// =============================================================================

// serveConfig is the TOML configuration for the serve command.
type serveConfig struct {
	// Addr is the listen address (host:port).
	Addr string `toml:"addr"`

	// NoAuth disables session authentication. Local development only.
	NoAuth bool `toml:"no_auth"`

	Store   storeConfig   `toml:"store"`
	Session sessionConfig `toml:"session"`
}

// storeConfig selects and configures the board storage backend.
type storeConfig struct {
	// Backend is one of "file" (default), "memory", "mongo".
	Backend string `toml:"backend"`

	// Dir is the data directory for the file backend.
	// Empty means the XDG data directory.
	Dir string `toml:"dir"`

	// Mongo backend settings.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// sessionConfig selects and configures the session storage backend.
type sessionConfig struct {
	// Backend is one of "memory" (default), "redis".
	Backend string `toml:"backend"`

	// Redis backend settings.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// defaultServeConfig returns the configuration used when no file is given.
func defaultServeConfig() serveConfig {
	return serveConfig{
		Addr:    ":8080",
		Store:   storeConfig{Backend: "file"},
		Session: sessionConfig{Backend: "memory"},
	}
}

// loadServeConfig reads a TOML config file on top of the defaults.
func loadServeConfig(path string) (serveConfig, error) {
	cfg := defaultServeConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

// =============================================================================
// Command
// =============================================================================

// serveCommand creates the serve command for running the layout HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		noAuth     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the boardkit layout HTTP API",
		Long: `Run the boardkit layout HTTP API.

Boards are persisted to the configured store backend (file by default,
MongoDB for hosted deployments). Sessions live in memory unless a Redis
backend is configured. With --no-auth every request acts as the local
user, which is the mode the desktop app uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if noAuth {
				cfg.NoAuth = true
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&noAuth, "no-auth", false, "disable authentication (local development)")

	return cmd
}

// runServe builds the stores and serves the API until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg serveConfig) error {
	boards, cleanup, err := newBoardStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("initialize board store: %w", err)
	}
	defer cleanup()

	sessions, err := newSessionStore(ctx, cfg.Session)
	if err != nil {
		return fmt.Errorf("initialize session store: %w", err)
	}

	observability.SetLayoutHooks(observability.NewLogLayoutHooks(c.Logger))
	observability.SetStoreHooks(observability.NewLogStoreHooks(c.Logger))

	var opts []api.Option
	if cfg.NoAuth {
		opts = append(opts, api.WithoutAuth())
		printWarning("Authentication disabled")
	}
	srv := api.NewServer(boards, sessions, c.Logger, opts...)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	printSuccess("Serving boardkit API")
	printKeyValue("addr", cfg.Addr)
	printKeyValue("store", storeBackend(cfg.Store))
	c.Logger.Info("server started", "addr", cfg.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	c.Logger.Info("server stopped")
	return nil
}

// =============================================================================
// Backend Factories
// =============================================================================

func storeBackend(cfg storeConfig) string {
	if cfg.Backend == "" {
		return "file"
	}
	return cfg.Backend
}

// newBoardStore builds the board store from config. The returned cleanup
// closes backend connections and is safe to call unconditionally.
func newBoardStore(ctx context.Context, cfg storeConfig) (store.Store, func(), error) {
	noop := func() {}

	switch storeBackend(cfg) {
	case "memory":
		return store.NewMemoryStore(), noop, nil

	case "file":
		s, err := newLocalStore(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case "mongo":
		s, err := store.NewMongoStore(ctx, store.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
		})
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = s.Close(closeCtx)
		}
		return s, cleanup, nil
	}

	return nil, noop, fmt.Errorf("unknown store backend: %s (must be 'file', 'memory', or 'mongo')", cfg.Backend)
}

// newSessionStore builds the session store from config.
func newSessionStore(ctx context.Context, cfg sessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		return session.NewRedisStore(ctx, session.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return nil, fmt.Errorf("unknown session backend: %s (must be 'memory' or 'redis')", cfg.Backend)
}
