// Package app provides the application context and dependency management
// for the camppack CLI. It centralizes configuration, logging, and the
// shared client instance behind one struct the commands depend on.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
)

// App represents the camppack application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client camppack.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the camppack client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (camppack.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	opts := []camppack.Option{
		camppack.WithLogger(a.logger),
	}
	if a.config.StoragePath != "" {
		opts = append(opts, camppack.WithStoragePath(a.config.StoragePath))
	}

	c, err := camppack.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Shutdown flushes any in-flight background saves. Safe to call when
// no client was ever created.
func (a *App) Shutdown() {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c != nil {
		if err := c.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close client during shutdown")
		}
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c camppack.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
