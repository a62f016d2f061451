package camppack

import (
	"github.com/rs/zerolog"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/store"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/templates"
)

// Option is a function that configures a Client instance.
type Option func(*config) error

// config holds the resolved Client configuration.
type config struct {
	storagePath string
	repository  store.Repository
	catalog     *templates.Catalog
	logger      *zerolog.Logger
	syncSaves   bool
}

func defaultConfig() *config {
	return &config{}
}

func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// WithStoragePath configures the YAML file lists persist to.
func WithStoragePath(path string) Option {
	return func(c *config) error {
		c.storagePath = path
		return nil
	}
}

// WithRepository configures a custom persistence backend, overriding
// the file-backed default.
func WithRepository(repo store.Repository) Option {
	return func(c *config) error {
		c.repository = repo
		return nil
	}
}

// WithCatalog configures the template catalog to generate from,
// overriding the embedded default.
func WithCatalog(catalog *templates.Catalog) Option {
	return func(c *config) error {
		c.catalog = catalog
		return nil
	}
}

// WithLogger configures the logger used for persistence failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithSynchronousSaves makes persistence block instead of running on a
// background goroutine. Intended for tests.
func WithSynchronousSaves() Option {
	return func(c *config) error {
		c.syncSaves = true
		return nil
	}
}
