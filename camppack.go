// Package camppack generates and manages camping packing lists. Lists
// are built from a catalog of trip templates, deduplicated across
// overlapping templates, scaled to trip length, and merged with the
// user's own gear, then held in a persisted store that supports the
// full editing lifecycle (sections, items, progress, templates).
package camppack

import (
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/storage"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/store"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/templates"
)

// Client manages packing lists backed by a template catalog and a
// persistence repository.
type Client interface {
	// Catalog returns the template catalog lists are generated from.
	Catalog() *templates.Catalog

	// CreatePackingList generates and stores a new list.
	CreatePackingList(params store.CreateParams) (string, error)

	// Lists returns copies of all stored packing lists.
	Lists() []packing.PackingList

	// Get returns a copy of one list by id.
	Get(id string) (packing.PackingList, error)

	// DeleteList removes a list permanently.
	DeleteList(id string) error

	// Progress reports how much of a list has been packed.
	Progress(id string) (packing.Progress, error)

	// Store exposes the full mutation API (sections, items, clones).
	Store() *store.Store

	// Close drains any in-flight background saves.
	Close() error
}

// client is the internal implementation of the Client interface.
type client struct {
	store *store.Store
}

// Compile-time interface check.
var _ Client = (*client)(nil)

// New creates a new Client with the given options. By default lists
// persist to a YAML file under the user's home directory and templates
// come from the embedded catalog.
func New(opts ...Option) (Client, error) {
	cfg := defaultConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, errors.WrapValidation("options", err)
	}

	repo := cfg.repository
	if repo == nil {
		path := cfg.storagePath
		if path == "" {
			path = storage.DefaultPath()
		}
		repo = storage.NewFile(path)
	}

	storeOpts := []store.Option{}
	if cfg.catalog != nil {
		storeOpts = append(storeOpts, store.WithCatalog(cfg.catalog))
	}
	if cfg.logger != nil {
		storeOpts = append(storeOpts, store.WithLogger(cfg.logger))
	}
	if cfg.syncSaves {
		storeOpts = append(storeOpts, store.WithSynchronousSaves())
	}

	s, err := store.New(repo, storeOpts...)
	if err != nil {
		return nil, err
	}

	return &client{store: s}, nil
}

// Catalog returns the template catalog lists are generated from.
func (c *client) Catalog() *templates.Catalog {
	return c.store.Catalog()
}

// CreatePackingList generates and stores a new list.
func (c *client) CreatePackingList(params store.CreateParams) (string, error) {
	return c.store.CreatePackingList(params)
}

// Lists returns copies of all stored packing lists.
func (c *client) Lists() []packing.PackingList {
	return c.store.List()
}

// Get returns a copy of one list by id.
func (c *client) Get(id string) (packing.PackingList, error) {
	return c.store.Get(id)
}

// DeleteList removes a list permanently.
func (c *client) DeleteList(id string) error {
	return c.store.DeleteList(id)
}

// Progress reports how much of a list has been packed.
func (c *client) Progress(id string) (packing.Progress, error) {
	return c.store.Progress(id)
}

// Store exposes the full mutation API.
func (c *client) Store() *store.Store {
	return c.store
}

// Close drains any in-flight background saves.
func (c *client) Close() error {
	c.store.Close()
	return nil
}
