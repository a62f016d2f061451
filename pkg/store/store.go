// Package store owns the mutable, persisted packing lists and exposes
// the mutation API over them. The store holds all lists in memory and is
// the single writer; every mutation is copy-on-write over the whole
// collection and stamps the list's UpdatedAt.
//
// Persistence is delegated to an injected Repository. Saves are
// fire-and-forget: the in-memory commit is immediately visible to
// readers while the durable write happens on a goroutine, with failures
// logged and otherwise swallowed.
package store

import (
	"sync"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/logging"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/templates"
)

// Repository persists the full packing-list collection under one key.
type Repository interface {
	// Load returns all persisted lists. An empty store loads as an
	// empty slice, not an error.
	Load() ([]packing.PackingList, error)

	// Save replaces the persisted collection.
	Save(lists []packing.PackingList) error
}

// Store is the single owner of all packing lists.
type Store struct {
	mu      sync.RWMutex
	lists   []packing.PackingList
	repo    Repository
	catalog *templates.Catalog
	logger  *zerolog.Logger

	// syncSaves makes persistence synchronous. Used by tests; the
	// production path is fire-and-forget.
	syncSaves bool

	// saving tracks in-flight background saves so Close can drain them.
	saving sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

// WithCatalog sets the template catalog used by CreatePackingList.
func WithCatalog(catalog *templates.Catalog) Option {
	return func(s *Store) {
		s.catalog = catalog
	}
}

// WithLogger sets the logger for persistence failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithSynchronousSaves makes Save calls block until persisted. Intended
// for tests that assert on repository state.
func WithSynchronousSaves() Option {
	return func(s *Store) {
		s.syncSaves = true
	}
}

// New creates a store backed by the given repository and loads the
// persisted lists. A load failure is logged and the store starts empty;
// the in-memory state is authoritative from then on.
func New(repo Repository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, &errors.ValidationError{Field: "repo", Message: "repository is required"}
	}

	s := &Store{
		repo:   repo,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		catalog, err := templates.New()
		if err != nil {
			return nil, errors.WrapResource("load", "template catalog", "", err)
		}
		s.catalog = catalog
	}

	lists, err := repo.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load persisted packing lists, starting empty")
		lists = nil
	}
	s.lists = lists

	return s, nil
}

// Catalog returns the template catalog the store generates from.
func (s *Store) Catalog() *templates.Catalog {
	return s.catalog
}

// List returns deep copies of all packing lists.
func (s *Store) List() []packing.PackingList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return packing.DeepCopyLists(s.lists)
}

// Get returns a deep copy of one list by id.
func (s *Store) Get(id string) (packing.PackingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.lists {
		if s.lists[i].ID == id {
			return packing.DeepCopyList(s.lists[i]), nil
		}
	}
	return packing.PackingList{}, &errors.NotFoundError{Resource: "list", ID: id}
}

// DeleteList removes a list permanently.
func (s *Store) DeleteList(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]packing.PackingList, 0, len(s.lists))
	found := false
	for i := range s.lists {
		if s.lists[i].ID == id {
			found = true
			continue
		}
		next = append(next, s.lists[i])
	}
	if !found {
		return &errors.NotFoundError{Resource: "list", ID: id}
	}

	s.lists = next
	s.persistLocked()
	return nil
}

// Progress reports how much of a list has been packed.
func (s *Store) Progress(id string) (packing.Progress, error) {
	list, err := s.Get(id)
	if err != nil {
		return packing.Progress{}, err
	}
	return list.Progress(), nil
}

// Close drains any in-flight background saves.
func (s *Store) Close() {
	s.saving.Wait()
}

// mutate applies fn to the named list under copy-on-write semantics:
// the whole collection is copied, fn mutates the copy, and on success
// the copy replaces the collection, UpdatedAt stamped, and a save is
// scheduled. On error nothing changes.
func (s *Store) mutate(listID string, fn func(*packing.PackingList) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := packing.DeepCopyLists(s.lists)
	for i := range next {
		if next[i].ID != listID {
			continue
		}
		if err := fn(&next[i]); err != nil {
			return err
		}
		next[i].UpdatedAt = utc.Now()
		s.lists = next
		s.persistLocked()
		return nil
	}
	return &errors.NotFoundError{Resource: "list", ID: listID}
}

// insert adds a new list and schedules a save.
func (s *Store) insert(list packing.PackingList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := packing.DeepCopyLists(s.lists)
	next = append(next, list)
	s.lists = next
	s.persistLocked()
}

// persistLocked schedules a save of the current collection. The caller
// must hold the write lock; the snapshot is taken synchronously so the
// background write never races with the next mutation.
func (s *Store) persistLocked() {
	snapshot := packing.DeepCopyLists(s.lists)

	save := func() {
		if err := s.repo.Save(snapshot); err != nil {
			// Non-fatal: the in-memory state stays authoritative and an
			// unflushed mutation is lost on restart.
			s.logger.Error().Err(err).Int("lists", len(snapshot)).Msg("Failed to persist packing lists")
		}
	}

	if s.syncSaves {
		save()
		return
	}

	s.saving.Add(1)
	go func() {
		defer s.saving.Done()
		save()
	}()
}
