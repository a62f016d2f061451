package storage

import (
	"sync"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// Memory is an in-memory Repository, mainly for tests.
type Memory struct {
	mu    sync.Mutex
	lists []packing.PackingList

	// FailSaves makes Save return the given error, for exercising the
	// store's fire-and-forget error handling.
	FailSaves error

	saves int
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the stored lists.
func (m *Memory) Load() ([]packing.PackingList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return packing.DeepCopyLists(m.lists), nil
}

// Save replaces the stored lists.
func (m *Memory) Save(lists []packing.PackingList) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.lists = packing.DeepCopyLists(lists)
	m.saves++
	return nil
}

// Saves returns how many successful saves happened.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
