package templates

import (
	"fmt"
	"sort"
	"sync"
)

// Templates is a concurrent safe map of templates keyed by template key.
type Templates struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplates creates a new Templates map.
func NewTemplates() *Templates {
	return &Templates{
		templates: make(map[string]*Template),
	}
}

// Get returns a template by key and whether it exists.
func (t *Templates) Get(key string) (*Template, bool) {
	t.mu.RLock()
	template, ok := t.templates[key]
	t.mu.RUnlock()
	return template, ok
}

// Set sets a template by key. Returns an error if template is nil.
func (t *Templates) Set(key string, template *Template) error {
	if template == nil {
		return fmt.Errorf("template cannot be nil")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.templates[key] = template
	return nil
}

// Delete removes a template by key. Returns an error if the template
// doesn't exist.
func (t *Templates) Delete(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.templates[key]; !exists {
		return fmt.Errorf("template with key %s not found", key)
	}

	delete(t.templates, key)
	return nil
}

// Exists checks if a template exists without returning it.
func (t *Templates) Exists(key string) bool {
	t.mu.RLock()
	_, exists := t.templates[key]
	t.mu.RUnlock()
	return exists
}

// Len returns the number of templates.
func (t *Templates) Len() int {
	t.mu.RLock()
	length := len(t.templates)
	t.mu.RUnlock()
	return length
}

// Keys returns all template keys in sorted order.
func (t *Templates) Keys() []string {
	t.mu.RLock()
	keys := make([]string, 0, len(t.templates))
	for key := range t.templates {
		keys = append(keys, key)
	}
	t.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// List returns all templates sorted by key.
func (t *Templates) List() []*Template {
	keys := t.Keys()

	t.mu.RLock()
	defer t.mu.RUnlock()

	list := make([]*Template, 0, len(keys))
	for _, key := range keys {
		list = append(list, t.templates[key])
	}
	return list
}

// Clear removes all templates.
func (t *Templates) Clear() {
	t.mu.Lock()
	t.templates = make(map[string]*Template)
	t.mu.Unlock()
}
