// Package templates provides the static packing-template catalog. Templates
// are versioned, read-only bundles of items representing a camping style;
// the default catalog is compiled into the binary and loaded from YAML.
package templates

import (
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// Template is a named bundle of packing items for one camping style.
// Templates are immutable once loaded from the catalog.
type Template struct {
	// Key uniquely identifies the template within the catalog.
	Key string `json:"key" yaml:"key"`

	// Name is the human-readable template name.
	Name string `json:"name" yaml:"name"`

	// DefaultTier is the precedence tier items inherit when they do not
	// declare their own. Higher tiers win canonical-key groups.
	DefaultTier int `json:"default_tier" yaml:"default_tier"`

	// Items are the template's packing items in catalog order.
	Items []Item `json:"items" yaml:"items"`
}

// Item is a single entry in a packing template.
type Item struct {
	// Name is the display name of the item.
	Name string `json:"name" yaml:"name"`

	// Category is the free-text category used for section placement.
	Category string `json:"category" yaml:"category"`

	// Essential marks must-pack items.
	Essential bool `json:"essential,omitempty" yaml:"essential,omitempty"`

	// CanonicalKey groups semantically equivalent items across templates.
	// Items without one are never merge-deduplicated, only exact-name deduped.
	CanonicalKey string `json:"canonical_key,omitempty" yaml:"canonical_key,omitempty"`

	// Tier overrides the template's DefaultTier for this item when set.
	Tier *int `json:"tier,omitempty" yaml:"tier,omitempty"`

	// Seasons tags the item as specifically appropriate for these seasons,
	// granting it a scoring bonus during deduplication.
	Seasons []packing.Season `json:"seasons,omitempty" yaml:"seasons,omitempty"`

	// ConflictsWith lists canonical keys this item excludes from the final
	// list when it wins its own group.
	ConflictsWith []string `json:"conflicts_with,omitempty" yaml:"conflicts_with,omitempty"`
}

// EffectiveTier returns the item's own tier when set, otherwise the
// template default.
func (i Item) EffectiveTier(defaultTier int) int {
	if i.Tier != nil {
		return *i.Tier
	}
	return defaultTier
}

// HasSeason reports whether the item carries the given season tag.
func (i Item) HasSeason(season packing.Season) bool {
	for _, s := range i.Seasons {
		if s == season {
			return true
		}
	}
	return false
}
