// Package packing defines the core data model for camping packing lists.
// A PackingList is the root aggregate: it exclusively owns its sections,
// which in turn own their items. Lists are created once by the generation
// pipeline and thereafter only mutated through the store.
package packing

import (
	"github.com/agentstation/utc"
)

// ItemSource identifies where a packing item came from.
type ItemSource string

// Item sources.
const (
	// SourceTemplate marks items produced by the template generation pipeline.
	SourceTemplate ItemSource = "template"
	// SourceGearCloset marks items merged in from the user's gear inventory.
	SourceGearCloset ItemSource = "gearCloset"
	// SourceCustom marks items added manually by the user.
	SourceCustom ItemSource = "custom"
)

// PackingList represents a checklist for a trip. It is the root aggregate;
// sections and items are never shared between lists.
type PackingList struct {
	ID         string           `json:"id" yaml:"id"`                                     // Unique list identifier
	Name       string           `json:"name" yaml:"name"`                                 // Display name
	TripType   string           `json:"trip_type" yaml:"trip_type"`                       // Camping style the list was generated for
	Season     Season           `json:"season" yaml:"season"`                             // Season the list was generated for
	Sections   []PackingSection `json:"sections" yaml:"sections"`                         // Owned sections, display order
	TripID     string           `json:"trip_id,omitempty" yaml:"trip_id,omitempty"`       // Owning trip, empty for templates
	IsTemplate bool             `json:"is_template" yaml:"is_template"`                   // True when saved as a reusable template
	CreatedAt  utc.Time         `json:"created_at" yaml:"created_at"`                     // Created timestamp
	UpdatedAt  utc.Time         `json:"updated_at" yaml:"updated_at"`                     // Last mutation timestamp
}

// PackingSection groups items under a title. The title is the merge key:
// no two sections in one list may share a title.
type PackingSection struct {
	ID        string        `json:"id" yaml:"id"`               // Unique section identifier
	Title     string        `json:"title" yaml:"title"`         // Display title, unique within the list
	Items     []PackingItem `json:"items" yaml:"items"`         // Owned items, display order
	Collapsed bool          `json:"collapsed" yaml:"collapsed"` // UI collapse state
}

// PackingItem is a single checklist entry.
type PackingItem struct {
	ID         string     `json:"id" yaml:"id"`                                           // Unique item identifier
	Name       string     `json:"name" yaml:"name"`                                       // Display name
	Checked    bool       `json:"checked" yaml:"checked"`                                 // Packed state
	Essential  bool       `json:"essential,omitempty" yaml:"essential,omitempty"`         // Must-pack flag
	Note       string     `json:"note,omitempty" yaml:"note,omitempty"`                   // Free-text note
	Quantity   int        `json:"quantity,omitempty" yaml:"quantity,omitempty"`           // Scaled quantity, 1 when unquantified
	Source     ItemSource `json:"source,omitempty" yaml:"source,omitempty"`               // Where the item came from
	GearItemID string     `json:"gear_item_id,omitempty" yaml:"gear_item_id,omitempty"`   // Backing gear-closet item, if any
}

// GearItem is a read-only view of an item in the user's gear inventory.
// The inventory itself is owned elsewhere; the merger only consumes it.
type GearItem struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// Progress summarizes how much of a list has been packed.
type Progress struct {
	Packed     int `json:"packed" yaml:"packed"`
	Total      int `json:"total" yaml:"total"`
	Percentage int `json:"percentage" yaml:"percentage"`
}

// Section returns the section with the given title, if present.
func (l *PackingList) Section(title string) (*PackingSection, bool) {
	for i := range l.Sections {
		if l.Sections[i].Title == title {
			return &l.Sections[i], true
		}
	}
	return nil, false
}

// Progress computes the packed/total counts across all sections.
// Percentage is 0 for an empty list, otherwise rounded to the nearest
// whole percent.
func (l *PackingList) Progress() Progress {
	var p Progress
	for _, section := range l.Sections {
		for _, item := range section.Items {
			p.Total++
			if item.Checked {
				p.Packed++
			}
		}
	}
	if p.Total > 0 {
		p.Percentage = (p.Packed*100 + p.Total/2) / p.Total
	}
	return p
}
