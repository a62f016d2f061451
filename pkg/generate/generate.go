// Package generate implements the packing-list generation pipeline:
// template deduplication, quantity scaling and gear-closet merging.
// All of it is deterministic, rule-table driven and tolerant of bad
// input; the pipeline degrades to defaults instead of failing.
package generate

import (
	"github.com/agentstation/utc"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/templates"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/tripctx"
)

// Params bundles the inputs of one generation pass.
type Params struct {
	// Name is the display name for the new list.
	Name string

	// TripType records the camping style the list is generated for.
	TripType string

	// Context is the resolved trip context (season, days, style).
	Context tripctx.Context

	// Selected are the templates to draw items from, in selection order.
	// Order matters: earlier templates win score ties.
	Selected []templates.Template

	// Gear is the user's gear closet, merged in after template items.
	Gear []packing.GearItem

	// TripID attaches the list to a trip when set.
	TripID string
}

// List runs the full pipeline and assembles a new packing list: dedupe
// the selected templates for the season, scale quantities by trip
// length, organize into sections and merge in the gear closet.
//
// With no selected templates the result is the default empty-section
// skeleton (plus any gear).
func List(params Params) packing.PackingList {
	now := utc.Now()
	list := packing.PackingList{
		ID:        packing.NewID("list"),
		Name:      params.Name,
		TripType:  params.TripType,
		Season:    params.Context.Season,
		TripID:    params.TripID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if len(params.Selected) == 0 {
		list.Sections = DefaultSections()
	} else {
		list.Sections = buildSections(Dedupe(params.Selected, params.Context.Season), params.Context.TripDays)
	}

	MergeGear(&list, params.Gear)
	return list
}

// buildSections organizes deduplicated candidates into sections in
// canonical display order, preserving candidate order within a section.
func buildSections(candidates []Candidate, tripDays int) []packing.PackingSection {
	index := make(map[string]int)
	var sections []packing.PackingSection

	for _, c := range candidates {
		title := SectionTitle(c.Category)
		i, ok := index[title]
		if !ok {
			sections = append(sections, packing.PackingSection{
				ID:    packing.NewID("sec"),
				Title: title,
			})
			i = len(sections) - 1
			index[title] = i
		}

		sections[i].Items = append(sections[i].Items, packing.PackingItem{
			ID:        packing.NewID("item"),
			Name:      c.Name,
			Essential: c.Essential,
			Quantity:  ScaleQuantity(c.Name, c.Category, tripDays),
			Source:    packing.SourceTemplate,
		})
	}

	sortSections(sections)
	return sections
}

// DefaultSections returns the fixed empty-section skeleton used when no
// templates are selected.
func DefaultSections() []packing.PackingSection {
	sections := make([]packing.PackingSection, 0, len(SectionOrder))
	for _, title := range SectionOrder {
		sections = append(sections, packing.PackingSection{
			ID:    packing.NewID("sec"),
			Title: title,
		})
	}
	return sections
}
