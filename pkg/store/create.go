package store

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/generate"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/logging"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/match"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/tripctx"
)

// CreateParams are the inputs for CreatePackingList.
type CreateParams struct {
	// Name is the list's display name. Derived from TripType when empty.
	Name string

	// TripType is the camping style the list is for.
	TripType string

	// Trip supplies the trip context (dates, style, overrides). The zero
	// value resolves to a one-day summer trip.
	Trip tripctx.Trip

	// Season overrides the resolved season when set to a valid season.
	Season packing.Season

	// TemplateKeys select the templates to generate from, in order.
	// Empty means the default empty-section skeleton.
	TemplateKeys []string

	// Gear is the user's gear closet to merge into the generated list.
	Gear []packing.GearItem

	// TripID attaches the list to a trip.
	TripID string

	// IsTemplate creates the list as a reusable template.
	IsTemplate bool
}

var titleCaser = cases.Title(language.English)

// CreatePackingList generates a new list and stores it, returning its
// id. When template keys are given the full generation pipeline runs
// (trip context, dedup, scaling, gear merge); otherwise the list starts
// as the fixed default sections.
func (s *Store) CreatePackingList(params CreateParams) (string, error) {
	ctx := tripctx.Resolve(params.Trip)
	if params.Season.Valid() {
		ctx.Season = params.Season
	}

	name := params.Name
	if name == "" {
		name = defaultListName(params.TripType)
	}

	list := generate.List(generate.Params{
		Name:     name,
		TripType: params.TripType,
		Context:  ctx,
		Selected: s.catalog.Select(params.TemplateKeys...),
		Gear:     params.Gear,
		TripID:   params.TripID,
	})
	list.IsTemplate = params.IsTemplate

	// Surface likely near-duplicates between merged gear and template
	// items. Advisory only.
	for _, suggestion := range match.Suggestions(&list, params.Gear, 0) {
		logging.Debug().
			Str("gear", suggestion.GearName).
			Str("item", suggestion.ItemName).
			Float64("confidence", suggestion.Confidence).
			Msg("Gear item closely resembles an existing list item")
	}

	s.insert(list)
	return list.ID, nil
}

// defaultListName derives a readable name from a trip type, e.g.
// "car_camping" becomes "Car Camping Packing List".
func defaultListName(tripType string) string {
	base := strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(tripType))
	if base == "" {
		return "Packing List"
	}
	return titleCaser.String(base) + " Packing List"
}
