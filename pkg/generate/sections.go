package generate

import (
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/canonical"
)

// Canonical section titles, in display order. Every generated list
// arranges its sections in this order; "Other" is always last.
const (
	SectionShelter      = "Shelter"
	SectionSleep        = "Sleep"
	SectionCooking      = "Cooking & Food"
	SectionClothing     = "Clothing"
	SectionPersonalCare = "Personal Care"
	SectionSafety       = "Safety & First Aid"
	SectionTools        = "Tools & Repair"
	SectionLighting     = "Lighting & Power"
	SectionComfort      = "Campsite Comfort"
	SectionActivities   = "Activities"
	SectionOther        = "Other"
)

// SectionOrder lists the canonical section titles in display order.
var SectionOrder = []string{
	SectionShelter,
	SectionSleep,
	SectionCooking,
	SectionClothing,
	SectionPersonalCare,
	SectionSafety,
	SectionTools,
	SectionLighting,
	SectionComfort,
	SectionActivities,
	SectionOther,
}

// categorySections maps normalized category ids onto section titles.
// Categories not listed here land in "Other".
var categorySections = map[string]string{
	"shelter":       SectionShelter,
	"sleep":         SectionSleep,
	"cooking":       SectionCooking,
	"food":          SectionCooking,
	"water":         SectionCooking,
	"clothing":      SectionClothing,
	"footwear":      SectionClothing,
	"rain_gear":     SectionClothing,
	"personal_care": SectionPersonalCare,
	"hygiene":       SectionPersonalCare,
	"first_aid":     SectionSafety,
	"safety":        SectionSafety,
	"navigation":    SectionSafety,
	"tools":         SectionTools,
	"repair":        SectionTools,
	"lighting":      SectionLighting,
	"electronics":   SectionLighting,
	"furniture":     SectionComfort,
	"games":         SectionActivities,
}

// SectionTitle maps a free-text category to its section title,
// defaulting to "Other" for unmapped categories.
func SectionTitle(category string) string {
	if title, ok := categorySections[canonical.CategoryID(category)]; ok {
		return title
	}
	return SectionOther
}

// sectionRank returns the display rank of a section title. Titles
// outside the canonical set sort after "Other" in the order they appear.
func sectionRank(title string) int {
	for i, t := range SectionOrder {
		if t == title {
			return i
		}
	}
	return len(SectionOrder)
}
