package generate

import (
	"sort"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/canonical"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// MergeGear folds the user's gear-closet items into a generated list
// without creating duplicates. Gear whose normalized name already exists
// anywhere in the list is skipped; everything else is appended to the
// section its category maps to, after any template items already there.
// Merging the same gear twice is a no-op the second time.
func MergeGear(list *packing.PackingList, gear []packing.GearItem) {
	// Names already present anywhere in the list, from templates or
	// previously merged gear.
	seen := make(map[string]bool)
	for _, section := range list.Sections {
		for _, item := range section.Items {
			seen[canonical.NormalizeName(item.Name)] = true
		}
	}

	for _, g := range gear {
		name := canonical.NormalizeName(g.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		title := SectionTitle(g.Category)
		section := findOrCreateSection(list, title)
		section.Items = append(section.Items, packing.PackingItem{
			ID:         packing.NewID("item"),
			Name:       g.Name,
			Quantity:   1,
			Source:     packing.SourceGearCloset,
			GearItemID: g.ID,
		})
	}
}

// findOrCreateSection returns the section with the given title, creating
// it in canonical display position if the list does not have one yet.
func findOrCreateSection(list *packing.PackingList, title string) *packing.PackingSection {
	if section, ok := list.Section(title); ok {
		return section
	}

	list.Sections = append(list.Sections, packing.PackingSection{
		ID:    packing.NewID("sec"),
		Title: title,
	})
	sortSections(list.Sections)

	section, _ := list.Section(title)
	return section
}

// sortSections keeps sections in canonical display order. The sort is
// stable so sections sharing a rank keep their insertion order.
func sortSections(sections []packing.PackingSection) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sectionRank(sections[i].Title) < sectionRank(sections[j].Title)
	})
}
