package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

func listWithTent() packing.PackingList {
	return packing.PackingList{
		ID: "pl-1",
		Sections: []packing.PackingSection{
			{ID: "s1", Title: SectionShelter, Items: []packing.PackingItem{
				{ID: "i1", Name: "Tent", Source: packing.SourceTemplate},
			}},
		},
	}
}

func TestMergeGearSkipsDuplicates(t *testing.T) {
	list := listWithTent()

	MergeGear(&list, []packing.GearItem{
		{ID: "g1", Name: "TENT", Category: "Shelter"},
		{ID: "g2", Name: " tent ", Category: "Shelter"},
	})

	section, ok := list.Section(SectionShelter)
	require.True(t, ok)
	assert.Len(t, section.Items, 1, "gear duplicates of a template item must be skipped")
}

func TestMergeGearAppendsAfterTemplateItems(t *testing.T) {
	list := listWithTent()

	MergeGear(&list, []packing.GearItem{
		{ID: "g1", Name: "Tarp shelter kit", Category: "Shelter"},
	})

	section, ok := list.Section(SectionShelter)
	require.True(t, ok)
	require.Len(t, section.Items, 2)
	assert.Equal(t, "Tent", section.Items[0].Name)

	added := section.Items[1]
	assert.Equal(t, "Tarp shelter kit", added.Name)
	assert.Equal(t, packing.SourceGearCloset, added.Source)
	assert.Equal(t, "g1", added.GearItemID)
	assert.NotEmpty(t, added.ID)
}

func TestMergeGearCreatesSection(t *testing.T) {
	list := listWithTent()

	MergeGear(&list, []packing.GearItem{
		{ID: "g1", Name: "Cast iron pan", Category: "Cooking"},
	})

	section, ok := list.Section(SectionCooking)
	require.True(t, ok, "target section should be created")
	require.Len(t, section.Items, 1)

	// Created sections slot into canonical display order.
	assert.Equal(t, SectionShelter, list.Sections[0].Title)
	assert.Equal(t, SectionCooking, list.Sections[1].Title)
}

func TestMergeGearUnmappedCategory(t *testing.T) {
	list := listWithTent()

	MergeGear(&list, []packing.GearItem{
		{ID: "g1", Name: "Metal detector", Category: "Treasure Hunting"},
	})

	section, ok := list.Section(SectionOther)
	require.True(t, ok)
	require.Len(t, section.Items, 1)
	assert.Equal(t, "Metal detector", section.Items[0].Name)
}

func TestMergeGearIdempotent(t *testing.T) {
	list := listWithTent()
	gear := []packing.GearItem{
		{ID: "g1", Name: "Hatchet", Category: "Tools"},
		{ID: "g2", Name: "Cooler", Category: "Food"},
	}

	MergeGear(&list, gear)
	once := packing.DeepCopyList(list)

	MergeGear(&list, gear)
	assert.Equal(t, once, list, "re-merging the same gear must not change the list")
}

func TestMergeGearBlankName(t *testing.T) {
	list := listWithTent()
	MergeGear(&list, []packing.GearItem{{ID: "g1", Name: "   ", Category: "Tools"}})

	_, ok := list.Section(SectionTools)
	assert.False(t, ok, "blank gear names are ignored")
}

func TestSectionTitle(t *testing.T) {
	tests := []struct {
		category string
		expected string
	}{
		{"Shelter", SectionShelter},
		{"Sleep", SectionSleep},
		{"Cooking", SectionCooking},
		{"Food", SectionCooking},
		{"Water", SectionCooking},
		{"Rain Gear", SectionClothing},
		{"Footwear", SectionClothing},
		{"First Aid", SectionSafety},
		{"Navigation", SectionSafety},
		{"Repair", SectionTools},
		{"Electronics", SectionLighting},
		{"Furniture", SectionComfort},
		{"Games", SectionActivities},
		{"Telescopes", SectionOther},
		{"", SectionOther},
	}

	for _, tt := range tests {
		if got := SectionTitle(tt.category); got != tt.expected {
			t.Errorf("SectionTitle(%q) = %q, want %q", tt.category, got, tt.expected)
		}
	}
}
