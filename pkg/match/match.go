// Package match scores gear-closet items against an existing packing
// list to surface likely near-duplicates ("Camp stove" vs "Camping
// stove"). Results are advisory only: the merger's exact-name dedup
// stays authoritative, and suggestions never alter a list.
package match

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/canonical"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// DefaultThreshold is the minimum confidence for a suggestion.
const DefaultThreshold = 0.72

// Suggestion pairs a gear item with an existing list item it resembles.
type Suggestion struct {
	GearItemID string  `json:"gear_item_id"`
	GearName   string  `json:"gear_name"`
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Section    string  `json:"section"`
	Confidence float64 `json:"confidence"`
}

// Suggestions returns near-duplicate candidates for each gear item
// against the list, best match first, filtered to confidence >=
// threshold (DefaultThreshold when threshold <= 0). Exact matches are
// omitted; the merger already handles those.
func Suggestions(list *packing.PackingList, gear []packing.GearItem, threshold float64) []Suggestion {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var out []Suggestion
	for _, g := range gear {
		gearName := canonical.NormalizeName(g.Name)
		if gearName == "" {
			continue
		}

		for _, section := range list.Sections {
			for _, item := range section.Items {
				itemName := canonical.NormalizeName(item.Name)
				if itemName == "" || itemName == gearName {
					continue
				}
				confidence := similarity(gearName, itemName)
				if confidence >= threshold {
					out = append(out, Suggestion{
						GearItemID: g.ID,
						GearName:   g.Name,
						ItemID:     item.ID,
						ItemName:   item.Name,
						Section:    section.Title,
						Confidence: confidence,
					})
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// similarity maps Levenshtein distance to [0,1], 1 meaning identical.
func similarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
