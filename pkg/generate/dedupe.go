package generate

import (
	"sort"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/canonical"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/templates"
)

// seasonBonus is added to an item's score when its season tags include
// the resolved season.
const seasonBonus = 10

// Candidate is a deduplicated template item before section assignment.
type Candidate struct {
	Name         string
	Category     string
	Essential    bool
	CanonicalKey string
	TemplateKey  string
}

// candidate carries the scoring state for one flattened item. The order
// field encodes the tie-break contract: items are flattened in template
// selection order, then catalog order within each template, so a lower
// order always means "declared earlier by the caller".
type candidate struct {
	item     templates.Item
	template string
	tier     int
	order    int
}

func (c candidate) score(season packing.Season) int {
	score := c.item.EffectiveTier(c.tier)
	if c.item.HasSeason(season) {
		score += seasonBonus
	}
	return score
}

// Dedupe reduces the items of the selected templates to one winner per
// canonical key and removes conflict casualties. It is a pure function:
// identical inputs always produce the identical output slice, ordered by
// flatten position.
//
// Selection order is meaningful. When two items in a canonical-key group
// tie on score, the one from the template that appears earliest in the
// caller-supplied order wins; within one template, catalog order decides.
func Dedupe(selected []templates.Template, season packing.Season) []Candidate {
	// 1. Flatten all items, retaining source template and position.
	var flat []candidate
	for _, template := range selected {
		for _, item := range template.Items {
			flat = append(flat, candidate{
				item:     item,
				template: template.Key,
				tier:     template.DefaultTier,
				order:    len(flat),
			})
		}
	}

	// 2. Partition into keyed and standalone items.
	var keyed, standalone []candidate
	for _, c := range flat {
		if c.item.CanonicalKey != "" {
			keyed = append(keyed, c)
		} else {
			standalone = append(standalone, c)
		}
	}

	// 3-4. Group keyed items and pick the highest-scoring winner per
	// group, breaking ties on flatten order.
	groups := make(map[string][]candidate)
	for _, c := range keyed {
		groups[c.item.CanonicalKey] = append(groups[c.item.CanonicalKey], c)
	}

	winners := make(map[string]candidate, len(groups))
	for key, group := range groups {
		winner := group[0]
		best := winner.score(season)
		for _, c := range group[1:] {
			if s := c.score(season); s > best || (s == best && c.order < winner.order) {
				winner = c
				best = s
			}
		}
		winners[key] = winner
	}

	// 5. One-pass conflict removal: a winner is dropped when another
	// group's winner names its canonical key. The removal set is computed
	// against the original winners, so casualties cannot cascade.
	casualties := make(map[string]bool)
	for ownKey, winner := range winners {
		for _, key := range winner.item.ConflictsWith {
			if key != ownKey {
				casualties[key] = true
			}
		}
	}
	for key := range casualties {
		delete(winners, key)
	}

	// 6. Deduplicate by exact normalized name. Keyed winners claim their
	// display names first, in flatten order, so two winners from distinct
	// canonical groups sharing a display name collapse to the earlier one.
	// Then earlier standalone items beat later ones.
	ordered := make([]candidate, 0, len(winners))
	for _, winner := range winners {
		ordered = append(ordered, winner)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].order < ordered[j].order
	})

	seen := make(map[string]bool)
	var survivors []candidate
	for _, winner := range ordered {
		name := canonical.NormalizeName(winner.item.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		survivors = append(survivors, winner)
	}
	for _, c := range standalone {
		name := canonical.NormalizeName(c.item.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		survivors = append(survivors, c)
	}

	// 7. Emit in flatten order for a deterministic result.
	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].order < survivors[j].order
	})

	out := make([]Candidate, len(survivors))
	for i, c := range survivors {
		out[i] = Candidate{
			Name:         c.item.Name,
			Category:     c.item.Category,
			Essential:    c.item.Essential,
			CanonicalKey: c.item.CanonicalKey,
			TemplateKey:  c.template,
		}
	}
	return out
}
