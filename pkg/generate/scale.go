package generate

import (
	"regexp"
)

// quantityRule scales one kind of duration-sensitive item. Rules are
// tested in declared order against the item name (case-insensitive);
// the first match wins. A rule with a category only fires for items in
// that category's section.
type quantityRule struct {
	pattern  *regexp.Regexp
	category string
	quantity func(days int) int
}

// quantityRules is the fixed rule table for consumables and clothing
// that scale with trip length. Items matching no rule stay at quantity 1.
var quantityRules = []quantityRule{
	{
		pattern:  regexp.MustCompile(`(?i)\bsocks?\b`),
		quantity: func(days int) int { return days + 1 },
	},
	{
		pattern:  regexp.MustCompile(`(?i)\bunderwear\b`),
		quantity: func(days int) int { return days + 1 },
	},
	{
		pattern:  regexp.MustCompile(`(?i)\bt-?shirts?\b`),
		quantity: func(days int) int { return ceilHalf(days) + 1 },
	},
	{
		pattern:  regexp.MustCompile(`(?i)\btrash bags?\b`),
		quantity: func(days int) int { return atLeast(2, ceilHalf(days)) },
	},
	{
		pattern:  regexp.MustCompile(`(?i)\bice packs?\b`),
		quantity: func(days int) int { return atLeast(2, ceilHalf(days)) },
	},
}

// ScaleQuantity returns the quantity for an item given the trip length.
// Unmatched items are plain qty-1 checklist entries.
func ScaleQuantity(name, category string, days int) int {
	if days < 1 {
		days = 1
	}
	for _, rule := range quantityRules {
		if rule.category != "" && SectionTitle(category) != SectionTitle(rule.category) {
			continue
		}
		if rule.pattern.MatchString(name) {
			return rule.quantity(days)
		}
	}
	return 1
}

// ceilHalf returns ceil(days/2).
func ceilHalf(days int) int {
	return (days + 1) / 2
}

func atLeast(minimum, n int) int {
	if n < minimum {
		return minimum
	}
	return n
}
