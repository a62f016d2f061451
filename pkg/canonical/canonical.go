// Package canonical normalizes free-text item and category names into
// stable keys. Two independent normalizations are provided: CategoryID for
// category-to-section mapping, and Key for grouping semantically equivalent
// items ("Tent", "4-season tent" -> "tent") ahead of deduplication.
//
// Both are pure functions over explicit rule tables. Rules are tested in
// declared order and the first match wins.
package canonical

import (
	"regexp"
	"strings"
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	multiUnder  = regexp.MustCompile(`_+`)
	whitespace  = regexp.MustCompile(`\s+`)
	keyStripper = regexp.MustCompile(`[^a-z0-9_]+`)
)

// CategoryID normalizes a free-text category name to a stable id:
// trim, lowercase, "&" becomes "and", every other non-alphanumeric run
// becomes a single underscore, with leading/trailing underscores stripped.
func CategoryID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", "and")
	s = nonAlnum.ReplaceAllString(s, "_")
	s = multiUnder.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// keyRule maps item names onto a canonical key. Contains are tested
// against the lowercased name; a rule only fires when none of its
// excludes are present.
type keyRule struct {
	contains []string
	excludes []string
	key      string
}

// keyRules are applied top to bottom; the first matching rule wins.
// Order is part of the contract: "4-season tent footprint" must fall
// through the tent rule into the literal fallback.
var keyRules = []keyRule{
	{contains: []string{"tent"}, excludes: []string{"stake", "footprint", "ground cloth"}, key: "tent"},
	{contains: []string{"sleeping bag"}, key: "sleeping_bag"},
	{contains: []string{"sleeping pad", "air mattress", "mattress"}, key: "sleeping_pad"},
	{contains: []string{"chair"}, key: "camp_chairs"},
	{contains: []string{"table"}, key: "camp_table"},
}

// Key derives the canonical key for an item name. Known equivalence
// classes are matched first; anything else falls back to the lowercased
// name stripped to [a-z0-9_].
func Key(name string) string {
	if key, ok := ClassKey(name); ok {
		return key
	}
	return fallbackKey(strings.ToLower(strings.TrimSpace(name)))
}

// ClassKey reports the equivalence-class key a name matches, if any.
// Unlike Key it never falls back to the literal form, so callers can
// tell a real class match from an unclassified name.
func ClassKey(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, rule := range keyRules {
		if rule.matches(lower) {
			return rule.key, true
		}
	}
	return "", false
}

func (r keyRule) matches(lower string) bool {
	for _, ex := range r.excludes {
		if strings.Contains(lower, ex) {
			return false
		}
	}
	for _, c := range r.contains {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// fallbackKey turns a lowercased name into a literal key: spaces become
// underscores, everything outside [a-z0-9_] is dropped.
func fallbackKey(lower string) string {
	s := whitespace.ReplaceAllString(lower, "_")
	s = keyStripper.ReplaceAllString(s, "")
	s = multiUnder.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeName returns the case-insensitive, whitespace-collapsed form
// of an item name used for exact-name deduplication.
func NormalizeName(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}
