package canonical

import "testing"

func TestCategoryID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Cooking & Food", "cooking_and_food"},
		{"  Safety / First Aid  ", "safety_first_aid"},
		{"Lighting & Power", "lighting_and_power"},
		{"Tools", "tools"},
		{"--Misc--", "misc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CategoryID(tt.input); got != tt.expected {
			t.Errorf("CategoryID(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tent", "tent"},
		{"4-season tent", "tent"},
		{"Backpacking Tent (2-person)", "tent"},
		// Excludes keep accessories out of the tent group
		{"Tent stakes", "tent_stakes"},
		{"Tent footprint", "tent_footprint"},
		{"Ground cloth for tent", "ground_cloth_for_tent"},
		{"Sleeping bag", "sleeping_bag"},
		{"Cold-rated sleeping bag (0-20°F)", "sleeping_bag"},
		{"Sleeping pad", "sleeping_pad"},
		{"Air mattress", "sleeping_pad"},
		{"Self-inflating mattress", "sleeping_pad"},
		{"Camp chairs", "camp_chairs"},
		{"Folding chair", "camp_chairs"},
		{"Camp table", "camp_table"},
		// Fallback
		{"Headlamp", "headlamp"},
		{"Socks (wool preferred)", "socks_wool_preferred"},
		{"First-aid kit", "firstaid_kit"},
	}

	for _, tt := range tests {
		if got := Key(tt.input); got != tt.expected {
			t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestClassKey(t *testing.T) {
	tests := []struct {
		input   string
		key     string
		matched bool
	}{
		{"Tent", "tent", true},
		{"Air mattress", "sleeping_pad", true},
		{"Kids' sleeping bags", "sleeping_bag", true},
		// No fallback: unclassified names report no match.
		{"Headlamp", "", false},
		{"Tent stakes", "", false},
		// Substring hazard the class rules knowingly carry.
		{"Portable fan", "camp_table", true},
	}

	for _, tt := range tests {
		key, matched := ClassKey(tt.input)
		if key != tt.key || matched != tt.matched {
			t.Errorf("ClassKey(%q) = (%q, %v), want (%q, %v)", tt.input, key, matched, tt.key, tt.matched)
		}
	}
}

func TestKeyRuleOrder(t *testing.T) {
	// A name matching both the tent rule and the chair rule resolves to
	// the earlier rule.
	if got := Key("Tent chair combo"); got != "tent" {
		t.Errorf("expected first rule to win, got %q", got)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Tent ", "tent"},
		{"TENT", "tent"},
		{"Sleeping   Bag", "sleeping bag"},
		{"Water\tBottle", "water bottle"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
