package packing

import (
	"strings"
	"time"
)

// Season labels the part of the year a trip falls in.
type Season string

// Seasons.
const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// String returns the string representation of a Season.
func (s Season) String() string {
	return string(s)
}

// Valid reports whether s is one of the four known seasons.
func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Fall, Winter:
		return true
	}
	return false
}

// ParseSeason parses a season name, case-insensitively. "autumn" is
// accepted as an alias for fall. Unknown values return false.
func ParseSeason(s string) (Season, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "fall", "autumn":
		return Fall, true
	case "winter":
		return Winter, true
	}
	return "", false
}

// SeasonOfMonth maps a month to its northern-hemisphere season:
// Dec-Feb winter, Mar-May spring, Jun-Aug summer, Sep-Nov fall.
// When southern is true the mapping is flipped by six months.
func SeasonOfMonth(month time.Month, southern bool) Season {
	if southern {
		month += 6
		if month > time.December {
			month -= 12
		}
	}
	switch month {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Fall
	}
}
