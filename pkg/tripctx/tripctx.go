// Package tripctx derives the packing context for a trip: which season to
// pack for, how many days the trip lasts, and the camping style. It is the
// only bridge between externally owned trip records and the generation
// pipeline, and it never fails: malformed input degrades to defaults.
package tripctx

import (
	"strings"
	"time"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// Trip is the read-only slice of an externally owned trip record that the
// resolver consumes.
type Trip struct {
	Start          *time.Time
	End            *time.Time
	CampingStyle   string
	TripType       string
	SeasonOverride string
	Tags           []string
	Latitude       *float64
}

// Context is the resolved packing context for a trip.
type Context struct {
	Season        packing.Season
	TripDays      int
	Style         string
	LocationHints []string
}

// Resolve derives the packing context from a trip. Season priority:
// explicit override, then a winter-camping signal on the style, tags or
// trip type, then the start month (hemisphere-flipped when a southern
// latitude is known), then summer when no date exists. TripDays is the
// inclusive day count at midnight granularity, minimum 1.
func Resolve(trip Trip) Context {
	return Context{
		Season:        resolveSeason(trip),
		TripDays:      resolveDays(trip),
		Style:         trip.CampingStyle,
		LocationHints: locationHints(trip),
	}
}

func resolveSeason(trip Trip) packing.Season {
	// 1. Explicit user override
	if season, ok := packing.ParseSeason(trip.SeasonOverride); ok {
		return season
	}

	// 2. Winter camping signal
	if hasWinterSignal(trip) {
		return packing.Winter
	}

	// 3. Month of start date
	if trip.Start != nil {
		southern := trip.Latitude != nil && *trip.Latitude < 0
		return packing.SeasonOfMonth(trip.Start.Month(), southern)
	}

	// 4. Default
	return packing.Summer
}

// hasWinterSignal checks the style, trip type and tags for an explicit
// winter-camping marker.
func hasWinterSignal(trip Trip) bool {
	if containsWinter(trip.CampingStyle) || containsWinter(trip.TripType) {
		return true
	}
	for _, tag := range trip.Tags {
		if containsWinter(tag) {
			return true
		}
	}
	return false
}

func containsWinter(s string) bool {
	return strings.Contains(strings.ToLower(s), "winter")
}

func resolveDays(trip Trip) int {
	if trip.Start == nil || trip.End == nil {
		return 1
	}

	start := midnight(*trip.Start)
	end := midnight(*trip.End)
	if end.Before(start) {
		return 1
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// midnight normalizes a time to its calendar date at midnight UTC.
// Counting in UTC keeps the difference a whole number of 24h days even
// when the input dates carry a DST-observing location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func locationHints(trip Trip) []string {
	var hints []string
	for _, tag := range trip.Tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			hints = append(hints, tag)
		}
	}
	return hints
}
