// Package schedule projects the club's tournament records onto the days of the week and onto concrete calendar
// dates. Every function in here is pure: the reference time is always passed in and the input slices are never
// modified.
package schedule

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Layouts accepted for absolute date specifications, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Weekday names as they can appear inside a symbolic date specification, already folded. The outer index is the
// weekday, which is also the matching priority
var weekdayNames = [7][]string{
	time.Sunday:    {"domingo", "sunday"},
	time.Monday:    {"segunda", "monday"},
	time.Tuesday:   {"terca", "tuesday"},
	time.Wednesday: {"quarta", "wednesday"},
	time.Thursday:  {"quinta", "thursday"},
	time.Friday:    {"sexta", "friday"},
	time.Saturday:  {"sabado", "saturday"},
}

// ParseDate interprets a date specification as an absolute calendar date. Only specifications containing a "-" are
// considered. Date-only values are taken as midnight in loc, values carrying a time are converted into loc
func ParseDate(spec string, loc *time.Location) (time.Time, bool) {
	if !strings.Contains(spec, "-") {
		return time.Time{}, false
	}
	loc = orUTC(loc)
	spec = strings.TrimSpace(spec)
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, spec, loc)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// IsAbsolute checks if the date specification names a concrete calendar date instead of a weekday
func IsAbsolute(spec string, loc *time.Location) bool {
	_, ok := ParseDate(spec, loc)
	return ok
}

// ResolveWeekday maps a date specification to the day of the week it takes place on.
// Absolute dates resolve to their weekday in loc. Anything else is searched for a Portuguese or English weekday name,
// ignoring case and accents, in the order Sunday to Saturday. Unresolvable specifications fall back to Sunday.
func ResolveWeekday(spec string, loc *time.Location) time.Weekday {
	if t, ok := ParseDate(spec, loc); ok {
		return t.Weekday()
	}
	folded := fold(spec)
	for day, names := range weekdayNames {
		for _, name := range names {
			if strings.Contains(folded, name) {
				return time.Weekday(day)
			}
		}
	}
	return time.Sunday
}

// fold lower-cases s and strips its diacritics ("Terça" becomes "terca")
func fold(s string) string {
	// Transformers keep state - a new chain is needed for every call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
