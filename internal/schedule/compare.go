package schedule

import (
	"slices"
	"time"

	"github.com/derWhity/greentable/internal/models"
)

// CompareByDate orders two tournaments by their absolute dates.
// If either one has no absolute date, both count as equal.
func CompareByDate(a, b models.Tournament, loc *time.Location) int {
	ta, okA := ParseDate(a.Date, loc)
	tb, okB := ParseDate(b.Date, loc)
	if !okA || !okB {
		return 0
	}
	return ta.Compare(tb)
}

// SortByDate returns a copy of events stably sorted with CompareByDate
func SortByDate(events []models.Tournament, loc *time.Location) []models.Tournament {
	ret := slices.Clone(events)
	if ret == nil {
		ret = []models.Tournament{}
	}
	slices.SortStableFunc(ret, func(a, b models.Tournament) int {
		return CompareByDate(a, b, loc)
	})
	return ret
}
