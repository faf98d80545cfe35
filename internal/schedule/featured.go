package schedule

import (
	"fmt"
	"time"

	"github.com/derWhity/greentable/internal/models"
)

// FeaturedMode is the strategy used to pick the featured tournament when the reference day has none
type FeaturedMode int

const (
	// TodayPriority falls back to the first tournament of the unpartitioned list
	TodayPriority FeaturedMode = iota
	// ForwardSearch looks at the following days of the week before falling back to the first tournament
	ForwardSearch
)

func (m FeaturedMode) String() string {
	switch m {
	case ForwardSearch:
		return models.FeaturedModeForwardSearch
	default:
		return models.FeaturedModeTodayPriority
	}
}

// ParseFeaturedMode converts the configuration value of a featured mode
func ParseFeaturedMode(s string) (FeaturedMode, error) {
	switch s {
	case models.FeaturedModeTodayPriority:
		return TodayPriority, nil
	case models.FeaturedModeForwardSearch:
		return ForwardSearch, nil
	}
	return TodayPriority, fmt.Errorf("unknown featured mode %q", s)
}

// SelectFeatured picks the tournament to show prominently for the day of ref.
// The first tournament of that day wins. When the day is empty, ForwardSearch tries the next six days in order and
// both modes finally fall back to the first entry of all. The boolean is false when there is nothing to feature.
func SelectFeatured(mode FeaturedMode, week Week, ref time.Time, all []models.Tournament) (models.Tournament, bool) {
	today := int(ref.Weekday())
	if len(week[today]) > 0 {
		return week[today][0], true
	}
	if mode == ForwardSearch {
		for k := 1; k < 7; k++ {
			day := week[(today+k)%7]
			if len(day) > 0 {
				return day[0], true
			}
		}
	}
	if len(all) > 0 {
		return all[0], true
	}
	return models.Tournament{}, false
}
