package schedule

import (
	"time"

	"github.com/derWhity/greentable/internal/models"
)

// EventsOnDate returns the tournaments taking place on the calendar day of target.
// Tournaments with an absolute date must fall on exactly that day, weekly tournaments must share its weekday.
func EventsOnDate(events []models.Tournament, target time.Time, loc *time.Location) []models.Tournament {
	loc = orUTC(loc)
	target = target.In(loc)
	ret := []models.Tournament{}
	for _, ev := range events {
		if occursOn(ev, target, loc) {
			ret = append(ret, ev)
		}
	}
	return ret
}

func occursOn(ev models.Tournament, day time.Time, loc *time.Location) bool {
	if t, ok := ParseDate(ev.Date, loc); ok {
		return sameDay(t, day)
	}
	return ResolveWeekday(ev.Date, loc) == day.Weekday()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay returns midnight of t's calendar day in loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
