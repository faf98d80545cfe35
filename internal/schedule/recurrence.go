package schedule

import (
	"slices"
	"time"

	"github.com/derWhity/greentable/internal/models"
	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// ICSWeekday returns the two letter weekday code used inside RRULE values
func ICSWeekday(day time.Weekday) string {
	return rruleWeekdays[day].String()
}

// An Occurrence is a tournament placed on a concrete calendar day
type Occurrence struct {
	Tournament models.Tournament `json:"tournament"`
	// Midnight of the day the tournament takes place, in the display location
	Date time.Time `json:"date"`
}

// Occurrences expands the tournaments onto the calendar days from the day of from up to and including the day of to.
// Tournaments with an absolute date appear once if their date lies in that range, weekly ones appear on every
// matching weekday. The result is ordered by date, tournaments of the same day keep their input order.
func Occurrences(events []models.Tournament, from, to time.Time, loc *time.Location) []Occurrence {
	loc = orUTC(loc)
	first := startOfDay(from, loc)
	last := startOfDay(to, loc)
	ret := []Occurrence{}
	if last.Before(first) {
		return ret
	}
	for _, ev := range events {
		if t, ok := ParseDate(ev.Date, loc); ok {
			day := startOfDay(t, loc)
			if !day.Before(first) && !day.After(last) {
				ret = append(ret, Occurrence{Tournament: ev, Date: day})
			}
			continue
		}
		rule, err := weeklyRule(ResolveWeekday(ev.Date, loc), first)
		if err != nil {
			continue
		}
		for _, t := range rule.Between(first, last, true) {
			ret = append(ret, Occurrence{Tournament: ev, Date: startOfDay(t, loc)})
		}
	}
	slices.SortStableFunc(ret, func(a, b Occurrence) int {
		return a.Date.Compare(b.Date)
	})
	return ret
}

// HighlightDates returns the distinct calendar days in the range that have at least one tournament
func HighlightDates(events []models.Tournament, from, to time.Time, loc *time.Location) []time.Time {
	ret := []time.Time{}
	for _, o := range Occurrences(events, from, to, loc) {
		if len(ret) == 0 || !ret[len(ret)-1].Equal(o.Date) {
			ret = append(ret, o.Date)
		}
	}
	return ret
}

func weeklyRule(day time.Weekday, start time.Time) (*rrule.RRule, error) {
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[day]},
		Dtstart:   start,
	})
}
