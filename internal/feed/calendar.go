// Package feed renders the tournament schedule into formats meant for other programs: an iCalendar feed for
// calendar apps and a spreadsheet for the club's staff
package feed

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/schedule"
)

const (
	utcLayout   = "20060102T150405Z"
	localLayout = "20060102T150405"

	propTzOffsetFrom = ics.ComponentProperty("TZOFFSETFROM")
	propTzOffsetTo   = ics.ComponentProperty("TZOFFSETTO")
	propTzName       = ics.ComponentProperty("TZNAME")
)

// DefaultDuration is the length of a calendar entry when the tournament has a start time
const DefaultDuration = 4 * time.Hour

// CalendarOptions configure the generated iCalendar feed
type CalendarOptions struct {
	// Domain part of the event UIDs
	Domain string
	// The location of the club, added to every event
	Location string
}

// Calendar builds an iCalendar feed from the tournaments.
// Tournaments with a calendar date become single events. Weekly tournaments become recurring events starting at their
// next occurrence on or after now.
func Calendar(events []models.Tournament, now time.Time, loc *time.Location, opts CalendarOptions) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	if opts.Domain == "" {
		opts.Domain = "greentable.local"
	}
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Green Table//Tournament Schedule//PT")
	zoned := loc != time.UTC
	if zoned {
		addTimezone(cal, loc, now)
	}
	for _, ev := range events {
		day := schedule.ResolveWeekday(ev.Date, loc)
		start, ok := schedule.ParseDate(ev.Date, loc)
		recurring := !ok
		if recurring {
			start = nextWeekday(now.In(loc), day)
		}
		vev := cal.AddEvent(fmt.Sprintf("%s@%s", ev.ID, opts.Domain))
		vev.SetDtStampTime(now)
		vev.SetSummary(ev.Name)
		vev.SetDescription(Description(schedule.Annotate(ev, day)))
		if opts.Location != "" {
			vev.SetLocation(opts.Location)
		}
		if h, m, ok := clockTime(ev.Time); ok {
			begin := time.Date(start.Year(), start.Month(), start.Day(), h, m, 0, 0, loc)
			setTime(vev, ics.ComponentPropertyDtStart, begin, zoned)
			setTime(vev, ics.ComponentPropertyDtEnd, begin.Add(DefaultDuration), zoned)
		} else {
			vev.SetAllDayStartAt(start)
			vev.SetAllDayEndAt(start.AddDate(0, 0, 1))
		}
		if recurring {
			vev.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;BYDAY="+schedule.ICSWeekday(day))
		}
	}
	out := cal.Serialize(ics.WithNewLineWindows)
	if out == "" {
		return "", errors.New("Calendar: Serialization produced no output")
	}
	return out, nil
}

// setTime writes a date-time property. Outside UTC the value is local wall time carrying the zone's TZID, so that
// weekly rules repeat on the local weekday.
func setTime(vev *ics.VEvent, prop ics.ComponentProperty, t time.Time, zoned bool) {
	if !zoned {
		vev.SetProperty(prop, t.UTC().Format(utcLayout))
		return
	}
	vev.SetProperty(prop, t.Format(localLayout), ics.WithTZID(t.Location().String()))
}

// addTimezone adds a VTIMEZONE for loc using its offset at now
func addTimezone(cal *ics.Calendar, loc *time.Location, now time.Time) {
	name, offset := now.In(loc).Zone()
	tz := cal.AddTimezone(loc.String())
	std := tz.AddStandard()
	std.SetProperty(ics.ComponentPropertyDtStart, "19700101T000000")
	std.SetProperty(propTzOffsetFrom, utcOffset(offset))
	std.SetProperty(propTzOffsetTo, utcOffset(offset))
	std.SetProperty(propTzName, name)
}

// utcOffset formats an offset in seconds as "-0300"
func utcOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d%02d", sign, seconds/3600, seconds%3600/60)
}

// Description returns the plain text shown as the description of a tournament in calendars and spreadsheets
func Description(ev models.Tournament) string {
	lines := []string{
		"Buy-in: " + ev.BuyIn,
		"Premiação: " + ev.Prize,
		fmt.Sprintf("Vagas: %d", ev.MaxPlayers),
	}
	if s := strings.TrimSpace(ev.SpecialFeatures); s != "" {
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

// nextWeekday returns midnight of the next day having the given weekday, today included
func nextWeekday(now time.Time, day time.Weekday) time.Time {
	diff := (int(day) - int(now.Weekday()) + 7) % 7
	d := now.AddDate(0, 0, diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// clockTime reads start times like "19:00", "19h" or "19h30"
func clockTime(s string) (int, int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, layout := range []string{"15:04", "15h04", "15h"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}
