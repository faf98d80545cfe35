package feed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/schedule"
)

// Tuesday
var now = time.Date(2025, time.June, 17, 12, 0, 0, 0, time.UTC)

func tournaments() []models.Tournament {
	return []models.Tournament{
		{ID: "weekly-monday", Name: "Monday Turbo", Date: "Segunda", Time: "20:00", BuyIn: "R$ 100,00", Prize: "A definir", MaxPlayers: 50},
		{ID: "main-event", Name: "Main Event", Date: "2025-06-20", Time: "a confirmar", BuyIn: "R$ 300,00", Prize: "R$ 30.000,00", MaxPlayers: 120},
		{ID: "sunday", Name: "Freeroll", Date: "Domingo", Time: "16h", BuyIn: "Grátis", Prize: "Vaga", MaxPlayers: 80},
	}
}

func unfold(s string) string {
	return strings.ReplaceAll(s, "\r\n ", "")
}

func TestCalendar(t *testing.T) {
	out, err := Calendar(tournaments(), now, time.UTC, CalendarOptions{Domain: "example.org", Location: "Green Table"})
	require.NoError(t, err)
	out = unfold(out)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:weekly-monday@example.org")
	assert.Contains(t, out, "SUMMARY:Monday Turbo")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=MO")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=SU")
	// Next Monday after the reference day, at 20:00
	assert.Contains(t, out, "20250623T200000Z")
	// Sunday at 16h
	assert.Contains(t, out, "20250622T160000Z")
	// Main event has no usable start time
	assert.Contains(t, out, "VALUE=DATE:20250620")
	assert.Equal(t, 2, strings.Count(out, "RRULE:"))
}

func TestCalendarCarriesPromotion(t *testing.T) {
	out, err := Calendar(tournaments()[:1], now, time.UTC, CalendarOptions{})
	require.NoError(t, err)
	assert.Contains(t, unfold(out), "Free com registro tardio")
}

func TestCalendarUsesCRLF(t *testing.T) {
	out, err := Calendar(tournaments(), now, time.UTC, CalendarOptions{})
	require.NoError(t, err)
	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"))
}

func TestCalendarWeeklyKeepsLocalWeekday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	ref := time.Date(2025, time.June, 17, 12, 0, 0, 0, loc)
	late := models.Tournament{ID: "friday-deep", Name: "Deep Stack", Date: "Sexta", Time: "22:00", MaxPlayers: 50}

	out, err := Calendar([]models.Tournament{late}, ref, loc, CalendarOptions{Domain: "example.org"})
	require.NoError(t, err)
	flat := unfold(out)
	assert.Contains(t, flat, "BEGIN:VTIMEZONE")
	assert.Contains(t, flat, "TZID:America/Sao_Paulo")
	assert.Contains(t, flat, "TZOFFSETTO:-0300")
	assert.Contains(t, flat, "DTSTART;TZID=America/Sao_Paulo:20250620T220000")
	assert.Contains(t, flat, "DTEND;TZID=America/Sao_Paulo:20250621T020000")

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	start, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.Equal(t, time.Friday, start.In(loc).Weekday())
	assert.Equal(t, 22, start.In(loc).Hour())

	prop := events[0].GetProperty(ics.ComponentPropertyRrule)
	require.NotNil(t, prop)
	opt, err := rrule.StrToROption(prop.Value)
	require.NoError(t, err)
	opt.Dtstart = start
	rule, err := rrule.NewRRule(*opt)
	require.NoError(t, err)
	occurrences := rule.Between(start, start.AddDate(0, 0, 21), true)
	require.Len(t, occurrences, 4)
	for _, o := range occurrences {
		assert.Equal(t, time.Friday, o.In(loc).Weekday(), o)
		assert.Equal(t, 22, o.In(loc).Hour(), o)
	}
}

func TestUTCOffset(t *testing.T) {
	assert.Equal(t, "-0300", utcOffset(-3*3600))
	assert.Equal(t, "+0530", utcOffset(5*3600+30*60))
	assert.Equal(t, "+0000", utcOffset(0))
}

func TestDescription(t *testing.T) {
	ev := tournaments()[0]
	assert.Equal(t, "Buy-in: R$ 100,00\nPremiação: A definir\nVagas: 50", Description(ev))
	ev.SpecialFeatures = "  Rebuy  "
	assert.True(t, strings.HasSuffix(Description(ev), "\nRebuy"))
}

func TestClockTime(t *testing.T) {
	for in, want := range map[string][2]int{"19:00": {19, 0}, "19h": {19, 0}, "20h30": {20, 30}, " 9:15 ": {9, 15}} {
		h, m, ok := clockTime(in)
		require.True(t, ok, in)
		assert.Equal(t, want, [2]int{h, m}, in)
	}
	_, _, ok := clockTime("à noite")
	assert.False(t, ok)
}

func TestNextWeekday(t *testing.T) {
	assert.Equal(t, time.Date(2025, time.June, 17, 0, 0, 0, 0, time.UTC), nextWeekday(now, time.Tuesday))
	assert.Equal(t, time.Date(2025, time.June, 23, 0, 0, 0, 0, time.UTC), nextWeekday(now, time.Monday))
}

func TestWorkbook(t *testing.T) {
	events := tournaments()
	events = append(events, models.Tournament{ID: "early", Name: "Warmup", Date: "2025-06-18", MaxPlayers: 30})
	data, err := Workbook(events, time.UTC, schedule.MatchLanguage("pt-BR"))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetTournaments, SheetWeek}, f.GetSheetList())

	rows, err := f.GetRows(SheetTournaments)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Nome", rows[0][0])
	assert.Equal(t, "Monday Turbo", rows[1][0])
	assert.Equal(t, "Segunda-feira", rows[1][2])

	week, err := f.GetCols(SheetWeek)
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, []string{"Domingo", "Freeroll"}, week[0])
	assert.Equal(t, []string{"Segunda-feira", "Monday Turbo"}, week[1])
	assert.Equal(t, []string{"Sexta-feira", "Main Event"}, week[5])
}

func TestWorkbookEmpty(t *testing.T) {
	data, err := Workbook(nil, time.UTC, language.English)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetTournaments)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
