package schedule

import (
	"time"

	"github.com/derWhity/greentable/internal/models"
	"golang.org/x/text/language"
)

var (
	labelLanguages = []language.Tag{language.BrazilianPortuguese, language.English}
	labelMatcher   = language.NewMatcher(labelLanguages)
	dayLabels      = map[language.Tag][7]string{
		language.BrazilianPortuguese: {
			"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado",
		},
		language.English: {
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
	}
)

// IsToday checks if the tournament takes place on the calendar day of now
func IsToday(ev models.Tournament, now time.Time, loc *time.Location) bool {
	loc = orUTC(loc)
	return occursOn(ev, now.In(loc), loc)
}

// IsUpcoming checks if the tournament has an absolute date after the calendar day of now.
// Weekly tournaments are never upcoming.
func IsUpcoming(ev models.Tournament, now time.Time, loc *time.Location) bool {
	loc = orUTC(loc)
	t, ok := ParseDate(ev.Date, loc)
	if !ok {
		return false
	}
	return startOfDay(t, loc).After(startOfDay(now, loc))
}

// MatchLanguage returns the supported label language closest to the given BCP 47 tag
func MatchLanguage(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return labelLanguages[0]
	}
	_, idx, _ := labelMatcher.Match(t)
	return labelLanguages[idx]
}

// WeekdayLabel returns the display name of a day in the given language
func WeekdayLabel(day time.Weekday, lang language.Tag) string {
	labels, ok := dayLabels[lang]
	if !ok {
		labels = dayLabels[labelLanguages[0]]
	}
	return labels[day]
}

// DayLabel returns the display name of the day the tournament is played on
func DayLabel(ev models.Tournament, loc *time.Location, lang language.Tag) string {
	return WeekdayLabel(ResolveWeekday(ev.Date, loc), lang)
}
