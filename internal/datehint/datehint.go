// Package datehint turns free text like "next friday" or "amanhã" into a concrete calendar date suggestion for the
// tournament form
package datehint

import (
	"errors"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/br"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"golang.org/x/text/language"

	"github.com/derWhity/greentable/internal/schedule"
)

// ErrNotRecognized is returned when the text does not contain anything that looks like a date
var ErrNotRecognized = errors.New("no date found in text")

// Hint is a date suggestion derived from a text
type Hint struct {
	// The suggested date specification ("2025-06-20")
	Date string `json:"date"`
	// The weekday of the suggested date
	Weekday time.Weekday `json:"weekday"`
	// Display name of that weekday
	DayLabel string `json:"dayLabel"`
	// The part of the text the date was found in
	Matched string `json:"matched"`
}

// Parser finds dates inside texts relative to the time supplied by its clock
type Parser struct {
	w     *when.Parser
	clock schedule.Clock
	loc   *time.Location
	lang  language.Tag
}

// New creates a parser understanding English and Brazilian Portuguese expressions
func New(clock schedule.Clock, loc *time.Location, lang language.Tag) *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(br.All...)
	w.Add(common.All...)
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{w: w, clock: clock, loc: loc, lang: lang}
}

// Parse looks for a date inside text
func (p *Parser) Parse(text string) (Hint, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return Hint{}, ErrNotRecognized
	}
	res, err := p.w.Parse(text, p.clock.Now().In(p.loc))
	if err != nil {
		return Hint{}, err
	}
	if res == nil {
		return Hint{}, ErrNotRecognized
	}
	t := res.Time.In(p.loc)
	return Hint{
		Date:     t.Format("2006-01-02"),
		Weekday:  t.Weekday(),
		DayLabel: schedule.WeekdayLabel(t.Weekday(), p.lang),
		Matched:  res.Text,
	}, nil
}
