package datehint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/derWhity/greentable/internal/schedule"
)

// Tuesday afternoon
var ref = time.Date(2025, time.June, 17, 15, 0, 0, 0, time.UTC)

func newParser() *Parser {
	return New(schedule.FixedClock{T: ref}, time.UTC, language.English)
}

func TestParseTomorrow(t *testing.T) {
	hint, err := newParser().Parse("Tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-18", hint.Date)
	assert.Equal(t, time.Wednesday, hint.Weekday)
	assert.Equal(t, "Wednesday", hint.DayLabel)
	assert.Equal(t, "tomorrow", hint.Matched)
}

func TestParseNextWeekday(t *testing.T) {
	hint, err := newParser().Parse("main event next friday")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, hint.Weekday)
	d, err := time.Parse("2006-01-02", hint.Date)
	require.NoError(t, err)
	assert.True(t, d.After(ref))
}

func TestParseNothing(t *testing.T) {
	_, err := newParser().Parse("")
	assert.Equal(t, ErrNotRecognized, err)
	_, err = newParser().Parse("rebuy ilimitado")
	assert.Equal(t, ErrNotRecognized, err)
}
