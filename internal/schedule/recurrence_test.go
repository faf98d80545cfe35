package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrences(t *testing.T) {
	g := newTournamentGenerator(t)
	events := g.tournaments("Segunda", "2025-06-18", "2025-08-01", "Sexta")
	from := day(2025, time.June, 16).Add(10 * time.Hour)
	to := day(2025, time.June, 29)

	got := Occurrences(events, from, to, saoPaulo)

	require.Len(t, got, 5)
	want := []struct {
		date time.Time
		id   string
	}{
		{day(2025, time.June, 16), events[0].ID},
		{day(2025, time.June, 18), events[1].ID},
		{day(2025, time.June, 20), events[3].ID},
		{day(2025, time.June, 23), events[0].ID},
		{day(2025, time.June, 27), events[3].ID},
	}
	for i, w := range want {
		assert.True(t, w.date.Equal(got[i].Date), "occurrence %d: got %s want %s", i, got[i].Date, w.date)
		assert.Equal(t, w.id, got[i].Tournament.ID)
	}
}

func TestOccurrencesEmptyRange(t *testing.T) {
	g := newTournamentGenerator(t)
	events := g.tournaments("Segunda")
	assert.Empty(t, Occurrences(events, day(2025, time.June, 20), day(2025, time.June, 16), saoPaulo))
}

func TestHighlightDates(t *testing.T) {
	g := newTournamentGenerator(t)
	events := g.tournaments("Sábado", "2025-06-21", "Domingo")

	got := HighlightDates(events, day(2025, time.June, 16), day(2025, time.June, 22), saoPaulo)

	require.Len(t, got, 2)
	assert.True(t, day(2025, time.June, 21).Equal(got[0]))
	assert.True(t, day(2025, time.June, 22).Equal(got[1]))
}

func TestICSWeekday(t *testing.T) {
	assert.Equal(t, "SU", ICSWeekday(time.Sunday))
	assert.Equal(t, "MO", ICSWeekday(time.Monday))
	assert.Equal(t, "SA", ICSWeekday(time.Saturday))
}
