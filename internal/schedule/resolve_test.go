package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeekday(t *testing.T) {
	tests := []struct {
		spec string
		want time.Weekday
	}{
		{"2025-06-16", time.Monday},
		{"2025-06-20", time.Friday},
		{"2025-06-22", time.Sunday},
		{"2025-06-16T22:30:00-03:00", time.Monday},
		{"2025-06-16 19:00:00", time.Monday},
		{"Segunda", time.Monday},
		{"SEXTA-FEIRA", time.Friday},
		{"sexta-feira", time.Friday},
		{"Terça", time.Tuesday},
		{"toda terca", time.Tuesday},
		{"Quarta-Feira", time.Wednesday},
		{"quinta", time.Thursday},
		{"Sábado", time.Saturday},
		{"sabado", time.Saturday},
		{"domingo", time.Sunday},
		{"Friday", time.Friday},
		{"every THURSDAY", time.Thursday},
		{"", time.Sunday},
		{"-", time.Sunday},
		{"2025-13-45", time.Sunday},
		{"amanhã", time.Sunday},
		// Priority order: Sunday is checked before Friday
		{"sexta ou domingo", time.Sunday},
		{"segunda e sábado", time.Monday},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveWeekday(tc.spec, saoPaulo))
		})
	}
}

func TestResolveWeekdayIsTotal(t *testing.T) {
	g := newTournamentGenerator(t)
	for i := 0; i < 500; i++ {
		spec := g.faker.LetterN(uint(g.faker.Number(0, 20)))
		if g.faker.Bool() {
			spec += "-" + g.faker.Numerify("##")
		}
		day := ResolveWeekday(spec, saoPaulo)
		assert.True(t, day >= time.Sunday && day <= time.Saturday, "spec %q resolved to %d", spec, day)
	}
}

func TestResolveWeekdayUsesLocation(t *testing.T) {
	// 01:00 UTC on a Tuesday is still Monday evening in São Paulo
	spec := "2025-06-17T01:00:00Z"
	assert.Equal(t, time.Monday, ResolveWeekday(spec, saoPaulo))
	assert.Equal(t, time.Tuesday, ResolveWeekday(spec, time.UTC))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2025-06-16", saoPaulo)
	require.True(t, ok)
	assert.True(t, day(2025, time.June, 16).Equal(got))

	_, ok = ParseDate("Segunda", saoPaulo)
	assert.False(t, ok)
	_, ok = ParseDate("sexta-feira", saoPaulo)
	assert.False(t, ok)
	_, ok = ParseDate("2025-02-30", saoPaulo)
	assert.False(t, ok)

	got, ok = ParseDate(" 2025-06-16 ", nil)
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("2025-06-16", saoPaulo))
	assert.False(t, IsAbsolute("Sexta", saoPaulo))
	assert.False(t, IsAbsolute("", saoPaulo))
}
