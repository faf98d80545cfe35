package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFeatured(t *testing.T) {
	g := newTournamentGenerator(t)
	// 2025-06-17 is a Tuesday
	ref := day(2025, time.June, 17).Add(15 * time.Hour)

	tests := []struct {
		name      string
		dates     []string
		mode      FeaturedMode
		wantIndex int
	}{
		{"today wins in today priority", []string{"Sexta", "Terça", "Terça"}, TodayPriority, 1},
		{"today wins in forward search", []string{"Sexta", "Terça", "Terça"}, ForwardSearch, 1},
		{"today priority falls back to first", []string{"Sábado", "Quinta"}, TodayPriority, 0},
		{"forward search takes next day with events", []string{"Sábado", "Quinta"}, ForwardSearch, 1},
		{"forward search wraps around the week", []string{"Segunda", "Domingo"}, ForwardSearch, 1},
		{"absolute date resolved to today", []string{"Quarta", "2025-06-24"}, TodayPriority, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			all := g.tournaments(tc.dates...)
			week := PartitionByWeekday(all, saoPaulo)
			got, ok := SelectFeatured(tc.mode, week, ref, all)
			require.True(t, ok)
			assert.Equal(t, all[tc.wantIndex].ID, got.ID)
		})
	}
}

func TestSelectFeaturedTodayPriorityFallbackIsNotToday(t *testing.T) {
	g := newTournamentGenerator(t)
	all := g.tournaments("Sábado")
	ref := day(2025, time.June, 17)
	got, ok := SelectFeatured(TodayPriority, PartitionByWeekday(all, saoPaulo), ref, all)
	require.True(t, ok)
	assert.Equal(t, all[0].ID, got.ID)
	assert.False(t, IsToday(got, ref, saoPaulo))
}

func TestSelectFeaturedEmpty(t *testing.T) {
	for _, mode := range []FeaturedMode{TodayPriority, ForwardSearch} {
		got, ok := SelectFeatured(mode, PartitionByWeekday(nil, saoPaulo), day(2025, time.June, 17), nil)
		assert.False(t, ok)
		assert.Zero(t, got)
	}
}

func TestSelectFeaturedUsesAllWhenWeekIsEmpty(t *testing.T) {
	g := newTournamentGenerator(t)
	all := g.tournaments("Sexta")
	var week Week
	got, ok := SelectFeatured(ForwardSearch, week, day(2025, time.June, 17), all)
	require.True(t, ok)
	assert.Equal(t, all[0].ID, got.ID)
}

func TestParseFeaturedMode(t *testing.T) {
	m, err := ParseFeaturedMode("forwardSearch")
	require.NoError(t, err)
	assert.Equal(t, ForwardSearch, m)
	assert.Equal(t, "forwardSearch", m.String())

	m, err = ParseFeaturedMode("todayPriority")
	require.NoError(t, err)
	assert.Equal(t, TodayPriority, m)

	_, err = ParseFeaturedMode("nearest")
	assert.Error(t, err)
}
