package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/derWhity/greentable/internal/schedule"
)

func TestTournamentsCoverTheWeek(t *testing.T) {
	week := schedule.PartitionByWeekday(Tournaments(), time.UTC)
	for day, bucket := range week {
		assert.Len(t, bucket, 1, "weekday %d", day)
	}
}

func TestTournamentsAreStable(t *testing.T) {
	a, b := Tournaments(), Tournaments()
	assert.Equal(t, a, b)
	a[0].Name = "changed"
	assert.NotEqual(t, a[0].Name, Tournaments()[0].Name)

	seen := map[string]bool{}
	for _, tour := range a {
		assert.False(t, seen[tour.ID])
		seen[tour.ID] = true
		assert.Positive(t, tour.MaxPlayers)
	}
}
