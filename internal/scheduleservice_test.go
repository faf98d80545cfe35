package internal

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/feed"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/schedule"
	"github.com/derWhity/greentable/internal/seed"
)

// snapshotSource stands in for the tournament service; only Snapshot and OnChange are used by the schedule service
type snapshotSource struct {
	TournamentService
	list     []models.Tournament
	err      error
	calls    int
	onChange func()
}

func (s *snapshotSource) Snapshot(ctx context.Context) ([]models.Tournament, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *snapshotSource) OnChange(fn func()) {
	s.onChange = fn
}

func scheduleFixture(list ...models.Tournament) []models.Tournament {
	return list
}

func newTestScheduleService(src *snapshotSource, ttl time.Duration) (ScheduleService, ConfigService) {
	config := NewConfigService("")
	clock := schedule.FixedClock{T: wednesday(config.Location())}
	svc := NewScheduleService(src, config, clock, ttl, feed.CalendarOptions{Domain: "test.local"}, testLogger())
	return svc, config
}

func TestScheduleWeekFromStore(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(
		models.Tournament{ID: "1", Name: "Monday Turbo", Date: "Segunda"},
		models.Tournament{ID: "2", Name: "Thursday Hyper", Date: "quinta-feira"},
		models.Tournament{ID: "3", Name: "Special", Date: "2025-06-18", SpecialFeatures: "**Mesa final** filmada"},
	)}
	svc, _ := newTestScheduleService(src, time.Minute)

	week, err := svc.Week(testContext())
	require.NoError(t, err)
	assert.Equal(t, SourceStore, week.Source)
	assert.Equal(t, "2025-06-18", week.Today)
	require.Len(t, week.Days, 7)

	monday := week.Days[time.Monday]
	require.Len(t, monday.Tournaments, 1)
	assert.True(t, monday.Tournaments[0].Promotion)
	assert.True(t, monday.Tournaments[0].Weekly)
	assert.Contains(t, monday.Tournaments[0].SpecialFeatures, schedule.PromoLateRegistration)
	assert.Contains(t, monday.Tournaments[0].SpecialFeatures, schedule.PromoFreeEntry)

	wed := week.Days[time.Wednesday]
	assert.True(t, wed.IsToday)
	require.Len(t, wed.Tournaments, 1)
	assert.True(t, wed.Tournaments[0].IsToday)
	assert.False(t, wed.Tournaments[0].Weekly)
	assert.Contains(t, wed.Tournaments[0].SpecialFeaturesHTML, "<strong>Mesa final</strong>")

	// The tournaments page favours today's tournament
	require.NotNil(t, week.Featured)
	assert.Equal(t, "3", week.Featured.ID)

	assert.Contains(t, week.Highlights, "2025-06-18")
	assert.Contains(t, week.Highlights, "2025-06-19")
	assert.Contains(t, week.Highlights, "2025-06-23")
	assert.NotContains(t, week.Highlights, "2025-06-20")

	// The source list stays untouched
	assert.Empty(t, src.list[0].SpecialFeatures)
}

func TestScheduleFallsBackToSeed(t *testing.T) {
	src := &snapshotSource{err: ErrStoreUnavailable}
	svc, _ := newTestScheduleService(src, time.Minute)

	list, err := svc.List(testContext())
	require.NoError(t, err)
	assert.Equal(t, SourceSeed, list.Source)
	assert.Len(t, list.Tournaments, len(seed.Tournaments()))
}

func TestScheduleFallsBackToLastSnapshot(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(models.Tournament{ID: "1", Name: "Friday Main", Date: "Sexta"})}
	// Without a TTL every view asks the store
	svc, _ := newTestScheduleService(src, 0)
	ctx := testContext()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceStore, list.Source)

	src.err = ErrStoreUnavailable
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, list.Source)
	require.Len(t, list.Tournaments, 1)
	assert.Equal(t, "Friday Main", list.Tournaments[0].Name)
}

func TestScheduleEmptyStoreIsNotAFailure(t *testing.T) {
	src := &snapshotSource{list: []models.Tournament{}}
	svc, _ := newTestScheduleService(src, time.Minute)

	week, err := svc.Week(testContext())
	require.NoError(t, err)
	assert.Equal(t, SourceStore, week.Source)
	assert.Nil(t, week.Featured)
	assert.Empty(t, week.Highlights)
	for _, d := range week.Days {
		assert.NotNil(t, d.Tournaments)
		assert.Empty(t, d.Tournaments)
	}
}

func TestScheduleCacheAndInvalidate(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(models.Tournament{ID: "1", Name: "Old", Date: "Sexta"})}
	svc, _ := newTestScheduleService(src, time.Hour)
	ctx := testContext()
	require.NotNil(t, src.onChange)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	src.list = scheduleFixture(models.Tournament{ID: "2", Name: "New", Date: "Sexta"})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Old", list.Tournaments[0].Name)
	assert.Equal(t, 1, src.calls)

	src.onChange()
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", list.Tournaments[0].Name)
	assert.Equal(t, 2, src.calls)
}

func TestScheduleDay(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(
		models.Tournament{ID: "1", Name: "Monday Turbo", Date: "Segunda"},
		models.Tournament{ID: "2", Name: "Special", Date: "2025-06-23"},
		models.Tournament{ID: "3", Name: "Other Monday", Date: "2025-06-30"},
		models.Tournament{ID: "4", Name: "Friday", Date: "Sexta"},
	)}
	svc, _ := newTestScheduleService(src, time.Minute)
	ctx := testContext()

	day, err := svc.Day(ctx, "2025-06-23")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day.Weekday)
	assert.Equal(t, "Segunda-feira", day.Label)
	require.Len(t, day.Tournaments, 2)
	assert.Equal(t, "1", day.Tournaments[0].ID)
	assert.Equal(t, "2", day.Tournaments[1].ID)
	assert.True(t, day.Tournaments[1].IsUpcoming)
	assert.Contains(t, day.Tournaments[1].SpecialFeatures, schedule.PromoFreeEntry)

	day, err = svc.Day(ctx, "2025-06-24")
	require.NoError(t, err)
	assert.NotNil(t, day.Tournaments)
	assert.Empty(t, day.Tournaments)

	_, err = svc.Day(ctx, "next monday")
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeInvalidDate)
}

func TestScheduleFeaturedPerSurface(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(
		models.Tournament{ID: "1", Name: "Monday Turbo", Date: "Segunda"},
		models.Tournament{ID: "2", Name: "Saturday High Roller", Date: "Sábado"},
	)}
	svc, _ := newTestScheduleService(src, time.Minute)
	ctx := testContext()

	// Nothing on Wednesday: the home page searches forward, the tournaments page takes the first tournament
	home, err := svc.Featured(ctx, models.SurfaceHome)
	require.NoError(t, err)
	assert.Equal(t, schedule.ForwardSearch.String(), home.Mode)
	require.NotNil(t, home.Tournament)
	assert.Equal(t, "2", home.Tournament.ID)

	page, err := svc.Featured(ctx, models.SurfaceTournaments)
	require.NoError(t, err)
	assert.Equal(t, schedule.TodayPriority.String(), page.Mode)
	require.NotNil(t, page.Tournament)
	assert.Equal(t, "1", page.Tournament.ID)
	assert.True(t, page.Tournament.Promotion)
	assert.Contains(t, page.Tournament.SpecialFeatures, schedule.PromoLateRegistration)

	_, err = svc.Featured(ctx, "sidebar")
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeUnknownSurface)
}

func TestScheduleListSortedByDate(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(
		models.Tournament{ID: "late", Name: "Late", Date: "2025-07-01"},
		models.Tournament{ID: "early", Name: "Early", Date: "2025-06-20"},
	)}
	svc, _ := newTestScheduleService(src, time.Minute)

	list, err := svc.List(testContext())
	require.NoError(t, err)
	require.Len(t, list.Tournaments, 2)
	assert.Equal(t, "early", list.Tournaments[0].ID)
	assert.Equal(t, "late", list.Tournaments[1].ID)
	assert.Equal(t, time.Friday, list.Tournaments[0].Weekday)
	assert.True(t, list.Tournaments[0].Promotion)
}

func TestScheduleCalendarAndExport(t *testing.T) {
	src := &snapshotSource{list: scheduleFixture(models.Tournament{ID: "1", Name: "Monday Turbo", Date: "Segunda", Time: "20:00"})}
	svc, _ := newTestScheduleService(src, time.Minute)
	ctx := testContext()

	cal, err := svc.Calendar(ctx)
	require.NoError(t, err)
	assert.Contains(t, cal, "BEGIN:VCALENDAR")
	assert.Contains(t, cal, "1@test.local")
	assert.Contains(t, cal, "FREQ=WEEKLY;BYDAY=MO")

	data, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
