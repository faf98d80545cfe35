package internal

import (
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/feed"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/render"
	"github.com/derWhity/greentable/internal/schedule"
	"github.com/derWhity/greentable/internal/seed"
)

// SnapshotSource tells where the tournaments of a schedule view came from
type SnapshotSource string

const (
	// SourceStore means the tournaments have been read from the store
	SourceStore SnapshotSource = "store"
	// SourceCache means the store failed and the last tournaments read successfully are shown
	SourceCache SnapshotSource = "cache"
	// SourceSeed means the store failed before anything could be read and the built-in schedule is shown
	SourceSeed SnapshotSource = "seed"
)

// Snapshot is the list of tournaments all schedule views of one request are computed from
type Snapshot struct {
	Tournaments []models.Tournament
	Source      SnapshotSource
	TakenAt     time.Time
}

// TournamentView is a tournament prepared for showing it on the public pages
type TournamentView struct {
	models.Tournament
	Weekday             time.Weekday `json:"weekday"`
	Weekly              bool         `json:"weekly"`
	DayLabel            string       `json:"dayLabel"`
	IsToday             bool         `json:"isToday"`
	IsUpcoming          bool         `json:"isUpcoming"`
	Promotion           bool         `json:"promotion"`
	SpecialFeaturesHTML string       `json:"specialFeaturesHtml"`
}

// DayBucket holds the tournaments of one day of the week
type DayBucket struct {
	Weekday     time.Weekday     `json:"weekday"`
	Label       string           `json:"label"`
	IsToday     bool             `json:"isToday"`
	Tournaments []TournamentView `json:"tournaments"`
}

// WeekView is the schedule of a whole week
type WeekView struct {
	Today    string          `json:"today"`
	Days     []DayBucket     `json:"days"`
	Featured *TournamentView `json:"featured"`
	// Calendar dates with tournaments within the highlight horizon
	Highlights []string       `json:"highlights"`
	Source     SnapshotSource `json:"source"`
}

// DayView lists the tournaments of a single calendar date
type DayView struct {
	Date        string           `json:"date"`
	Weekday     time.Weekday     `json:"weekday"`
	Label       string           `json:"label"`
	Tournaments []TournamentView `json:"tournaments"`
	Source      SnapshotSource   `json:"source"`
}

// FeaturedView is the tournament shown prominently on a surface. Tournament is nil if there are no tournaments at all
type FeaturedView struct {
	Surface    string          `json:"surface"`
	Mode       string          `json:"mode"`
	Tournament *TournamentView `json:"tournament"`
	Source     SnapshotSource  `json:"source"`
}

// ListView is the full schedule sorted by date
type ListView struct {
	Tournaments []TournamentView `json:"tournaments"`
	Source      SnapshotSource   `json:"source"`
}

// ScheduleService provides the public views of the tournament schedule
type ScheduleService interface {
	// Week returns the schedule partitioned by weekday together with the featured tournament of the tournaments page
	Week(ctx context.Context) (*WeekView, error)
	// Day returns the tournaments taking place on the given date (YYYY-MM-DD)
	Day(ctx context.Context, date string) (*DayView, error)
	// Featured returns the featured tournament for the given surface
	Featured(ctx context.Context, surface string) (*FeaturedView, error)
	// List returns all tournaments sorted by date
	List(ctx context.Context) (*ListView, error)
	// Calendar returns the schedule as an iCalendar feed
	Calendar(ctx context.Context) (string, error)
	// Export returns the schedule as an XLSX workbook
	Export(ctx context.Context) ([]byte, error)
	// Refresh reads the tournaments from the store, replacing the cached snapshot
	Refresh(ctx context.Context) (Snapshot, error)
	// Invalidate drops the cached snapshot so the next view reads from the store again
	Invalidate()
}

// -- ScheduleService implementation -----------------------------------------------------------------------------------

type scheduleService struct {
	tournaments TournamentService
	config      ConfigService
	clock       schedule.Clock
	ttl         time.Duration
	calendar    feed.CalendarOptions
	logger      *logrus.Entry

	mu sync.RWMutex
	// the last snapshot read from the store
	last *Snapshot
	// the cached snapshot may be served without asking the store until this point in time
	freshUntil time.Time
}

// NewScheduleService creates the public schedule service. Snapshots are served from the cache for ttl
func NewScheduleService(
	tournaments TournamentService,
	config ConfigService,
	clock schedule.Clock,
	ttl time.Duration,
	calendar feed.CalendarOptions,
	logger *logrus.Entry,
) ScheduleService {
	s := &scheduleService{
		tournaments: tournaments,
		config:      config,
		clock:       clock,
		ttl:         ttl,
		calendar:    calendar,
		logger:      logger,
	}
	tournaments.OnChange(s.Invalidate)
	return s
}

// Invalidate drops the cached snapshot so the next view reads from the store again
func (s *scheduleService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.freshUntil = time.Time{}
}

// Refresh reads the tournaments from the store, replacing the cached snapshot
func (s *scheduleService) Refresh(ctx context.Context) (Snapshot, error) {
	list, err := s.tournaments.Snapshot(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	now := s.clock.Now()
	snap := Snapshot{Tournaments: list, Source: SourceStore, TakenAt: now}
	s.mu.Lock()
	s.last = &snap
	s.freshUntil = now.Add(s.ttl)
	s.mu.Unlock()
	return snap, nil
}

// snapshot returns the tournaments to compute the views from.
// A failing store is never passed on to the caller - the last good snapshot or the seed schedule is used instead
func (s *scheduleService) snapshot(ctx context.Context) Snapshot {
	s.mu.RLock()
	if s.last != nil && s.clock.Now().Before(s.freshUntil) {
		snap := *s.last
		s.mu.RUnlock()
		return snap
	}
	s.mu.RUnlock()

	snap, err := s.Refresh(ctx)
	if err == nil {
		return snap
	}
	if errors.Cause(err) != ErrStoreUnavailable {
		s.logger.WithError(err).Error("Unexpected error while reading the tournaments")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last != nil {
		snap := *s.last
		snap.Source = SourceCache
		s.logger.WithField(log.FldSource, snap.Source).Warn("Serving cached schedule")
		return snap
	}
	s.logger.WithField(log.FldSource, SourceSeed).Warn("Serving built-in schedule")
	return Snapshot{Tournaments: seed.Tournaments(), Source: SourceSeed, TakenAt: s.clock.Now()}
}

// viewContext bundles everything needed to turn tournaments into views
type viewContext struct {
	snap Snapshot
	now  time.Time
	loc  *time.Location
	s    *scheduleService
}

func (s *scheduleService) viewContext(ctx context.Context) viewContext {
	loc := s.config.Location()
	return viewContext{
		snap: s.snapshot(ctx),
		now:  s.clock.Now().In(loc),
		loc:  loc,
		s:    s,
	}
}

// view prepares a tournament that already carries its promotional lines
func (vc viewContext) view(t models.Tournament, day time.Weekday) TournamentView {
	return TournamentView{
		Tournament:          t,
		Weekday:             day,
		Weekly:              !schedule.IsAbsolute(t.Date, vc.loc),
		DayLabel:            schedule.WeekdayLabel(day, vc.s.config.Language()),
		IsToday:             schedule.IsToday(t, vc.now, vc.loc),
		IsUpcoming:          schedule.IsUpcoming(t, vc.now, vc.loc),
		Promotion:           schedule.HasPromotion(day),
		SpecialFeaturesHTML: render.Markdown(t.SpecialFeatures),
	}
}

// annotatedView prepares a tournament as it comes from the store
func (vc viewContext) annotatedView(t models.Tournament) TournamentView {
	day := schedule.ResolveWeekday(t.Date, vc.loc)
	return vc.view(schedule.Annotate(t, day), day)
}

func (vc viewContext) featured(mode schedule.FeaturedMode, week schedule.Week) *TournamentView {
	all := make([]models.Tournament, 0, len(vc.snap.Tournaments))
	for _, t := range vc.snap.Tournaments {
		all = append(all, schedule.Annotate(t, schedule.ResolveWeekday(t.Date, vc.loc)))
	}
	t, ok := schedule.SelectFeatured(mode, week, vc.now, all)
	if !ok {
		return nil
	}
	v := vc.view(t, schedule.ResolveWeekday(t.Date, vc.loc))
	return &v
}

// Week returns the schedule partitioned by weekday together with the featured tournament of the tournaments page
func (s *scheduleService) Week(ctx context.Context) (*WeekView, error) {
	vc := s.viewContext(ctx)
	mode, err := s.config.FeaturedMode(models.SurfaceTournaments)
	if err != nil {
		return nil, err
	}
	week := schedule.PartitionByWeekday(vc.snap.Tournaments, vc.loc)
	ret := &WeekView{
		Today:      vc.now.Format("2006-01-02"),
		Days:       make([]DayBucket, 0, len(week)),
		Featured:   vc.featured(mode, week),
		Highlights: []string{},
		Source:     vc.snap.Source,
	}
	lang := s.config.Language()
	for i, bucket := range week {
		day := time.Weekday(i)
		b := DayBucket{
			Weekday:     day,
			Label:       schedule.WeekdayLabel(day, lang),
			IsToday:     day == vc.now.Weekday(),
			Tournaments: make([]TournamentView, 0, len(bucket)),
		}
		for _, t := range bucket {
			b.Tournaments = append(b.Tournaments, vc.view(t, day))
		}
		ret.Days = append(ret.Days, b)
	}
	horizon := s.config.DisplaySettings(ctx).HighlightDays
	for _, d := range schedule.HighlightDates(vc.snap.Tournaments, vc.now, vc.now.AddDate(0, 0, horizon-1), vc.loc) {
		ret.Highlights = append(ret.Highlights, d.Format("2006-01-02"))
	}
	return ret, nil
}

// Day returns the tournaments taking place on the given date (YYYY-MM-DD)
func (s *scheduleService) Day(ctx context.Context, date string) (*DayView, error) {
	loc := s.config.Location()
	target, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeInvalidDate,
			"Dates have to be given as YYYY-MM-DD",
			map[string]string{"date": date},
		)
	}
	vc := s.viewContext(ctx)
	ret := &DayView{
		Date:        date,
		Weekday:     target.Weekday(),
		Label:       schedule.WeekdayLabel(target.Weekday(), s.config.Language()),
		Tournaments: []TournamentView{},
		Source:      vc.snap.Source,
	}
	for _, t := range schedule.EventsOnDate(vc.snap.Tournaments, target, loc) {
		ret.Tournaments = append(ret.Tournaments, vc.annotatedView(t))
	}
	return ret, nil
}

// Featured returns the featured tournament for the given surface
func (s *scheduleService) Featured(ctx context.Context, surface string) (*FeaturedView, error) {
	mode, err := s.config.FeaturedMode(surface)
	if err != nil {
		return nil, err
	}
	vc := s.viewContext(ctx)
	week := schedule.PartitionByWeekday(vc.snap.Tournaments, vc.loc)
	return &FeaturedView{
		Surface:    surface,
		Mode:       mode.String(),
		Tournament: vc.featured(mode, week),
		Source:     vc.snap.Source,
	}, nil
}

// List returns all tournaments sorted by date
func (s *scheduleService) List(ctx context.Context) (*ListView, error) {
	vc := s.viewContext(ctx)
	ret := &ListView{
		Tournaments: make([]TournamentView, 0, len(vc.snap.Tournaments)),
		Source:      vc.snap.Source,
	}
	for _, t := range schedule.SortByDate(vc.snap.Tournaments, vc.loc) {
		ret.Tournaments = append(ret.Tournaments, vc.annotatedView(t))
	}
	return ret, nil
}

// Calendar returns the schedule as an iCalendar feed
func (s *scheduleService) Calendar(ctx context.Context) (string, error) {
	vc := s.viewContext(ctx)
	out, err := feed.Calendar(vc.snap.Tournaments, vc.now, vc.loc, s.calendar)
	if err != nil {
		s.logger.WithError(err).Error("Failed to build calendar feed")
		return "", MakeError(http.StatusInternalServerError, ErrCodeExportFailed, "Failed to build the calendar")
	}
	return out, nil
}

// Export returns the schedule as an XLSX workbook
func (s *scheduleService) Export(ctx context.Context) ([]byte, error) {
	vc := s.viewContext(ctx)
	data, err := feed.Workbook(vc.snap.Tournaments, vc.loc, s.config.Language())
	if err != nil {
		s.logger.WithError(err).Error("Failed to build spreadsheet")
		return nil, MakeError(http.StatusInternalServerError, ErrCodeExportFailed, "Failed to build the spreadsheet")
	}
	return data, nil
}
