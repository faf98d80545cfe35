package internal

import (
	"fmt"
	"time"

	"github.com/go-kit/kit/metrics"
	"golang.org/x/net/context"
)

// ScheduleMetrics are the instruments fed by the instrumenting schedule service
type ScheduleMetrics struct {
	// Counts calls by method and error
	RequestCount metrics.Counter
	// Observes call duration in seconds by method
	RequestLatency metrics.Histogram
	// Counts served views by the source of their tournaments
	SnapshotSource metrics.Counter
	// Set to the number of tournaments read by the last successful refresh
	Tournaments metrics.Gauge
}

type instrumentingScheduleService struct {
	m    ScheduleMetrics
	next ScheduleService
}

// InstrumentScheduleService returns a ScheduleService that records metrics about every call
func InstrumentScheduleService(m ScheduleMetrics, next ScheduleService) ScheduleService {
	return &instrumentingScheduleService{m: m, next: next}
}

func (s *instrumentingScheduleService) observe(method string, begin time.Time, err error) {
	s.m.RequestCount.With("method", method, "error", fmt.Sprint(err != nil)).Add(1)
	s.m.RequestLatency.With("method", method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingScheduleService) source(src SnapshotSource) {
	s.m.SnapshotSource.With("source", string(src)).Add(1)
}

func (s *instrumentingScheduleService) Week(ctx context.Context) (ret *WeekView, err error) {
	defer func(begin time.Time) {
		s.observe("week", begin, err)
		if ret != nil {
			s.source(ret.Source)
		}
	}(time.Now())
	return s.next.Week(ctx)
}

func (s *instrumentingScheduleService) Day(ctx context.Context, date string) (ret *DayView, err error) {
	defer func(begin time.Time) {
		s.observe("day", begin, err)
		if ret != nil {
			s.source(ret.Source)
		}
	}(time.Now())
	return s.next.Day(ctx, date)
}

func (s *instrumentingScheduleService) Featured(ctx context.Context, surface string) (ret *FeaturedView, err error) {
	defer func(begin time.Time) {
		s.observe("featured", begin, err)
		if ret != nil {
			s.source(ret.Source)
		}
	}(time.Now())
	return s.next.Featured(ctx, surface)
}

func (s *instrumentingScheduleService) List(ctx context.Context) (ret *ListView, err error) {
	defer func(begin time.Time) {
		s.observe("list", begin, err)
		if ret != nil {
			s.source(ret.Source)
		}
	}(time.Now())
	return s.next.List(ctx)
}

func (s *instrumentingScheduleService) Calendar(ctx context.Context) (ret string, err error) {
	defer func(begin time.Time) {
		s.observe("calendar", begin, err)
	}(time.Now())
	return s.next.Calendar(ctx)
}

func (s *instrumentingScheduleService) Export(ctx context.Context) (ret []byte, err error) {
	defer func(begin time.Time) {
		s.observe("export", begin, err)
	}(time.Now())
	return s.next.Export(ctx)
}

func (s *instrumentingScheduleService) Refresh(ctx context.Context) (ret Snapshot, err error) {
	defer func(begin time.Time) {
		s.observe("refresh", begin, err)
		if err == nil {
			s.m.Tournaments.Set(float64(len(ret.Tournaments)))
		}
	}(time.Now())
	return s.next.Refresh(ctx)
}

func (s *instrumentingScheduleService) Invalidate() {
	s.next.Invalidate()
}
