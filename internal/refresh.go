package internal

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/log"
)

// Refresher periodically reads the tournaments from the store, so the schedule views find a warm snapshot and a store
// outage is noticed before the visitors do
type Refresher struct {
	cron   *cron.Cron
	svc    ScheduleService
	logger *logrus.Entry
}

// NewRefresher creates a refresher running on the given cron spec ("@every 1m", "*/5 * * * *")
func NewRefresher(spec string, svc ScheduleService, logger *logrus.Entry) (*Refresher, error) {
	r := &Refresher{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		svc:    svc,
		logger: logger,
	}
	if _, err := r.cron.AddFunc(spec, r.Run); err != nil {
		return nil, err
	}
	return r, nil
}

// Run refreshes the snapshot once
func (r *Refresher) Run() {
	ctx := ctxhelper.WithLogger(context.Background(), r.logger)
	begin := time.Now()
	snap, err := r.svc.Refresh(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("Schedule refresh failed")
		return
	}
	r.logger.WithFields(logrus.Fields{
		log.FldCount:    len(snap.Tournaments),
		log.FldDuration: time.Since(begin),
	}).Debug("Schedule refreshed")
}

// Start starts the refresh job in the background
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop stops the refresh job and waits for a running refresh to finish
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}
