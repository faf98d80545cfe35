package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/daemon"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/jmoiron/sqlx"
	"github.com/kardianos/osext"
	_ "github.com/mattn/go-sqlite3" // Just needed for the sqlite driver
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	greentable "github.com/derWhity/greentable/internal"
	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/feed"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/migrate"
	"github.com/derWhity/greentable/internal/models"
	contentrepo "github.com/derWhity/greentable/internal/repos/content/sqlite"
	menurepo "github.com/derWhity/greentable/internal/repos/menu/sqlite"
	sessionrepo "github.com/derWhity/greentable/internal/repos/session/inmem"
	tournamentrepo "github.com/derWhity/greentable/internal/repos/tournament/sqlite"
	userrepo "github.com/derWhity/greentable/internal/repos/user/inmem"
	"github.com/derWhity/greentable/internal/schedule"
	"github.com/derWhity/greentable/internal/storage"
)

const (
	appName    = "Green Table"
	appVersion = "0.1.0"
	dbFile     = "greentable.db"
)

// Checks and tries to create the given directory recursively (or panics if this fails)
func checkAndCreateDir(path string, logger *logrus.Entry) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if e, ok := err.(*os.PathError); ok && e.Err == syscall.ENOENT {
			logger.WithField(log.FldPath, path).Info("Directory does not exist - trying to create...")
			if err = os.MkdirAll(path, os.ModePerm); err != nil {
				logger.WithError(err).Fatal("Failed to create directory")
			}
			logger.Info("Directory created successfully")
		} else {
			logger.WithError(err).Fatal("Stat has failed")
		}
	} else {
		if !fileInfo.IsDir() {
			logger.Fatalf("'%s' is not a directory. Remove the plain file if you want to continue", path)
		}
	}
}

func scheduleMetrics() greentable.ScheduleMetrics {
	return greentable.ScheduleMetrics{
		RequestCount: kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "greentable",
			Subsystem: "schedule",
			Name:      "requests_total",
			Help:      "Number of schedule requests by method and error",
		}, []string{"method", "error"}),
		RequestLatency: kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: "greentable",
			Subsystem: "schedule",
			Name:      "request_duration_seconds",
			Help:      "Time spent answering schedule requests",
		}, []string{"method"}),
		SnapshotSource: kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "greentable",
			Subsystem: "schedule",
			Name:      "views_total",
			Help:      "Number of schedule views by the source of their tournaments",
		}, []string{"source"}),
		Tournaments: kitprometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: "greentable",
			Subsystem: "schedule",
			Name:      "tournaments",
			Help:      "Number of tournaments read by the last refresh",
		}, []string{}),
	}
}

func main() {
	execDir, err := osext.ExecutableFolder()
	if err != nil {
		panic(err)
	}

	configFile := flag.String(
		"config",
		filepath.Join(execDir, "config.yaml"),
		"The configuration file to load the application's configuration from",
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the logger
	logger := logrus.WithField(log.FldVersion, appVersion)
	logger.Infof("%s version %s is starting up...", appName, appVersion)
	ctx = ctxhelper.WithLogger(ctx, logger)

	// Load the main configuration file
	cs := greentable.NewConfigService(*configFile)
	if err := cs.Load(ctx); err != nil {
		logger.WithError(err).Error("Cannot load config. Using defaults")
	}
	conf := cs.GetConfig(ctx)

	logger.Infof("Using '%s' as data directory", conf.DataDir)
	checkAndCreateDir(conf.DataDir, logger)

	// Set up the database connection and perform pending migrations
	dbFileName := path.Join(conf.DataDir, dbFile)
	var db *sqlx.DB
	if db, err = sqlx.Open("sqlite3", dbFileName); err != nil {
		logger.WithError(err).Fatal("Failed to open database connection")
	}
	logger.Info("Performing database migrations...")
	if err = migrate.ExecuteMigrationsOnDb(db, logger); err != nil {
		logger.WithError(err).Fatal("Database migration has failed. Please check database for consistency and try again.")
	}

	// Prepare the in-memory user repo and fill it with the default user
	userRepo := userrepo.New()
	u := models.User{
		Name:     strings.ToLower(conf.DefaultUser.Name),
		FullName: conf.DefaultUser.Name,
	}
	if err = u.SetPassword(conf.DefaultUser.Password); err != nil {
		logger.WithError(err).Fatal("Failed to set password for default user")
	}
	if err = userRepo.Create(&u); err != nil {
		logger.WithError(err).Fatal("Failed to create default user")
	}
	logger.WithField(log.FldUser, u.Name).Info("Created default user")

	uploads, err := storage.NewUploads(filepath.Join(conf.DataDir, "uploads"), greentable.UploadsPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to prepare the upload directory")
	}

	clock := schedule.SystemClock{}
	tournamentServ := greentable.NewTournamentService(tournamentrepo.New(db, logger), cs, clock, logger)
	schedServ := greentable.InstrumentScheduleService(scheduleMetrics(), greentable.NewScheduleService(
		tournamentServ,
		cs,
		clock,
		time.Duration(conf.Refresh.CacheSeconds)*time.Second,
		feed.CalendarOptions{Domain: conf.Calendar.Domain, Location: conf.Calendar.Location},
		logger.WithField(log.FldTransport, "schedule"),
	))
	menuServ := greentable.NewMenuService(menurepo.New(db, logger), logger)
	contentServ := greentable.NewContentService(
		contentrepo.NewImageRepo(db, logger),
		contentrepo.NewBannerRepo(db, logger),
		contentrepo.NewChampionRepo(db, logger),
		uploads,
		logger,
	)
	sessServ := greentable.NewSessionService(sessionrepo.New(ctx, sessionrepo.DefaultTTL), userRepo, logger)

	// Keep the schedule snapshot warm
	var refresher *greentable.Refresher
	if conf.Refresh.Cron != "" {
		if refresher, err = greentable.NewRefresher(conf.Refresh.Cron, schedServ, logger); err != nil {
			logger.WithError(err).Fatal("Invalid refresh schedule")
		}
		refresher.Run()
		refresher.Start()
	}

	httpLogger := logger.WithField(log.FldTransport, "HTTP")

	h := greentable.MakeHTTPHandler(greentable.Services{
		Schedule:    schedServ,
		Tournaments: tournamentServ,
		Menu:        menuServ,
		Content:     contentServ,
		Sessions:    sessServ,
		Config:      cs,
		UploadsDir:  uploads.Dir(),
		UIDir:       filepath.Join(execDir, "ui"),
	}, httpLogger)

	// Start listening
	errs := make(chan error)

	// Listen for stop signals that will end the service
	go func() {
		c := make(chan os.Signal, 2)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		err := fmt.Errorf("%s", <-c)
		logger.Info("Caught signal to stop. Shutting down.")
		if refresher != nil {
			refresher.Stop()
			logger.Info("Refresh job has been stopped")
		}
		cancel()
		errs <- err
	}()

	go func() {
		httpLogger.WithField("addr", conf.ListenAddress).Info("Starting listening port")
		errs <- http.ListenAndServe(conf.ListenAddress, h)
	}()

	// Watchdog for systemd
	go func() {
		interval, err := daemon.SdWatchdogEnabled(false)
		if err != nil || interval == 0 {
			return
		}
		logger.Info("Activating systemd watchdog goroutine")
		port := conf.ListenAddress[strings.LastIndex(conf.ListenAddress, ":")+1:]
		url := fmt.Sprintf("http://127.0.0.1:%s/alive", port)
		for {
			if res, err := http.Get(url); err == nil {
				res.Body.Close()
				daemon.SdNotify(false, "WATCHDOG=1")
			}
			time.Sleep(interval / 3)
		}
	}()

	// Notify systemd that we are ready to go (if available)
	daemon.SdNotify(false, "READY=1")

	logger.WithError(<-errs).Error("Shutdown complete")
}
