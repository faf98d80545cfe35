package models

import (
	"path"

	"github.com/kardianos/osext"
)

// Names of the surfaces showing a featured tournament
const (
	SurfaceHome        = "home"
	SurfaceTournaments = "tournaments"
)

// Featured selection modes as written into the configuration file
const (
	FeaturedModeTodayPriority = "todayPriority"
	FeaturedModeForwardSearch = "forwardSearch"
)

// AppConfig is the application's main configuration structure
type AppConfig struct {
	// The directory where the club site stores all of its data - defaults to the /data subdirectory of the folder,
	// the executable resides in
	DataDir string `json:"dataDir" yaml:"dataDir"`
	// The credentials for the default admin account that is created on startup
	DefaultUser *DefaultUserConfig `json:"defaultUser" yaml:"defaultUser"`
	// The IP address to listen at - including the port number
	ListenAddress string `json:"listenAddress" yaml:"listenAddress"`
	// How the schedule is presented to the public
	Display DisplayConfig `json:"display" yaml:"display"`
	// Refreshing of the public schedule snapshot
	Refresh RefreshConfig `json:"refresh" yaml:"refresh"`
	// The iCalendar feed
	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`
}

// CalendarConfig configures the iCalendar feed of the schedule
type CalendarConfig struct {
	// Domain used for the event UIDs
	Domain string `json:"domain" yaml:"domain"`
	// Address of the club, shown as location of every event
	Location string `json:"location" yaml:"location"`
}

// The DefaultUserConfig struct configures the default admin that can log in
type DefaultUserConfig struct {
	Name     string `json:"name" yaml:"name"`
	Password string `json:"password" yaml:"password"`
}

// DisplayConfig holds the settings for presenting the schedule
type DisplayConfig struct {
	// IANA name of the time zone calendar dates and "today" are evaluated in
	Timezone string `json:"timezone" yaml:"timezone"`
	// Language of the weekday labels (BCP 47 tag)
	Language string `json:"language" yaml:"language"`
	// Number of days, starting today, that are checked for calendar highlights
	HighlightDays int `json:"highlightDays" yaml:"highlightDays"`
	// The featured selection mode per surface - see the FeaturedMode constants
	Featured map[string]string `json:"featured" yaml:"featured"`
}

// RefreshConfig configures the background refresh of the schedule snapshot
type RefreshConfig struct {
	// Cron expression for the refresh job - empty disables the job
	Cron string `json:"cron" yaml:"cron"`
	// Number of seconds a snapshot is served from the cache before the store is asked again
	CacheSeconds int `json:"cacheSeconds" yaml:"cacheSeconds"`
}

// GetDefaultDisplayConfig returns the display settings used when nothing else has been configured
func GetDefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Timezone:      "America/Sao_Paulo",
		Language:      "pt-BR",
		HighlightDays: 60,
		Featured: map[string]string{
			SurfaceHome:        FeaturedModeForwardSearch,
			SurfaceTournaments: FeaturedModeTodayPriority,
		},
	}
}

// GetDefaultConfig returns the default configuration values for the application
func GetDefaultConfig() (*AppConfig, error) {
	execDir, err := osext.ExecutableFolder()
	if err != nil {
		return nil, err
	}
	return &AppConfig{
		DataDir: path.Join(execDir, "data"),
		DefaultUser: &DefaultUserConfig{
			Name:     "admin",
			Password: "changeme",
		},
		Display: GetDefaultDisplayConfig(),
		Refresh: RefreshConfig{
			Cron:         "@every 1m",
			CacheSeconds: 30,
		},
		Calendar: CalendarConfig{
			Domain: "greentable.local",
		},
		ListenAddress: ":3000",
	}, nil
}
