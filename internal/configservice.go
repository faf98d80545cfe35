package internal

import (
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/schedule"
)

// Surfaces lists the page areas that show a featured tournament
var Surfaces = []string{models.SurfaceHome, models.SurfaceTournaments}

// ConfigService gives the authenticated user access to parts of the application's configuration
type ConfigService interface {
	// DisplaySettings returns the current settings for presenting the schedule
	DisplaySettings(ctx context.Context) models.DisplayConfig
	// UpdateDisplaySettings validates and stores new display settings and writes them to the configuration file
	UpdateDisplaySettings(ctx context.Context, settings models.DisplayConfig) (models.DisplayConfig, error)
	// Location returns the time zone calendar dates are evaluated in
	Location() *time.Location
	// Language returns the language of the weekday labels
	Language() language.Tag
	// FeaturedMode returns the featured selection mode configured for the given surface
	FeaturedMode(surface string) (schedule.FeaturedMode, error)
	// Load loads the application config from its default file location
	Load(ctx context.Context) error
	// LoadFromFile loads the configuration from the given YAML file
	LoadFromFile(ctx context.Context, filename string) error
	// Write writes the current application configuration to the default file name
	Write(ctx context.Context) error
	// WriteToFile writes the current application configuration to a YAML file
	WriteToFile(ctx context.Context, filename string) error
	// GetConfig retuns the current application configuration
	GetConfig(ctx context.Context) models.AppConfig
}

// -- ConfigService implementation -------------------------------------------------------------------------------------

// displayIdx holds the parsed form of the display settings
type displayIdx struct {
	loc      *time.Location
	lang     language.Tag
	featured map[string]schedule.FeaturedMode
}

type configService struct {
	sync.RWMutex
	configFilename string
	config         *models.AppConfig
	display        displayIdx
}

// NewConfigService creates a new configuration service instance with the given default file name.
// Until a file is loaded, the default configuration is used
func NewConfigService(configFilename string) ConfigService {
	s := &configService{configFilename: configFilename}
	idx, err := parseDisplayConfig(models.GetDefaultDisplayConfig())
	if err != nil {
		// The defaults always parse - except for systems without time zone data
		idx = displayIdx{loc: time.UTC, lang: language.BrazilianPortuguese, featured: map[string]schedule.FeaturedMode{
			models.SurfaceHome:        schedule.ForwardSearch,
			models.SurfaceTournaments: schedule.TodayPriority,
		}}
	}
	s.display = idx
	return s
}

// parseDisplayConfig validates the display settings and converts them into their usable form
func parseDisplayConfig(c models.DisplayConfig) (displayIdx, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return displayIdx{}, MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeIllegalValue,
			"Unknown time zone",
			c.Timezone,
		)
	}
	lang, err := language.Parse(c.Language)
	if err != nil {
		return displayIdx{}, MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeIllegalValue,
			"Invalid language tag",
			c.Language,
		)
	}
	featured := map[string]schedule.FeaturedMode{}
	for surface, name := range c.Featured {
		if !knownSurface(surface) {
			return displayIdx{}, MakeErrorWithData(
				http.StatusBadRequest,
				ErrCodeUnknownSurface,
				"Unknown surface",
				surface,
			)
		}
		mode, err := schedule.ParseFeaturedMode(name)
		if err != nil {
			return displayIdx{}, MakeErrorWithData(
				http.StatusBadRequest,
				ErrCodeIllegalFeaturedMode,
				"Unknown featured mode",
				name,
			)
		}
		featured[surface] = mode
	}
	// Surfaces missing in the configuration keep their defaults
	for surface, name := range models.GetDefaultDisplayConfig().Featured {
		if _, ok := featured[surface]; !ok {
			mode, _ := schedule.ParseFeaturedMode(name)
			featured[surface] = mode
		}
	}
	return displayIdx{loc: loc, lang: schedule.MatchLanguage(lang.String()), featured: featured}, nil
}

func knownSurface(surface string) bool {
	for _, s := range Surfaces {
		if s == surface {
			return true
		}
	}
	return false
}

// normalizeDisplayConfig fills in defaults for empty values
func normalizeDisplayConfig(c models.DisplayConfig) models.DisplayConfig {
	def := models.GetDefaultDisplayConfig()
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = def.Language
	}
	if c.HighlightDays <= 0 {
		c.HighlightDays = def.HighlightDays
	}
	featured := map[string]string{}
	for surface, mode := range def.Featured {
		featured[surface] = mode
	}
	for surface, mode := range c.Featured {
		featured[surface] = mode
	}
	c.Featured = featured
	return c
}

// DisplaySettings returns the current settings for presenting the schedule
func (s *configService) DisplaySettings(ctx context.Context) models.DisplayConfig {
	conf := s.GetConfig(ctx)
	return normalizeDisplayConfig(conf.Display)
}

// UpdateDisplaySettings validates and stores new display settings and writes them to the configuration file
func (s *configService) UpdateDisplaySettings(
	ctx context.Context,
	settings models.DisplayConfig,
) (models.DisplayConfig, error) {
	logger := ctxhelper.Logger(ctx)
	settings = normalizeDisplayConfig(settings)
	idx, err := parseDisplayConfig(settings)
	if err != nil {
		return models.DisplayConfig{}, err
	}
	s.Lock()
	if s.config == nil {
		conf, err := models.GetDefaultConfig()
		if err != nil {
			s.Unlock()
			return models.DisplayConfig{}, errors.Wrap(err, "UpdateDisplaySettings: Failed to create default config")
		}
		s.config = conf
	}
	s.config.Display = settings
	s.display = idx
	s.Unlock()
	surfaces := make([]string, 0, len(settings.Featured))
	for surface, mode := range settings.Featured {
		surfaces = append(surfaces, surface+"="+mode)
	}
	sort.Strings(surfaces)
	logger.WithField(log.FldSurface, strings.Join(surfaces, ",")).Info("Display settings changed")
	if s.configFilename == "" {
		return settings, nil
	}
	if err := s.Write(ctx); err != nil {
		logger.WithError(err).Error("Failed to persist display settings")
		return settings, MakeError(
			http.StatusInternalServerError,
			ErrCodeConfigWriteFailed,
			"The settings are active but could not be saved",
		)
	}
	return settings, nil
}

// Location returns the time zone calendar dates are evaluated in
func (s *configService) Location() *time.Location {
	s.RLock()
	defer s.RUnlock()
	return s.display.loc
}

// Language returns the language of the weekday labels
func (s *configService) Language() language.Tag {
	s.RLock()
	defer s.RUnlock()
	return s.display.lang
}

// FeaturedMode returns the featured selection mode configured for the given surface
func (s *configService) FeaturedMode(surface string) (schedule.FeaturedMode, error) {
	s.RLock()
	defer s.RUnlock()
	mode, ok := s.display.featured[surface]
	if !ok {
		return schedule.TodayPriority, MakeErrorWithData(
			http.StatusNotFound,
			ErrCodeUnknownSurface,
			"Unknown surface",
			surface,
		)
	}
	return mode, nil
}

// Load loads the application config from its default file location
func (s *configService) Load(ctx context.Context) error {
	return s.LoadFromFile(ctx, s.configFilename)
}

// LoadFromFile loads the configuration from the given YAML file
func (s *configService) LoadFromFile(ctx context.Context, filename string) error {
	logger := ctxhelper.Logger(ctx)
	logger.WithField(log.FldFile, filename).Info("Loading configuration file")
	conf, err := models.GetDefaultConfig()
	if err != nil {
		return errors.Wrap(err, "LoadFromFile: Failed to create default config")
	}
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "LoadFromFile: cannot load configuration file")
	}
	if err = yaml.Unmarshal(data, conf); err != nil {
		return errors.Wrap(err, "LoadFromFile: Failed to decode configuration file")
	}
	conf.Display = normalizeDisplayConfig(conf.Display)
	idx, err := parseDisplayConfig(conf.Display)
	if err != nil {
		return errors.Wrap(err, "LoadFromFile: Invalid display settings")
	}
	s.Lock()
	defer s.Unlock()
	s.config = conf
	s.display = idx
	return nil
}

// Write writes the current application configuration to the default file name
func (s *configService) Write(ctx context.Context) error {
	return s.WriteToFile(ctx, s.configFilename)
}

// WriteToFile writes the current application configuration to a YAML file
func (s *configService) WriteToFile(ctx context.Context, filename string) error {
	logger := ctxhelper.Logger(ctx)
	logger.WithField(log.FldFile, filename).Info("Writing configuration file")
	conf := s.GetConfig(ctx)
	data, err := yaml.Marshal(&conf)
	if err != nil {
		return errors.Wrap(err, "WriteToFile: Failed to serialize configuration data")
	}
	if err := ioutil.WriteFile(filename, data, 0600); err != nil {
		return errors.Wrapf(err, "WriteToFile: Cannot write configuration file '%s'", filename)
	}
	return nil
}

// GetConfig retuns the current application configuration
func (s *configService) GetConfig(ctx context.Context) models.AppConfig {
	s.RLock()
	defer s.RUnlock()
	var ret models.AppConfig
	if s.config != nil {
		ret = *s.config
	} else if tmp, err := models.GetDefaultConfig(); err == nil {
		ret = *tmp
	}
	return ret
}
