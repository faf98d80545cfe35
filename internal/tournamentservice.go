package internal

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/datehint"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
	"github.com/derWhity/greentable/internal/schedule"
)

// Defaults for tournament fields left empty by the admin
const (
	DefaultTournamentTime       = "19:00"
	DefaultTournamentPrize      = "A definir"
	DefaultTournamentBuyIn      = "R$ 100,00"
	DefaultTournamentMaxPlayers = 50
)

// ErrStoreUnavailable is the cause of every error returned by TournamentService.Snapshot
var ErrStoreUnavailable = errors.New("tournament store unavailable")

// TournamentService provides service functions for administrating the tournament schedule
type TournamentService interface {
	// List searches for tournaments matching the given search term
	List(ctx context.Context, search *Search) ([]models.Tournament, uint, error)
	// Get returns the tournament with the given ID
	Get(ctx context.Context, id string) (*models.Tournament, error)
	// Create validates and stores a new tournament
	Create(ctx context.Context, t *models.Tournament) (*models.Tournament, error)
	// Update replaces the data of an existing tournament
	Update(ctx context.Context, t *models.Tournament) error
	// Delete removes a tournament from the schedule
	Delete(ctx context.Context, id string) error
	// Snapshot returns all tournaments currently stored. The error's cause is ErrStoreUnavailable if the store cannot
	// be queried
	Snapshot(ctx context.Context) ([]models.Tournament, error)
	// DateHint suggests a calendar date for a text like "next friday"
	DateHint(ctx context.Context, text string) (datehint.Hint, error)
	// OnChange registers a function that is called after every change to the schedule
	OnChange(fn func())
}

// -- TournamentService implementation ---------------------------------------------------------------------------------

type tournamentService struct {
	repo   repos.TournamentRepo
	config ConfigService
	clock  schedule.Clock
	logger *logrus.Entry

	mu        sync.RWMutex
	listeners []func()
}

// NewTournamentService creates a new tournament service instance
func NewTournamentService(
	repo repos.TournamentRepo,
	config ConfigService,
	clock schedule.Clock,
	logger *logrus.Entry,
) TournamentService {
	return &tournamentService{
		repo:   repo,
		config: config,
		clock:  clock,
		logger: logger,
	}
}

// OnChange registers a function that is called after every change to the schedule
func (s *tournamentService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *tournamentService) changed() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.listeners {
		fn()
	}
}

func tournamentNotFound(id string) error {
	return MakeErrorWithData(
		http.StatusNotFound,
		ErrCodeTournamentNotFound,
		fmt.Sprintf("Tournament %s does not exist", id),
		map[string]string{"id": id},
	)
}

// validateTournament checks the required fields and fills in the defaults for the optional ones
func validateTournament(t *models.Tournament) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeRequiredFieldMissing,
			"Tournament name missing",
			map[string]string{"field": "name"},
		)
	}
	t.Date = strings.TrimSpace(t.Date)
	if t.Date == "" {
		return MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeRequiredFieldMissing,
			"Tournament date missing",
			map[string]string{"field": "date"},
		)
	}
	if t.MaxPlayers < 0 {
		return MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeIllegalValue,
			"The maximum number of players must be positive",
			map[string]string{"field": "maxPlayers"},
		)
	}
	if t.MaxPlayers == 0 {
		t.MaxPlayers = DefaultTournamentMaxPlayers
	}
	if t.Time = strings.TrimSpace(t.Time); t.Time == "" {
		t.Time = DefaultTournamentTime
	}
	if t.Prize = strings.TrimSpace(t.Prize); t.Prize == "" {
		t.Prize = DefaultTournamentPrize
	}
	if t.BuyIn = strings.TrimSpace(t.BuyIn); t.BuyIn == "" {
		t.BuyIn = DefaultTournamentBuyIn
	}
	return nil
}

// List searches for tournaments matching the given search term
func (s *tournamentService) List(ctx context.Context, search *Search) ([]models.Tournament, uint, error) {
	page := search.Window()
	list, numRows, err := s.repo.Find(search.Term(), page.Offset, page.Limit)
	if err != nil {
		return nil, 0, MakeErrorWithData(
			http.StatusInternalServerError,
			ErrCodeRepoError,
			"Error while searching tournaments",
			err,
		)
	}
	return list, numRows, nil
}

// Get returns the tournament with the given ID
func (s *tournamentService) Get(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		if err == repos.ErrEntityNotExisting {
			return nil, tournamentNotFound(id)
		}
		return nil, MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			fmt.Sprintf("Error while retrieving tournament %s", id), err,
		)
	}
	return t, nil
}

// Create validates and stores a new tournament
func (s *tournamentService) Create(ctx context.Context, t *models.Tournament) (*models.Tournament, error) {
	if err := validateTournament(t); err != nil {
		return nil, err
	}
	t.ID = uuid.NewString()
	if err := s.repo.Create(t); err != nil {
		return nil, MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			"Error while storing the tournament", err,
		)
	}
	ctxhelper.Logger(ctx).WithField(log.FldTournament, t.ID).Info("Tournament created")
	s.changed()
	return t, nil
}

// Update replaces the data of an existing tournament
func (s *tournamentService) Update(ctx context.Context, t *models.Tournament) error {
	original, err := s.Get(ctx, t.ID)
	if err != nil {
		return err
	}
	if err := validateTournament(t); err != nil {
		return err
	}
	t.CreatedAt = original.CreatedAt
	if err := s.repo.Update(t); err != nil {
		if err == repos.ErrEntityNotExisting {
			return tournamentNotFound(t.ID)
		}
		return MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			fmt.Sprintf("Error while updating tournament %s", t.ID), err,
		)
	}
	ctxhelper.Logger(ctx).WithField(log.FldTournament, t.ID).Info("Tournament updated")
	s.changed()
	return nil
}

// Delete removes a tournament from the schedule
func (s *tournamentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(id)
	if err == repos.ErrEntityNotExisting {
		return tournamentNotFound(id)
	}
	if err != nil {
		return MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			fmt.Sprintf("Error while deleting tournament %s", id), err,
		)
	}
	ctxhelper.Logger(ctx).WithField(log.FldTournament, id).Info("Tournament deleted")
	s.changed()
	return nil
}

// Snapshot returns all tournaments currently stored
func (s *tournamentService) Snapshot(ctx context.Context) ([]models.Tournament, error) {
	list, err := s.repo.All()
	if err != nil {
		s.logger.WithError(err).Warn("Tournament store unavailable")
		return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
	}
	return list, nil
}

// DateHint suggests a calendar date for a text like "next friday"
func (s *tournamentService) DateHint(ctx context.Context, text string) (datehint.Hint, error) {
	hint, err := datehint.New(s.clock, s.config.Location(), s.config.Language()).Parse(text)
	if err == datehint.ErrNotRecognized {
		return hint, MakeErrorWithData(
			http.StatusUnprocessableEntity,
			ErrCodeDateHintNotRecognized,
			"No date found in the text",
			map[string]string{"text": text},
		)
	}
	if err != nil {
		return hint, MakeErrorWithData(http.StatusInternalServerError, ErrCodeUnknown, "Failed to parse the text", err)
	}
	return hint, nil
}
