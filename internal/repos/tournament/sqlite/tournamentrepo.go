// Package sqlite provides a tournament repository that stores its data inside a SQLite database
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
)

const (
	tournamentFields = `id, name, date, time, buyIn, prize, maxPlayers, specialFeatures, createdAt, updatedAt`
)

// TournamentRepo is a repository that stores its data inside a SQLite database
type TournamentRepo struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

// New creates a new tournament repository instance with the given database and logger
func New(db *sqlx.DB, logger *logrus.Entry) *TournamentRepo {
	return &TournamentRepo{
		db:     db,
		logger: logger,
	}
}

// Create creates a new tournament. New tournaments are listed before all existing ones
func (r *TournamentRepo) Create(t *models.Tournament) error {
	r.logger.WithField(log.FldTournament, t.ID).Debug("Adding new tournament")
	query := `INSERT INTO Tournaments(id, name, date, time, buyIn, prize, maxPlayers, specialFeatures, seq,
        createdAt, updatedAt)
        VALUES(?, ?, ?, ?, ?, ?, ?, ?, (SELECT IFNULL(MAX(seq), 0) + 1 FROM Tournaments), datetime('now'), datetime('now'))`
	_, err := r.db.Exec(query, t.ID, t.Name, t.Date, t.Time, t.BuyIn, t.Prize, t.MaxPlayers, t.SpecialFeatures)
	if err != nil {
		return errors.Wrap(err, "Create: Failed to insert tournament")
	}
	// Setting the dates like this should be enough for now
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	return nil
}

// Update updates the given tournament
func (r *TournamentRepo) Update(t *models.Tournament) error {
	r.logger.WithField(log.FldTournament, t.ID).Debug("Updating tournament")
	query := `UPDATE Tournaments SET name = ?, date = ?, time = ?, buyIn = ?, prize = ?, maxPlayers = ?,
        specialFeatures = ?, updatedAt = datetime('now') WHERE id = ?`
	res, err := r.db.Exec(query, t.Name, t.Date, t.Time, t.BuyIn, t.Prize, t.MaxPlayers, t.SpecialFeatures, t.ID)
	if err != nil {
		return errors.Wrap(err, "Update: Failed to update tournament")
	}
	t.UpdatedAt = time.Now()
	return repos.RowsAffected(res.RowsAffected())
}

// Delete removes the given tournament
func (r *TournamentRepo) Delete(id string) error {
	r.logger.WithField(log.FldTournament, id).Debug("Deleting tournament")
	res, err := r.db.Exec("DELETE FROM Tournaments WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "Delete: Failed to delete tournament")
	}
	return repos.RowsAffected(res.RowsAffected())
}

// GetByID returns the tournament with the given ID
func (r *TournamentRepo) GetByID(id string) (*models.Tournament, error) {
	query := fmt.Sprintf("SELECT %s FROM Tournaments WHERE id = ?", tournamentFields)
	var t models.Tournament
	if err := r.db.Get(&t, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, repos.ErrEntityNotExisting
		}
		return nil, err
	}
	return &t, nil
}

// All returns every tournament, the most recently created one first
func (r *TournamentRepo) All() ([]models.Tournament, error) {
	query := fmt.Sprintf("SELECT %s FROM Tournaments ORDER BY seq DESC", tournamentFields)
	ret := []models.Tournament{}
	if err := r.db.Select(&ret, query); err != nil {
		return nil, errors.Wrap(err, "All: Failed to query tournaments")
	}
	return ret, nil
}

// Find searches for tournaments matching the given search string - supports pagination
func (r *TournamentRepo) Find(search string, offset uint, limit uint) ([]models.Tournament, uint, error) {
	if limit == 0 {
		limit = 50
	}
	r.logger.WithFields(logrus.Fields{
		log.FldSearch: search,
		log.FldOffset: offset,
		log.FldLimit:  limit,
	}).Debug("Searching for tournament")
	// For now, we're using a simple LIKE search
	search = "%" + search + "%"
	query := fmt.Sprintf(`SELECT %s FROM Tournaments WHERE
        name LIKE $1 OR date LIKE $1 OR specialFeatures LIKE $1
        ORDER BY seq DESC LIMIT $2 OFFSET $3`, tournamentFields)
	ret := []models.Tournament{}
	if err := r.db.Select(&ret, query, search, limit, offset); err != nil {
		return nil, 0, err
	}
	// Query the full count
	query = `SELECT COUNT(*) FROM Tournaments WHERE name LIKE $1 OR date LIKE $1 OR specialFeatures LIKE $1`
	var numRows uint
	if err := r.db.Get(&numRows, query, search); err != nil {
		return nil, 0, err
	}
	return ret, numRows, nil
}
