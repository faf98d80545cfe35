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
	championFields = `id, name, achievement, prize, imageUrl, createdAt, updatedAt`
)

// ChampionRepo stores the hall of fame
type ChampionRepo struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

// NewChampionRepo creates a new hall of fame repository
func NewChampionRepo(db *sqlx.DB, logger *logrus.Entry) *ChampionRepo {
	return &ChampionRepo{db, logger}
}

// Create creates a new hall of fame entry
func (r *ChampionRepo) Create(c *models.Champion) error {
	r.logger.WithField(log.FldID, c.ID).Debug("Adding new champion")
	query := fmt.Sprintf(`INSERT INTO Champions(%s) VALUES(?, ?, ?, ?, ?, datetime('now'), datetime('now'))`, championFields)
	if _, err := r.db.Exec(query, c.ID, c.Name, c.Achievement, c.Prize, c.ImageURL); err != nil {
		return errors.Wrap(err, "Create: Failed to insert champion")
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	return nil
}

// Update updates the given entry
func (r *ChampionRepo) Update(c *models.Champion) error {
	r.logger.WithField(log.FldID, c.ID).Debug("Updating champion")
	query := `UPDATE Champions SET name = ?, achievement = ?, prize = ?, imageUrl = ?, updatedAt = datetime('now')
        WHERE id = ?`
	res, err := r.db.Exec(query, c.Name, c.Achievement, c.Prize, c.ImageURL, c.ID)
	if err != nil {
		return errors.Wrap(err, "Update: Failed to update champion")
	}
	c.UpdatedAt = time.Now()
	return repos.RowsAffected(res.RowsAffected())
}

// Delete removes the given entry
func (r *ChampionRepo) Delete(id string) error {
	r.logger.WithField(log.FldID, id).Debug("Deleting champion")
	res, err := r.db.Exec(`DELETE FROM Champions WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "Delete: Failed to delete champion")
	}
	return repos.RowsAffected(res.RowsAffected())
}

// GetByID returns the entry with the given ID
func (r *ChampionRepo) GetByID(id string) (*models.Champion, error) {
	var c models.Champion
	if err := r.db.Get(&c, fmt.Sprintf(`SELECT %s FROM Champions WHERE id = ?`, championFields), id); err != nil {
		if err == sql.ErrNoRows {
			return nil, repos.ErrEntityNotExisting
		}
		return nil, err
	}
	return &c, nil
}

// All returns all entries, newest first
func (r *ChampionRepo) All() ([]models.Champion, error) {
	ret := []models.Champion{}
	if err := r.db.Select(&ret, fmt.Sprintf(`SELECT %s FROM Champions ORDER BY createdAt DESC, rowid DESC`, championFields)); err != nil {
		return nil, errors.Wrap(err, "All: Failed to query champions")
	}
	return ret, nil
}
