// Package sqlite provides a repository for the bar menu that stores its data inside a SQLite database
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
	menuFields = `id, name, description, price, imageUrl, category, createdAt, updatedAt`
)

// MenuRepo is a menu repository that stores its data inside a SQLite database
type MenuRepo struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

// New creates a new MenuRepo instance with the given DB and logger instances
func New(db *sqlx.DB, logger *logrus.Entry) *MenuRepo {
	return &MenuRepo{db, logger}
}

// Create creates a new menu item
func (r *MenuRepo) Create(item *models.MenuItem) error {
	r.logger.WithField(log.FldID, item.ID).Debug("Adding new menu item")
	query := fmt.Sprintf("INSERT INTO MenuItems(%s) VALUES(?, ?, ?, ?, ?, ?, datetime('now'), datetime('now'))", menuFields)
	if _, err := r.db.Exec(query, item.ID, item.Name, item.Description, item.Price, item.ImageURL, item.Category); err != nil {
		return errors.Wrap(err, "Create: Failed to insert menu item")
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	return nil
}

// Update updates the given menu item
func (r *MenuRepo) Update(item *models.MenuItem) error {
	r.logger.WithField(log.FldID, item.ID).Debug("Updating menu item")
	query := `UPDATE MenuItems SET name = ?, description = ?, price = ?, imageUrl = ?, category = ?,
        updatedAt = datetime('now') WHERE id = ?`
	res, err := r.db.Exec(query, item.Name, item.Description, item.Price, item.ImageURL, item.Category, item.ID)
	if err != nil {
		return errors.Wrap(err, "Update: Failed to update menu item")
	}
	item.UpdatedAt = time.Now()
	return repos.RowsAffected(res.RowsAffected())
}

// Delete removes the given menu item
func (r *MenuRepo) Delete(id string) error {
	r.logger.WithField(log.FldID, id).Debug("Deleting menu item")
	res, err := r.db.Exec("DELETE FROM MenuItems WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "Delete: Failed to delete menu item")
	}
	return repos.RowsAffected(res.RowsAffected())
}

// GetByID returns the menu item with the given ID
func (r *MenuRepo) GetByID(id string) (*models.MenuItem, error) {
	query := fmt.Sprintf("SELECT %s FROM MenuItems WHERE id = ?", menuFields)
	var item models.MenuItem
	if err := r.db.Get(&item, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, repos.ErrEntityNotExisting
		}
		return nil, err
	}
	return &item, nil
}

// All returns every menu item ordered by category and name
func (r *MenuRepo) All() ([]models.MenuItem, error) {
	query := fmt.Sprintf("SELECT %s FROM MenuItems ORDER BY category, name", menuFields)
	ret := []models.MenuItem{}
	if err := r.db.Select(&ret, query); err != nil {
		return nil, errors.Wrap(err, "All: Failed to query menu items")
	}
	return ret, nil
}

// Find searches for menu items matching the given search string - supports pagination
func (r *MenuRepo) Find(search string, offset uint, limit uint) ([]models.MenuItem, uint, error) {
	if limit == 0 {
		limit = 50
	}
	r.logger.WithFields(logrus.Fields{
		log.FldSearch: search,
		log.FldOffset: offset,
		log.FldLimit:  limit,
	}).Debug("Searching for menu item")
	search = "%" + search + "%"
	query := fmt.Sprintf(`SELECT %s FROM MenuItems WHERE
        name LIKE $1 OR description LIKE $1 OR category LIKE $1
        ORDER BY category, name LIMIT $2 OFFSET $3`, menuFields)
	ret := []models.MenuItem{}
	if err := r.db.Select(&ret, query, search, limit, offset); err != nil {
		r.logger.WithError(err).Error("Failed to query menu items")
		return nil, 0, err
	}
	query = `SELECT COUNT(*) FROM MenuItems WHERE name LIKE $1 OR description LIKE $1 OR category LIKE $1`
	var numRows uint
	if err := r.db.Get(&numRows, query, search); err != nil {
		return nil, 0, err
	}
	return ret, numRows, nil
}
