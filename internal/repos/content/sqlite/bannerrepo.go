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
	bannerFields = `id, title, subtitle, imageUrl, linkUrl, active, position, createdAt, updatedAt`
)

// BannerRepo stores the banners of the home page rotation
type BannerRepo struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

// NewBannerRepo creates a new banner repository
func NewBannerRepo(db *sqlx.DB, logger *logrus.Entry) *BannerRepo {
	return &BannerRepo{db, logger}
}

// Create adds a new banner at the end of the rotation
func (r *BannerRepo) Create(b *models.Banner) error {
	r.logger.WithField(log.FldID, b.ID).Debug("Adding new banner")
	query := `INSERT INTO Banners(id, title, subtitle, imageUrl, linkUrl, active, position, createdAt, updatedAt)
        VALUES(?, ?, ?, ?, ?, ?, (SELECT IFNULL(MAX(position), 0) + 1 FROM Banners), datetime('now'), datetime('now'))`
	if _, err := r.db.Exec(query, b.ID, b.Title, b.Subtitle, b.ImageURL, b.LinkURL, b.Active); err != nil {
		return errors.Wrap(err, "Create: Failed to insert banner")
	}
	if err := r.db.Get(&b.Position, `SELECT position FROM Banners WHERE id = ?`, b.ID); err != nil {
		return errors.Wrap(err, "Create: Failed to read banner position")
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	return nil
}

// Update updates the banner's data (not its position)
func (r *BannerRepo) Update(b *models.Banner) error {
	r.logger.WithField(log.FldID, b.ID).Debug("Updating banner")
	query := `UPDATE Banners SET title = ?, subtitle = ?, imageUrl = ?, linkUrl = ?, active = ?,
        updatedAt = datetime('now') WHERE id = ?`
	res, err := r.db.Exec(query, b.Title, b.Subtitle, b.ImageURL, b.LinkURL, b.Active, b.ID)
	if err != nil {
		return errors.Wrap(err, "Update: Failed to update banner")
	}
	b.UpdatedAt = time.Now()
	return repos.RowsAffected(res.RowsAffected())
}

// Delete removes the given banner
func (r *BannerRepo) Delete(id string) error {
	r.logger.WithField(log.FldID, id).Debug("Deleting banner")
	res, err := r.db.Exec(`DELETE FROM Banners WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "Delete: Failed to delete banner")
	}
	return repos.RowsAffected(res.RowsAffected())
}

// GetByID returns the banner with the given ID
func (r *BannerRepo) GetByID(id string) (*models.Banner, error) {
	var b models.Banner
	if err := r.db.Get(&b, fmt.Sprintf(`SELECT %s FROM Banners WHERE id = ?`, bannerFields), id); err != nil {
		if err == sql.ErrNoRows {
			return nil, repos.ErrEntityNotExisting
		}
		return nil, err
	}
	return &b, nil
}

// All returns the banners in rotation order - optionally only the active ones
func (r *BannerRepo) All(activeOnly bool) ([]models.Banner, error) {
	where := ""
	if activeOnly {
		where = "WHERE active = 1"
	}
	ret := []models.Banner{}
	query := fmt.Sprintf(`SELECT %s FROM Banners %s ORDER BY position, createdAt`, bannerFields, where)
	if err := r.db.Select(&ret, query); err != nil {
		return nil, errors.Wrap(err, "All: Failed to query banners")
	}
	return ret, nil
}

// PlaceBefore takes the banner with the given ID and moves it to just before the other banner in the rotation.
// If the other banner is not found, the banner will be placed at the end of the rotation
func (r *BannerRepo) PlaceBefore(id string, otherID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("PlaceBefore: Unable to start transaction: %v", err)
	}
	var exists int
	if err = tx.Get(&exists, `SELECT COUNT(*) FROM Banners WHERE id = ?`, id); err != nil {
		return repos.DoRollback(tx, fmt.Errorf("PlaceBefore: Failed to load banner to reorder: %v", err))
	}
	if exists == 0 {
		return repos.DoRollback(tx, repos.ErrEntityNotExisting)
	}
	rest := []string{}
	if err = tx.Select(&rest, `SELECT id FROM Banners WHERE id <> ? ORDER BY position, createdAt`, id); err != nil {
		return repos.DoRollback(tx, fmt.Errorf("PlaceBefore: Failed to load banners: %v", err))
	}
	found := false
	newOrder := make([]string, 0, len(rest)+1)
	for _, other := range rest {
		if other == otherID {
			found = true
			newOrder = append(newOrder, id)
		}
		newOrder = append(newOrder, other)
	}
	if !found {
		newOrder = append(newOrder, id)
	}
	for i, bannerID := range newOrder {
		if _, err := tx.Exec(`UPDATE Banners SET position = ? WHERE id = ?`, i+1, bannerID); err != nil {
			return repos.DoRollback(tx, fmt.Errorf("PlaceBefore: Failed to write new banner position: %v", err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("PlaceBefore: Failed to commit transaction: %v", err)
	}
	return nil
}
