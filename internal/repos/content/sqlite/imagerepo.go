// Package sqlite contains the repositories for the site content - images, banners and the hall of fame - storing
// their data inside a SQLite database
package sqlite

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
)

// ImageRepo stores the site images
type ImageRepo struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

// NewImageRepo creates a new site image repository
func NewImageRepo(db *sqlx.DB, logger *logrus.Entry) *ImageRepo {
	return &ImageRepo{db, logger}
}

// Upsert stores the image, replacing any image of the same type
func (r *ImageRepo) Upsert(img *models.SiteImage) error {
	r.logger.WithField(log.FldImageType, img.Type).Debug("Storing site image")
	query := `INSERT INTO SiteImages(type, url, altText, createdAt, updatedAt)
        VALUES(?, ?, ?, datetime('now'), datetime('now'))
        ON CONFLICT(type) DO UPDATE SET url = excluded.url, altText = excluded.altText, updatedAt = datetime('now')`
	if _, err := r.db.Exec(query, img.Type, img.URL, img.AltText); err != nil {
		return errors.Wrap(err, "Upsert: Failed to store site image")
	}
	img.UpdatedAt = time.Now()
	return nil
}

// GetByType returns the image of the given type
func (r *ImageRepo) GetByType(imageType string) (*models.SiteImage, error) {
	var img models.SiteImage
	err := r.db.Get(&img, `SELECT type, url, altText, createdAt, updatedAt FROM SiteImages WHERE type = ?`, imageType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repos.ErrEntityNotExisting
		}
		return nil, err
	}
	return &img, nil
}

// All returns all stored images
func (r *ImageRepo) All() ([]models.SiteImage, error) {
	ret := []models.SiteImage{}
	if err := r.db.Select(&ret, `SELECT type, url, altText, createdAt, updatedAt FROM SiteImages ORDER BY type`); err != nil {
		return nil, errors.Wrap(err, "All: Failed to query site images")
	}
	return ret, nil
}

// Delete removes the image of the given type
func (r *ImageRepo) Delete(imageType string) error {
	r.logger.WithField(log.FldImageType, imageType).Debug("Deleting site image")
	res, err := r.db.Exec(`DELETE FROM SiteImages WHERE type = ?`, imageType)
	if err != nil {
		return errors.Wrap(err, "Delete: Failed to delete site image")
	}
	return repos.RowsAffected(res.RowsAffected())
}
