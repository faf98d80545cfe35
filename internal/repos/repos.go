// Package repos contains the repository interfaces needed by the club site
// It exists to prevent circular dependencies between the services and the repo implementations
package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/derWhity/greentable/internal/models"
)

var (
	// ErrEntityNotExisting is fired by a repository when an entity that is updated or deleted does not exist
	ErrEntityNotExisting = fmt.Errorf("cannot update: Entity does not exist")
)

// TournamentRepo defines a repository that handles storing and querying tournaments
type TournamentRepo interface {
	// Create creates a new tournament - the ID has to be set by the caller
	Create(t *models.Tournament) error
	// Update updates the given tournament
	Update(t *models.Tournament) error
	// Delete removes the given tournament
	Delete(id string) error
	// GetByID returns the tournament with the given ID
	GetByID(id string) (*models.Tournament, error)
	// All returns every tournament, the most recently created one first
	All() ([]models.Tournament, error)
	// Find searches for tournaments matching the given search string - supports pagination
	Find(search string, offset uint, limit uint) ([]models.Tournament, uint, error)
}

// MenuRepo defines a repository for the items of the bar menu
type MenuRepo interface {
	// Create creates a new menu item - the ID has to be set by the caller
	Create(item *models.MenuItem) error
	// Update updates the given menu item
	Update(item *models.MenuItem) error
	// Delete removes the given menu item
	Delete(id string) error
	// GetByID returns the menu item with the given ID
	GetByID(id string) (*models.MenuItem, error)
	// All returns every menu item ordered by category and name
	All() ([]models.MenuItem, error)
	// Find searches for menu items matching the given search string - supports pagination
	Find(search string, offset uint, limit uint) ([]models.MenuItem, uint, error)
}

// SiteImageRepo stores the images shown at fixed places of the site
type SiteImageRepo interface {
	// Upsert stores the image, replacing any image of the same type
	Upsert(img *models.SiteImage) error
	// GetByType returns the image of the given type
	GetByType(imageType string) (*models.SiteImage, error)
	// All returns all stored images
	All() ([]models.SiteImage, error)
	// Delete removes the image of the given type
	Delete(imageType string) error
}

// BannerRepo defines a repository for the home page banners
type BannerRepo interface {
	// Create adds a new banner at the end of the rotation - the ID has to be set by the caller
	Create(b *models.Banner) error
	// Update updates the banner's data (not its position)
	Update(b *models.Banner) error
	// Delete removes the given banner
	Delete(id string) error
	// GetByID returns the banner with the given ID
	GetByID(id string) (*models.Banner, error)
	// All returns the banners in rotation order - optionally only the active ones
	All(activeOnly bool) ([]models.Banner, error)
	// PlaceBefore reorders the rotation so that the given banner is placed before the other one
	// If the other banner is not found, the banner will be placed at the end of the rotation
	PlaceBefore(id string, otherID string) error
}

// ChampionRepo defines a repository for the hall of fame
type ChampionRepo interface {
	// Create creates a new hall of fame entry - the ID has to be set by the caller
	Create(c *models.Champion) error
	// Update updates the given entry
	Update(c *models.Champion) error
	// Delete removes the given entry
	Delete(id string) error
	// GetByID returns the entry with the given ID
	GetByID(id string) (*models.Champion, error)
	// All returns all entries, newest first
	All() ([]models.Champion, error)
}

// UserRepo defines a repository that is able to store, query and authenticate users
type UserRepo interface {
	// Create creates a new user
	Create(u *models.User) error
	// Update updates an existing user
	Update(u *models.User) error
	// Delete removes an existing user from the user storage
	Delete(id uint) error
	// GetByID returns the user with the given ID
	GetByID(id uint) (*models.User, error)
	// GetByCredentials returns the user which has the given username and password - this is used for login
	GetByCredentials(username string, password string) (*models.User, error)
	// Find searches for users matching the given search string - supports pagination
	Find(search string, offset uint, limit uint) ([]*models.User, error)
}

// SessionRepo stores information about active API sessions
type SessionRepo interface {
	// CreateFor creates a new session for the given user ID
	CreateFor(userID uint) (*models.Session, error)
	// GetByID returns the session associated with the given session ID and extends it's expiry if requested
	GetByID(sessionID string, extend bool) (*models.Session, error)
	// Delete removes a session from the session storage
	Delete(sessionID string) error
}

// -- Helpers for SQLX repos -------------------------------------------------------------------------------------------

// DoRollback rolls back a transaction and catches any error resulting from it while appending the original error
func DoRollback(tx *sqlx.Tx, originalError error) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("doRollback: Transaction rollback failed: %v; Recent error: %v", err, originalError)
	}
	return originalError
}

// RowsAffected translates the result of a write query that targets exactly one row into ErrEntityNotExisting if
// nothing has been touched
func RowsAffected(num int64, err error) error {
	if err != nil {
		return err
	}
	if num == 0 {
		return ErrEntityNotExisting
	}
	return nil
}
