// Package migrate handles SQL database migration for the club site database
package migrate

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var migrations []dbMigration

type dbMigration struct {
	Version uint
	Queries []string
}

// Execute runs the current DB migration on the given database
func (mig *dbMigration) Execute(db *sqlx.DB, logger *logrus.Entry) error {
	// Check if the migration has already run
	query := `SELECT success FROM Migrations WHERE version = $1`
	var success = false
	err := db.QueryRow(query, mig.Version).Scan(&success)
	if err != nil {
		switch {
		case err != sql.ErrNoRows:
			logger.WithError(err).Error("Failed to fetch version information")
			return err
		}
	}
	if !success {
		// We need to execute this migration
		logger.Infof("Executing DB migration #%d", mig.Version)
		for i, query := range mig.Queries {
			logger.Infof("Query %d of %d...", (i + 1), len(mig.Queries))
			if _, err := db.Exec(query); err != nil {
				logger.WithError(err).Errorf("Query #%d failed", (i + 1))
				db.Exec(`REPLACE INTO Migrations(version, success) VALUES($1, 0)`, mig.Version)
				return err
			}
		}
		// Queries executed successfully - save our status
		db.Exec(`REPLACE INTO Migrations(version, success) VALUES($1, 1)`, mig.Version)
	}
	return nil
}

// ExecuteMigrationsOnDb executes the database migrations on the given database instance
func ExecuteMigrationsOnDb(db *sqlx.DB, logger *logrus.Entry) error {
	// Create the migrations table if it does not exist, yet
	query := `CREATE TABLE IF NOT EXISTS Migrations (
                version   INTEGER NOT NULL,
                success   INTEGER NOT NULL DEFAULT 0,
                PRIMARY KEY(version)
            )`
	if _, err := db.Exec(query); err != nil {
		logger.WithError(err).Error("Failed to create migrations table")
		return err
	}
	for _, mig := range migrations {
		if err := mig.Execute(db, logger); err != nil {
			logger.WithError(err).Errorf("Failed to execute migration #%d", mig.Version)
			return err
		}
	}
	return nil
}

// For// For now, the migrations are part of the package...
func init() {
	migrations = []dbMigration{
		{
			Version: 1,
			Queries: []string{
				`CREATE TABLE "Tournaments" (
                    id VARCHAR(36) NOT NULL PRIMARY KEY,
                    name VARCHAR(128) NOT NULL DEFAULT '',
                    date VARCHAR(64) NOT NULL DEFAULT '',
                    time VARCHAR(32) NOT NULL DEFAULT '',
                    buyIn VARCHAR(64) NOT NULL DEFAULT '',
                    prize VARCHAR(128) NOT NULL DEFAULT '',
                    maxPlayers INTEGER NOT NULL DEFAULT 50,
                    specialFeatures TEXT NOT NULL DEFAULT '',
                    seq INTEGER NOT NULL DEFAULT 0,
                    createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                    updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
                );`,
				`CREATE TABLE "MenuItems" (
                    id VARCHAR(36) NOT NULL PRIMARY KEY,
                    name VARCHAR(128) NOT NULL DEFAULT '',
                    description VARCHAR(1024) NOT NULL DEFAULT '',
                    price VARCHAR(32) NOT NULL DEFAULT '',
                    imageUrl VARCHAR(512) NOT NULL DEFAULT '',
                    category VARCHAR(64) NOT NULL DEFAULT '',
                    createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                    updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
                );`,
				`CREATE INDEX idx_tournament_seq ON Tournaments (seq ASC);`,
				`CREATE INDEX idx_menu_category ON MenuItems (category ASC, name ASC);`,
			},
		},
		{
			Version: 2,
			Queries: []string{
				`CREATE TABLE "SiteImages" (
                    type VARCHAR(64) NOT NULL PRIMARY KEY,
                    url VARCHAR(512) NOT NULL DEFAULT '',
                    altText VARCHAR(256) NOT NULL DEFAULT '',
                    createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                    updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
                );`,
				`CREATE TABLE "Banners" (
                    id VARCHAR(36) NOT NULL PRIMARY KEY,
                    title VARCHAR(128) NOT NULL DEFAULT '',
                    subtitle VARCHAR(256) NOT NULL DEFAULT '',
                    imageUrl VARCHAR(512) NOT NULL DEFAULT '',
                    linkUrl VARCHAR(512) NOT NULL DEFAULT '',
                    active INTEGER NOT NULL DEFAULT 1,
                    position INTEGER NOT NULL DEFAULT 0,
                    createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                    updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
                );`,
				`CREATE INDEX idx_banner_position ON Banners (position ASC);`,
			},
		},
		{
			Version: 3,
			Queries: []string{
				`CREATE TABLE "Champions" (
                    id VARCHAR(36) NOT NULL PRIMARY KEY,
                    name VARCHAR(128) NOT NULL DEFAULT '',
                    achievement VARCHAR(256) NOT NULL DEFAULT '',
                    prize VARCHAR(128) NOT NULL DEFAULT '',
                    imageUrl VARCHAR(512) NOT NULL DEFAULT '',
                    createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                    updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
                );`,
			},
		},
	}
}
