package migrate

import (
	"io/ioutil"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.Out = ioutil.Discard
	return logrus.NewEntry(l)
}

func TestExecuteMigrationsOnDb(t *testing.T) {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, ExecuteMigrationsOnDb(db, testLogger()))
	// A second run must not touch the schema again
	require.NoError(t, ExecuteMigrationsOnDb(db, testLogger()))

	var versions []uint
	require.NoError(t, db.Select(&versions, `SELECT version FROM Migrations WHERE success = 1 ORDER BY version`))
	assert.Equal(t, []uint{1, 2, 3}, versions)

	for _, table := range []string{"Tournaments", "MenuItems", "SiteImages", "Banners", "Champions"} {
		var n int
		require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table))
		assert.Equal(t, 1, n, table)
	}
}
