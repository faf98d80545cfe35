package internal

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/migrate"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.Out = ioutil.Discard
	return logrus.NewEntry(l)
}

// testContext returns a context carrying a logger, as the transport layer would create it
func testContext() context.Context {
	return ctxhelper.WithLogger(context.Background(), testLogger())
}

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, migrate.ExecuteMigrationsOnDb(db, testLogger()))
	t.Cleanup(func() { db.Close() })
	return db
}

// wednesday is 2025-06-18 at noon in the given location
func wednesday(loc *time.Location) time.Time {
	return time.Date(2025, 6, 18, 12, 0, 0, 0, loc)
}
