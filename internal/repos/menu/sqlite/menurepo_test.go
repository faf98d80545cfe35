package sqlite

import (
	"io/ioutil"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/greentable/internal/migrate"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
)

func newTestRepo(t *testing.T) *MenuRepo {
	t.Helper()
	l := logrus.New()
	l.Out = ioutil.Discard
	logger := logrus.NewEntry(l)
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrate.ExecuteMigrationsOnDb(db, logger))
	return New(db, logger)
}

func item(name, category, price string) *models.MenuItem {
	return &models.MenuItem{ID: uuid.NewString(), Name: name, Category: category, Price: price}
}

func TestMenuRepoCRUD(t *testing.T) {
	r := newTestRepo(t)
	fries := item("Batata frita", "Porções", "R$ 25,00")
	require.NoError(t, r.Create(fries))

	fries.Price = "R$ 27,50"
	require.NoError(t, r.Update(fries))
	got, err := r.GetByID(fries.ID)
	require.NoError(t, err)
	assert.Equal(t, "R$ 27,50", got.Price)
	assert.Equal(t, "Porções", got.Category)

	require.NoError(t, r.Delete(fries.ID))
	_, err = r.GetByID(fries.ID)
	assert.Equal(t, repos.ErrEntityNotExisting, err)
}

func TestMenuRepoAllOrdering(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.Create(item("Suco", "Bebidas", "R$ 8,00")))
	require.NoError(t, r.Create(item("Pastel", "Porções", "R$ 20,00")))
	require.NoError(t, r.Create(item("Água", "Bebidas", "R$ 4,00")))

	all, err := r.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bebidas", all[0].Category)
	assert.Equal(t, "Bebidas", all[1].Category)
	assert.Equal(t, "Pastel", all[2].Name)
}

func TestMenuRepoFind(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.Create(item("Cerveja", "Bebidas", "R$ 12,00")))
	require.NoError(t, r.Create(item("Refrigerante", "Bebidas", "R$ 6,00")))
	require.NoError(t, r.Create(item("Calabresa", "Porções", "R$ 30,00")))

	found, total, err := r.Find("bebidas", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(2), total)
	assert.Len(t, found, 2)
}
