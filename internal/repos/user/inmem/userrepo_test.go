package inmem

import (
	"testing"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, name, pass string) *models.User {
	t.Helper()
	u := &models.User{Name: name, FullName: name + " Admin"}
	require.NoError(t, u.SetPassword(pass))
	return u
}

func TestUserRepoCredentials(t *testing.T) {
	r := New()
	u := newUser(t, "admin", "s3cret")
	require.NoError(t, r.Create(u))
	assert.Equal(t, uint(1), u.ID)

	got, err := r.GetByCredentials("admin", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	got, err = r.GetByCredentials("admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = r.GetByCredentials("nobody", "s3cret")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoRejectsDuplicateNames(t *testing.T) {
	r := New()
	require.NoError(t, r.Create(&models.User{Name: "admin"}))
	assert.Error(t, r.Create(&models.User{Name: "admin"}))
}

func TestUserRepoUpdateDelete(t *testing.T) {
	r := New()
	u := &models.User{Name: "dealer"}
	require.NoError(t, r.Create(u))

	u.FullName = "Head Dealer"
	require.NoError(t, r.Update(u))
	got, err := r.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Head Dealer", got.FullName)

	require.NoError(t, r.Delete(u.ID))
	got, err = r.GetByID(u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, repos.ErrEntityNotExisting, r.Delete(u.ID))
	assert.Equal(t, repos.ErrEntityNotExisting, r.Update(u))
}

func TestUserRepoFind(t *testing.T) {
	r := New()
	for _, name := range []string{"ana", "bruno", "anabela"} {
		require.NoError(t, r.Create(&models.User{Name: name}))
	}
	found, err := r.Find("ANA", 0, 0)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "ana", found[0].Name)
	assert.Equal(t, "anabela", found[1].Name)

	found, err = r.Find("ana", 1, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "anabela", found[0].Name)

	found, err = r.Find("ana", 5, 1)
	require.NoError(t, err)
	assert.Empty(t, found)
}
