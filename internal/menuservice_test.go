package internal

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos/menu/sqlite"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2590", "R$ 25,90", true},
		{"25,90", "R$ 25,90", true},
		{"R$ 25,90", "R$ 25,90", true},
		{"123456", "R$ 1.234,56", true},
		{"R$ 1.234,56", "R$ 1.234,56", true},
		{"5", "R$ 0,05", true},
		{"0", "R$ 0,00", true},
		{"", "", false},
		{"grátis", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := FormatPrice(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func newTestMenuService(t *testing.T) MenuService {
	t.Helper()
	return NewMenuService(sqlite.New(testDB(t), testLogger()), testLogger())
}

func TestMenuServiceCreateNormalizes(t *testing.T) {
	svc := newTestMenuService(t)
	ctx := testContext()

	item, err := svc.Create(ctx, &models.MenuItem{Name: " Batata frita ", Price: "2500"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Batata frita", item.Name)
	assert.Equal(t, "R$ 25,00", item.Price)
	assert.Equal(t, models.DefaultMenuCategory, item.Category)

	_, err = svc.Create(ctx, &models.MenuItem{Name: "Sem preço"})
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeRequiredFieldMissing)
	_, err = svc.Create(ctx, &models.MenuItem{Price: "1000"})
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeRequiredFieldMissing)
}

func TestMenuServiceCategories(t *testing.T) {
	svc := newTestMenuService(t)
	ctx := testContext()

	empty, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, it := range []models.MenuItem{
		{Name: "Suco", Price: "800", Category: "Bebidas"},
		{Name: "Pastel", Price: "2000"},
		{Name: "Água", Price: "400", Category: "Bebidas"},
	} {
		it := it
		_, err := svc.Create(ctx, &it)
		require.NoError(t, err)
	}

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Bebidas", cats[0].Name)
	assert.Len(t, cats[0].Items, 2)
	assert.Equal(t, models.DefaultMenuCategory, cats[1].Name)
	require.Len(t, cats[1].Items, 1)
	assert.Equal(t, "Pastel", cats[1].Items[0].Name)
}

func TestMenuServiceUpdateAndDelete(t *testing.T) {
	svc := newTestMenuService(t)
	ctx := testContext()

	item, err := svc.Create(ctx, &models.MenuItem{Name: "Pastel", Price: "2000"})
	require.NoError(t, err)
	update := *item
	update.Price = "R$ 22,00"
	update.Category = "Lanches"
	require.NoError(t, svc.Update(ctx, &update))

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "R$ 22,00", got.Price)
	assert.Equal(t, "Lanches", got.Category)

	require.NoError(t, svc.Delete(ctx, item.ID))
	_, err = svc.Get(ctx, item.ID)
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeMenuItemNotFound)
	err = svc.Delete(ctx, item.ID)
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeMenuItemNotFound)
}

func TestMenuServiceList(t *testing.T) {
	svc := newTestMenuService(t)
	ctx := testContext()
	for _, name := range []string{"Pastel de carne", "Pastel de queijo", "Suco"} {
		_, err := svc.Create(ctx, &models.MenuItem{Name: name, Price: "1000"})
		require.NoError(t, err)
	}

	list, rows, err := svc.List(ctx, &Search{Search: "pastel", Pagination: Pagination{Limit: 1}})
	require.NoError(t, err)
	assert.Equal(t, uint(2), rows)
	assert.Len(t, list, 1)
}
