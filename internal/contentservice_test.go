package internal

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos/content/sqlite"
	"github.com/derWhity/greentable/internal/storage"
)

func newTestContentService(t *testing.T) ContentService {
	t.Helper()
	db := testDB(t)
	logger := testLogger()
	uploads, err := storage.NewUploads(t.TempDir(), "/uploads", logger)
	require.NoError(t, err)
	return NewContentService(
		sqlite.NewImageRepo(db, logger),
		sqlite.NewBannerRepo(db, logger),
		sqlite.NewChampionRepo(db, logger),
		uploads,
		logger,
	)
}

func TestContentServiceImages(t *testing.T) {
	svc := newTestContentService(t)
	ctx := testContext()

	assert.Equal(t, "/static/hero.jpg", svc.ImageURL(ctx, models.ImageTypeHeroBackground, "/static/hero.jpg"))

	img, err := svc.SetImage(ctx, &models.SiteImage{Type: models.ImageTypeHeroBackground, URL: " /uploads/a.jpg "})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", img.URL)
	assert.Equal(t, "/uploads/a.jpg", svc.ImageURL(ctx, models.ImageTypeHeroBackground, "/static/hero.jpg"))

	_, err = svc.SetImage(ctx, &models.SiteImage{Type: "Hero Background", URL: "/x.jpg"})
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeIllegalValue)
	_, err = svc.SetImage(ctx, &models.SiteImage{Type: models.ImageTypeLogo})
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeRequiredFieldMissing)

	require.NoError(t, svc.DeleteImage(ctx, models.ImageTypeHeroBackground))
	err = svc.DeleteImage(ctx, models.ImageTypeHeroBackground)
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeImageNotFound)
}

func TestContentServiceBanners(t *testing.T) {
	svc := newTestContentService(t)
	ctx := testContext()

	first, err := svc.CreateBanner(ctx, &models.Banner{Title: "Main Event", Active: true})
	require.NoError(t, err)
	second, err := svc.CreateBanner(ctx, &models.Banner{Title: "Rebuy night"})
	require.NoError(t, err)

	_, err = svc.CreateBanner(ctx, &models.Banner{Title: "  "})
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeRequiredFieldMissing)

	active, err := svc.Banners(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	require.NoError(t, svc.PlaceBannerBefore(ctx, second.ID, first.ID))
	all, err := svc.Banners(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	err = svc.PlaceBannerBefore(ctx, "missing", first.ID)
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeBannerNotFound)
	err = svc.UpdateBanner(ctx, &models.Banner{ID: "missing", Title: "x"})
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeBannerNotFound)

	require.NoError(t, svc.DeleteBanner(ctx, first.ID))
	err = svc.DeleteBanner(ctx, first.ID)
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeBannerNotFound)
}

func TestContentServiceChampions(t *testing.T) {
	svc := newTestContentService(t)
	ctx := testContext()

	c, err := svc.CreateChampion(ctx, &models.Champion{Name: "Ana", Achievement: "Campeã do Main Event", Prize: "R$ 15.000"})
	require.NoError(t, err)
	_, err = svc.CreateChampion(ctx, &models.Champion{Name: "Bruno"})
	requireHTTPError(t, err, http.StatusBadRequest, ErrCodeRequiredFieldMissing)

	update := *c
	update.Prize = "R$ 16.000"
	require.NoError(t, svc.UpdateChampion(ctx, &update))
	got, err := svc.GetChampion(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "R$ 16.000", got.Prize)

	list, err := svc.Champions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteChampion(ctx, c.ID))
	_, err = svc.GetChampion(ctx, c.ID)
	requireHTTPError(t, err, http.StatusNotFound, ErrCodeChampionNotFound)
}

func TestContentServiceUpload(t *testing.T) {
	svc := newTestContentService(t)
	ctx := testContext()

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	url, err := svc.Upload(ctx, bytes.NewReader(png), "mesa.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	_, err = svc.Upload(ctx, strings.NewReader("just some text"), "notes.png")
	requireHTTPError(t, err, http.StatusUnsupportedMediaType, ErrCodeUploadFailed)
}
