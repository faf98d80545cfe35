package storage

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 1x1 PNG
var pngData = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func newUploads(t *testing.T) *Uploads {
	t.Helper()
	l := logrus.New()
	l.Out = ioutil.Discard
	u, err := NewUploads(filepath.Join(t.TempDir(), "uploads"), "/uploads", logrus.NewEntry(l))
	require.NoError(t, err)
	return u
}

func TestStorePNG(t *testing.T) {
	u := newUploads(t)
	url, err := u.Store(bytes.NewReader(pngData), "foto.jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := ioutil.ReadFile(filepath.Join(u.Dir(), strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngData, stored)

	// Same content, same name
	again, err := u.Store(bytes.NewReader(pngData), "other.png")
	require.NoError(t, err)
	assert.Equal(t, url, again)

	entries, err := os.ReadDir(u.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreSVG(t *testing.T) {
	u := newUploads(t)
	url, err := u.Store(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), "logo.svg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".svg"))
}

func TestStoreRejectsNonImages(t *testing.T) {
	u := newUploads(t)
	_, err := u.Store(strings.NewReader("just some text"), "notes.png")
	assert.Equal(t, ErrNotAnImage, err)
	_, err = u.Store(strings.NewReader(""), "empty.png")
	assert.Equal(t, ErrNotAnImage, err)
}
