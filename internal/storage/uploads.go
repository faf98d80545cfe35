// Package storage keeps the images uploaded by the admins inside the data directory
package storage

import (
	"bufio"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"io/ioutil"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/derWhity/greentable/internal/log"
)

// MaxUploadSize is the largest file accepted by the upload storage
const MaxUploadSize = 10 << 20

var (
	// ErrNotAnImage is returned when the uploaded content is not an image
	ErrNotAnImage = errors.New("uploaded file is not an image")
	// ErrTooLarge is returned when the upload exceeds MaxUploadSize
	ErrTooLarge = errors.New("uploaded file is too large")
)

// preferred file extensions for the image types browsers can show
var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Uploads stores files under a directory, named after the SHA-512 sum of their content.
// Storing the same content twice results in the same file.
type Uploads struct {
	dir       string
	urlPrefix string
	logger    *logrus.Entry
}

// NewUploads creates the upload storage, creating dir if needed
func NewUploads(dir, urlPrefix string, logger *logrus.Entry) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "NewUploads: Cannot create upload directory %s", dir)
	}
	return &Uploads{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/") + "/", logger: logger}, nil
}

// Dir returns the directory the files are stored in
func (u *Uploads) Dir() string {
	return u.dir
}

// Store saves the content read from r and returns the URL it is served at.
// The content type is sniffed from the data, the file name only helps with formats that cannot be sniffed.
func (u *Uploads) Store(r io.Reader, fileName string) (string, error) {
	br := bufio.NewReaderSize(r, 512)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", errors.Wrap(err, "Store: Failed to read upload")
	}
	ext, ok := imageExtension(head, fileName)
	if !ok {
		return "", ErrNotAnImage
	}

	tmp, err := ioutil.TempFile(u.dir, ".upload-")
	if err != nil {
		return "", errors.Wrap(err, "Store: Failed to create temporary file")
	}
	defer os.Remove(tmp.Name())

	sha := sha512.New()
	n, err := io.Copy(io.MultiWriter(tmp, sha), io.LimitReader(br, MaxUploadSize+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", errors.Wrap(err, "Store: Failed to write upload")
	}
	if n > MaxUploadSize {
		return "", ErrTooLarge
	}

	name := hex.EncodeToString(sha.Sum(nil))[:64] + ext
	if err := os.Rename(tmp.Name(), filepath.Join(u.dir, name)); err != nil {
		return "", errors.Wrap(err, "Store: Failed to move upload into place")
	}
	u.logger.WithFields(logrus.Fields{log.FldFile: name, "size": n}).Info("Stored upload")
	return u.urlPrefix + name, nil
}

// imageExtension determines the file extension to use for the content
func imageExtension(head []byte, fileName string) (string, bool) {
	ct := http.DetectContentType(head)
	if !strings.HasPrefix(ct, "image/") {
		// SVG files are sniffed as text
		ct = mime.TypeByExtension(strings.ToLower(path.Ext(fileName)))
		if ct != "image/svg+xml" || !strings.Contains(string(head), "<svg") {
			return "", false
		}
	}
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	if ext, ok := extensions[ct]; ok {
		return ext, true
	}
	return "", false
}
