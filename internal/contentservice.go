package internal

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
	"github.com/derWhity/greentable/internal/storage"
)

var imageTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// Uploader stores uploaded files and returns the URL they are served at
type Uploader interface {
	Store(r io.Reader, fileName string) (string, error)
}

// ContentService manages the editable content of the site besides the schedule and the menu
type ContentService interface {
	// Images returns all site images
	Images(ctx context.Context) ([]models.SiteImage, error)
	// ImageURL returns the URL of the image of the given type or the fallback if none has been stored
	ImageURL(ctx context.Context, imageType string, fallback string) string
	// SetImage stores the image for its type, replacing the previous one
	SetImage(ctx context.Context, img *models.SiteImage) (*models.SiteImage, error)
	// DeleteImage removes the image of the given type
	DeleteImage(ctx context.Context, imageType string) error

	// Banners returns the banners in rotation order
	Banners(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	// CreateBanner adds a banner to the end of the rotation
	CreateBanner(ctx context.Context, b *models.Banner) (*models.Banner, error)
	// UpdateBanner changes the data of a banner
	UpdateBanner(ctx context.Context, b *models.Banner) error
	// DeleteBanner removes a banner
	DeleteBanner(ctx context.Context, id string) error
	// PlaceBannerBefore moves a banner in front of another one
	PlaceBannerBefore(ctx context.Context, id string, otherID string) error

	// Champions returns the hall of fame, newest entry first
	Champions(ctx context.Context) ([]models.Champion, error)
	// GetChampion returns a single hall of fame entry
	GetChampion(ctx context.Context, id string) (*models.Champion, error)
	// CreateChampion adds an entry to the hall of fame
	CreateChampion(ctx context.Context, c *models.Champion) (*models.Champion, error)
	// UpdateChampion changes a hall of fame entry
	UpdateChampion(ctx context.Context, c *models.Champion) error
	// DeleteChampion removes a hall of fame entry
	DeleteChampion(ctx context.Context, id string) error

	// Upload stores an uploaded image and returns its URL
	Upload(ctx context.Context, r io.Reader, fileName string) (string, error)
}

// -- ContentService implementation ------------------------------------------------------------------------------------

type contentService struct {
	images    repos.SiteImageRepo
	banners   repos.BannerRepo
	champions repos.ChampionRepo
	uploads   Uploader
	logger    *logrus.Entry
}

// NewContentService creates a new content service instance
func NewContentService(
	images repos.SiteImageRepo,
	banners repos.BannerRepo,
	champions repos.ChampionRepo,
	uploads Uploader,
	logger *logrus.Entry,
) ContentService {
	return &contentService{
		images:    images,
		banners:   banners,
		champions: champions,
		uploads:   uploads,
		logger:    logger,
	}
}

func repoError(message string, err error) error {
	return MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError, message, err)
}

func requiredField(message, field string) error {
	return MakeErrorWithData(
		http.StatusBadRequest,
		ErrCodeRequiredFieldMissing,
		message,
		map[string]string{"field": field},
	)
}

// -- Images -----------------------------------------------------------------------------------------------------------

// Images returns all site images
func (s *contentService) Images(ctx context.Context) ([]models.SiteImage, error) {
	list, err := s.images.All()
	if err != nil {
		return nil, repoError("Error while loading site images", err)
	}
	return list, nil
}

// ImageURL returns the URL of the image of the given type or the fallback if none has been stored
func (s *contentService) ImageURL(ctx context.Context, imageType string, fallback string) string {
	img, err := s.images.GetByType(imageType)
	if err != nil {
		if err != repos.ErrEntityNotExisting {
			s.logger.WithError(err).WithField(log.FldImageType, imageType).Warn("Failed to load site image")
		}
		return fallback
	}
	if img.URL == "" {
		return fallback
	}
	return img.URL
}

// SetImage stores the image for its type, replacing the previous one
func (s *contentService) SetImage(ctx context.Context, img *models.SiteImage) (*models.SiteImage, error) {
	img.Type = strings.TrimSpace(img.Type)
	if !imageTypePattern.MatchString(img.Type) {
		return nil, MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeIllegalValue,
			"Image types consist of lower case letters, digits and underscores",
			map[string]string{"field": "type"},
		)
	}
	if img.URL = strings.TrimSpace(img.URL); img.URL == "" {
		return nil, requiredField("Image URL missing", "url")
	}
	if err := s.images.Upsert(img); err != nil {
		return nil, repoError("Error while storing the site image", err)
	}
	stored, err := s.images.GetByType(img.Type)
	if err != nil {
		return nil, repoError("Error while loading the stored site image", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldImageType, img.Type).Info("Site image changed")
	return stored, nil
}

// DeleteImage removes the image of the given type
func (s *contentService) DeleteImage(ctx context.Context, imageType string) error {
	err := s.images.Delete(imageType)
	if err == repos.ErrEntityNotExisting {
		return MakeErrorWithData(
			http.StatusNotFound,
			ErrCodeImageNotFound,
			fmt.Sprintf("There is no image of type %s", imageType),
			map[string]string{"type": imageType},
		)
	}
	if err != nil {
		return repoError("Error while deleting the site image", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldImageType, imageType).Info("Site image deleted")
	return nil
}

// -- Banners ----------------------------------------------------------------------------------------------------------

func bannerNotFound(id string) error {
	return MakeErrorWithData(
		http.StatusNotFound,
		ErrCodeBannerNotFound,
		fmt.Sprintf("Banner %s does not exist", id),
		map[string]string{"id": id},
	)
}

func validateBanner(b *models.Banner) error {
	if b.Title = strings.TrimSpace(b.Title); b.Title == "" {
		return requiredField("Banner title missing", "title")
	}
	b.Subtitle = strings.TrimSpace(b.Subtitle)
	b.ImageURL = strings.TrimSpace(b.ImageURL)
	b.LinkURL = strings.TrimSpace(b.LinkURL)
	return nil
}

// Banners returns the banners in rotation order
func (s *contentService) Banners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	list, err := s.banners.All(activeOnly)
	if err != nil {
		return nil, repoError("Error while loading banners", err)
	}
	return list, nil
}

// CreateBanner adds a banner to the end of the rotation
func (s *contentService) CreateBanner(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	if err := validateBanner(b); err != nil {
		return nil, err
	}
	b.ID = uuid.NewString()
	if err := s.banners.Create(b); err != nil {
		return nil, repoError("Error while storing the banner", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldBanner, b.ID).Info("Banner created")
	return b, nil
}

// UpdateBanner changes the data of a banner
func (s *contentService) UpdateBanner(ctx context.Context, b *models.Banner) error {
	if err := validateBanner(b); err != nil {
		return err
	}
	err := s.banners.Update(b)
	if err == repos.ErrEntityNotExisting {
		return bannerNotFound(b.ID)
	}
	if err != nil {
		return repoError("Error while updating the banner", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldBanner, b.ID).Info("Banner updated")
	return nil
}

// DeleteBanner removes a banner
func (s *contentService) DeleteBanner(ctx context.Context, id string) error {
	err := s.banners.Delete(id)
	if err == repos.ErrEntityNotExisting {
		return bannerNotFound(id)
	}
	if err != nil {
		return repoError("Error while deleting the banner", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldBanner, id).Info("Banner deleted")
	return nil
}

// PlaceBannerBefore moves a banner in front of another one
func (s *contentService) PlaceBannerBefore(ctx context.Context, id string, otherID string) error {
	err := s.banners.PlaceBefore(id, otherID)
	if err == repos.ErrEntityNotExisting {
		return bannerNotFound(id)
	}
	if err != nil {
		return repoError("Error while reordering the banners", err)
	}
	return nil
}

// -- Champions --------------------------------------------------------------------------------------------------------

func championNotFound(id string) error {
	return MakeErrorWithData(
		http.StatusNotFound,
		ErrCodeChampionNotFound,
		fmt.Sprintf("Hall of fame entry %s does not exist", id),
		map[string]string{"id": id},
	)
}

func validateChampion(c *models.Champion) error {
	if c.Name = strings.TrimSpace(c.Name); c.Name == "" {
		return requiredField("Champion name missing", "name")
	}
	if c.Achievement = strings.TrimSpace(c.Achievement); c.Achievement == "" {
		return requiredField("Achievement missing", "achievement")
	}
	c.Prize = strings.TrimSpace(c.Prize)
	c.ImageURL = strings.TrimSpace(c.ImageURL)
	return nil
}

// Champions returns the hall of fame, newest entry first
func (s *contentService) Champions(ctx context.Context) ([]models.Champion, error) {
	list, err := s.champions.All()
	if err != nil {
		return nil, repoError("Error while loading the hall of fame", err)
	}
	return list, nil
}

// GetChampion returns a single hall of fame entry
func (s *contentService) GetChampion(ctx context.Context, id string) (*models.Champion, error) {
	c, err := s.champions.GetByID(id)
	if err == repos.ErrEntityNotExisting {
		return nil, championNotFound(id)
	}
	if err != nil {
		return nil, repoError("Error while loading the hall of fame entry", err)
	}
	return c, nil
}

// CreateChampion adds an entry to the hall of fame
func (s *contentService) CreateChampion(ctx context.Context, c *models.Champion) (*models.Champion, error) {
	if err := validateChampion(c); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	if err := s.champions.Create(c); err != nil {
		return nil, repoError("Error while storing the hall of fame entry", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldChampion, c.ID).Info("Hall of fame entry created")
	return c, nil
}

// UpdateChampion changes a hall of fame entry
func (s *contentService) UpdateChampion(ctx context.Context, c *models.Champion) error {
	original, err := s.GetChampion(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := validateChampion(c); err != nil {
		return err
	}
	c.CreatedAt = original.CreatedAt
	err = s.champions.Update(c)
	if err == repos.ErrEntityNotExisting {
		return championNotFound(c.ID)
	}
	if err != nil {
		return repoError("Error while updating the hall of fame entry", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldChampion, c.ID).Info("Hall of fame entry updated")
	return nil
}

// DeleteChampion removes a hall of fame entry
func (s *contentService) DeleteChampion(ctx context.Context, id string) error {
	err := s.champions.Delete(id)
	if err == repos.ErrEntityNotExisting {
		return championNotFound(id)
	}
	if err != nil {
		return repoError("Error while deleting the hall of fame entry", err)
	}
	ctxhelper.Logger(ctx).WithField(log.FldChampion, id).Info("Hall of fame entry deleted")
	return nil
}

// -- Uploads ----------------------------------------------------------------------------------------------------------

// Upload stores an uploaded image and returns its URL
func (s *contentService) Upload(ctx context.Context, r io.Reader, fileName string) (string, error) {
	url, err := s.uploads.Store(r, fileName)
	switch err {
	case nil:
		ctxhelper.Logger(ctx).WithField(log.FldFile, url).Info("Image uploaded")
		return url, nil
	case storage.ErrNotAnImage:
		return "", MakeErrorWithData(
			http.StatusUnsupportedMediaType,
			ErrCodeUploadFailed,
			"Only JPEG, PNG, GIF, WebP and SVG images can be uploaded",
			map[string]string{"file": fileName},
		)
	case storage.ErrTooLarge:
		return "", MakeErrorWithData(
			http.StatusRequestEntityTooLarge,
			ErrCodeUploadFailed,
			"The file is too large",
			map[string]int64{"maxSize": storage.MaxUploadSize},
		)
	default:
		s.logger.WithError(err).Error("Failed to store upload")
		return "", MakeError(http.StatusInternalServerError, ErrCodeUploadFailed, "The file could not be stored")
	}
}
