package internal

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
)

// maximum number of digits a price may consist of
const maxPriceDigits = 15

var pricePrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice normalizes a price entered by the admin to the Brazilian currency format.
// All non-digits are dropped and the digits are read as cents, so "2590", "25,90" and "R$ 25,90" all become
// "R$ 25,90". Returns false if the text contains no digits at all.
func FormatPrice(text string) (string, bool) {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := strings.TrimLeft(digits.String(), "0")
	if digits.Len() == 0 {
		return "", false
	}
	if len(d) > maxPriceDigits {
		return "", false
	}
	cents, err := strconv.ParseInt("0"+d, 10, 64)
	if err != nil {
		return "", false
	}
	return pricePrinter.Sprintf("R$ %.2f", float64(cents)/100), true
}

// MenuService provides service functions for the bar menu
type MenuService interface {
	// Categories returns the full menu grouped by category
	Categories(ctx context.Context) ([]models.MenuCategory, error)
	// List searches for menu items matching the given search term
	List(ctx context.Context, search *Search) ([]models.MenuItem, uint, error)
	// Get returns the menu item with the given ID
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	// Create validates and stores a new menu item
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	// Update replaces the data of an existing menu item
	Update(ctx context.Context, item *models.MenuItem) error
	// Delete removes a menu item
	Delete(ctx context.Context, id string) error
}

// -- MenuService implementation ---------------------------------------------------------------------------------------

type menuService struct {
	repo   repos.MenuRepo
	logger *logrus.Entry
}

// NewMenuService creates a new menu service instance
func NewMenuService(repo repos.MenuRepo, logger *logrus.Entry) MenuService {
	return &menuService{repo: repo, logger: logger}
}

func menuItemNotFound(id string) error {
	return MakeErrorWithData(
		http.StatusNotFound,
		ErrCodeMenuItemNotFound,
		fmt.Sprintf("Menu item %s does not exist", id),
		map[string]string{"id": id},
	)
}

func validateMenuItem(item *models.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeRequiredFieldMissing,
			"Menu item name missing",
			map[string]string{"field": "name"},
		)
	}
	price, ok := FormatPrice(item.Price)
	if !ok {
		return MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeRequiredFieldMissing,
			"Menu item price missing",
			map[string]string{"field": "price"},
		)
	}
	item.Price = price
	item.Description = strings.TrimSpace(item.Description)
	item.ImageURL = strings.TrimSpace(item.ImageURL)
	if item.Category = strings.TrimSpace(item.Category); item.Category == "" {
		item.Category = models.DefaultMenuCategory
	}
	return nil
}

// Categories returns the full menu grouped by category
func (s *menuService) Categories(ctx context.Context) ([]models.MenuCategory, error) {
	items, err := s.repo.All()
	if err != nil {
		return nil, MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError, "Error while loading the menu", err)
	}
	ret := []models.MenuCategory{}
	// The repo returns the items ordered by category
	for _, item := range items {
		if len(ret) == 0 || ret[len(ret)-1].Name != item.Category {
			ret = append(ret, models.MenuCategory{Name: item.Category})
		}
		last := &ret[len(ret)-1]
		last.Items = append(last.Items, item)
	}
	return ret, nil
}

// List searches for menu items matching the given search term
func (s *menuService) List(ctx context.Context, search *Search) ([]models.MenuItem, uint, error) {
	page := search.Window()
	list, numRows, err := s.repo.Find(search.Term(), page.Offset, page.Limit)
	if err != nil {
		return nil, 0, MakeErrorWithData(
			http.StatusInternalServerError,
			ErrCodeRepoError,
			"Error while searching menu items",
			err,
		)
	}
	return list, numRows, nil
}

// Get returns the menu item with the given ID
func (s *menuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	item, err := s.repo.GetByID(id)
	if err == repos.ErrEntityNotExisting {
		return nil, menuItemNotFound(id)
	}
	if err != nil {
		return nil, MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			fmt.Sprintf("Error while retrieving menu item %s", id), err,
		)
	}
	return item, nil
}

// Create validates and stores a new menu item
func (s *menuService) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	item.ID = uuid.NewString()
	if err := s.repo.Create(item); err != nil {
		return nil, MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			"Error while storing the menu item", err,
		)
	}
	ctxhelper.Logger(ctx).WithField(log.FldMenuItem, item.ID).Info("Menu item created")
	return item, nil
}

// Update replaces the data of an existing menu item
func (s *menuService) Update(ctx context.Context, item *models.MenuItem) error {
	original, err := s.Get(ctx, item.ID)
	if err != nil {
		return err
	}
	if err := validateMenuItem(item); err != nil {
		return err
	}
	item.CreatedAt = original.CreatedAt
	if err := s.repo.Update(item); err != nil {
		if err == repos.ErrEntityNotExisting {
			return menuItemNotFound(item.ID)
		}
		return MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			fmt.Sprintf("Error while updating menu item %s", item.ID), err,
		)
	}
	ctxhelper.Logger(ctx).WithField(log.FldMenuItem, item.ID).Info("Menu item updated")
	return nil
}

// Delete removes a menu item
func (s *menuService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(id)
	if err == repos.ErrEntityNotExisting {
		return menuItemNotFound(id)
	}
	if err != nil {
		return MakeErrorWithData(http.StatusInternalServerError, ErrCodeRepoError,
			fmt.Sprintf("Error while deleting menu item %s", id), err,
		)
	}
	ctxhelper.Logger(ctx).WithField(log.FldMenuItem, id).Info("Menu item deleted")
	return nil
}
