package models

import "time"

// DefaultMenuCategory is the category assigned to menu items created without one
const DefaultMenuCategory = "Porções"

// MenuItem is a dish or drink offered at the club's bar
type MenuItem struct {
	ID string `db:"id" json:"id"`
	// Name of the item as printed on the menu
	Name string `db:"name" json:"name"`
	// Optional description
	Description string `db:"description" json:"description"`
	// The price as shown to the guests ("R$ 25,90")
	Price string `db:"price" json:"price"`
	// URL of an image showing the item - may be empty
	ImageURL string `db:"imageUrl" json:"imageUrl"`
	// The menu section this item is listed in
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}

// MenuCategory is a group of menu items sharing the same category
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
