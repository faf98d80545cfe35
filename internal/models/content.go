package models

import "time"

// Known site image types. Images of other types can be stored as well - these are the ones the site asks for
const (
	ImageTypeHeroBackground = "hero_background"
	ImageTypeAbout          = "about_image"
	ImageTypeLogo           = "logo"
	ImageTypeTournaments    = "tournaments_background"
)

// SiteImage is an image used at a fixed place of the site, identified by its type
type SiteImage struct {
	// The image type - unique, one image per type
	Type string `db:"type" json:"type"`
	// The URL the image can be loaded from
	URL string `db:"url" json:"url"`
	// Alternative text for screen readers
	AltText   string    `db:"altText" json:"altText"`
	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}

// A Banner is an announcement shown in the rotating banner area of the home page
type Banner struct {
	ID       string `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Subtitle string `db:"subtitle" json:"subtitle"`
	ImageURL string `db:"imageUrl" json:"imageUrl"`
	// Optional target of the banner
	LinkURL string `db:"linkUrl" json:"linkUrl"`
	// Inactive banners are kept but not shown to the public
	Active bool `db:"active" json:"active"`
	// The position of the banner inside the rotation
	Position  uint      `db:"position" json:"position"`
	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}

// Champion is an entry of the club's hall of fame
type Champion struct {
	ID string `db:"id" json:"id"`
	// Name of the player
	Name string `db:"name" json:"name"`
	// What has been won ("Campeão do Main Event de Maio")
	Achievement string `db:"achievement" json:"achievement"`
	// The prize that has been won - free text
	Prize string `db:"prize" json:"prize"`
	// Photo of the player - may be empty
	ImageURL  string    `db:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}
