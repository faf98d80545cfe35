package models

import "time"

// Tournament describes a poker tournament on the club's schedule
// A tournament either takes place on a specific calendar date or recurs every week on a named weekday
type Tournament struct {
	// Internal ID (UUID) - stays the same across updates
	ID string `db:"id" json:"id"`
	// Name of the tournament
	Name string `db:"name" json:"name"`
	// The date specification: either an ISO calendar date ("2025-06-16") or a weekday name ("Segunda", "sexta-feira")
	Date string `db:"date" json:"date"`
	// Start time as shown to the players - not parsed
	Time string `db:"time" json:"time"`
	// Buy-in as shown to the players ("R$ 100,00")
	BuyIn string `db:"buyIn" json:"buyIn"`
	// Prize pool as shown to the players
	Prize string `db:"prize" json:"prize"`
	// Maximum number of players allowed to register
	MaxPlayers int `db:"maxPlayers" json:"maxPlayers"`
	// Free text about special rules - may contain markdown
	SpecialFeatures string `db:"specialFeatures" json:"specialFeatures,omitempty"`
	// Creation date of this entry
	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	// Date of the last update of this entry
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}
