package models

import (
	"time"
)

// FavoriteTicker is a stock symbol the user keeps on the watch-list.
// Ticker is stored upper-cased and is unique.
type FavoriteTicker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Ticker    string    `gorm:"uniqueIndex" json:"ticker"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
