package models

import (
	"time"
)

// StockData is one timestamped price observation for a favorite ticker.
// Dates are stored in UTC. Several observations may share a calendar day;
// the filter engine collapses them.
type StockData struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
	TickerID uint      `gorm:"index" json:"tickerId"`
}
