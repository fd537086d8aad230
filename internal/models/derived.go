package models

import (
	"time"
)

// TickerWithPrice is the per-request result of the price filter engine.
// LatestPrice and LatestDate are nil when a ticker has no observations.
type TickerWithPrice struct {
	Ticker      string     `json:"ticker"`
	Name        string     `json:"name"`
	Logo        string     `json:"logo"`
	LatestPrice *float64   `json:"latestPrice"`
	LatestDate  *time.Time `json:"latestDate"`
}

// TickerWithRating pairs a ticker with its numeric rating.
type TickerWithRating struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Rating int    `json:"rating"`
}

type Recommendation string

const (
	RecommendationBuy  Recommendation = "Buy"
	RecommendationSell Recommendation = "Sell"
)

// TickerWithRecommendation carries the Buy/Sell decision derived from a rating.
type TickerWithRecommendation struct {
	Ticker         string         `json:"ticker"`
	Name           string         `json:"name"`
	Logo           string         `json:"logo"`
	Recommendation Recommendation `json:"recommendation"`
}
