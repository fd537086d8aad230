package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/finnhub"
	"github.com/strecanska/tickerwatch/internal/models"
)

type StockDataService struct {
	DB      *gorm.DB
	Finnhub *finnhub.Client
}

func NewStockDataService(db *gorm.DB, client *finnhub.Client) *StockDataService {
	return &StockDataService{DB: db, Finnhub: client}
}

// GetAllStockData returns every stored price observation
func (s *StockDataService) GetAllStockData() ([]models.StockData, error) {
	var observations []models.StockData
	result := s.DB.Find(&observations)
	return observations, result.Error
}

// GetStockDataByID returns one observation or ErrNotFound
func (s *StockDataService) GetStockDataByID(id uint) (*models.StockData, error) {
	var observation models.StockData
	result := s.DB.First(&observation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &observation, nil
}

// DeleteStockData removes one observation
func (s *StockDataService) DeleteStockData(id uint) error {
	result := s.DB.Delete(&models.StockData{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RefreshCurrentPrices fetches a fresh quote for every favorite ticker and
// appends one observation per successful, non-zero quote. A failed fetch
// skips that ticker; all collected observations are committed together at
// the end. Returns the number of observations written.
func (s *StockDataService) RefreshCurrentPrices() (int, error) {
	var tickers []models.FavoriteTicker
	if err := s.DB.Find(&tickers).Error; err != nil {
		return 0, err
	}

	observations := make([]models.StockData, 0, len(tickers))
	for _, ticker := range tickers {
		quote, err := s.Finnhub.Quote(ticker.Ticker)
		if err != nil {
			log.Printf("Skipping %s: quote fetch failed: %v", ticker.Ticker, err)
			continue
		}
		if quote.Current == 0 {
			continue
		}

		observations = append(observations, models.StockData{
			Price:    quote.Current,
			Date:     time.Now().UTC(),
			TickerID: ticker.ID,
		})
	}

	if len(observations) == 0 {
		return 0, nil
	}

	if err := s.DB.Create(&observations).Error; err != nil {
		return 0, err
	}

	return len(observations), nil
}
