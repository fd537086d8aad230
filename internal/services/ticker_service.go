package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/finnhub"
	"github.com/strecanska/tickerwatch/internal/models"
)

type TickerService struct {
	DB      *gorm.DB
	Finnhub *finnhub.Client
}

func NewTickerService(db *gorm.DB, client *finnhub.Client) *TickerService {
	return &TickerService{DB: db, Finnhub: client}
}

// GetAllTickers returns every favorite ticker
func (s *TickerService) GetAllTickers() ([]models.FavoriteTicker, error) {
	var tickers []models.FavoriteTicker
	result := s.DB.Find(&tickers)
	return tickers, result.Error
}

// GetTickerByID returns one favorite ticker or ErrNotFound
func (s *TickerService) GetTickerByID(id uint) (*models.FavoriteTicker, error) {
	var ticker models.FavoriteTicker
	result := s.DB.First(&ticker, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &ticker, nil
}

// CreateTicker looks the symbol up against the quote provider and stores it.
// A current quote is fetched best-effort afterwards; a failed or zero quote
// never fails the creation.
func (s *TickerService) CreateTicker(symbol string) (*models.FavoriteTicker, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, ErrTickerEmpty
	}

	profile, err := s.Finnhub.Profile(symbol)
	if err != nil {
		return nil, err
	}
	if profile.Name == "" {
		return nil, ErrTickerUnknown
	}

	upper := strings.ToUpper(symbol)
	var count int64
	if err := s.DB.Model(&models.FavoriteTicker{}).Where("ticker = ?", upper).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrTickerConflict
	}

	ticker := models.FavoriteTicker{
		Ticker: upper,
		Name:   profile.Name,
		Logo:   profile.Logo,
	}
	if err := s.DB.Create(&ticker).Error; err != nil {
		return nil, err
	}

	quote, err := s.Finnhub.Quote(ticker.Ticker)
	if err != nil {
		log.Printf("Quote fetch for new ticker %s failed: %v", ticker.Ticker, err)
		return &ticker, nil
	}
	if quote.Current != 0 {
		observation := models.StockData{
			Price:    quote.Current,
			Date:     time.Now().UTC(),
			TickerID: ticker.ID,
		}
		if err := s.DB.Create(&observation).Error; err != nil {
			log.Printf("Storing initial observation for %s failed: %v", ticker.Ticker, err)
		}
	}

	return &ticker, nil
}

// DeleteTicker removes a ticker and all of its observations in one transaction
func (s *TickerService) DeleteTicker(id uint) error {
	var ticker models.FavoriteTicker
	if err := s.DB.First(&ticker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticker_id = ?", id).Delete(&models.StockData{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ticker).Error
	})
}
