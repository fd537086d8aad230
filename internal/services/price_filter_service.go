package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/models"
)

// Filter ids accepted by FilteredPrices.
const (
	FilterLatestPrice    = 1
	FilterThreeDayRise   = 2
	FilterBoundedDecline = 3
)

type PriceFilterService struct {
	DB *gorm.DB
}

func NewPriceFilterService(db *gorm.DB) *PriceFilterService {
	return &PriceFilterService{DB: db}
}

// FilteredPrices loads every ticker with its observation history and applies
// the requested filter.
func (s *PriceFilterService) FilteredPrices(filterID int) ([]models.TickerWithPrice, error) {
	var tickers []models.FavoriteTicker
	if err := s.DB.Find(&tickers).Error; err != nil {
		return nil, err
	}

	var observations []models.StockData
	if err := s.DB.Find(&observations).Error; err != nil {
		return nil, err
	}

	history := make(map[uint][]models.StockData)
	for _, observation := range observations {
		history[observation.TickerID] = append(history[observation.TickerID], observation)
	}

	return FilterPrices(tickers, history, filterID, time.Now().UTC())
}

// FilterPrices classifies tickers by recent price trend. It is a pure
// function of its inputs; now anchors the trailing day windows.
//
// Filter 1 reports every ticker with its single latest observation.
// Filter 2 keeps tickers whose per-day prices over the last 3 days are
// non-decreasing toward the present. Filter 3 keeps tickers with at most 2
// day-over-day declines inside the last 5 days. Filters 2 and 3 require at
// least 3 distinct observation days inside their window.
func FilterPrices(tickers []models.FavoriteTicker, history map[uint][]models.StockData, filterID int, now time.Time) ([]models.TickerWithPrice, error) {
	result := make([]models.TickerWithPrice, 0, len(tickers))

	switch filterID {
	case FilterLatestPrice:
		for _, ticker := range tickers {
			entry := models.TickerWithPrice{
				Ticker: ticker.Ticker,
				Name:   ticker.Name,
				Logo:   ticker.Logo,
			}
			if latest := latestObservation(history[ticker.ID]); latest != nil {
				price := latest.Price
				date := latest.Date
				entry.LatestPrice = &price
				entry.LatestDate = &date
			}
			result = append(result, entry)
		}

	case FilterThreeDayRise:
		lowerBound := dayOf(now).AddDate(0, 0, -3)
		for _, ticker := range tickers {
			days := collapseByDay(inWindow(history[ticker.ID], lowerBound))
			sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })
			if len(days) > 3 {
				days = days[:3]
			}
			if len(days) < 3 {
				continue
			}
			if days[0].Price >= days[1].Price && days[1].Price >= days[2].Price {
				price := days[0].Price
				date := days[0].Date
				result = append(result, models.TickerWithPrice{
					Ticker:      ticker.Ticker,
					Name:        ticker.Name,
					Logo:        ticker.Logo,
					LatestPrice: &price,
					LatestDate:  &date,
				})
			}
		}

	case FilterBoundedDecline:
		lowerBound := dayOf(now).AddDate(0, 0, -5)
		for _, ticker := range tickers {
			days := collapseByDay(inWindow(history[ticker.ID], lowerBound))
			sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
			if len(days) < 3 {
				continue
			}

			declines := 0
			for i := 1; i < len(days); i++ {
				if days[i].Price < days[i-1].Price {
					declines++
				}
			}
			if declines <= 2 {
				latest := days[len(days)-1]
				price := latest.Price
				date := latest.Date
				result = append(result, models.TickerWithPrice{
					Ticker:      ticker.Ticker,
					Name:        ticker.Name,
					Logo:        ticker.Logo,
					LatestPrice: &price,
					LatestDate:  &date,
				})
			}
		}

	default:
		return nil, ErrInvalidFilter
	}

	return result, nil
}

// dayOf truncates a timestamp to its UTC calendar date
func dayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// inWindow keeps observations stamped at or after the lower bound
func inWindow(observations []models.StockData, lowerBound time.Time) []models.StockData {
	kept := make([]models.StockData, 0, len(observations))
	for _, observation := range observations {
		if !observation.Date.Before(lowerBound) {
			kept = append(kept, observation)
		}
	}
	return kept
}

// collapseByDay keeps the latest sample of each calendar day. Raw history may
// carry several same-day samples; the filters reason about day-level trend,
// so the last sample of the day stands for that day.
func collapseByDay(observations []models.StockData) []models.StockData {
	latestPerDay := make(map[time.Time]models.StockData)
	for _, observation := range observations {
		day := dayOf(observation.Date)
		if current, ok := latestPerDay[day]; !ok || observation.Date.After(current.Date) {
			latestPerDay[day] = observation
		}
	}

	days := make([]models.StockData, 0, len(latestPerDay))
	for _, observation := range latestPerDay {
		days = append(days, observation)
	}
	return days
}

// latestObservation returns the observation with the maximum date, or nil
func latestObservation(observations []models.StockData) *models.StockData {
	var latest *models.StockData
	for i := range observations {
		if latest == nil || observations[i].Date.After(latest.Date) {
			latest = &observations[i]
		}
	}
	return latest
}
