package services

import (
	"math/rand"

	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/models"
)

// Rating bounds, inclusive.
const (
	RatingMin = -10
	RatingMax = 10
)

// RatingService assigns ratings to favorite tickers and derives Buy/Sell
// recommendations. Ratings are drawn uniformly from [RatingMin, RatingMax];
// a call to an external scoring service may replace the draw later.
type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// Rate looks up the given symbols among the favorite tickers and assigns each
// match a random rating. Symbols are matched exactly as stored (upper-case).
func (s *RatingService) Rate(tickers []string) ([]models.TickerWithRating, error) {
	if len(tickers) == 0 {
		return nil, ErrEmptyTickerList
	}

	var matched []models.FavoriteTicker
	if err := s.DB.Where("ticker IN ?", tickers).Find(&matched).Error; err != nil {
		return nil, err
	}

	ratings := make([]models.TickerWithRating, 0, len(matched))
	for _, ticker := range matched {
		ratings = append(ratings, models.TickerWithRating{
			Ticker: ticker.Ticker,
			Name:   ticker.Name,
			Logo:   ticker.Logo,
			Rating: RatingMin + rand.Intn(RatingMax-RatingMin+1),
		})
	}

	return ratings, nil
}

// Recommend maps each rated ticker to Sell when its rating reaches the
// threshold, Buy otherwise. Pure given its inputs.
func (s *RatingService) Recommend(tickers []models.TickerWithRating, threshold int) ([]models.TickerWithRecommendation, error) {
	if len(tickers) == 0 {
		return nil, ErrEmptyTickerList
	}

	recommendations := make([]models.TickerWithRecommendation, 0, len(tickers))
	for _, ticker := range tickers {
		recommendation := models.RecommendationBuy
		if ticker.Rating >= threshold {
			recommendation = models.RecommendationSell
		}
		recommendations = append(recommendations, models.TickerWithRecommendation{
			Ticker:         ticker.Ticker,
			Name:           ticker.Name,
			Logo:           ticker.Logo,
			Recommendation: recommendation,
		})
	}

	return recommendations, nil
}
