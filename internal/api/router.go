package api

import (
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/config"
	"github.com/strecanska/tickerwatch/internal/finnhub"
	"github.com/strecanska/tickerwatch/internal/handlers"
	"github.com/strecanska/tickerwatch/internal/middleware"
	"github.com/strecanska/tickerwatch/internal/services"
	"github.com/strecanska/tickerwatch/internal/websocket"
)

// SetupRouter configures all routes and returns the router
func SetupRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	wsHub *websocket.Hub,
	cfg *config.Config,
) *mux.Router {
	router := mux.NewRouter()

	// Add health check endpoint
	router.HandleFunc("/api/health", HealthHandler).Methods("GET")

	// WebSocket route
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	// Quote provider client, shared by the services that fetch prices
	finnhubClient := finnhub.NewClient(cfg.Finnhub.BaseURL, cfg.Finnhub.APIKey)
	finnhubClient.Cache = redisClient

	// Create services
	authService := services.NewAuthService(cfg.Auth)
	tickerService := services.NewTickerService(db, finnhubClient)
	stockDataService := services.NewStockDataService(db, finnhubClient)
	filterService := services.NewPriceFilterService(db)
	ratingService := services.NewRatingService(db)

	// Create handlers using services
	authHandler := handlers.NewAuthHandler(authService, cfg.JWT.SecretKey)
	tickerHandler := handlers.NewTickerHandler(tickerService, filterService, ratingService)
	stockDataHandler := handlers.NewStockDataHandler(stockDataService, wsHub)

	// Public endpoint exchanging the access code for a token
	router.HandleFunc("/api/auth", authHandler.Authenticate).Methods("POST")

	// Create the API router for authenticated endpoints
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.AuthMiddleware(cfg.JWT.SecretKey))

	// Register routes
	tickerHandler.RegisterRoutes(apiRouter)
	stockDataHandler.RegisterRoutes(apiRouter)

	return router
}
