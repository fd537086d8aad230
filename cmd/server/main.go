package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/strecanska/tickerwatch/internal/api"
	"github.com/strecanska/tickerwatch/internal/config"
	"github.com/strecanska/tickerwatch/internal/db"
	"github.com/strecanska/tickerwatch/internal/finnhub"
	"github.com/strecanska/tickerwatch/internal/services"
	"github.com/strecanska/tickerwatch/internal/tasks"
	"github.com/strecanska/tickerwatch/internal/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database connection
	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Redis client; the quote cache degrades gracefully without it
	redisClient, err := db.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
	}

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Initialize the scheduled price refresh
	finnhubClient := finnhub.NewClient(cfg.Finnhub.BaseURL, cfg.Finnhub.APIKey)
	finnhubClient.Cache = redisClient
	stockDataService := services.NewStockDataService(database, finnhubClient)
	taskManager := tasks.NewManager(stockDataService, wsHub, cfg.Tasks.RefreshInterval)
	taskManager.StartScheduledTasks()

	// Initialize router
	router := api.SetupRouter(database, redisClient, wsHub, cfg)

	// Set up CORS
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins for API access
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Apply CORS middleware
	handler := corsMiddleware.Handler(router)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, handler))
}
