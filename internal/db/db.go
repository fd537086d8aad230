package db

import (
	"context"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/config"
	"github.com/strecanska/tickerwatch/internal/models"
)

// Connect establishes a connection to the database and migrates the schema
func Connect(config config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.URL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.FavoriteTicker{}, &models.StockData{}); err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectRedis establishes a connection to Redis
func ConnectRedis(config config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test the connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	return client, nil
}
