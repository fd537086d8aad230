package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/strecanska/tickerwatch/internal/finnhub"
	"github.com/strecanska/tickerwatch/internal/models"
)

func setupStockDataDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.FavoriteTicker{}, &models.StockData{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

func TestStockDataCRUD(t *testing.T) {
	db := setupStockDataDB(t)
	service := NewStockDataService(db, nil)

	ticker := models.FavoriteTicker{Ticker: "AAPL", Name: "Apple Inc"}
	if err := db.Create(&ticker).Error; err != nil {
		t.Fatalf("Failed to create ticker: %v", err)
	}
	observation := models.StockData{Price: 187.5, Date: time.Now().UTC(), TickerID: ticker.ID}
	if err := db.Create(&observation).Error; err != nil {
		t.Fatalf("Failed to create observation: %v", err)
	}

	all, err := service.GetAllStockData()
	if err != nil {
		t.Fatalf("GetAllStockData failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 observation, got %d", len(all))
	}

	retrieved, err := service.GetStockDataByID(observation.ID)
	if err != nil {
		t.Fatalf("GetStockDataByID failed: %v", err)
	}
	if retrieved.Price != 187.5 {
		t.Errorf("Expected price 187.5, got %v", retrieved.Price)
	}

	if err := service.DeleteStockData(observation.ID); err != nil {
		t.Fatalf("DeleteStockData failed: %v", err)
	}
	if _, err := service.GetStockDataByID(observation.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := service.DeleteStockData(observation.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a second delete, got %v", err)
	}
}

func TestRefreshCurrentPricesSkipsFailingTickers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			fmt.Fprint(w, `{"c":189.5,"h":190.1,"l":188.2,"o":189.0,"pc":188.7}`)
		case "BROKEN":
			w.WriteHeader(http.StatusBadGateway)
		case "HALTED":
			// zero quote means no trade data; must not be recorded
			fmt.Fprint(w, `{"c":0,"h":0,"l":0,"o":0,"pc":0}`)
		}
	}))
	defer server.Close()

	db := setupStockDataDB(t)
	for _, symbol := range []string{"AAPL", "BROKEN", "HALTED"} {
		ticker := models.FavoriteTicker{Ticker: symbol, Name: symbol + " Inc"}
		if err := db.Create(&ticker).Error; err != nil {
			t.Fatalf("Failed to create ticker: %v", err)
		}
	}

	service := NewStockDataService(db, finnhub.NewClient(server.URL, "test-key"))
	count, err := service.RefreshCurrentPrices()
	if err != nil {
		t.Fatalf("RefreshCurrentPrices failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 observation written, got %d", count)
	}

	var observations []models.StockData
	if err := db.Find(&observations).Error; err != nil {
		t.Fatalf("Failed to load observations: %v", err)
	}
	if len(observations) != 1 {
		t.Fatalf("Expected only the AAPL observation, got %d", len(observations))
	}
	if observations[0].Price != 189.5 {
		t.Errorf("Expected price 189.5, got %v", observations[0].Price)
	}
}

func TestRefreshCurrentPricesNoTickers(t *testing.T) {
	service := NewStockDataService(setupStockDataDB(t), finnhub.NewClient("http://127.0.0.1:0", "test-key"))

	count, err := service.RefreshCurrentPrices()
	if err != nil {
		t.Fatalf("RefreshCurrentPrices failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 observations without tickers, got %d", count)
	}
}
