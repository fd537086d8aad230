package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/strecanska/tickerwatch/internal/models"
	"github.com/strecanska/tickerwatch/internal/services"
	"github.com/strecanska/tickerwatch/internal/websocket"
)

type StockDataHandler struct {
	stockDataService *services.StockDataService
	wsHub            *websocket.Hub
}

func NewStockDataHandler(stockDataService *services.StockDataService, wsHub *websocket.Hub) *StockDataHandler {
	return &StockDataHandler{
		stockDataService: stockDataService,
		wsHub:            wsHub,
	}
}

func (h *StockDataHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/stock-data", h.GetStockData).Methods("GET")
	router.HandleFunc("/stock-data/update-current-prices", h.UpdateCurrentPrices).Methods("POST")
	router.HandleFunc("/stock-data/{id:[0-9]+}", h.GetStockDataByID).Methods("GET")
	router.HandleFunc("/stock-data/{id:[0-9]+}", h.DeleteStockData).Methods("DELETE")
}

// GetStockData returns all price observations
func (h *StockDataHandler) GetStockData(w http.ResponseWriter, r *http.Request) {
	observations, err := h.stockDataService.GetAllStockData()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(observations)
}

// GetStockDataByID returns one price observation
func (h *StockDataHandler) GetStockDataByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	observation, err := h.stockDataService.GetStockDataByID(uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(observation)
}

// DeleteStockData removes one price observation
func (h *StockDataHandler) DeleteStockData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := h.stockDataService.DeleteStockData(uint(id)); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateCurrentPrices refreshes the price of every favorite ticker. A ticker
// whose quote fetch fails is skipped; the rest are committed together.
func (h *StockDataHandler) UpdateCurrentPrices(w http.ResponseWriter, r *http.Request) {
	count, err := h.stockDataService.RefreshCurrentPrices()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if h.wsHub != nil {
		h.wsHub.Broadcast(models.Message{
			Type:    "prices_updated",
			Content: map[string]int{"count": count},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Prices updated.",
		"count":   count,
	})
}
