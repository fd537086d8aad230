package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/strecanska/tickerwatch/internal/models"
	"github.com/strecanska/tickerwatch/internal/services"
)

type TickerHandler struct {
	tickerService *services.TickerService
	filterService *services.PriceFilterService
	ratingService *services.RatingService
}

func NewTickerHandler(
	tickerService *services.TickerService,
	filterService *services.PriceFilterService,
	ratingService *services.RatingService,
) *TickerHandler {
	return &TickerHandler{
		tickerService: tickerService,
		filterService: filterService,
		ratingService: ratingService,
	}
}

func (h *TickerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/tickers", h.GetTickers).Methods("GET")
	router.HandleFunc("/tickers", h.CreateTicker).Methods("POST")
	router.HandleFunc("/tickers/filtered-prices", h.GetFilteredPrices).Methods("GET")
	router.HandleFunc("/tickers/rating", h.GetRatings).Methods("POST")
	router.HandleFunc("/tickers/process", h.ProcessTickers).Methods("POST")
	router.HandleFunc("/tickers/{id:[0-9]+}", h.GetTicker).Methods("GET")
	router.HandleFunc("/tickers/{id:[0-9]+}", h.DeleteTicker).Methods("DELETE")
}

// GetTickers returns all favorite tickers
func (h *TickerHandler) GetTickers(w http.ResponseWriter, r *http.Request) {
	tickers, err := h.tickerService.GetAllTickers()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tickers)
}

// GetTicker returns one favorite ticker by id
func (h *TickerHandler) GetTicker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	ticker, err := h.tickerService.GetTickerByID(uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ticker)
}

// CreateTicker adds a symbol to the watch-list. The request body is the
// JSON-encoded symbol string.
func (h *TickerHandler) CreateTicker(w http.ResponseWriter, r *http.Request) {
	var symbol string
	if err := json.NewDecoder(r.Body).Decode(&symbol); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ticker, err := h.tickerService.CreateTicker(symbol)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ticker)
}

// DeleteTicker removes a ticker and all of its observations
func (h *TickerHandler) DeleteTicker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := h.tickerService.DeleteTicker(uint(id)); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetFilteredPrices returns tickers classified by the requested price filter
func (h *TickerHandler) GetFilteredPrices(w http.ResponseWriter, r *http.Request) {
	filterID := services.FilterLatestPrice
	if raw := r.URL.Query().Get("filterId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid filter ID", http.StatusBadRequest)
			return
		}
		filterID = parsed
	}

	result, err := h.filterService.FilteredPrices(filterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetRatings assigns a rating to each submitted symbol that is on the
// watch-list
func (h *TickerHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	var tickers []string
	if err := json.NewDecoder(r.Body).Decode(&tickers); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ratings, err := h.ratingService.Rate(tickers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ratings)
}

// ProcessTickers derives Buy/Sell recommendations from submitted ratings
// using the tickerLimit threshold
func (h *TickerHandler) ProcessTickers(w http.ResponseWriter, r *http.Request) {
	threshold := 0
	if raw := r.URL.Query().Get("tickerLimit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid ticker limit", http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	var tickers []models.TickerWithRating
	if err := json.NewDecoder(r.Body).Decode(&tickers); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recommendations, err := h.ratingService.Recommend(tickers, threshold)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recommendations)
}
