package handlers

import (
	"errors"
	"net/http"

	"github.com/strecanska/tickerwatch/internal/finnhub"
	"github.com/strecanska/tickerwatch/internal/services"
)

// writeServiceError maps a service error to an HTTP response. Upstream
// provider failures propagate the provider's status code.
func writeServiceError(w http.ResponseWriter, err error) {
	var apiErr *finnhub.APIError
	if errors.As(err, &apiErr) {
		http.Error(w, "Error communicating with quote provider.", apiErr.StatusCode)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrTickerConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrTickerEmpty),
		errors.Is(err, services.ErrTickerUnknown),
		errors.Is(err, services.ErrEmptyTickerList),
		errors.Is(err, services.ErrInvalidFilter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
