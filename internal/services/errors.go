package services

import (
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTickerConflict is returned when a ticker is already in favorites.
	ErrTickerConflict = errors.New("ticker is already in favorites")

	// ErrTickerEmpty is returned when a submitted ticker symbol is blank.
	ErrTickerEmpty = errors.New("ticker is empty")

	// ErrTickerUnknown is returned when the quote provider has no profile
	// for a submitted symbol.
	ErrTickerUnknown = errors.New("ticker not found")

	// ErrEmptyTickerList is returned by rating and recommendation calls
	// when the input list is empty.
	ErrEmptyTickerList = errors.New("ticker list is empty")

	// ErrInvalidFilter is returned for a filter id outside {1, 2, 3}.
	ErrInvalidFilter = errors.New("unknown filter")
)
