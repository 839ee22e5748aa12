package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInputTooLong      = errors.New("input too long")
	ErrMissingCredential = errors.New("missing credential")
	ErrPlaceNotFound     = errors.New("place not found")
	ErrUpstream          = errors.New("upstream service error")
	ErrInvalidItinerary  = errors.New("invalid itinerary")
	ErrDatabaseError     = errors.New("database error")
	ErrDatasetNotLoaded  = errors.New("places dataset not loaded")
)
