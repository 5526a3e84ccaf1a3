package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoLocationsFound     = errors.New("no locations found for destination")
	ErrNoSuitableCandidates = errors.New("no suitable candidates found")
	ErrGenerationFailed     = errors.New("itinerary generation failed")

	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrPOINotFound       = errors.New("poi not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrWrongCredentials  = errors.New("wrong email or password")
	ErrAlreadyReviewed   = errors.New("target already reviewed by this user")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
