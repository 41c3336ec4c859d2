package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrMissingPlanFields     = errors.New("destinationId, budget and durationDays are required")
	ErrMissingTripDates      = errors.New("startDate and endDate are required when saveTrip is true")
	ErrSaveRequiresAuth      = errors.New("must be authenticated to save trips")
	ErrNotTripOwner          = errors.New("you can only access your own trips")
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrTripNotFound          = errors.New("trip not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrProviderNotConfigured = errors.New("completion provider API key is not configured")
	ErrEmptyCompletion       = errors.New("failed to generate itinerary from AI")
	ErrCompletionNotJSON     = errors.New("AI response was not valid JSON")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")
)
