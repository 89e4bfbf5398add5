package entity

import "errors"

// Domain validation errors. Transport maps these to HTTP status codes;
// none of them are retried.
var (
	// ErrFutureDate is returned when a completion is toggled for a date
	// that has not occurred yet.
	ErrFutureDate = errors.New("cannot mark a future date")

	// ErrWindowClosed is returned when a completion is toggled for a date
	// more than two days in the past.
	ErrWindowClosed = errors.New("editing window closed for this date")

	// ErrPreCreation is returned when a completion is toggled for a date
	// before the habit existed.
	ErrPreCreation = errors.New("date precedes habit creation")

	// ErrMalformedDate is returned when a date key is not a valid
	// YYYY-MM-DD string.
	ErrMalformedDate = errors.New("malformed date key")

	// ErrInvalidTransition is returned for lifecycle operations that are
	// not valid in the habit's current state (restoring a non-deleted
	// habit, archiving a deleted one, and so on).
	ErrInvalidTransition = errors.New("invalid lifecycle transition")

	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitDeleted  = errors.New("habit is deleted")
	ErrEmptyTitle    = errors.New("title must not be empty")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
