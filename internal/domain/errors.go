package domain

import "errors"

var (
	// ErrCarUnavailable covers both "car does not exist" and "car already
	// rented" on rent/book requests.
	ErrCarUnavailable = errors.New("car is not available or does not exist")

	// ErrNotFound reports an unknown id on remove/update/decide.
	ErrNotFound = errors.New("record not found")

	// ErrNoActiveRental reports a return attempt with no matching rental row.
	ErrNoActiveRental = errors.New("no rental record found for this car")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
)
