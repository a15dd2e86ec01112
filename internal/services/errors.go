package services

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
