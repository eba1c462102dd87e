package repository

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrNotEnoughSeats    = errors.New("not enough seats available")
	ErrEmailTaken        = errors.New("email already in use")
)
