package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrUserAlreadyExists  = errors.New("a user with this email address already exists")
	ErrMovieAlreadyExists = errors.New("a movie with this title already exists")
	ErrAlreadyCancelled   = errors.New("booking has already been cancelled")
	ErrInvalidCard        = errors.New("card details are incomplete")
)

// InsufficientSeatsError reports a seat-availability violation together with
// the number of seats that were still free at the time of the check.
type InsufficientSeatsError struct {
	Available int
}

func (e InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough seats available, only %d seats left", e.Available)
}
