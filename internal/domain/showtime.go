package domain

import (
	"context"
	"time"
)

// Showtime is a scheduled screening of a movie at a theatre. AvailableSeats
// is the consistency-critical counter: it must stay within [0, Capacity]
// at all times, decremented on booking confirmation and incremented on
// cancellation.
type Showtime struct {
	ID             int
	MovieID        int
	TheatreID      int
	StartTime      time.Time
	Capacity       int
	AvailableSeats int
}

// ShowtimeRepository exposes the read side of the selection funnel. Dates
// are formatted as "2006-01-02" and times as "15:04"; both sequences are
// distinct and ascending. GetByMovieAndShowtimeAndTheatre takes the same
// date and time strings the option queries produced, so a selection the
// catalog offered always resolves to its row regardless of the database
// session timezone. The seat decrement itself lives on the booking
// repository so that it commits atomically with the booking row.
type ShowtimeRepository interface {
	GetDatesByMovie(ctx context.Context, title string) ([]string, error)
	GetTimesByMovieAndDate(ctx context.Context, title, date string) ([]string, error)
	GetTheatresByMovieAndShowtime(ctx context.Context, title, date, showTime string) ([]string, error)
	GetByMovieAndShowtimeAndTheatre(ctx context.Context, title, date, showTime, theatre string) (*Showtime, error)
}
