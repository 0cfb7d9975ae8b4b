package mocks

import (
	"context"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	GetDatesByMovieFunc                 func(ctx context.Context, movieTitle string) ([]string, error)
	GetTimesByMovieAndDateFunc          func(ctx context.Context, movieTitle, date string) ([]string, error)
	GetTheatresByMovieAndShowtimeFunc   func(ctx context.Context, movieTitle, date, showTime string) ([]string, error)
	GetByMovieAndShowtimeAndTheatreFunc func(ctx context.Context, movieTitle, date, showTime, theatre string) (*domain.Showtime, error)
}

func (m *MockShowtimeRepo) GetDatesByMovie(ctx context.Context, movieTitle string) ([]string, error) {
	return m.GetDatesByMovieFunc(ctx, movieTitle)
}

func (m *MockShowtimeRepo) GetTimesByMovieAndDate(ctx context.Context, movieTitle, date string) ([]string, error) {
	return m.GetTimesByMovieAndDateFunc(ctx, movieTitle, date)
}

func (m *MockShowtimeRepo) GetTheatresByMovieAndShowtime(ctx context.Context, movieTitle, date, showTime string) ([]string, error) {
	return m.GetTheatresByMovieAndShowtimeFunc(ctx, movieTitle, date, showTime)
}

func (m *MockShowtimeRepo) GetByMovieAndShowtimeAndTheatre(ctx context.Context, movieTitle, date, showTime, theatre string) (*domain.Showtime, error) {
	return m.GetByMovieAndShowtimeAndTheatreFunc(ctx, movieTitle, date, showTime, theatre)
}
