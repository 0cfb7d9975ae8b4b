package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Movie is identified by its title throughout the system; the title acts as
// the natural key for catalog lookups and admin operations alike.
type Movie struct {
	ID          int
	Title       string
	Genre       string
	Duration    int
	Director    string
	Actors      string
	Rating      pgtype.Numeric
	ReleaseDate time.Time
}

// RatingValue converts the nullable numeric rating into a plain float64,
// falling back to zero when the column is NULL.
func (m *Movie) RatingValue() float64 {
	if !m.Rating.Valid {
		return 0.0
	}

	value, err := m.Rating.Float64Value()
	if err != nil {
		return 0.0
	}

	return value.Float64
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, title string, movie *Movie) error
	Delete(ctx context.Context, title string) error
}
