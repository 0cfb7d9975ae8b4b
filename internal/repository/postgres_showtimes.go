package repository

import (
	"context"
	"errors"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetDatesByMovie(ctx context.Context, title string) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(s.start_time, 'YYYY-MM-DD') AS show_date
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		WHERE m.title = $1
		ORDER BY show_date
	`

	return p.queryStrings(ctx, query, title)
}

func (p *PostgresShowtimeRepository) GetTimesByMovieAndDate(ctx context.Context, title, date string) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(s.start_time, 'HH24:MI') AS show_time
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		WHERE m.title = $1 AND s.start_time::date = $2::date
		ORDER BY show_time
	`

	return p.queryStrings(ctx, query, title, date)
}

func (p *PostgresShowtimeRepository) GetTheatresByMovieAndShowtime(
	ctx context.Context,
	title, date, showTime string) ([]string, error) {

	query := `
		SELECT t.name
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN theatres t ON s.theatre_id = t.id
		WHERE m.title = $1
			AND s.start_time::date = $2::date
			AND to_char(s.start_time, 'HH24:MI') = $3
	`

	return p.queryStrings(ctx, query, title, date, showTime)
}

// GetByMovieAndShowtimeAndTheatre resolves a funnel selection back to its
// showtime row. It matches on the same date and time expressions the option
// queries render with, so the lookup agrees with what was offered even when
// the session timezone is not UTC.
func (p *PostgresShowtimeRepository) GetByMovieAndShowtimeAndTheatre(
	ctx context.Context,
	title, date, showTime, theatre string) (*domain.Showtime, error) {

	query := `
		SELECT s.id, s.movie_id, s.theatre_id, s.start_time, s.capacity, s.available_seats
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN theatres t ON s.theatre_id = t.id
		WHERE m.title = $1
			AND s.start_time::date = $2::date
			AND to_char(s.start_time, 'HH24:MI') = $3
			AND t.name = $4
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, title, date, showTime, theatre).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheatreID,
		&showtime.StartTime,
		&showtime.Capacity,
		&showtime.AvailableSeats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}

	for rows.Next() {
		var value string

		err := rows.Scan(&value)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}
