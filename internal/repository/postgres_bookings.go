package repository

import (
	"context"
	"errors"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create inserts the booking and decrements the showtime's seat counter in a
// single transaction. The decrement is conditional on enough seats remaining,
// so two concurrent bookings against the same showtime can never drive the
// counter negative: the loser observes zero affected rows and gets an
// InsufficientSeatsError with the seats actually left.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE showtimes
			SET available_seats = available_seats - $1
			WHERE id = $2 AND available_seats >= $1
		`

		tag, err := tx.Exec(ctx, query, booking.TicketCount, booking.ShowtimeID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			var available int

			query = `SELECT available_seats FROM showtimes WHERE id = $1`

			err = tx.QueryRow(ctx, query, booking.ShowtimeID).Scan(&available)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrRecordNotFound
				}

				return err
			}

			return domain.InsufficientSeatsError{Available: available}
		}

		query = `
			INSERT INTO bookings
				(reference, user_id, showtime_id, seat_ref, payment_ref, total_price, extra_price, ticket_count, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`

		return tx.QueryRow(
			ctx,
			query,
			booking.Reference,
			booking.UserID,
			booking.ShowtimeID,
			booking.SeatRef,
			booking.PaymentRef,
			booking.TotalPrice,
			booking.ExtraPrice,
			booking.TicketCount,
			booking.Status).Scan(&booking.ID, &booking.CreatedAt)
	})
}

func (p *PostgresBookingRepository) GetSummariesByUser(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.reference,
			m.title,
			t.name,
			s.start_time,
			b.total_price,
			b.ticket_count,
			b.status,
			b.created_at
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theatres t ON s.theatre_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.MovieTitle,
			&booking.TheatreName,
			&booking.StartTime,
			&booking.TotalPrice,
			&booking.TicketCount,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

// Cancel marks the booking cancelled and restores its seats to the showtime
// as one atomic unit. The row lock plus the status guard make the restore
// at-most-once: a second cancellation fails with ErrAlreadyCancelled before
// touching anything. The restore trusts the ticket_count stored on the
// booking row, which is the source of truth for how many seats it held.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID, userID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT showtime_id, ticket_count, status
			FROM bookings
			WHERE id = $1 AND user_id = $2
			FOR UPDATE
		`

		var (
			showtimeID  int
			ticketCount int
			status      domain.BookingStatus
		)

		err := tx.QueryRow(ctx, query, bookingID, userID).Scan(&showtimeID, &ticketCount, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if status == domain.BookingStatusCancelled {
			return domain.ErrAlreadyCancelled
		}

		query = `UPDATE bookings SET status = $1 WHERE id = $2`

		_, err = tx.Exec(ctx, query, domain.BookingStatusCancelled, bookingID)
		if err != nil {
			return err
		}

		query = `UPDATE showtimes SET available_seats = available_seats + $1 WHERE id = $2`

		_, err = tx.Exec(ctx, query, ticketCount, showtimeID)

		return err
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
