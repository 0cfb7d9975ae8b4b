package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking records a confirmed purchase of TicketCount seats for a showtime.
// A booking is created in status confirmed and can only ever transition to
// cancelled, which is terminal.
type Booking struct {
	ID          int
	Reference   string
	UserID      int
	ShowtimeID  int
	SeatRef     int
	PaymentRef  string
	TotalPrice  decimal.Decimal
	ExtraPrice  decimal.Decimal
	TicketCount int
	Status      BookingStatus
	CreatedAt   time.Time
}

type BookingSummary struct {
	BookingID   int
	Reference   string
	MovieTitle  string
	TheatreName string
	StartTime   time.Time
	TotalPrice  decimal.Decimal
	TicketCount int
	Status      BookingStatus
	CreatedAt   time.Time
}

// BookingRepository owns the two consistency-critical transitions of the
// system. Create inserts the booking row and decrements the showtime's
// available seats in one transaction, failing with InsufficientSeatsError
// when the decrement would drive the counter negative. Cancel marks the
// booking cancelled and restores its seats in one transaction, failing with
// ErrAlreadyCancelled on a repeated cancellation so the restore is applied
// at most once.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetSummariesByUser(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
	Cancel(ctx context.Context, bookingID, userID int) error
}
