package mocks

import (
	"context"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetSummariesByUser(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {
	args := m.Called(ctx, userID, pagination)

	var summaries []domain.BookingSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.BookingSummary)
	}

	var metadata *domain.Metadata
	if args.Get(1) != nil {
		metadata = args.Get(1).(*domain.Metadata)
	}

	return summaries, metadata, args.Error(2)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, bookingID, userID int) error {
	args := m.Called(ctx, bookingID, userID)
	return args.Error(0)
}
