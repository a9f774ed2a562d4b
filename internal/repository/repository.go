package repository

import (
	"context"
	"time"

	"rentflow-backend/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListWithoutRentPayments returns bookings that have not had a rent
	// schedule generated yet. Bookings with at least one payment are
	// excluded, which makes the backfill job safe to rerun.
	ListWithoutRentPayments(ctx context.Context) ([]domain.Booking, error)
}

type RentPaymentRepository interface {
	// CreateBatch inserts a booking's full payment schedule in a single
	// transaction. Either every payment is written or none is, so a
	// half-written schedule can never be observed.
	CreateBatch(ctx context.Context, payments []domain.RentPayment) error
	CountByBooking(ctx context.Context, bookingID string) (int32, error)
	ListByBooking(ctx context.Context, bookingID string) ([]domain.RentPayment, error)
}

type TripRepository interface {
	// ListStartingOnOrBefore returns trips whose search start date is
	// on or before the cutoff (stale searches that need rolling).
	ListStartingOnOrBefore(ctx context.Context, cutoff time.Time) ([]domain.Trip, error)
	UpdateDates(ctx context.Context, id string, startDate, endDate time.Time) error
}
