package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentflow-backend/internal/domain"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListWithoutRentPayments(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockRentPaymentRepo
type MockRentPaymentRepo struct {
	mock.Mock
}

func (m *MockRentPaymentRepo) CreateBatch(ctx context.Context, payments []domain.RentPayment) error {
	args := m.Called(ctx, payments)
	return args.Error(0)
}
func (m *MockRentPaymentRepo) CountByBooking(ctx context.Context, bookingID string) (int32, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentPaymentRepo) ListByBooking(ctx context.Context, bookingID string) ([]domain.RentPayment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentPayment), args.Error(1)
}

// MockTripRepo
type MockTripRepo struct {
	mock.Mock
}

func (m *MockTripRepo) ListStartingOnOrBefore(ctx context.Context, cutoff time.Time) ([]domain.Trip, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}
func (m *MockTripRepo) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time) error {
	args := m.Called(ctx, id, startDate, endDate)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJobReport(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}
