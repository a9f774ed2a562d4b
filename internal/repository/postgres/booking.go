package postgres

import (
	"context"
	"database/sql"

	"rentflow-backend/internal/domain"
	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, match_id, user_id, listing_id, start_date, end_date,
	       COALESCE(monthly_rent_cents, 0), COALESCE(payment_method_id, ''),
	       status, created_at, updated_at`

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	logger.EnterMethod("bookingRepository.GetByID", "bookingID", id)

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b := &domain.Booking{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.MatchID, &b.UserID, &b.ListingID, &b.StartDate, &b.EndDate,
		&b.MonthlyRentCents, &b.PaymentMethodID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		logger.ExitMethodWithError("bookingRepository.GetByID", err, "bookingID", id)
		return nil, err
	}

	logger.ExitMethod("bookingRepository.GetByID", "bookingID", id)
	return b, nil
}

func (r *bookingRepository) ListWithoutRentPayments(ctx context.Context) ([]domain.Booking, error) {
	logger.EnterMethod("bookingRepository.ListWithoutRentPayments")

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.status NOT IN ('CANCELLED')
		  AND NOT EXISTS (
			SELECT 1 FROM rent_payments rp WHERE rp.booking_id = b.id
		  )
		ORDER BY b.created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.ExitMethodWithError("bookingRepository.ListWithoutRentPayments", err)
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.MatchID, &b.UserID, &b.ListingID, &b.StartDate, &b.EndDate,
			&b.MonthlyRentCents, &b.PaymentMethodID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			logger.ExitMethodWithError("bookingRepository.ListWithoutRentPayments", err)
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("bookingRepository.ListWithoutRentPayments", err)
		return nil, err
	}

	logger.ExitMethod("bookingRepository.ListWithoutRentPayments", "count", len(bookings))
	return bookings, nil
}
