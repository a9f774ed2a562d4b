package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentflow-backend/internal/domain"
	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/repository"
)

type rentPaymentRepository struct {
	db *sql.DB
}

func NewRentPaymentRepository(db *sql.DB) repository.RentPaymentRepository {
	return &rentPaymentRepository{db: db}
}

// CreateBatch writes a booking's payment schedule in one transaction.
// IDs are assigned here, not by the generator, so schedule generation
// stays deterministic. A unique index on (booking_id, due_date) rejects
// duplicate schedules at the database level.
func (r *rentPaymentRepository) CreateBatch(ctx context.Context, payments []domain.RentPayment) error {
	logger.EnterMethod("rentPaymentRepository.CreateBatch", "count", len(payments))

	if len(payments) == 0 {
		logger.ExitMethod("rentPaymentRepository.CreateBatch", "count", 0)
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("rentPaymentRepository.CreateBatch", err)
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO rent_payments (
			id, booking_id, amount_cents, due_date, payment_method_id,
			is_paid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	for i := range payments {
		p := &payments[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.CreatedAt = now
		p.UpdatedAt = now

		if _, err := tx.ExecContext(ctx, query,
			p.ID, p.BookingID, p.AmountCents, p.DueDate, p.PaymentMethodID,
			p.IsPaid, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			logger.ExitMethodWithError("rentPaymentRepository.CreateBatch", err,
				"bookingID", p.BookingID, "dueDate", p.DueDate.Format("2006-01-02"))
			return fmt.Errorf("insert rent payment for booking %s due %s: %w",
				p.BookingID, p.DueDate.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("rentPaymentRepository.CreateBatch", err)
		return fmt.Errorf("commit rent payments: %w", err)
	}

	logger.ExitMethod("rentPaymentRepository.CreateBatch", "count", len(payments))
	return nil
}

func (r *rentPaymentRepository) CountByBooking(ctx context.Context, bookingID string) (int32, error) {
	logger.EnterMethod("rentPaymentRepository.CountByBooking", "bookingID", bookingID)

	var count int32
	query := `SELECT count(*) FROM rent_payments WHERE booking_id = $1`
	if err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&count); err != nil {
		logger.ExitMethodWithError("rentPaymentRepository.CountByBooking", err, "bookingID", bookingID)
		return 0, err
	}

	logger.ExitMethod("rentPaymentRepository.CountByBooking", "bookingID", bookingID, "count", count)
	return count, nil
}

func (r *rentPaymentRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.RentPayment, error) {
	logger.EnterMethod("rentPaymentRepository.ListByBooking", "bookingID", bookingID)

	query := `
		SELECT id, booking_id, amount_cents, due_date, COALESCE(payment_method_id, ''),
		       is_paid, payment_authorized_at, payment_captured_at, created_at, updated_at
		FROM rent_payments
		WHERE booking_id = $1
		ORDER BY due_date
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		logger.ExitMethodWithError("rentPaymentRepository.ListByBooking", err, "bookingID", bookingID)
		return nil, err
	}
	defer rows.Close()

	var payments []domain.RentPayment
	for rows.Next() {
		var p domain.RentPayment
		if err := rows.Scan(
			&p.ID, &p.BookingID, &p.AmountCents, &p.DueDate, &p.PaymentMethodID,
			&p.IsPaid, &p.PaymentAuthorizedAt, &p.PaymentCapturedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			logger.ExitMethodWithError("rentPaymentRepository.ListByBooking", err, "bookingID", bookingID)
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("rentPaymentRepository.ListByBooking", err, "bookingID", bookingID)
		return nil, err
	}

	logger.ExitMethod("rentPaymentRepository.ListByBooking", "bookingID", bookingID, "count", len(payments))
	return payments, nil
}
