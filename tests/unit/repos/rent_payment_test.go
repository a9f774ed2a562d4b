package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentflow-backend/internal/domain"
	"rentflow-backend/internal/repository/postgres"
)

func TestRentPaymentRepository_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentPaymentRepository(db)
	ctx := context.Background()

	payments := []domain.RentPayment{
		{BookingID: "booking-1", AmountCents: 82258, DueDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), PaymentMethodID: "pm_1"},
		{BookingID: "booking-1", AmountCents: 150000, DueDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), PaymentMethodID: "pm_1"},
		{BookingID: "booking-1", AmountCents: 150000, DueDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), PaymentMethodID: "pm_1"},
	}

	t.Run("Success", func(t *testing.T) {
		batch := make([]domain.RentPayment, len(payments))
		copy(batch, payments)

		mock.ExpectBegin()
		for _, p := range payments {
			mock.ExpectExec("INSERT INTO rent_payments").
				WithArgs(sqlmock.AnyArg(), p.BookingID, p.AmountCents, p.DueDate, p.PaymentMethodID,
					false, sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		err := repo.CreateBatch(ctx, batch)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())

		// IDs are assigned on insert.
		for _, p := range batch {
			assert.NotEmpty(t, p.ID)
		}
	})

	t.Run("RollbackOnInsertFailure", func(t *testing.T) {
		batch := make([]domain.RentPayment, len(payments))
		copy(batch, payments)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO rent_payments").
			WithArgs(sqlmock.AnyArg(), "booking-1", int32(82258), payments[0].DueDate, "pm_1",
				false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rent_payments").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))
		mock.ExpectRollback()

		err := repo.CreateBatch(ctx, batch)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyBatchIsNoop", func(t *testing.T) {
		err := repo.CreateBatch(ctx, nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentPaymentRepository_CountByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM rent_payments").
			WithArgs("booking-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountByBooking(ctx, "booking-1")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), count)
	})
}

func TestRentPaymentRepository_ListByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "booking_id", "amount_cents", "due_date", "payment_method_id",
			"is_paid", "payment_authorized_at", "payment_captured_at", "created_at", "updated_at",
		}).
			AddRow("rp-1", "booking-1", 82258, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), "pm_1", false, nil, nil, now, now).
			AddRow("rp-2", "booking-1", 150000, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "pm_1", false, nil, nil, now, now)

		mock.ExpectQuery("SELECT (.+) FROM rent_payments").
			WithArgs("booking-1").
			WillReturnRows(rows)

		payments, err := repo.ListByBooking(ctx, "booking-1")
		assert.NoError(t, err)
		assert.Len(t, payments, 2)
		assert.Equal(t, int32(82258), payments[0].AmountCents)
		assert.Nil(t, payments[0].PaymentAuthorizedAt)
	})
}
