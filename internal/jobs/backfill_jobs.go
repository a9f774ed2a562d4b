package jobs

import (
	"context"
	"fmt"

	"rentflow-backend/internal/billing"
	"rentflow-backend/internal/logger"
)

// BackfillResult aggregates per-booking outcomes of a backfill run.
type BackfillResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// BackfillRentPayments scans for bookings that have no rent schedule
// yet and generates one per booking. Entry point for the scheduler.
func (jr *JobRunner) BackfillRentPayments() {
	jr.runWithRecovery("BackfillRentPayments", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jr.jobDeadline())
		defer cancel()

		result, err := jr.RunRentPaymentBackfill(ctx)
		if err != nil {
			logger.Error("Rent payment backfill aborted", "error", err,
				"succeeded", result.Succeeded, "failed", result.Failed, "skipped", result.Skipped)
			return
		}

		logger.Info("Rent payment backfill completed",
			"succeeded", result.Succeeded, "failed", result.Failed, "skipped", result.Skipped)

		if result.Failed > 0 && jr.email != nil {
			subject := fmt.Sprintf("Rent payment backfill: %d booking(s) failed", result.Failed)
			body := fmt.Sprintf(
				"The nightly rent payment backfill finished with failures.\n\nSucceeded: %d\nFailed: %d\nSkipped: %d\n\nSee service logs for per-booking details.",
				result.Succeeded, result.Failed, result.Skipped)
			if err := jr.email.SendJobReport(ctx, subject, body); err != nil {
				logger.Error("Failed to send backfill job report", "error", err)
			}
		}
	})
}

// RunRentPaymentBackfill processes every booking that has zero rent
// payments. Bookings missing a rent amount, a payment method, or a
// valid date order are skipped; a generation or persistence error on
// one booking never prevents processing of the rest. Each booking's
// schedule is written atomically, so rerunning the job creates nothing
// new for bookings already handled.
func (jr *JobRunner) RunRentPaymentBackfill(ctx context.Context) (BackfillResult, error) {
	var result BackfillResult

	bookings, err := jr.bookings.ListWithoutRentPayments(ctx)
	if err != nil {
		return result, fmt.Errorf("list bookings without rent payments: %w", err)
	}

	logger.Info("Found bookings without rent payments", "count", len(bookings))

	for _, booking := range bookings {
		// Abort between bookings on deadline, never mid-booking.
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("backfill deadline reached: %w", err)
		}

		if booking.MonthlyRentCents <= 0 {
			logger.Warn("Skipping booking without monthly rent", "booking_id", booking.ID)
			result.Skipped++
			continue
		}
		if booking.PaymentMethodID == "" {
			logger.Warn("Skipping booking without payment method", "booking_id", booking.ID)
			result.Skipped++
			continue
		}
		if !booking.EndDate.After(booking.StartDate) {
			logger.Warn("Skipping booking with invalid date range",
				"booking_id", booking.ID,
				"start_date", booking.StartDate.Format("2006-01-02"),
				"end_date", booking.EndDate.Format("2006-01-02"))
			result.Skipped++
			continue
		}

		payments, err := billing.GenerateSchedule(
			booking.ID, booking.MonthlyRentCents,
			booking.StartDate, booking.EndDate,
			booking.PaymentMethodID,
		)
		if err != nil {
			logger.Error("Failed to generate rent schedule", "booking_id", booking.ID, "error", err)
			result.Failed++
			continue
		}

		bctx, cancel := context.WithTimeout(ctx, jr.bookingTimeout())
		err = jr.rentPayments.CreateBatch(bctx, payments)
		cancel()
		if err != nil {
			logger.Error("Failed to persist rent schedule",
				"booking_id", booking.ID, "payments", len(payments), "error", err)
			result.Failed++
			continue
		}

		logger.Debug("Created rent schedule", "booking_id", booking.ID, "payments", len(payments))
		result.Succeeded++
	}

	return result, nil
}
