package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentflow-backend/internal/domain"
	"rentflow-backend/internal/utils"
)

func TestGenerateSchedule(t *testing.T) {
	t.Run("Leap-year full month yields one full-rate payment", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.February, 1), date(2024, time.February, 29), "pm_1")
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, int32(150000), payments[0].AmountCents)
		assert.Equal(t, date(2024, time.February, 1), payments[0].DueDate)
		assert.Equal(t, "b1", payments[0].BookingID)
		assert.Equal(t, "pm_1", payments[0].PaymentMethodID)
	})

	t.Run("Mid-month start prorates the first payment", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.January, 15), date(2024, time.March, 31), "pm_1")
		require.NoError(t, err)
		require.Len(t, payments, 3)

		assert.Equal(t, int32(82258), payments[0].AmountCents) // 17 of 31 days
		assert.Equal(t, date(2024, time.January, 15), payments[0].DueDate)

		assert.Equal(t, int32(150000), payments[1].AmountCents)
		assert.Equal(t, date(2024, time.February, 1), payments[1].DueDate)

		assert.Equal(t, int32(150000), payments[2].AmountCents)
		assert.Equal(t, date(2024, time.March, 1), payments[2].DueDate)
	})

	t.Run("Mid-month end prorates the last payment", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.January, 15), date(2024, time.April, 10), "pm_1")
		require.NoError(t, err)
		require.Len(t, payments, 4)

		last := payments[3]
		assert.Equal(t, date(2024, time.April, 1), last.DueDate)
		assert.Equal(t, int32(50000), last.AmountCents) // 10 of 30 days
	})

	t.Run("Booking within a single month yields one prorated payment", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.January, 15), date(2024, time.January, 20), "pm_1")
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, int32(29032), payments[0].AmountCents) // 6 of 31 days
		assert.Equal(t, date(2024, time.January, 15), payments[0].DueDate)
	})

	t.Run("Start on the 1st ending mid-month is prorated, not full rate", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.February, 1), date(2024, time.February, 15), "pm_1")
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, int32(77586), payments[0].AmountCents) // 15 of 29 days
	})

	t.Run("Exact month boundaries are all full rate", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.January, 1), date(2024, time.March, 31), "pm_1")
		require.NoError(t, err)
		require.Len(t, payments, 3)
		for _, p := range payments {
			assert.Equal(t, int32(150000), p.AmountCents)
			assert.Equal(t, 1, p.DueDate.Day())
		}
	})

	t.Run("Multi-year span crosses year boundaries", func(t *testing.T) {
		payments, err := GenerateSchedule("b1", 150000, date(2024, time.November, 15), date(2026, time.January, 31), "pm_1")
		require.NoError(t, err)
		// Prorated Nov 2024, then Dec 2024 through Jan 2026 full rate.
		require.Len(t, payments, 15)
		assert.Equal(t, int32(80000), payments[0].AmountCents) // 16 of 30 days
		assert.Equal(t, date(2025, time.January, 1), payments[2].DueDate)
		assert.Equal(t, date(2026, time.January, 1), payments[14].DueDate)
		assert.Equal(t, int32(150000), payments[14].AmountCents)
	})

	t.Run("Deterministic across invocations", func(t *testing.T) {
		a, err := GenerateSchedule("b1", 123456, date(2024, time.March, 7), date(2025, time.June, 20), "pm_1")
		require.NoError(t, err)
		b, err := GenerateSchedule("b1", 123456, date(2024, time.March, 7), date(2025, time.June, 20), "pm_1")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("End not after start", func(t *testing.T) {
		_, err := GenerateSchedule("b1", 150000, date(2024, time.January, 15), date(2024, time.January, 15), "pm_1")
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		_, err = GenerateSchedule("b1", 150000, date(2024, time.January, 15), date(2024, time.January, 10), "pm_1")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Non-positive rent", func(t *testing.T) {
		_, err := GenerateSchedule("b1", 0, date(2024, time.January, 15), date(2024, time.March, 31), "pm_1")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Missing payment method", func(t *testing.T) {
		_, err := GenerateSchedule("b1", 150000, date(2024, time.January, 15), date(2024, time.March, 31), "")
		assert.ErrorIs(t, err, ErrMissingPaymentMethod)
	})
}

// TestGenerateSchedule_Coverage checks the partition invariant: the
// periods covered by a schedule tile the booking span with no gap and
// no overlap, for a spread of awkward spans.
func TestGenerateSchedule_Coverage(t *testing.T) {
	spans := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"mid-month to mid-month", date(2024, time.January, 15), date(2024, time.April, 10)},
		{"first to last day", date(2024, time.January, 1), date(2024, time.December, 31)},
		{"across leap day", date(2024, time.January, 31), date(2024, time.March, 1)},
		{"two days across month boundary", date(2024, time.March, 31), date(2024, time.April, 1)},
		{"multi-year", date(2023, time.June, 10), date(2026, time.February, 14)},
		{"single partial month", date(2023, time.February, 3), date(2023, time.February, 27)},
	}

	for _, span := range spans {
		t.Run(span.name, func(t *testing.T) {
			payments, err := GenerateSchedule("b1", 150000, span.start, span.end, "pm_1")
			require.NoError(t, err)
			require.NotEmpty(t, payments)

			assert.Equal(t, span.start, payments[0].DueDate, "first payment due on the start date")

			coveredDays := 0
			for i, p := range payments {
				periodEnd := coveredPeriodEnd(p, span.end)
				assert.False(t, periodEnd.Before(p.DueDate))
				coveredDays += utils.DaysBetween(p.DueDate, periodEnd) + 1

				if i > 0 {
					// Each period starts the day after the previous one ends.
					prevEnd := coveredPeriodEnd(payments[i-1], span.end)
					assert.Equal(t, prevEnd.AddDate(0, 0, 1), p.DueDate)
				}

				assert.Positive(t, p.AmountCents)
			}

			assert.Equal(t, coveredPeriodEnd(payments[len(payments)-1], span.end), span.end,
				"last period ends on the booking end date")
			assert.Equal(t, utils.DaysBetween(span.start, span.end)+1, coveredDays,
				"covered days equal the inclusive span length")
		})
	}
}

// coveredPeriodEnd reconstructs the last day a payment pays for: the
// end of its due month, clamped to the booking end.
func coveredPeriodEnd(p domain.RentPayment, bookingEnd time.Time) time.Time {
	end := utils.LastDayOfMonth(p.DueDate)
	if bookingEnd.Before(end) {
		return bookingEnd
	}
	return end
}
