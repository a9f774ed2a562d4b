package billing

import (
	"errors"
	"fmt"
	"time"

	"rentflow-backend/internal/utils"
)

var (
	// ErrInvalidPeriod means a proration period is reversed or spans
	// more than one calendar month. Always a caller bug.
	ErrInvalidPeriod = errors.New("billing: period must be ordered and within a single calendar month")
	// ErrInvalidDateRange means a booking's end date is not after its
	// start date.
	ErrInvalidDateRange = errors.New("billing: end date must be after start date")
	// ErrInvalidAmount means a non-positive monthly rent.
	ErrInvalidAmount = errors.New("billing: monthly rent must be positive")
	// ErrMissingPaymentMethod means a booking has no payment method
	// reference to copy onto its payments.
	ErrMissingPaymentMethod = errors.New("billing: payment method reference is required")
)

// Prorate computes the rent owed for a partial calendar month, in
// cents. The period is inclusive on both ends and must lie entirely
// within one calendar month. Rounding is half-up to the nearest cent:
//
//	amount = round(monthlyRent * daysInPeriod / daysInMonth)
//
// The function is pure; schedule regeneration depends on identical
// inputs producing identical results.
func Prorate(monthlyRentCents int32, periodStart, periodEnd time.Time) (int32, error) {
	if monthlyRentCents <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAmount, monthlyRentCents)
	}

	sy, sm, sd := periodStart.Date()
	ey, em, ed := periodEnd.Date()
	if sy != ey || sm != em {
		return 0, fmt.Errorf("%w: %s to %s crosses a month boundary",
			ErrInvalidPeriod, periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"))
	}
	if ed < sd {
		return 0, fmt.Errorf("%w: %s to %s is reversed",
			ErrInvalidPeriod, periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"))
	}

	daysInPeriod := int64(ed - sd + 1)
	daysInMonth := int64(utils.DaysInMonth(sy, int(sm)))

	// Integer round-half-up: for positive operands, adding half the
	// divisor before dividing rounds .5 upward.
	amount := (int64(monthlyRentCents)*daysInPeriod + daysInMonth/2) / daysInMonth
	return int32(amount), nil
}
