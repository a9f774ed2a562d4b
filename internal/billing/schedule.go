package billing

import (
	"time"

	"rentflow-backend/internal/domain"
	"rentflow-backend/internal/utils"
)

// GenerateSchedule produces the ordered list of rent payments for a
// booking spanning [startDate, endDate] inclusive.
//
// The first payment is due on the start date and covers the remainder
// of the move-in month (full rate when that is the entire month,
// prorated otherwise). Every interior month is a full-rate payment due
// on the 1st. A trailing partial month is prorated and due on its 1st.
// Together the payments cover every day of the span exactly once.
//
// The function is pure and deterministic: it assigns no IDs and reads
// no clock, so regenerating from the same booking yields the same
// schedule.
func GenerateSchedule(bookingID string, monthlyRentCents int32, startDate, endDate time.Time, paymentMethodID string) ([]domain.RentPayment, error) {
	if monthlyRentCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if paymentMethodID == "" {
		return nil, ErrMissingPaymentMethod
	}

	start := utils.CivilDate(startDate)
	end := utils.CivilDate(endDate)
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}

	var payments []domain.RentPayment

	// First payment: from the start date to the end of the move-in
	// month, clamped to the booking end for single-month stays.
	firstEnd := utils.LastDayOfMonth(start)
	if end.Before(firstEnd) {
		firstEnd = end
	}
	if start.Day() == 1 && firstEnd.Equal(utils.LastDayOfMonth(start)) {
		payments = append(payments, newRentPayment(bookingID, monthlyRentCents, start, paymentMethodID))
	} else {
		amount, err := Prorate(monthlyRentCents, start, firstEnd)
		if err != nil {
			return nil, err
		}
		payments = append(payments, newRentPayment(bookingID, amount, start, paymentMethodID))
	}

	// Interior months: full rate, due on the 1st, as long as the whole
	// month fits inside the booking.
	cursor := utils.FirstOfNextMonth(start)
	for !utils.LastDayOfMonth(cursor).After(end) {
		payments = append(payments, newRentPayment(bookingID, monthlyRentCents, cursor, paymentMethodID))
		cursor = utils.FirstOfNextMonth(cursor)
	}

	// Trailing partial month, if the booking ends mid-month.
	if !cursor.After(end) {
		amount, err := Prorate(monthlyRentCents, cursor, end)
		if err != nil {
			return nil, err
		}
		payments = append(payments, newRentPayment(bookingID, amount, cursor, paymentMethodID))
	}

	return payments, nil
}

func newRentPayment(bookingID string, amountCents int32, dueDate time.Time, paymentMethodID string) domain.RentPayment {
	return domain.RentPayment{
		BookingID:       bookingID,
		AmountCents:     amountCents,
		DueDate:         dueDate,
		PaymentMethodID: paymentMethodID,
	}
}
