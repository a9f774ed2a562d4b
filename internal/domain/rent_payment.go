package domain

import "time"

// RentPayment is one scheduled, dated rent charge belonging to a
// booking. Payments are generated once, in bulk, when a booking gets
// its schedule; the capture pipeline later flips IsPaid and stamps the
// authorization/capture times, but never changes amount or due date.
//
// DueDate is always the 1st of a month, except for the first payment
// of a mid-month move-in, which falls on the booking's start date.
type RentPayment struct {
	ID                  string     `json:"id"`
	BookingID           string     `json:"booking_id"`
	AmountCents         int32      `json:"amount_cents"`
	DueDate             time.Time  `json:"due_date"`
	PaymentMethodID     string     `json:"payment_method_id"`
	IsPaid              bool       `json:"is_paid"`
	PaymentAuthorizedAt *time.Time `json:"payment_authorized_at,omitempty"`
	PaymentCapturedAt   *time.Time `json:"payment_captured_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
