package domain

import "time"

type BookingStatus string

const (
	BookingStatusReserved      BookingStatus = "RESERVED"
	BookingStatusPendingMoveIn BookingStatus = "PENDING_MOVE_IN"
	BookingStatusActive        BookingStatus = "ACTIVE"
	BookingStatusCompleted     BookingStatus = "COMPLETED"
	BookingStatusCancelled     BookingStatus = "CANCELLED"
)

// Booking is a confirmed reservation of a listing for a date span.
// StartDate and EndDate are civil dates and the span is inclusive:
// the renter occupies the unit on both boundary days.
//
// Bookings are created and mutated by the reservation flow; the
// scheduling jobs only read them.
type Booking struct {
	ID               string    `json:"id"`
	MatchID          string    `json:"match_id"`
	UserID           string    `json:"user_id"`
	ListingID        string    `json:"listing_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	MonthlyRentCents int32     `json:"monthly_rent_cents"`
	// PaymentMethodID is an opaque handle owned by the payment
	// provider; empty when the renter has not attached one yet.
	PaymentMethodID string        `json:"payment_method_id"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
