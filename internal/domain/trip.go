package domain

import "time"

// Trip is a renter's saved search: a desired date range for a stay.
// Trips with a start date in the past are rolled forward nightly so
// search results stay current.
type Trip struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
