package postgres

import (
	"database/sql"

	"rentflow-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookingRepository
	repository.RentPaymentRepository
	repository.TripRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		BookingRepository:     NewBookingRepository(db),
		RentPaymentRepository: NewRentPaymentRepository(db),
		TripRepository:        NewTripRepository(db),
	}
}
