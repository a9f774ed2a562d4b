package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentflow-backend/internal/domain"
	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/repository"
)

type tripRepository struct {
	db *sql.DB
}

func NewTripRepository(db *sql.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) ListStartingOnOrBefore(ctx context.Context, cutoff time.Time) ([]domain.Trip, error) {
	logger.EnterMethod("tripRepository.ListStartingOnOrBefore", "cutoff", cutoff.Format("2006-01-02"))

	query := `
		SELECT id, user_id, start_date, end_date, created_at, updated_at
		FROM trips
		WHERE start_date IS NOT NULL
		  AND end_date IS NOT NULL
		  AND start_date <= $1
		ORDER BY start_date
	`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		logger.ExitMethodWithError("tripRepository.ListStartingOnOrBefore", err)
		return nil, err
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			logger.ExitMethodWithError("tripRepository.ListStartingOnOrBefore", err)
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("tripRepository.ListStartingOnOrBefore", err)
		return nil, err
	}

	logger.ExitMethod("tripRepository.ListStartingOnOrBefore", "count", len(trips))
	return trips, nil
}

func (r *tripRepository) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time) error {
	logger.EnterMethod("tripRepository.UpdateDates", "tripID", id)

	query := `UPDATE trips SET start_date = $1, end_date = $2, updated_at = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, startDate, endDate, time.Now(), id)
	if err != nil {
		logger.ExitMethodWithError("tripRepository.UpdateDates", err, "tripID", id)
		return err
	}

	logger.ExitMethod("tripRepository.UpdateDates", "tripID", id)
	return nil
}
