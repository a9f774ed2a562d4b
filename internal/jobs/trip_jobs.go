package jobs

import (
	"context"
	"fmt"
	"time"

	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/utils"
)

// RollResult aggregates outcomes of a search-date rolling run.
type RollResult struct {
	Updated  int `json:"updated"`
	Expanded int `json:"expanded"`
	Failed   int `json:"failed"`
}

// RollSearchDates refreshes trip searches whose start date has slipped
// into the past. Entry point for the scheduler.
func (jr *JobRunner) RollSearchDates() {
	jr.runWithRecovery("RollSearchDates", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jr.jobDeadline())
		defer cancel()

		result, err := jr.RunSearchDateRolling(ctx, time.Now().In(jr.location))
		if err != nil {
			logger.Error("Search date rolling aborted", "error", err,
				"updated", result.Updated, "failed", result.Failed)
			return
		}

		logger.Info("Search date rolling completed",
			"updated", result.Updated, "expanded_to_month_minimum", result.Expanded, "failed", result.Failed)
	})
}

// RunSearchDateRolling finds trips starting on or before the reference
// date's day and rolls them to start tomorrow. Ranges shorter than one
// calendar month are expanded to that floor; longer ranges keep their
// original day count. The reference time is a parameter so runs are
// reproducible; callers supply "now" in the business timezone.
func (jr *JobRunner) RunSearchDateRolling(ctx context.Context, now time.Time) (RollResult, error) {
	var result RollResult

	today := utils.CivilDate(now)
	tomorrow := today.AddDate(0, 0, 1)

	trips, err := jr.trips.ListStartingOnOrBefore(ctx, today)
	if err != nil {
		return result, fmt.Errorf("list outdated trips: %w", err)
	}

	logger.Info("Found trips with outdated search dates", "count", len(trips))

	for _, trip := range trips {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("date rolling deadline reached: %w", err)
		}

		newStart, newEnd := utils.RollDateRangeForward(trip.StartDate, trip.EndDate, tomorrow)
		expanded := utils.DaysBetween(newStart, newEnd) > utils.DaysBetween(trip.StartDate, trip.EndDate)

		if err := jr.trips.UpdateDates(ctx, trip.ID, newStart, newEnd); err != nil {
			logger.Error("Failed to roll trip dates", "trip_id", trip.ID, "error", err)
			result.Failed++
			continue
		}

		if expanded {
			result.Expanded++
		}
		result.Updated++

		logger.Debug("Rolled trip dates", "trip_id", trip.ID,
			"new_start", newStart.Format("2006-01-02"),
			"new_end", newEnd.Format("2006-01-02"),
			"expanded", expanded)
	}

	return result, nil
}
