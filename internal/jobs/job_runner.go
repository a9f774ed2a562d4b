package jobs

import (
	"time"

	"rentflow-backend/internal/config"
	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/repository"
	"rentflow-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. It depends on repository
// interfaces rather than the database handle so jobs can be unit
// tested against in-memory fakes.
type JobRunner struct {
	bookings     repository.BookingRepository
	rentPayments repository.RentPaymentRepository
	trips        repository.TripRepository
	email        service.EmailService
	config       *config.Config
	location     *time.Location
}

// NewJobRunner creates a new job runner with all dependencies. email
// may be nil when job reports are disabled.
func NewJobRunner(
	bookings repository.BookingRepository,
	rentPayments repository.RentPaymentRepository,
	trips repository.TripRepository,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	loc, err := time.LoadLocation(cfg.Jobs.Timezone)
	if err != nil {
		logger.Warn("Unknown job timezone, falling back to UTC", "timezone", cfg.Jobs.Timezone, "error", err)
		loc = time.UTC
	}

	return &JobRunner{
		bookings:     bookings,
		rentPayments: rentPayments,
		trips:        trips,
		email:        email,
		config:       cfg,
		location:     loc,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// Location returns the civil timezone business-day boundaries use.
func (jr *JobRunner) Location() *time.Location {
	return jr.location
}

func (jr *JobRunner) bookingTimeout() time.Duration {
	return time.Duration(jr.config.Jobs.BookingTimeoutSeconds) * time.Second
}

func (jr *JobRunner) jobDeadline() time.Duration {
	return time.Duration(jr.config.Jobs.JobDeadlineMinutes) * time.Minute
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.RollSearchDates()
	jr.BackfillRentPayments()
}
