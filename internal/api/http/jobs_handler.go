package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rentflow-backend/internal/billing"
	"rentflow-backend/internal/jobs"
	"rentflow-backend/internal/logger"
	"rentflow-backend/internal/repository"
)

// JobsHandler exposes the batch jobs over HTTP so an external cron
// service can trigger them, mirroring how the platform's other
// scheduled work is driven. Every route requires the shared cron
// secret as a bearer token.
type JobsHandler struct {
	runner     *jobs.JobRunner
	bookings   repository.BookingRepository
	cronSecret string
}

func NewJobsHandler(runner *jobs.JobRunner, bookings repository.BookingRepository, cronSecret string) *JobsHandler {
	return &JobsHandler{
		runner:     runner,
		bookings:   bookings,
		cronSecret: cronSecret,
	}
}

// RegisterRoutes attaches the cron trigger routes to a router.
func (h *JobsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/cron/backfill-rent-payments", h.authorized(h.handleBackfillRentPayments)).Methods(http.MethodPost)
	r.HandleFunc("/cron/roll-search-dates", h.authorized(h.handleRollSearchDates)).Methods(http.MethodPost)
	r.HandleFunc("/cron/preview-rent-payments", h.authorized(h.handlePreviewRentPayments)).Methods(http.MethodGet)
}

// authorized rejects requests without the cron secret bearer token.
func (h *JobsHandler) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+h.cronSecret {
			logger.Warn("Unauthorized cron trigger attempt", "path", r.URL.Path, "remote", r.RemoteAddr)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (h *JobsHandler) handleBackfillRentPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.jobDeadline())
	defer cancel()

	result, err := h.runner.RunRentPaymentBackfill(ctx)
	if err != nil {
		logger.Error("Backfill trigger failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "backfill aborted",
			"result":  result,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}

func (h *JobsHandler) handleRollSearchDates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.jobDeadline())
	defer cancel()

	result, err := h.runner.RunSearchDateRolling(ctx, time.Now().In(h.runner.Location()))
	if err != nil {
		logger.Error("Search date rolling trigger failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "date rolling aborted",
			"result":  result,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}

// handlePreviewRentPayments generates a booking's schedule without
// persisting it, for inspecting what the backfill would write.
func (h *JobsHandler) handlePreviewRentPayments(w http.ResponseWriter, r *http.Request) {
	bookingID := r.URL.Query().Get("bookingId")
	if bookingID == "" {
		http.Error(w, "Missing bookingId parameter", http.StatusBadRequest)
		return
	}

	booking, err := h.bookings.GetByID(r.Context(), bookingID)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	payments, err := billing.GenerateSchedule(
		booking.ID, booking.MonthlyRentCents,
		booking.StartDate, booking.EndDate,
		booking.PaymentMethodID,
	)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, billing.ErrInvalidDateRange) ||
			errors.Is(err, billing.ErrInvalidAmount) ||
			errors.Is(err, billing.ErrMissingPaymentMethod) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"payments": payments,
	})
}

func (h *JobsHandler) jobDeadline() time.Duration {
	return time.Duration(h.runner.Config().Jobs.JobDeadlineMinutes) * time.Minute
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
