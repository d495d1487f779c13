// Package availability validates and issues availability mutations for the
// manager's calendar: opening dates, blocking them, and bulk weekend
// updates. All validation happens before any network call.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"eventdesk/internal/api"
	"eventdesk/internal/metrics"
	"eventdesk/internal/model"
)

// Backend persists availability payloads. Implemented by api.Client.
type Backend interface {
	SetAvailability(ctx context.Context, payload api.AvailabilityPayload) error
}

// Confirmer is the human-in-the-loop gate for bulk operations. It receives
// the qualifying dates and returns whether to proceed.
type Confirmer func(dates []time.Time) bool

// Service applies the mutation rules and hands validated payloads to the
// backend.
type Service struct {
	backend Backend
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

// NewService creates a service. perSecond paces bulk per-date calls.
func NewService(backend Backend, perSecond float64, logger *zerolog.Logger) *Service {
	if perSecond <= 0 {
		perSecond = 5.0
	}
	return &Service{
		backend: backend,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:  logger,
	}
}

// checkDate applies the unconditional 1st-day rule shared by every
// mutation entry point.
func checkDate(date time.Time) error {
	if date.Day() == 1 {
		return ErrFirstDayBlocked
	}
	return nil
}

// Set opens a date for booking. Slots are validated unless the whole day
// is opened; a full-day request may still carry slots, they are stored as
// given and ignored by the backend.
func (s *Service) Set(ctx context.Context, req SetAvailable) error {
	if err := checkDate(req.On); err != nil {
		metrics.IncAvailabilityMutation("set", "rejected")
		return err
	}
	if !req.IsFullDay {
		if err := ValidateSlots(req.Slots); err != nil {
			metrics.IncAvailabilityMutation("set", "rejected")
			return err
		}
	}

	if err := s.backend.SetAvailability(ctx, req.Payload()); err != nil {
		metrics.IncAvailabilityMutation("set", "error")
		return fmt.Errorf("set availability: %w", err)
	}

	metrics.IncAvailabilityMutation("set", "ok")
	if s.logger != nil {
		s.logger.Info().
			Str("date", req.On.Format("2006-01-02")).
			Bool("full_day", req.IsFullDay).
			Int("slots", len(req.Slots)).
			Msg("availability set")
	}
	return nil
}

// Block closes a date entirely, clearing any weekend flags it carried.
func (s *Service) Block(ctx context.Context, date time.Time) error {
	if err := checkDate(date); err != nil {
		metrics.IncAvailabilityMutation("block", "rejected")
		return err
	}

	if err := s.backend.SetAvailability(ctx, Block{On: date}.Payload()); err != nil {
		metrics.IncAvailabilityMutation("block", "error")
		return fmt.Errorf("block date: %w", err)
	}

	metrics.IncAvailabilityMutation("block", "ok")
	if s.logger != nil {
		s.logger.Info().Str("date", date.Format("2006-01-02")).Msg("date blocked")
	}
	return nil
}

// DateError records one failed date within a bulk operation.
type DateError struct {
	Date time.Time
	Err  error
}

// BulkResult summarizes a bulk weekend update. Failures do not roll back
// prior successes; the batch is not atomic.
type BulkResult struct {
	Affected int
	Failures []DateError
}

// BulkSetWeekend opens every Saturday and Sunday of a month, skipping the
// 1st. Calls are issued sequentially, one in flight at a time, paced by
// the rate limiter. When no weekend day qualifies, no network calls are
// made and the zero result is returned. confirm gates execution; a nil or
// declining confirmer aborts with no calls.
func (s *Service) BulkSetWeekend(ctx context.Context, year int, month time.Month, confirm Confirmer) (BulkResult, error) {
	var qualifying []time.Time
	for _, d := range weekendDays(year, month) {
		if d.Day() != 1 {
			qualifying = append(qualifying, d)
		}
	}

	if len(qualifying) == 0 {
		return BulkResult{}, nil
	}
	if confirm == nil || !confirm(qualifying) {
		return BulkResult{}, nil
	}

	var result BulkResult
	for _, date := range qualifying {
		if err := s.limiter.Wait(ctx); err != nil {
			return result, err
		}

		if err := s.backend.SetAvailability(ctx, SetWeekend{On: date}.Payload()); err != nil {
			metrics.IncBulkWeekendDate("error")
			result.Failures = append(result.Failures, DateError{Date: date, Err: err})
			if s.logger != nil {
				s.logger.Warn().
					Str("date", date.Format("2006-01-02")).
					Err(err).
					Msg("bulk weekend update failed for date")
			}
			continue
		}
		metrics.IncBulkWeekendDate("ok")
		result.Affected++
	}

	if s.logger != nil {
		s.logger.Info().
			Int("affected", result.Affected).
			Int("failed", len(result.Failures)).
			Str("month", fmt.Sprintf("%04d-%02d", year, int(month))).
			Msg("bulk weekend update done")
	}
	return result, nil
}

func weekendDays(year int, month time.Month) []time.Time {
	var days []time.Time
	for day := 1; day <= model.DaysIn(year, month); day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if model.IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}
