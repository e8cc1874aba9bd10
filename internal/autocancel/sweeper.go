// Package autocancel runs the background sweep that cancels appointments
// left unconfirmed past the auto-cancel horizon.
package autocancel

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"barberbook/internal/metrics"
	"barberbook/internal/model"
	"barberbook/internal/risk"
	"barberbook/internal/schedule"
)

// Store is the subset of storage the sweeper needs.
type Store interface {
	ListScheduledBefore(ctx context.Context, day string) ([]model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) error
}

// Sweeper periodically cancels stale unconfirmed appointments.
type Sweeper struct {
	store    Store
	policy   risk.Policy
	clock    schedule.Clock
	interval time.Duration
	logger   *zerolog.Logger
}

// NewSweeper creates a sweeper. A non-positive interval falls back to ten
// minutes.
func NewSweeper(store Store, policy risk.Policy, clock schedule.Clock, interval time.Duration, logger *zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if clock == nil {
		clock = schedule.SystemClock()
	}
	return &Sweeper{
		store:    store,
		policy:   policy,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the sweep loop until the context is cancelled. The first
// sweep runs immediately.
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("auto-cancel sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("auto-cancel sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep cancels every scheduled appointment that has reached the horizon.
func (s *Sweeper) sweep(ctx context.Context) {
	now := s.clock.Now()
	cutoffDay := now.Add(s.policy.AutoCancelWithin).Format("2006-01-02")

	appointments, err := s.store.ListScheduledBefore(ctx, cutoffDay)
	if err != nil {
		s.logger.Error().Err(err).Msg("auto-cancel sweep: list appointments")
		return
	}

	cancelled := 0
	for _, apt := range appointments {
		if !s.policy.ShouldAutoCancel(apt, now) {
			continue
		}
		if err := s.store.UpdateAppointmentStatus(ctx, apt.ID, model.StatusCancelled); err != nil {
			s.logger.Error().Err(err).Str("appointment_id", apt.ID).Msg("auto-cancel update failed")
			continue
		}
		metrics.IncAutoCancelled()
		cancelled++
		s.logger.Info().
			Str("appointment_id", apt.ID).
			Str("date", apt.Date).
			Str("time", apt.Time).
			Msg("appointment auto-cancelled")
	}

	if cancelled > 0 {
		s.logger.Info().Int("cancelled", cancelled).Msg("auto-cancel sweep complete")
	}
}
