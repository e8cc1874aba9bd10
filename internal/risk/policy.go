// Package risk holds the stateless client no-show and auto-cancellation
// policy decisions.
package risk

import (
	"fmt"
	"time"

	"barberbook/internal/model"
)

// Policy holds the blocking thresholds. The defaults reproduce shop
// policy: three no-shows, or over half of at least ten appointments
// cancelled.
type Policy struct {
	MaxNoShows       int
	MinSampleSize    int
	MaxCancelRatio   float64
	AutoCancelWithin time.Duration
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{
		MaxNoShows:       3,
		MinSampleSize:    10,
		MaxCancelRatio:   0.5,
		AutoCancelWithin: 24 * time.Hour,
	}
}

// Decision is the outcome of a client block evaluation.
type Decision struct {
	Block  bool   `json:"block"`
	Reason string `json:"reason,omitempty"`
}

// ShouldBlockClient evaluates a client's history counters. The no-show
// threshold is checked first and takes precedence over the cancellation
// ratio. The ratio only applies once the client has a meaningful sample of
// appointments, and blocks strictly above the threshold.
func (p Policy) ShouldBlockClient(stats model.ClientStats) Decision {
	if stats.NoShows >= p.MaxNoShows {
		return Decision{
			Block:  true,
			Reason: fmt.Sprintf("client missed %d appointments without notice", stats.NoShows),
		}
	}

	if stats.TotalAppointments >= p.MinSampleSize {
		ratio := float64(stats.CancelledAppointments) / float64(stats.TotalAppointments)
		if ratio > p.MaxCancelRatio {
			return Decision{
				Block:  true,
				Reason: fmt.Sprintf("cancellation rate too high (%.0f%%)", ratio*100),
			}
		}
	}

	return Decision{}
}

// ShouldAutoCancel reports whether an unconfirmed appointment has reached
// the auto-cancel horizon. The check is one-sided: appointments whose time
// already elapsed while still scheduled are flagged too, so the sweeper
// clears stale bookings either way.
func (p Policy) ShouldAutoCancel(apt model.Appointment, now time.Time) bool {
	if apt.Status != model.StatusScheduled {
		return false
	}

	startsAt, err := apt.StartsAt(now.Location())
	if err != nil {
		return false
	}

	return startsAt.Sub(now) <= p.AutoCancelWithin
}
