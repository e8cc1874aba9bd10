package schedule

import (
	"fmt"
	"time"

	"barberbook/internal/model"
)

// Request is a candidate appointment to validate.
type Request struct {
	BarberID string
	ClientID string
	Date     string // "2006-01-02"
	Time     string // "15:04"
	Duration int    // minutes
}

// ValidationResult is the verdict for a candidate. Valid is true exactly
// when Errors is empty; Warnings never block a booking.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Options configures booking-window policy for the validator.
type Options struct {
	MinAdvance time.Duration // minimum notice before the slot starts
	MaxAdvance time.Duration // advisory horizon; beyond it a warning is added
	Location   *time.Location
}

// Validator combines working-hours containment, conflict detection, rule
// evaluation and booking-window policy into a single verdict.
type Validator struct {
	minAdvance time.Duration
	maxAdvance time.Duration
	loc        *time.Location
	clock      Clock
}

// NewValidator creates a validator. Zero options fall back to 2 hours
// minimum advance and a 30 day warning horizon.
func NewValidator(opts Options, clock Clock) *Validator {
	if opts.MinAdvance <= 0 {
		opts.MinAdvance = 2 * time.Hour
	}
	if opts.MaxAdvance <= 0 {
		opts.MaxAdvance = 30 * 24 * time.Hour
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Validator{
		minAdvance: opts.MinAdvance,
		maxAdvance: opts.MaxAdvance,
		loc:        opts.Location,
		clock:      clock,
	}
}

// Validate runs every check and accumulates the complete reason set; it
// does not stop at the first failure. Domain failures surface inside the
// result, never as an error. The returned error is reserved for malformed
// input (unparseable date or time, non-positive duration).
func (v *Validator) Validate(
	req Request,
	hours model.WorkingHours,
	appointments []model.Appointment,
	rules []model.ScheduleRule,
) (ValidationResult, error) {
	start, err := ParseClock(req.Time)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("parse requested time: %w", err)
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, v.loc)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("parse requested date: %w", err)
	}
	if req.Duration <= 0 {
		return ValidationResult{}, fmt.Errorf("invalid duration %d", req.Duration)
	}
	end := start + MinuteOfDay(req.Duration)

	var errs, warnings []string

	if !withinWorkingHours(hours.ForDate(date), start, end) {
		errs = append(errs, "outside the barber's working hours")
	}

	errs = append(errs, Conflicts(appointments, req.BarberID, req.Date, start, req.Duration)...)

	for _, rule := range ActiveRules(rules, req.BarberID, date) {
		if blocked, reason := RuleBlocks(rule, start, end); blocked {
			errs = append(errs, reason)
		}
	}

	startsAt := date.Add(time.Duration(start) * time.Minute)
	advance := startsAt.Sub(v.clock.Now())
	if advance < v.minAdvance {
		errs = append(errs, fmt.Sprintf(
			"appointment must be booked at least %s in advance", formatAdvance(v.minAdvance)))
	}
	if advance > v.maxAdvance {
		warnings = append(warnings, fmt.Sprintf(
			"appointment booked more than %d days in advance", int(v.maxAdvance.Hours()/24)))
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}, nil
}

// withinWorkingHours reports whether [start,end) is fully contained in one
// of the day's shifts. No shifts means the barber does not work that day.
func withinWorkingHours(shifts []model.TimeRange, start, end MinuteOfDay) bool {
	for _, shift := range shifts {
		shiftStart, err := ParseClock(shift.Start)
		if err != nil {
			continue
		}
		shiftEnd, err := ParseClock(shift.End)
		if err != nil {
			continue
		}
		if start >= shiftStart && end <= shiftEnd {
			return true
		}
	}
	return false
}

func formatAdvance(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(d.Minutes()))
}
