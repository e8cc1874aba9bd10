// Package schedule implements the appointment scheduling and validation
// engine: time-of-day arithmetic, schedule rule evaluation, conflict
// detection, candidate validation and available-slot generation.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinuteOfDay is a clock time expressed as minutes since midnight, [0,1440).
type MinuteOfDay int

const minutesPerDay = 24 * 60

// ParseClock parses a strict "HH:mm" string into a MinuteOfDay.
func ParseClock(s string) (MinuteOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q: expected HH:mm", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}

	return MinuteOfDay(hour*60 + minute), nil
}

// Clock formats the minute-of-day as zero-padded "HH:mm".
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Valid reports whether the value lies within a single day.
func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m < minutesPerDay
}

// overlaps reports whether the half-open intervals [start1,end1) and
// [start2,end2) intersect.
func overlaps(start1, end1, start2, end2 MinuteOfDay) bool {
	return start1 < end2 && start2 < end1
}
