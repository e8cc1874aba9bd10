package schedule

import (
	"fmt"

	"barberbook/internal/model"
)

// Conflicts returns one message per existing appointment that overlaps the
// candidate interval for the same barber and date. Cancelled appointments
// never conflict. Stored appointments with unparseable times are skipped.
func Conflicts(appointments []model.Appointment, barberID, date string, start MinuteOfDay, duration int) []string {
	end := start + MinuteOfDay(duration)

	var conflicts []string
	for _, apt := range appointments {
		if apt.BarberID != barberID || apt.Date != date || apt.Status == model.StatusCancelled {
			continue
		}

		aptStart, err := ParseClock(apt.Time)
		if err != nil {
			continue
		}
		aptEnd := aptStart + MinuteOfDay(apt.Duration)

		if overlaps(start, end, aptStart, aptEnd) {
			conflicts = append(conflicts, fmt.Sprintf(
				"time already booked: %s - %s", aptStart.Clock(), aptEnd.Clock()))
		}
	}
	return conflicts
}
