package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barberbook/internal/model"
)

func apt(barberID, date, start string, duration int, status model.AppointmentStatus) model.Appointment {
	return model.Appointment{
		ID:       "a-" + start,
		BarberID: barberID,
		Date:     date,
		Time:     start,
		Duration: duration,
		Status:   status,
	}
}

func TestConflicts(t *testing.T) {
	existing := []model.Appointment{
		apt("b1", "2026-03-02", "10:00", 45, model.StatusConfirmed),
		apt("b1", "2026-03-02", "14:00", 30, model.StatusScheduled),
		apt("b1", "2026-03-02", "16:00", 30, model.StatusCancelled),
		apt("b2", "2026-03-02", "10:00", 30, model.StatusConfirmed),
		apt("b1", "2026-03-03", "10:00", 30, model.StatusConfirmed),
	}

	tests := []struct {
		name      string
		time      string
		duration  int
		conflicts int
	}{
		{"overlap inside existing", "10:30", 30, 1},
		{"overlap across start", "09:45", 30, 1},
		{"exact match", "10:00", 45, 1},
		{"adjacent before", "09:30", 30, 0},
		{"adjacent after", "10:45", 30, 0},
		{"cancelled is transparent", "16:00", 30, 0},
		{"other barber same time is free", "10:00", 30, 1}, // only b1's own booking conflicts
		{"free window", "12:00", 30, 0},
		{"spans two bookings", "09:50", 260, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseClock(tt.time)
			assert.NoError(t, err)
			got := Conflicts(existing, "b1", "2026-03-02", start, tt.duration)
			assert.Len(t, got, tt.conflicts)
		})
	}
}

func TestConflicts_CancelledNeverConflicts(t *testing.T) {
	cancelled := []model.Appointment{
		apt("b1", "2026-03-02", "09:00", 540, model.StatusCancelled),
	}
	for m := MinuteOfDay(0); m < minutesPerDay; m += 30 {
		assert.Empty(t, Conflicts(cancelled, "b1", "2026-03-02", m, 30))
	}
}
