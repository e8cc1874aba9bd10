package schedule

import (
	"testing"
	"time"

	"barberbook/internal/model"
)

func TestAvailableSlots(t *testing.T) {
	now := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	hours := model.WorkingHours{
		"monday": {{Start: "09:00", End: "12:00"}},
	}

	tests := []struct {
		name         string
		duration     int
		appointments []model.Appointment
		rules        []model.ScheduleRule
		expected     []string
	}{
		{
			name:     "empty day",
			duration: 30,
			expected: []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "booking removes overlapping starts",
			duration: 30,
			appointments: []model.Appointment{
				apt("b1", "2026-03-02", "10:00", 30, model.StatusConfirmed),
			},
			expected: []string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		},
		{
			name:     "cancelled booking frees the slot",
			duration: 30,
			appointments: []model.Appointment{
				apt("b1", "2026-03-02", "10:00", 30, model.StatusCancelled),
			},
			expected: []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "long service trims the tail",
			duration: 90,
			expected: []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "lunch rule blocks the window",
			duration: 30,
			rules: []model.ScheduleRule{{
				ID: "r1", Type: model.RuleLunchBreak, BarberID: "b1",
				StartDate: "2026-01-01", StartTime: "10:00", EndTime: "11:00",
				Recurrence: model.RecurDaily, Reason: "lunch", Active: true,
			}},
			expected: []string{"09:00", "09:30", "11:00", "11:30"},
		},
		{
			name:     "day off yields nothing",
			duration: 30,
			rules: []model.ScheduleRule{{
				ID: "r2", Type: model.RuleDayOff, BarberID: "b1",
				StartDate: "2026-03-02", EndDate: "2026-03-02",
				Reason: "vacation", Active: true,
			}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(NewValidator(Options{Location: time.UTC}, fixedClock{now}), 30)

			slots, err := g.AvailableSlots("b1", "2026-03-02", tt.duration, hours, tt.appointments, tt.rules)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(slots) != len(tt.expected) {
				t.Fatalf("expected %d slots, got %d: %v", len(tt.expected), len(slots), slots)
			}
			for i, s := range slots {
				if s != tt.expected[i] {
					t.Errorf("slot %d: expected %s, got %s", i, tt.expected[i], s)
				}
			}
		})
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	hours := model.WorkingHours{"monday": {{Start: "09:00", End: "18:00"}}}
	appointments := []model.Appointment{
		apt("b1", "2026-03-02", "10:00", 45, model.StatusConfirmed),
	}

	g := NewGenerator(NewValidator(Options{Location: time.UTC}, fixedClock{now}), 30)

	first, err := g.AvailableSlots("b1", "2026-03-02", 30, hours, appointments, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.AvailableSlots("b1", "2026-03-02", 30, hours, appointments, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected identical output, got %d then %d slots", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestAvailableSlots_NoWorkingHours(t *testing.T) {
	now := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	g := NewGenerator(NewValidator(Options{Location: time.UTC}, fixedClock{now}), 30)

	slots, err := g.AvailableSlots("unknown", "2026-03-02", 30, model.WorkingHours{}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for a barber without working hours, got %v", slots)
	}
}

func TestAvailableSlots_MultipleShifts(t *testing.T) {
	now := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	hours := model.WorkingHours{
		"monday": {
			{Start: "09:00", End: "11:00"},
			{Start: "14:00", End: "16:00"},
		},
	}

	g := NewGenerator(NewValidator(Options{Location: time.UTC}, fixedClock{now}), 30)
	slots, err := g.AvailableSlots("b1", "2026-03-02", 60, hours, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"09:00", "09:30", "10:00", "14:00", "14:30", "15:00"}
	if len(slots) != len(expected) {
		t.Fatalf("expected %d slots, got %d: %v", len(expected), len(slots), slots)
	}
	for i, s := range slots {
		if s != expected[i] {
			t.Errorf("slot %d: expected %s, got %s", i, expected[i], s)
		}
	}
}
