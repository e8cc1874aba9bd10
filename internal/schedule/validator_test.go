package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/internal/model"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// mondayHours is a 09:00-18:00 Monday schedule.
var mondayHours = model.WorkingHours{
	"monday": {{Start: "09:00", End: "18:00"}},
}

func newTestValidator(now time.Time) *Validator {
	return NewValidator(Options{Location: time.UTC}, fixedClock{now})
}

// 2026-03-02 is a Monday.
var monday = "2026-03-02"

func TestValidate_FreeSlot(t *testing.T) {
	v := newTestValidator(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))

	result, err := v.Validate(Request{
		BarberID: "b1", ClientID: "c1", Date: monday, Time: "10:00", Duration: 30,
	}, mondayHours, nil, nil)

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_Conflict(t *testing.T) {
	v := newTestValidator(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	existing := []model.Appointment{
		apt("b1", monday, "10:00", 45, model.StatusConfirmed),
	}

	result, err := v.Validate(Request{
		BarberID: "b1", ClientID: "c1", Date: monday, Time: "10:30", Duration: 30,
	}, mondayHours, existing, nil)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "already booked")
}

func TestValidate_LunchBreakRule(t *testing.T) {
	v := newTestValidator(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	rules := []model.ScheduleRule{{
		ID: "r1", Type: model.RuleLunchBreak, BarberID: "b1",
		StartDate: "2026-01-01", StartTime: "12:00", EndTime: "13:00",
		Recurrence: model.RecurDaily, Reason: "lunch", Active: true,
	}}

	result, err := v.Validate(Request{
		BarberID: "b1", ClientID: "c1", Date: monday, Time: "12:15", Duration: 30,
	}, mondayHours, nil, rules)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "lunch break")
}

func TestValidate_MinAdvance(t *testing.T) {
	// One hour before the requested slot.
	v := newTestValidator(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	result, err := v.Validate(Request{
		BarberID: "b1", ClientID: "c1", Date: monday, Time: "10:00", Duration: 30,
	}, mondayHours, nil, nil)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "at least 2 hours in advance")
}

func TestValidate_MaxAdvanceWarning(t *testing.T) {
	v := newTestValidator(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	// 2026-04-06 is a Monday, 35 days out.
	result, err := v.Validate(Request{
		BarberID: "b1", ClientID: "c1", Date: "2026-04-06", Time: "10:00", Duration: 30,
	}, mondayHours, nil, nil)

	require.NoError(t, err)
	assert.True(t, result.Valid, "max advance is advisory, not blocking")
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "30 days")
}

func TestValidate_OutsideWorkingHours(t *testing.T) {
	v := newTestValidator(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		date string
		time string
	}{
		{"day the barber does not work", "2026-03-03", "10:00"}, // Tuesday
		{"before opening", monday, "08:00"},
		{"runs past closing", monday, "17:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate(Request{
				BarberID: "b1", ClientID: "c1", Date: tt.date, Time: tt.time, Duration: 30,
			}, mondayHours, nil, nil)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors[0], "working hours")
		})
	}
}

func TestValidate_AccumulatesAllErrors(t *testing.T) {
	// One hour ahead, over lunch, over a booking: every check reports.
	v := newTestValidator(time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC))
	existing := []model.Appointment{
		apt("b1", monday, "12:00", 60, model.StatusConfirmed),
	}
	rules := []model.ScheduleRule{{
		ID: "r1", Type: model.RuleLunchBreak, BarberID: "b1",
		StartDate: "2026-01-01", StartTime: "12:00", EndTime: "13:00",
		Recurrence: model.RecurDaily, Reason: "lunch", Active: true,
	}}

	result, err := v.Validate(Request{
		BarberID: "b1", ClientID: "c1", Date: monday, Time: "12:30", Duration: 30,
	}, mondayHours, existing, rules)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
}

func TestValidate_MalformedInput(t *testing.T) {
	v := newTestValidator(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		req  Request
	}{
		{"bad time", Request{BarberID: "b1", Date: monday, Time: "9h30", Duration: 30}},
		{"bad date", Request{BarberID: "b1", Date: "02/03/2026", Time: "10:00", Duration: 30}},
		{"zero duration", Request{BarberID: "b1", Date: monday, Time: "10:00", Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.req, mondayHours, nil, nil)
			assert.Error(t, err)
		})
	}
}
