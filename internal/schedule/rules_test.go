package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barberbook/internal/model"
)

func date(s string) time.Time {
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestActiveRules(t *testing.T) {
	lunch := model.ScheduleRule{
		ID: "r1", Type: model.RuleLunchBreak, BarberID: "b1",
		StartDate: "2026-03-01", StartTime: "12:00", EndTime: "13:00",
		Recurrence: model.RecurDaily, Reason: "lunch", Active: true,
	}

	tests := []struct {
		name     string
		rule     model.ScheduleRule
		barberID string
		date     string
		active   bool
	}{
		{"active daily rule matches", lunch, "b1", "2026-03-10", true},
		{"inactive rule skipped", inactive(lunch), "b1", "2026-03-10", false},
		{"other barber skipped", lunch, "b2", "2026-03-10", false},
		{"before start date", lunch, "b1", "2026-02-28", false},
		{"on start date", lunch, "b1", "2026-03-01", true},
		{
			"after end date",
			withEndDate(lunch, "2026-03-05"), "b1", "2026-03-06", false,
		},
		{
			"on end date",
			withEndDate(lunch, "2026-03-05"), "b1", "2026-03-05", true,
		},
		{
			"shop-wide rule applies to any barber",
			model.ScheduleRule{
				ID: "r2", Type: model.RuleHoliday,
				StartDate: "2026-03-10", EndDate: "2026-03-10",
				Reason: "holiday", Active: true,
			},
			"b7", "2026-03-10", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveRules([]model.ScheduleRule{tt.rule}, tt.barberID, date(tt.date))
			if tt.active {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestActiveRules_Recurrence(t *testing.T) {
	// 2026-03-02 is a Monday.
	base := model.ScheduleRule{
		ID: "r1", Type: model.RuleDayOff, BarberID: "b1",
		StartDate: "2026-03-02", Reason: "weekly day off", Active: true,
	}

	tests := []struct {
		name       string
		recurrence model.Recurrence
		date       string
		active     bool
	}{
		{"weekly matches same weekday", model.RecurWeekly, "2026-03-09", true},
		{"weekly skips other weekdays", model.RecurWeekly, "2026-03-10", false},
		{"monthly matches same day of month", model.RecurMonthly, "2026-04-02", true},
		{"monthly skips other days", model.RecurMonthly, "2026-04-03", false},
		{"yearly matches anniversary", model.RecurYearly, "2027-03-02", true},
		{"yearly skips other dates", model.RecurYearly, "2027-03-03", false},
		{"daily matches every day", model.RecurDaily, "2026-07-19", true},
		{"no recurrence behaves as range containment", model.RecurNone, "2026-03-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := base
			rule.Recurrence = tt.recurrence
			got := ActiveRules([]model.ScheduleRule{rule}, "b1", date(tt.date))
			if tt.active {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestRuleBlocks(t *testing.T) {
	tests := []struct {
		name    string
		rule    model.ScheduleRule
		start   MinuteOfDay
		end     MinuteOfDay
		blocked bool
	}{
		{
			"lunch break blocks overlapping interval",
			model.ScheduleRule{Type: model.RuleLunchBreak, StartTime: "12:00", EndTime: "13:00", Reason: "lunch"},
			735, 765, true, // 12:15-12:45
		},
		{
			"lunch break allows adjacent interval",
			model.ScheduleRule{Type: model.RuleLunchBreak, StartTime: "12:00", EndTime: "13:00", Reason: "lunch"},
			690, 720, false, // 11:30-12:00
		},
		{
			"block_hours blocks overlap",
			model.ScheduleRule{Type: model.RuleBlockHours, StartTime: "15:00", EndTime: "16:00", Reason: "maintenance"},
			930, 960, true, // 15:30-16:00
		},
		{
			"day_off blocks any time",
			model.ScheduleRule{Type: model.RuleDayOff, Reason: "vacation"},
			540, 570, true,
		},
		{
			"holiday blocks any time",
			model.ScheduleRule{Type: model.RuleHoliday, Reason: "carnival"},
			1200, 1230, true,
		},
		{
			"time-bounded rule without window never blocks",
			model.ScheduleRule{Type: model.RuleBlockHours, Reason: "broken"},
			540, 570, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked, reason := RuleBlocks(tt.rule, tt.start, tt.end)
			assert.Equal(t, tt.blocked, blocked)
			if blocked {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func inactive(r model.ScheduleRule) model.ScheduleRule {
	r.Active = false
	return r
}

func withEndDate(r model.ScheduleRule, end string) model.ScheduleRule {
	r.EndDate = end
	return r
}
