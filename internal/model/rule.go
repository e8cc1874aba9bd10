package model

import "time"

// RuleType classifies a schedule rule.
type RuleType string

const (
	RuleBlockHours RuleType = "block_hours"
	RuleLunchBreak RuleType = "lunch_break"
	RuleDayOff     RuleType = "day_off"
	RuleHoliday    RuleType = "holiday"
)

// Recurrence describes how a rule repeats over its date range.
type Recurrence string

const (
	RecurNone    Recurrence = ""
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurYearly  Recurrence = "yearly"
)

// ScheduleRule blocks booking windows for one barber or the whole shop.
// An empty BarberID applies the rule to every barber. Day-off and holiday
// rules block the whole date; the time window is only read for
// block_hours and lunch_break.
type ScheduleRule struct {
	ID         string     `json:"id"`
	Type       RuleType   `json:"type"`
	BarberID   string     `json:"barber_id,omitempty"`
	StartDate  string     `json:"start_date"`           // "2006-01-02"
	EndDate    string     `json:"end_date,omitempty"`   // "2006-01-02", open-ended when empty
	StartTime  string     `json:"start_time,omitempty"` // "15:04"
	EndTime    string     `json:"end_time,omitempty"`   // "15:04"
	Recurrence Recurrence `json:"recurrence,omitempty"`
	Reason     string     `json:"reason"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// WholeDay reports whether the rule blocks the entire date.
func (r *ScheduleRule) WholeDay() bool {
	return r.Type == RuleDayOff || r.Type == RuleHoliday
}
