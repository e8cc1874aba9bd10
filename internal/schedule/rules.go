package schedule

import (
	"fmt"
	"time"

	"barberbook/internal/model"
)

const dateLayout = "2006-01-02"

// ActiveRules filters rules down to those in effect for the barber on the
// given date. A rule with no barber scope applies to every barber.
func ActiveRules(rules []model.ScheduleRule, barberID string, date time.Time) []model.ScheduleRule {
	var active []model.ScheduleRule
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if rule.BarberID != "" && rule.BarberID != barberID {
			continue
		}

		start, err := time.ParseInLocation(dateLayout, rule.StartDate, date.Location())
		if err != nil {
			continue
		}
		day := truncateToDay(date)
		if day.Before(start) {
			continue
		}
		if rule.EndDate != "" {
			end, err := time.ParseInLocation(dateLayout, rule.EndDate, date.Location())
			if err != nil {
				continue
			}
			if day.After(end) {
				continue
			}
		}
		if !recurrenceMatches(rule, start, day) {
			continue
		}

		active = append(active, rule)
	}
	return active
}

// recurrenceMatches evaluates the rule's recurrence pattern against a date
// already known to fall within the rule's start/end bounds.
func recurrenceMatches(rule model.ScheduleRule, start, day time.Time) bool {
	switch rule.Recurrence {
	case model.RecurDaily:
		return true
	case model.RecurWeekly:
		return day.Weekday() == start.Weekday()
	case model.RecurMonthly:
		return day.Day() == start.Day()
	case model.RecurYearly:
		return day.Month() == start.Month() && day.Day() == start.Day()
	default:
		// No recurrence: plain date-range containment.
		return true
	}
}

// RuleBlocks reports whether an active rule blocks the candidate interval
// [start,end) and, if so, returns the reason to surface to the caller.
func RuleBlocks(rule model.ScheduleRule, start, end MinuteOfDay) (bool, string) {
	if rule.WholeDay() {
		switch rule.Type {
		case model.RuleHoliday:
			return true, fmt.Sprintf("holiday: %s", rule.Reason)
		default:
			return true, fmt.Sprintf("barber unavailable this day: %s", rule.Reason)
		}
	}

	if rule.StartTime == "" || rule.EndTime == "" {
		return false, ""
	}
	ruleStart, err := ParseClock(rule.StartTime)
	if err != nil {
		return false, ""
	}
	ruleEnd, err := ParseClock(rule.EndTime)
	if err != nil {
		return false, ""
	}

	if !overlaps(start, end, ruleStart, ruleEnd) {
		return false, ""
	}

	if rule.Type == model.RuleLunchBreak {
		return true, fmt.Sprintf("lunch break: %s - %s", rule.StartTime, rule.EndTime)
	}
	return true, fmt.Sprintf("blocked hours %s - %s: %s", rule.StartTime, rule.EndTime, rule.Reason)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
