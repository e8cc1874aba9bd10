package schedule

import (
	"time"

	"barberbook/internal/model"
)

// DefaultSlotStep is the slot granularity in minutes. It is fixed
// independently of service duration, so a 45-minute service is still
// offered on the half hour.
const DefaultSlotStep = 30

// Generator produces bookable start times for a barber's day.
type Generator struct {
	validator *Validator
	step      MinuteOfDay
}

// NewGenerator creates a slot generator. A non-positive step falls back to
// DefaultSlotStep.
func NewGenerator(validator *Validator, stepMinutes int) *Generator {
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotStep
	}
	return &Generator{validator: validator, step: MinuteOfDay(stepMinutes)}
}

// AvailableSlots walks the barber's shifts for the date in fixed steps and
// returns every "HH:mm" start time that validates for the given duration,
// in ascending order. Unknown barbers or empty working hours yield no
// slots rather than an error.
func (g *Generator) AvailableSlots(
	barberID, date string,
	duration int,
	hours model.WorkingHours,
	appointments []model.Appointment,
	rules []model.ScheduleRule,
) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, g.validator.loc)
	if err != nil {
		return nil, err
	}

	var slots []string
	for _, shift := range hours.ForDate(day) {
		shiftStart, err := ParseClock(shift.Start)
		if err != nil {
			continue
		}
		shiftEnd, err := ParseClock(shift.End)
		if err != nil {
			continue
		}

		for cursor := shiftStart; cursor+MinuteOfDay(duration) <= shiftEnd; cursor += g.step {
			req := Request{
				BarberID: barberID,
				Date:     date,
				Time:     cursor.Clock(),
				Duration: duration,
			}
			result, err := g.validator.Validate(req, hours, appointments, rules)
			if err != nil {
				return nil, err
			}
			if result.Valid {
				slots = append(slots, req.Time)
			}
		}
	}
	return slots, nil
}
