package model

import (
	"strings"
	"time"
)

// TimeRange is a single working shift, both bounds as "HH:mm".
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkingHours maps lowercase weekday names ("monday".."sunday") to the
// barber's shifts for that day. A missing or empty entry means the barber
// does not work that day.
type WorkingHours map[string][]TimeRange

// ForDate returns the shifts for the weekday of the given date.
func (wh WorkingHours) ForDate(date time.Time) []TimeRange {
	return wh[strings.ToLower(date.Weekday().String())]
}

// Barber is a staff member clients book appointments with.
type Barber struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Specialties  []string     `json:"specialties,omitempty"`
	WorkingHours WorkingHours `json:"working_hours"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Service is a bookable offering with a fixed duration.
type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // minutes
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Active   bool    `json:"active"`
}
