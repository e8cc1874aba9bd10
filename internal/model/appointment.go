package model

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment is a booked service slot for a client with a barber.
type Appointment struct {
	ID          string            `json:"id"`
	ClientID    string            `json:"client_id"`
	ClientName  string            `json:"client_name,omitempty"`
	BarberID    string            `json:"barber_id"`
	BarberName  string            `json:"barber_name,omitempty"`
	ServiceID   string            `json:"service_id"`
	ServiceName string            `json:"service_name,omitempty"`
	Date        string            `json:"date"`     // "2006-01-02"
	Time        string            `json:"time"`     // "15:04"
	Duration    int               `json:"duration"` // minutes
	Status      AppointmentStatus `json:"status"`
	Price       float64           `json:"price,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// StartsAt combines Date and Time into a time.Time in the given location.
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, loc)
}
