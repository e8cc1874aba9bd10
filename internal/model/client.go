package model

import "time"

// ClientStats aggregates a client's booking history counters.
type ClientStats struct {
	NoShows               int `json:"no_shows"`
	CancelledAppointments int `json:"cancelled_appointments"`
	TotalAppointments     int `json:"total_appointments"`
}

// ClientRestriction is a stored booking block for a client.
type ClientRestriction struct {
	ClientID  string    `json:"client_id"`
	Reason    string    `json:"reason"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
