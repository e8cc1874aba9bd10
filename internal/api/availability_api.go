package api

import (
	"net/http"
	"strconv"
	"time"

	"barberbook/internal/metrics"
)

// AvailabilityResponse is the response for GET /api/schedule/availability.
type AvailabilityResponse struct {
	BarberID string   `json:"barber_id"`
	Date     string   `json:"date"`
	Duration int      `json:"duration"`
	Slots    []string `json:"slots"`
}

// handleAvailability lists bookable start times for a barber on a date.
// GET /api/schedule/availability?barberId=&date=&duration=
func (s *HTTPServer) handleAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability")
	metrics.IncSlotRequest()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	barberID := r.URL.Query().Get("barberId")
	date := r.URL.Query().Get("date")
	durationStr := r.URL.Query().Get("duration")
	if barberID == "" || date == "" || durationStr == "" {
		writeError(w, http.StatusBadRequest, "barberId, date and duration are required")
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		writeError(w, http.StatusBadRequest, "duration must be a positive integer")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
		return
	}

	ctx := r.Context()

	if slots, ok := s.cache.GetSlots(ctx, barberID, date, duration); ok {
		writeJSON(w, http.StatusOK, AvailabilityResponse{
			BarberID: barberID, Date: date, Duration: duration, Slots: slots,
		})
		return
	}

	hours, err := s.db.GetWorkingHours(ctx, barberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load working hours")
		return
	}
	appointments, err := s.db.ListAppointmentsByBarberDate(ctx, barberID, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load appointments")
		return
	}
	rules, err := s.db.ListRules(ctx, barberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load rules")
		return
	}

	slots, err := s.slots.AvailableSlots(barberID, date, duration, hours, appointments, rules)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if slots == nil {
		slots = []string{}
	}

	s.cache.SetSlots(ctx, barberID, date, duration, slots)

	writeJSON(w, http.StatusOK, AvailabilityResponse{
		BarberID: barberID, Date: date, Duration: duration, Slots: slots,
	})
}
