package api

import (
	"encoding/json"
	"net/http"

	"barberbook/internal/metrics"
	"barberbook/internal/schedule"
)

// ValidateRequest is the request body for POST /api/schedule/validate.
type ValidateRequest struct {
	BarberID string `json:"barber_id"`
	ClientID string `json:"client_id"`
	Date     string `json:"date"`     // YYYY-MM-DD
	Time     string `json:"time"`     // HH:mm
	Duration int    `json:"duration"` // minutes
}

// handleValidate checks a candidate appointment against working hours,
// conflicts, rules and booking-window policy.
// POST /api/schedule/validate
func (s *HTTPServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("validate")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req ValidateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.BarberID == "" || req.Date == "" || req.Time == "" || req.Duration <= 0 {
		writeError(w, http.StatusBadRequest, "barber_id, date, time and duration are required")
		return
	}

	result, err := s.validateCandidate(r, schedule.Request{
		BarberID: req.BarberID,
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.IncValidation(result.Valid)
	writeJSON(w, http.StatusOK, result)
}

// validateCandidate loads the barber's hours, appointments and rules and
// runs the validator. A missing barber yields a plain validation failure
// rather than an error, keeping slot listings total.
func (s *HTTPServer) validateCandidate(r *http.Request, req schedule.Request) (schedule.ValidationResult, error) {
	ctx := r.Context()

	hours, err := s.db.GetWorkingHours(ctx, req.BarberID)
	if err != nil {
		return schedule.ValidationResult{}, err
	}
	appointments, err := s.db.ListAppointmentsByBarberDate(ctx, req.BarberID, req.Date)
	if err != nil {
		return schedule.ValidationResult{}, err
	}
	rules, err := s.db.ListRules(ctx, req.BarberID)
	if err != nil {
		return schedule.ValidationResult{}, err
	}

	return s.validator.Validate(req, hours, appointments, rules)
}
