package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/metrics"
	"barberbook/internal/model"
	"barberbook/internal/schedule"
)

// BookRequest is the request body for POST /api/appointments.
type BookRequest struct {
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name,omitempty"`
	BarberID    string  `json:"barber_id"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name,omitempty"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// BookResponse reports the booking outcome; on validation failure the
// verdict carries the full reason set.
type BookResponse struct {
	Success     bool                       `json:"success"`
	Appointment *model.Appointment         `json:"appointment,omitempty"`
	Validation  *schedule.ValidationResult `json:"validation,omitempty"`
	Error       string                     `json:"error,omitempty"`
}

// handleBookAppointment validates and books in one request. The validation
// is re-run against the appointments read inside the insert transaction,
// so two concurrent requests for the same slot cannot both succeed.
// POST /api/appointments
func (s *HTTPServer) handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("book")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req BookRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ClientID == "" || req.BarberID == "" || req.ServiceID == "" ||
		req.Date == "" || req.Time == "" || req.Duration <= 0 {
		writeError(w, http.StatusBadRequest,
			"client_id, barber_id, service_id, date, time and duration are required")
		return
	}

	ctx := r.Context()

	// Risk gate before any schedule work.
	restriction, err := s.db.GetActiveRestriction(ctx, req.ClientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load restriction")
		return
	}
	if restriction != nil {
		metrics.IncClientBlock()
		writeJSON(w, http.StatusForbidden, BookResponse{Success: false, Error: restriction.Reason})
		return
	}
	stats, err := s.db.GetClientStats(ctx, req.ClientID, time.Now().Format("2006-01-02"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load client stats")
		return
	}
	if decision := s.policy.ShouldBlockClient(stats); decision.Block {
		metrics.IncClientBlock()
		writeJSON(w, http.StatusForbidden, BookResponse{Success: false, Error: decision.Reason})
		return
	}

	hours, err := s.db.GetWorkingHours(ctx, req.BarberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load working hours")
		return
	}
	rules, err := s.db.ListRules(ctx, req.BarberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load rules")
		return
	}

	candidate := schedule.Request{
		BarberID: req.BarberID,
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
	}

	apt := &model.Appointment{
		ID:          uuid.NewString(),
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Status:      model.StatusScheduled,
		Price:       req.Price,
		Notes:       req.Notes,
	}

	var verdict schedule.ValidationResult
	err = s.db.CreateAppointmentChecked(ctx, apt, func(existing []model.Appointment) error {
		result, err := s.validator.Validate(candidate, hours, existing, rules)
		if err != nil {
			return err
		}
		verdict = result
		metrics.IncValidation(result.Valid)
		if !result.Valid {
			return fmt.Errorf("validation failed")
		}
		return nil
	})
	if err != nil {
		if !verdict.Valid && verdict.Errors != nil {
			writeJSON(w, http.StatusConflict, BookResponse{Success: false, Validation: &verdict})
			return
		}
		s.logger.Error().Err(err).Str("barber_id", req.BarberID).Msg("book appointment failed")
		writeJSON(w, http.StatusInternalServerError, BookResponse{Success: false, Error: "failed to book appointment"})
		return
	}

	s.cache.InvalidateBarberDate(ctx, req.BarberID, req.Date)

	writeJSON(w, http.StatusCreated, BookResponse{
		Success:     true,
		Appointment: apt,
		Validation:  &verdict,
	})
}
