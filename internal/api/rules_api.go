package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"barberbook/internal/metrics"
	"barberbook/internal/model"
)

// handleRules lists or creates schedule rules.
// GET /api/schedule/rules?barberId=  |  POST /api/schedule/rules
func (s *HTTPServer) handleRules(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("rules")

	switch r.Method {
	case http.MethodGet:
		rules, err := s.db.ListRules(r.Context(), r.URL.Query().Get("barberId"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load rules")
			return
		}
		if rules == nil {
			rules = []model.ScheduleRule{}
		}
		writeJSON(w, http.StatusOK, rules)

	case http.MethodPost:
		var rule model.ScheduleRule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := validateRule(&rule); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		rule.ID = uuid.NewString()
		if err := s.db.CreateRule(r.Context(), &rule); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create rule")
			return
		}
		s.invalidateForRule(r, &rule)
		writeJSON(w, http.StatusCreated, rule)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleRuleByID updates or deletes a single rule.
// PUT/DELETE /api/schedule/rules/{id}
func (s *HTTPServer) handleRuleByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("rules")

	id := strings.TrimPrefix(r.URL.Path, "/api/schedule/rules/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "rule id is required")
		return
	}

	switch r.Method {
	case http.MethodPut:
		existing, err := s.db.GetRule(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load rule")
			return
		}
		if existing == nil {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}

		var rule model.ScheduleRule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		rule.ID = id
		if err := validateRule(&rule); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.db.UpdateRule(r.Context(), &rule); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to update rule")
			return
		}
		s.invalidateForRule(r, &rule)
		writeJSON(w, http.StatusOK, rule)

	case http.MethodDelete:
		rule, err := s.db.GetRule(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load rule")
			return
		}
		if rule == nil {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		if err := s.db.DeleteRule(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to delete rule")
			return
		}
		s.invalidateForRule(r, rule)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func validateRule(rule *model.ScheduleRule) error {
	switch rule.Type {
	case model.RuleBlockHours, model.RuleLunchBreak:
		if rule.StartTime == "" || rule.EndTime == "" {
			return errMissingWindow
		}
	case model.RuleDayOff, model.RuleHoliday:
	default:
		return errUnknownRuleType
	}
	if rule.StartDate == "" {
		return errMissingStartDate
	}
	return nil
}

var (
	errMissingWindow    = jsonError("start_time and end_time are required for time-bounded rules")
	errUnknownRuleType  = jsonError("unknown rule type")
	errMissingStartDate = jsonError("start_date is required")
)

type jsonError string

func (e jsonError) Error() string { return string(e) }

// invalidateForRule drops cached availability affected by a rule change.
func (s *HTTPServer) invalidateForRule(r *http.Request, rule *model.ScheduleRule) {
	if rule.BarberID == "" {
		s.cache.InvalidateAll(r.Context())
		return
	}
	// Date range is open-ended; drop everything for the barber.
	s.cache.InvalidateBarberDate(r.Context(), rule.BarberID, "*")
}
