package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"barberbook/internal/metrics"
	"barberbook/internal/model"
)

// CanBookResponse is the response for the can-book check.
type CanBookResponse struct {
	CanBook bool   `json:"can_book"`
	Reason  string `json:"reason,omitempty"`
}

// handleCreateRestriction stores a manual booking block for a client.
// POST /api/schedule/restrictions
func (s *HTTPServer) handleCreateRestriction(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("restrictions")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var restriction model.ClientRestriction
	if err := json.NewDecoder(r.Body).Decode(&restriction); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if restriction.ClientID == "" || restriction.Reason == "" {
		writeError(w, http.StatusBadRequest, "client_id and reason are required")
		return
	}
	restriction.Active = true

	if err := s.db.UpsertRestriction(r.Context(), &restriction); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store restriction")
		return
	}
	writeJSON(w, http.StatusCreated, restriction)
}

// handleClientRestriction serves per-client restriction routes:
// GET    /api/schedule/restrictions/client/{id}
// DELETE /api/schedule/restrictions/client/{id}
// GET    /api/schedule/restrictions/client/{id}/can-book
func (s *HTTPServer) handleClientRestriction(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("restrictions")

	rest := strings.TrimPrefix(r.URL.Path, "/api/schedule/restrictions/client/")
	clientID, canBook := strings.CutSuffix(rest, "/can-book")
	clientID = strings.TrimSuffix(clientID, "/")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "client id is required")
		return
	}

	if canBook {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.respondCanBook(w, r, clientID)
		return
	}

	switch r.Method {
	case http.MethodGet:
		restriction, err := s.db.GetActiveRestriction(r.Context(), clientID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load restriction")
			return
		}
		restrictions := []model.ClientRestriction{}
		if restriction != nil {
			restrictions = append(restrictions, *restriction)
		}
		writeJSON(w, http.StatusOK, restrictions)

	case http.MethodDelete:
		if err := s.db.RemoveRestriction(r.Context(), clientID); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to remove restriction")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// respondCanBook combines stored restrictions with the live risk policy.
func (s *HTTPServer) respondCanBook(w http.ResponseWriter, r *http.Request, clientID string) {
	ctx := r.Context()

	restriction, err := s.db.GetActiveRestriction(ctx, clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load restriction")
		return
	}
	if restriction != nil {
		metrics.IncClientBlock()
		writeJSON(w, http.StatusOK, CanBookResponse{CanBook: false, Reason: restriction.Reason})
		return
	}

	today := time.Now().Format("2006-01-02")
	stats, err := s.db.GetClientStats(ctx, clientID, today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load client stats")
		return
	}

	decision := s.policy.ShouldBlockClient(stats)
	if decision.Block {
		metrics.IncClientBlock()
		writeJSON(w, http.StatusOK, CanBookResponse{CanBook: false, Reason: decision.Reason})
		return
	}
	writeJSON(w, http.StatusOK, CanBookResponse{CanBook: true})
}
