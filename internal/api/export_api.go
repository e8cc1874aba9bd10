package api

import (
	"fmt"
	"net/http"
	"time"

	"barberbook/internal/export"
	"barberbook/internal/metrics"
)

// handleExport streams a barber's day schedule as an Excel workbook.
// GET /api/schedule/export?barberId=&date=
func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	barberID := r.URL.Query().Get("barberId")
	date := r.URL.Query().Get("date")
	if barberID == "" || date == "" {
		writeError(w, http.StatusBadRequest, "barberId and date are required")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
		return
	}

	ctx := r.Context()

	barber, err := s.db.GetBarber(ctx, barberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load barber")
		return
	}
	if barber == nil {
		writeError(w, http.StatusNotFound, "barber not found")
		return
	}

	appointments, err := s.db.ListAppointmentsByBarberDate(ctx, barberID, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load appointments")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=schedule-%s-%s.xlsx", barberID, date))

	if err := export.WriteDaySchedule(w, barber.Name, date, appointments); err != nil {
		s.logger.Error().Err(err).Msg("export day schedule failed")
	}
}
