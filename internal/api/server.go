// Package api exposes the scheduling engine over HTTP for the booking UI.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"barberbook/internal/cache"
	"barberbook/internal/db"
	"barberbook/internal/risk"
	"barberbook/internal/schedule"
)

// HTTPServer serves the scheduling API.
type HTTPServer struct {
	db        *db.DB
	validator *schedule.Validator
	slots     *schedule.Generator
	policy    risk.Policy
	cache     *cache.AvailabilityCache
	limiter   *rate.Limiter
	logger    *zerolog.Logger
	server    *http.Server
}

// Options configures the HTTP server.
type Options struct {
	Port         int
	RateLimitRPS int
}

// NewHTTPServer wires routes and middleware.
func NewHTTPServer(
	opts Options,
	database *db.DB,
	validator *schedule.Validator,
	slots *schedule.Generator,
	policy risk.Policy,
	availCache *cache.AvailabilityCache,
	logger *zerolog.Logger,
) *HTTPServer {
	s := &HTTPServer{
		db:        database,
		validator: validator,
		slots:     slots,
		policy:    policy,
		cache:     availCache,
		logger:    logger,
	}

	if opts.RateLimitRPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitRPS*2)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule/validate", s.handleValidate)
	mux.HandleFunc("/api/schedule/availability", s.handleAvailability)
	mux.HandleFunc("/api/schedule/rules", s.handleRules)
	mux.HandleFunc("/api/schedule/rules/", s.handleRuleByID)
	mux.HandleFunc("/api/schedule/restrictions", s.handleCreateRestriction)
	mux.HandleFunc("/api/schedule/restrictions/client/", s.handleClientRestriction)
	mux.HandleFunc("/api/schedule/export", s.handleExport)
	mux.HandleFunc("/api/appointments", s.handleBookAppointment)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: s.rateLimited(mux),
	}
	return s
}

// ListenAndServe starts the server and blocks until it stops.
func (s *HTTPServer) ListenAndServe() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("scheduling API listening")
	return s.server.ListenAndServe()
}

// Handler returns the configured handler, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Shutdown stops the server gracefully.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
