package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	validations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "validation_total",
			Help:      "Count of appointment validations by result.",
		},
		[]string{"result"},
	)

	slotRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "slot_requests_total",
			Help:      "Count of availability requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "http_requests_total",
			Help:      "Count of HTTP API requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	autoCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "auto_cancelled_total",
			Help:      "Count of appointments cancelled by the sweeper.",
		},
	)

	clientBlocks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barberbook",
			Name:      "client_blocks_total",
			Help:      "Count of bookings refused by the client risk policy.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(validations, slotRequests, httpRequests, autoCancelled, clientBlocks)
	})
}

func IncValidation(valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	validations.WithLabelValues(result).Inc()
}

func IncSlotRequest() { slotRequests.Inc() }

func IncHTTP(endpoint string) { httpRequests.WithLabelValues(endpoint).Inc() }

func IncAutoCancelled() { autoCancelled.Inc() }

func IncClientBlock() { clientBlocks.Inc() }
