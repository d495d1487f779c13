package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventdesk",
			Name:      "availability_mutation_total",
			Help:      "Count of availability mutations by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	bulkWeekendDates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventdesk",
			Name:      "bulk_weekend_dates_total",
			Help:      "Count of dates touched by bulk weekend updates.",
		},
		[]string{"outcome"},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventdesk",
			Name:      "booking_decision_total",
			Help:      "Count of booking status transitions requested.",
		},
		[]string{"status"},
	)

	apiErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eventdesk",
			Name:      "api_errors_total",
			Help:      "Count of backend errors surfaced to the user.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityMutations, bulkWeekendDates, bookingDecisions, apiErrors)
	})
}

func IncAvailabilityMutation(kind, outcome string) {
	availabilityMutations.WithLabelValues(kind, outcome).Inc()
}

func IncBulkWeekendDate(outcome string) {
	bulkWeekendDates.WithLabelValues(outcome).Inc()
}

func IncBookingDecision(status string) {
	bookingDecisions.WithLabelValues(status).Inc()
}

func IncAPIError() {
	apiErrors.Inc()
}
