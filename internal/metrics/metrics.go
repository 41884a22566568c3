package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "availability_requests_total",
			Help:      "Count of availability queries served.",
		},
	)

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by initial status.",
		},
		[]string{"status"},
	)

	bookingTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "booking_transition_total",
			Help:      "Count of booking status transitions by target status.",
		},
		[]string{"status"},
	)

	bookingRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "booking_rejected_total",
			Help:      "Count of booking requests rejected by the slot validator.",
		},
	)

	remindersSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "reminders_sent_total",
			Help:      "Count of reminder emails dispatched.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			availabilityRequests,
			bookingCreated,
			bookingTransition,
			bookingRejected,
			remindersSent,
		)
	})
}

func IncAvailabilityRequests() {
	availabilityRequests.Inc()
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingTransition(status string) {
	bookingTransition.WithLabelValues(status).Inc()
}

func IncBookingRejected() {
	bookingRejected.Inc()
}

func IncReminderSent() {
	remindersSent.Inc()
}
