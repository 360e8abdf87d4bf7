package trip

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"travix/models"
)

// Metrics records turn outcomes and collaborator latency. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	turns    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travix_trip_turns_total",
				Help: "Total number of processed trip turns by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "travix_collaborator_duration_seconds",
				Help:    "Duration of calls to external collaborators",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collaborator"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travix_collaborator_errors_total",
				Help: "Total number of failed collaborator calls",
			},
			[]string{"collaborator"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.turns, m.duration, m.failures)
	}
	return m
}

func (m *Metrics) observeTurn(res *models.TurnResult) {
	if m == nil || res == nil {
		return
	}
	m.turns.WithLabelValues(turnOutcome(res)).Inc()
}

// track times one collaborator call; call the returned func with the call's error.
func (m *Metrics) track(collaborator string) func(error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		m.duration.WithLabelValues(collaborator).Observe(time.Since(start).Seconds())
		if err != nil {
			m.failures.WithLabelValues(collaborator).Inc()
		}
	}
}

func turnOutcome(res *models.TurnResult) string {
	switch {
	case res.Ask != "":
		return "ask"
	case res.Data != nil && res.Data.Booking != nil && res.Data.Booking.Success:
		return "booked"
	case res.Data != nil && res.Data.Plan != nil:
		return "plan"
	case res.Data != nil:
		return "options"
	case !res.Success:
		return "failed"
	}
	return "reply"
}
