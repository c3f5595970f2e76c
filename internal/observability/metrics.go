// Package observability holds the prometheus collectors for the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})
	unregistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})
	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Name:      "rejections_total",
		Help:      "Number of rejected signup/unregister attempts by reason.",
	}, []string{"reason"})
	rosterActivities = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activities",
		Name:      "roster_size",
		Help:      "Number of activities in the roster.",
	})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rejectionsTotal, rosterActivities)
}

// RecordSignup increments the successful-signup counter.
func RecordSignup() {
	signupsTotal.Inc()
}

// RecordUnregistration increments the successful-unregistration counter.
func RecordUnregistration() {
	unregistrationsTotal.Inc()
}

// RecordRejection counts a rejected attempt under the given reason.
func RecordRejection(reason string) {
	rejectionsTotal.WithLabelValues(reason).Inc()
}

// SetRosterSize updates the roster-size gauge.
func SetRosterSize(n int) {
	rosterActivities.Set(float64(n))
}
