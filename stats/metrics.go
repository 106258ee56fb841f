package stats

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rowflow",
		Subsystem: "log",
		Name:      "sessions_logged_total",
		Help:      "Number of sessions logged through the web form, by session type.",
	}, []string{"session_type"})

	queriesServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rowflow",
		Subsystem: "api",
		Name:      "queries_total",
		Help:      "Number of aggregation queries served, by endpoint.",
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(sessionsLogged, queriesServed)
}
