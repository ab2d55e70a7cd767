package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "camp", Name: "qualification_transitions_total",
		Help: "Qualification transitions by action and outcome",
	}, []string{"action", "outcome"})
	ProfileViews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "camp", Name: "profile_views_total",
		Help: "Assembled profile views by viewer kind",
	}, []string{"viewer"})
	ProfileAssembly = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "camp", Name: "profile_assembly_seconds",
		Help:    "Time spent loading and assembling a profile",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Transitions, ProfileViews, ProfileAssembly)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveTransition(action, outcome string) {
	Transitions.WithLabelValues(action, outcome).Inc()
}

func ObserveProfile(viewer string, d time.Duration) {
	ProfileViews.WithLabelValues(viewer).Inc()
	ProfileAssembly.Observe(d.Seconds())
}
