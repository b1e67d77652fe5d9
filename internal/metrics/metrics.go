package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EstimatesProcessed *prometheus.CounterVec
	APIErrors          prometheus.Counter
	RequestSeconds     *prometheus.HistogramVec
	ActiveWorkers      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EstimatesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "travel_estimates_processed_total",
			Help: "Total number of processed trip estimate requests.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "travel_remote_api_errors_total",
			Help: "Total number of errors received from the geocoding and routing APIs.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_remote_request_duration_seconds",
			Help:    "Duration of requests to the remote geocoding and routing APIs.",
			Buckets: prometheus.DefBuckets,
		}, []string{"target"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "travel_active_workers",
			Help: "Current number of active workers processing estimates.",
		}),
	}
}
