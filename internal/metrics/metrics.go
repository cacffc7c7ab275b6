package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's Prometheus collectors behind one handler.
type Registry struct {
	reg *prometheus.Registry

	PredictionsTotal  *prometheus.CounterVec
	PredictionLatency prometheus.Histogram
	BatchesTotal      prometheus.Counter
	BatchItemsFailed  prometheus.Counter

	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// NewRegistry creates and registers all collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "damagecast_predictions_total",
		Help: "Predictions served, by risk category",
	}, []string{"risk_category"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "damagecast_prediction_latency_seconds",
		Help:    "Single prediction pipeline latency",
		Buckets: prometheus.DefBuckets,
	})
	batches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "damagecast_batches_total",
		Help: "Batch prediction requests served",
	})
	batchFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "damagecast_batch_items_failed_total",
		Help: "Batch items that produced an error record",
	})

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "damagecast_http_requests_total",
		Help: "HTTP requests, by method, route and status",
	}, []string{"method", "path", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "damagecast_http_request_duration_seconds",
		Help:    "HTTP request duration, by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	r.MustRegister(predictions, latency, batches, batchFailed, httpRequests, httpDuration)

	return &Registry{
		reg:               r,
		PredictionsTotal:  predictions,
		PredictionLatency: latency,
		BatchesTotal:      batches,
		BatchItemsFailed:  batchFailed,
		HTTPRequestsTotal: httpRequests,
		HTTPDuration:      httpDuration,
	}
}

// Handler exposes the registry in Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
