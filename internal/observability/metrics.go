package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_requests_total",
			Help: "Total widget service requests",
		}, []string{"code"},
	)
	Latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "widget_request_duration_seconds",
		Help:    "Request latency seconds",
		Buckets: prometheus.DefBuckets,
	})
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "widget_in_flight",
		Help: "In-flight HTTP requests",
	})
	CampaignFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_campaign_fallbacks_total",
			Help: "Fallback campaigns served by reason",
		}, []string{"reason"},
	)
	TrackingEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_tracking_events_total",
			Help: "Tracking events recorded by type",
		}, []string{"type"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, Latency, InFlight, CampaignFallbacks, TrackingEvents)
}

func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		InFlight.Inc()
		defer InFlight.Dec()

		rr := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rr, r)

		Latency.Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(strconv.Itoa(rr.code)).Inc()
	})
}
