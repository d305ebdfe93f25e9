package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	cartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Cart mutations by operation.",
		},
		[]string{"operation"},
	)

	cartItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Total quantity currently in the cart.",
		},
	)

	checkoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_checkouts_total",
			Help: "Confirmed checkouts.",
		},
	)

	checkoutAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_checkout_amount_dollars",
			Help:    "Cart total at checkout.",
			Buckets: []float64{25, 50, 100, 250, 500, 1000, 2500},
		},
	)

	filterResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_filter_results",
			Help:    "Number of products in a recomputed catalog view.",
			Buckets: prometheus.LinearBuckets(0, 2, 8),
		},
	)
)

const (
	OpAdd            = "add"
	OpRemove         = "remove"
	OpUpdateQuantity = "update_quantity"
	OpClear          = "clear"
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordCartOperation(operation string, totalItems int) {
	cartOperationsTotal.WithLabelValues(operation).Inc()
	cartItems.Set(float64(totalItems))
}

func RecordCheckout(total float64) {
	checkoutsTotal.Inc()
	checkoutAmount.Observe(total)
	cartItems.Set(0)
}

func ObserveFilterResults(count int) {
	filterResults.Observe(float64(count))
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			// r.Pattern is only set once the mux has routed the request
			pathPattern := r.Pattern
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
