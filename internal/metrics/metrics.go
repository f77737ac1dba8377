package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationDropped = "dropped"
)

// Recorder holds the service instruments. A nil *Recorder records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	ordersCreated   *prometheus.CounterVec
	statusUpdates   *prometheus.CounterVec
	pricingRequests prometheus.Counter
	notifications   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Recorder with its own registry, so several instances can
// coexist in tests.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laundry_orders_created_total",
			Help: "Orders persisted, by order type.",
		}, []string{"order_type"}),
		statusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laundry_order_status_updates_total",
			Help: "Order status changes, by new status.",
		}, []string{"status"}),
		pricingRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "laundry_pricing_requests_total",
			Help: "Pricing computations, estimates and submissions alike.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "laundry_notifications_total",
			Help: "Order notifications, by outcome.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "laundry_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.ordersCreated,
		r.statusUpdates,
		r.pricingRequests,
		r.notifications,
		r.requestDuration,
	)

	return r
}

func (r *Recorder) OrderCreated(orderType string) {
	if r == nil {
		return
	}
	r.ordersCreated.WithLabelValues(orderType).Inc()
}

func (r *Recorder) StatusUpdated(status string) {
	if r == nil {
		return
	}
	r.statusUpdates.WithLabelValues(status).Inc()
}

func (r *Recorder) PricingRequested() {
	if r == nil {
		return
	}
	r.pricingRequests.Inc()
}

// Notification counts one notification outcome: sent, failed or dropped.
func (r *Recorder) Notification(result string) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware observes request latency labelled with the matched chi route
// pattern, which keeps order ids out of the label set.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	if r == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		r.requestDuration.
			WithLabelValues(req.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
