package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	r := New()

	r.OrderCreated("guest")
	r.OrderCreated("guest")
	r.OrderCreated("user")
	r.StatusUpdated("ready")
	r.PricingRequested()
	r.Notification(NotificationDropped)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ordersCreated.WithLabelValues("guest")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ordersCreated.WithLabelValues("user")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.statusUpdates.WithLabelValues("ready")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.pricingRequests))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notifications.WithLabelValues(NotificationDropped)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.notifications.WithLabelValues(NotificationSent)))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.OrderCreated("user")
		r.StatusUpdated("pending")
		r.PricingRequested()
		r.Notification(NotificationSent)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	assert.NotNil(t, r.Middleware(next))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := New()

	router := chi.NewRouter()
	router.Use(r.Middleware)
	router.Get("/api/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Handle("/metrics", r.Handler())

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/orders/0b6f2a48")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, testutil.CollectAndCount(r.requestDuration))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := new(strings.Builder)
	_, err = io.Copy(body, resp.Body)
	require.NoError(t, err)

	assert.Contains(t, body.String(), `route="/api/orders/{id}"`)
	assert.Contains(t, body.String(), `code="404"`)
	assert.NotContains(t, body.String(), "0b6f2a48")
}
