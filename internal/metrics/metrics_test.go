package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsOperationsByResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, "gym")

	c.Operation("cancel", "ok")
	c.Operation("cancel", "cancel_window_closed")
	c.Operation("cancel", "ok")
	c.OverlapDetected()
	c.CacheLookup(true)
	c.ObserveRequest("GET", "/api/appointments", 200, 15*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(c.transitions.WithLabelValues("cancel", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("cancel", "cancel_window_closed")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.overlaps))
	require.Equal(t, 1.0, testutil.ToFloat64(c.cache.WithLabelValues("hit")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/appointments", "200")))
}
