package vendors

import (
	"time"

	"github.com/hotbound-ai/hotbound/internal/metrics"
)

// Observe records one outbound vendor call in Prometheus.
func Observe(vendor, op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.VendorRequestsTotal.WithLabelValues(vendor, op, status).Inc()
	metrics.VendorRequestDuration.WithLabelValues(vendor, op).Observe(time.Since(start).Seconds())
}
