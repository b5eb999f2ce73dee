package providers

import (
	"net/http"
	"time"
)

type metricsRoundTripper struct {
	metrics MetricsProviderInterface
	next    http.RoundTripper
}

func (rt *metricsRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.next.RoundTrip(r)

	status := 0
	if err == nil {
		status = resp.StatusCode
	}
	endpoint := r.URL.Path
	rt.metrics.IncRequestsTotal(endpoint, status)
	rt.metrics.ObserveRequestDuration(endpoint, time.Since(start))
	return resp, err
}

// MetricsMiddleware instruments outbound requests. A transport error is counted
// under the "error" status bucket.
func MetricsMiddleware(metrics MetricsProviderInterface, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &metricsRoundTripper{metrics: metrics, next: next}
}
