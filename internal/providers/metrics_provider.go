package providers

import (
	"pvc/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncRoundTrips(mode, outcome string)
	IncLedgerWrites()
	IncLedgerErrors(op string)
	IncEventsTotal(event string)
	WriteTextfile() error
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	roundTrips      *prometheus.CounterVec
	ledgerWrites    prometheus.Counter
	ledgerErrors    *prometheus.CounterVec
	eventsTotal     *prometheus.CounterVec
	textfile        string
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncRoundTrips(mode, outcome string) {
	m.roundTrips.WithLabelValues(mode, outcome).Inc()
}

func (m *MetricsProvider) IncLedgerWrites() {
	m.ledgerWrites.Inc()
}

func (m *MetricsProvider) IncLedgerErrors(op string) {
	m.ledgerErrors.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncEventsTotal(event string) {
	m.eventsTotal.WithLabelValues(event).Inc()
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
// A CLI run is too short lived to be scraped.
func (m *MetricsProvider) WriteTextfile() error {
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, prometheus.DefaultGatherer)
}

func httpStatusBucket(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pvc_http_requests_total",
			Help: "Total number of outbound counting requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pvc_http_request_duration_seconds",
			Help:    "Outbound counting request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		roundTrips: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pvc_round_trips_total",
			Help: "Counting round trips by transport mode and outcome",
		}, []string{"mode", "outcome"}),

		ledgerWrites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pvc_ledger_writes_total",
			Help: "Total number of visit records written to the cookie jar",
		}),

		ledgerErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pvc_ledger_errors_total",
			Help: "Cookie jar failures by operation",
		}, []string{"op"}),

		eventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pvc_events_total",
			Help: "Application events dispatched",
		}, []string{"event"}),

		textfile: conf.Metrics.Textfile,
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncRoundTrips(_, _ string)                        {}
func (n *noopMetrics) IncLedgerWrites()                                 {}
func (n *noopMetrics) IncLedgerErrors(_ string)                         {}
func (n *noopMetrics) IncEventsTotal(_ string)                          {}
func (n *noopMetrics) WriteTextfile() error                             { return nil }
