package providers

import (
	"net/http"
	"pvc/internal/structures"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// NewHTTPClientProvider builds the client used for counting requests. It carries
// no cookie jar: cookies come from the visit ledger's jar, attached by the
// transport for same-origin requests only.
func NewHTTPClientProvider(conf *structures.Config, metrics MetricsProviderInterface) *http.Client {
	timeout := conf.Counter.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: MetricsMiddleware(metrics, http.DefaultTransport),
	}
}
