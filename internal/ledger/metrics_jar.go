package ledger

import (
	"pvc/internal/ledger/interfaces"
	"pvc/internal/models"
	"pvc/internal/providers"
)

// MetricsJar wraps a JarInterface and counts writes and failures.
type MetricsJar struct {
	inner   interfaces.JarInterface
	metrics providers.MetricsProviderInterface
}

func (j *MetricsJar) CookieHeader() (string, error) {
	header, err := j.inner.CookieHeader()
	if err != nil {
		j.metrics.IncLedgerErrors("read")
	}
	return header, err
}

func (j *MetricsJar) SetCookie(cookie *models.Cookie) error {
	err := j.inner.SetCookie(cookie)
	if err != nil {
		j.metrics.IncLedgerErrors("write")
		return err
	}
	j.metrics.IncLedgerWrites()
	return nil
}

func (j *MetricsJar) Cookies() ([]*models.Cookie, error) {
	cookies, err := j.inner.Cookies()
	if err != nil {
		j.metrics.IncLedgerErrors("read")
	}
	return cookies, err
}

func NewInstrumentedJar(inner interfaces.JarInterface, metrics providers.MetricsProviderInterface) interfaces.JarInterface {
	return &MetricsJar{inner: inner, metrics: metrics}
}

// Close releases the wrapped jar's resources, if it holds any.
func (j *MetricsJar) Close() {
	if c, ok := j.inner.(interface{ Close() }); ok {
		c.Close()
	}
}
