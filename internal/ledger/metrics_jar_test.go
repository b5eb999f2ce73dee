package ledger

import (
	"errors"
	"pvc/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsJar_CountsWrites(t *testing.T) {
	metrics := testutil.NewMockMetrics()
	jar := NewInstrumentedJar(testutil.NewMockJar(), metrics)

	assert.NoError(t, jar.SetCookie(cookie("pvc_visits[0]", "tok", time.Now().Add(time.Hour))))
	assert.Equal(t, 1, metrics.LedgerWrites)
	assert.Empty(t, metrics.LedgerErrors)
}

func TestMetricsJar_CountsWriteErrors(t *testing.T) {
	metrics := testutil.NewMockMetrics()
	inner := testutil.NewMockJar()
	inner.WriteErr = errors.New("quota")
	jar := NewInstrumentedJar(inner, metrics)

	assert.Error(t, jar.SetCookie(cookie("pvc_visits[0]", "tok", time.Now().Add(time.Hour))))
	assert.Equal(t, 0, metrics.LedgerWrites)
	assert.Equal(t, 1, metrics.LedgerErrors["write"])
}

func TestMetricsJar_CountsReadErrors(t *testing.T) {
	metrics := testutil.NewMockMetrics()
	jar := NewInstrumentedJar(DisabledJar{}, metrics)

	_, err := jar.CookieHeader()
	assert.ErrorIs(t, err, ErrStorageDisabled)
	_, err = jar.Cookies()
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.Equal(t, 2, metrics.LedgerErrors["read"])
}

type closingJar struct {
	*testutil.MockJar
	closed bool
}

func (c *closingJar) Close() { c.closed = true }

func TestMetricsJar_Close(t *testing.T) {
	inner := &closingJar{MockJar: testutil.NewMockJar()}
	jar := NewInstrumentedJar(inner, testutil.NewMockMetrics()).(*MetricsJar)
	jar.Close()
	assert.True(t, inner.closed)

	assert.NotPanics(t, func() {
		NewInstrumentedJar(testutil.NewMockJar(), testutil.NewMockMetrics()).(*MetricsJar).Close()
	})
}
