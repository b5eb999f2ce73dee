package testutil

import (
	"fmt"
	"pvc/internal/models"
	"pvc/internal/providers"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns the recorded entries of one level.
func (m *MockLogger) Entries(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry of the level renders a message containing s.
func (m *MockLogger) Contains(level, s string) bool {
	for _, e := range m.Entries(level) {
		if strings.Contains(e.Message(), s) {
			return true
		}
	}
	return false
}

// MockJar implements interfaces.JarInterface in memory with injectable failures.
// It keeps insertion order and honours expiry against Now.
type MockJar struct {
	mu       sync.Mutex
	Data     []*models.Cookie
	ReadErr  error
	WriteErr error
	Sets     int
	Now      func() time.Time
}

func NewMockJar() *MockJar {
	return &MockJar{Now: time.Now}
}

func (m *MockJar) CookieHeader() (string, error) {
	cookies, err := m.Cookies()
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; "), nil
}

func (m *MockJar) SetCookie(cookie *models.Cookie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	cp := *cookie
	for i, c := range m.Data {
		if c.Name == cookie.Name {
			m.Data[i] = &cp
			return nil
		}
	}
	m.Data = append(m.Data, &cp)
	return nil
}

func (m *MockJar) Cookies() ([]*models.Cookie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	now := time.Now()
	if m.Now != nil {
		now = m.Now()
	}
	var out []*models.Cookie
	for _, c := range m.Data {
		if c.Expired(now) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Get returns the stored cookie with the given name, expired or not.
func (m *MockJar) Get(name string) (*models.Cookie, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Data {
		if c.Name == name {
			cp := *c
			return &cp, true
		}
	}
	return nil, false
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu           sync.Mutex
	RoundTrips   map[string]int // key: "mode:outcome"
	LedgerWrites int
	LedgerErrors map[string]int
	Events       map[string]int
	Requests     int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		RoundTrips:   make(map[string]int),
		LedgerErrors: make(map[string]int),
		Events:       make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncRoundTrips(mode, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RoundTrips[mode+":"+outcome]++
}
func (m *MockMetrics) IncLedgerWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LedgerWrites++
}
func (m *MockMetrics) IncLedgerErrors(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LedgerErrors[op]++
}
func (m *MockMetrics) IncEventsTotal(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events[event]++
}
func (m *MockMetrics) WriteTextfile() error { return nil }
