package models

import (
	"strings"
	"time"
)

// VisitRecord asserts that a view was already counted. Value is an opaque
// server token, Expiry is absolute UNIX seconds.
type VisitRecord struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Expiry int64  `json:"expiry"`
}

// Cookie is a jar entry. Names like pvc_visits[0] are accepted as browsers do,
// which is why net/http.Cookie is not used here.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure,omitempty"`
	SameSite string    `json:"same_site,omitempty"`
}

func (c *Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}

func (c *Cookie) Record() VisitRecord {
	return VisitRecord{Name: c.Name, Value: c.Value, Expiry: c.Expires.Unix()}
}

// String renders the cookie the way a document.cookie assignment spells it.
func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)
	if !c.Expires.IsZero() {
		b.WriteString(";expires=")
		b.WriteString(c.Expires.UTC().Format(time.RFC1123))
	}
	if c.Path != "" {
		b.WriteString(";path=")
		b.WriteString(c.Path)
	}
	if c.Domain != "" {
		b.WriteString(";domain=")
		b.WriteString(c.Domain)
	}
	if c.Secure {
		b.WriteString(";secure")
	}
	if c.SameSite != "" {
		b.WriteString(";SameSite=")
		b.WriteString(c.SameSite)
	}
	return b.String()
}

// JarSnapshot is the persisted form of a file backed cookie jar.
type JarSnapshot struct {
	Version int       `json:"version"`
	Cookies []*Cookie `json:"cookies"`
}
