package ledger

import (
	"net/url"
	"pvc/internal/ledger/interfaces"
	"pvc/internal/models"
	"pvc/internal/providers"
	"pvc/internal/structures"
	"strconv"
	"strings"
	"time"
)

const (
	StoragePrefix = "pvc_visits"
	// Separator joins coalesced tokens. The server splits on it positionally,
	// so a token containing it cannot be told apart.
	Separator     = "a"
	SameSiteLax   = "Lax"
	defaultExpiry = 24 * time.Hour
)

type VisitLedgerInterface interface {
	Read(name string) string
	Write(update *models.StorageUpdate) int
	Records(name string) []models.VisitRecord
}

// VisitLedger translates between the server's flat record lists and the
// cookie jar.
type VisitLedger struct {
	jar    interfaces.JarInterface
	logger providers.Logger
	path   string
	domain string
	secure bool
	now    func() time.Time
}

func NewVisitLedger(conf *structures.Config, jar interfaces.JarInterface, logger providers.Logger) *VisitLedger {
	return &VisitLedger{
		jar:    jar,
		logger: logger,
		path:   cookiePath(conf.Counter.Path),
		domain: conf.Counter.Domain,
		secure: isSecurePage(conf.Counter),
		now:    time.Now,
	}
}

// StorageName returns the cookie name prefix for an installation. Multisite
// networks get one namespace per site.
func StorageName(multisite int) string {
	if multisite > 0 {
		return StoragePrefix + "_" + strconv.Itoa(multisite)
	}
	return StoragePrefix
}

// Read coalesces every cookie named name[<digits>] into one snapshot, in jar
// order. Storage failures read as empty.
func (l *VisitLedger) Read(name string) string {
	header, err := l.jar.CookieHeader()
	if err != nil {
		l.logger.Warnf(providers.TypeLedger, "Unable to read cookies: %s", err)
		return ""
	}

	var values []string
	for _, pair := range ParseCookieHeader(header) {
		if matchesIndexedName(pair.Key, name) {
			values = append(values, pair.Value)
		}
	}
	return strings.Join(values, Separator)
}

// Write persists one cookie per index of the update and returns how many were
// stored. Failed writes are logged and skipped.
func (l *VisitLedger) Write(update *models.StorageUpdate) int {
	if update == nil {
		return 0
	}

	now := l.now()
	written := 0
	for i, name := range update.Name {
		if i >= len(update.Value) {
			l.logger.Warnf(providers.TypeLedger, "Cookie %s has no value, skipped", name)
			break
		}
		expiry := ""
		if i < len(update.Expiry) {
			expiry = update.Expiry[i]
		}

		cookie := &models.Cookie{
			Name:     name,
			Value:    update.Value[i],
			Path:     l.path,
			Domain:   l.domain,
			Expires:  expiresAt(expiry, now),
			Secure:   l.secure,
			SameSite: SameSiteLax,
		}
		if err := l.jar.SetCookie(cookie); err != nil {
			l.logger.Warnf(providers.TypeLedger, "Unable to save cookie %s: %s", name, err)
			continue
		}
		l.logger.Debugf(providers.TypeLedger, "Saved cookie %s", cookie)
		written++
	}
	return written
}

// Records lists the live visit records of a namespace.
func (l *VisitLedger) Records(name string) []models.VisitRecord {
	cookies, err := l.jar.Cookies()
	if err != nil {
		l.logger.Warnf(providers.TypeLedger, "Unable to list cookies: %s", err)
		return nil
	}
	var records []models.VisitRecord
	for _, c := range cookies {
		if matchesIndexedName(c.Name, name) {
			records = append(records, c.Record())
		}
	}
	return records
}

func matchesIndexedName(key, name string) bool {
	rest, ok := strings.CutPrefix(key, name+"[")
	if !ok {
		return false
	}
	digits, ok := strings.CutSuffix(rest, "]")
	if !ok || digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// expiresAt reads expiry as absolute UNIX seconds. Anything that does not
// start with a positive integer falls back to 24 hours from now.
func expiresAt(expiry string, now time.Time) time.Time {
	if seconds := parseLeadingInt(expiry); seconds > 0 {
		return time.Unix(seconds, 0)
	}
	return now.Add(defaultExpiry)
}

// parseLeadingInt reads an optional sign and the leading digits of s, ignoring
// whatever follows ("1750000000.5" reads as 1750000000).
func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func cookiePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "/"
	}
	return "/" + strings.TrimLeft(p, "/")
}

func isSecurePage(conf structures.CounterConfig) bool {
	page := conf.PageURL
	if page == "" {
		page = conf.RequestURL
	}
	u, err := url.Parse(page)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "https")
}
