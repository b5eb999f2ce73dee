package ledger

import (
	"fmt"
	"math"
	"pvc/internal/models"
	"slices"
	"sync"
	"time"
	"unsafe"

	"github.com/coocood/freecache"
	json "github.com/goccy/go-json"
)

// freecache refuses anything below 512KB.
const minMemoryJarSize = 512 * 1024

// MemoryJar keeps cookies in a fixed size freecache. Expiry is delegated to
// the cache TTL, and a full cache rejects or evicts entries like a browser
// under storage pressure would.
type MemoryJar struct {
	mu    sync.Mutex
	cache *freecache.Cache
	order []string
	now   func() time.Time
}

func NewMemoryJar(sizeMB int) *MemoryJar {
	sizeBytes := max(sizeMB*1024*1024, minMemoryJarSize)
	return &MemoryJar{
		cache: freecache.NewCache(sizeBytes),
		now:   time.Now,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache, which copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (j *MemoryJar) SetCookie(cookie *models.Cookie) error {
	if err := checkCookieSize(cookie); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	key := cookieKey(cookie)

	// freecache treats a zero TTL as "never expires", which is what a session
	// cookie wants.
	ttl := 0
	if !cookie.Expires.IsZero() {
		remaining := math.Ceil(cookie.Expires.Sub(j.now()).Seconds())
		if remaining <= 0 {
			j.cache.Del(unsafeStringToBytes(key))
			j.forget(key)
			return nil
		}
		ttl = int(min(remaining, math.MaxInt32))
	}

	data, err := json.Marshal(cookie)
	if err != nil {
		return err
	}
	if err := j.cache.Set(unsafeStringToBytes(key), data, ttl); err != nil {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	if !slices.Contains(j.order, key) {
		j.order = append(j.order, key)
	}
	return nil
}

func (j *MemoryJar) Cookies() ([]*models.Cookie, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cookies := make([]*models.Cookie, 0, len(j.order))
	live := make([]string, 0, len(j.order))
	for _, key := range j.order {
		data, err := j.cache.Get(unsafeStringToBytes(key))
		if err != nil {
			// expired or evicted
			continue
		}
		var c models.Cookie
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("unable to decode cookie %q: %w", key, err)
		}
		live = append(live, key)
		cookies = append(cookies, &c)
	}
	j.order = live
	return cookies, nil
}

func (j *MemoryJar) CookieHeader() (string, error) {
	cookies, err := j.Cookies()
	if err != nil {
		return "", err
	}
	return FormatCookieHeader(cookies), nil
}

func (j *MemoryJar) forget(key string) {
	j.order = slices.DeleteFunc(j.order, func(k string) bool { return k == key })
}

// DisabledJar stands in for a browser with cookies blocked.
type DisabledJar struct{}

func (DisabledJar) CookieHeader() (string, error)      { return "", ErrStorageDisabled }
func (DisabledJar) SetCookie(_ *models.Cookie) error   { return ErrStorageDisabled }
func (DisabledJar) Cookies() ([]*models.Cookie, error) { return nil, ErrStorageDisabled }
