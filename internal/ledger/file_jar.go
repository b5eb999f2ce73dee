package ledger

import (
	"fmt"
	"os"
	"pvc/internal/ledger/interfaces"
	"pvc/internal/models"
	"pvc/internal/providers"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const jarSnapshotVersion = 1

// FileJar is a cookie jar persisted as a zstd compressed JSON snapshot.
// Expired cookies are dropped on load and never returned.
type FileJar struct {
	mu         sync.Mutex
	path       string
	cookies    []*models.Cookie
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	now        func() time.Time
}

func NewFileJar(path string, compressor interfaces.CompressorInterface, logger providers.Logger) *FileJar {
	return &FileJar{
		path:       path,
		compressor: compressor,
		logger:     logger,
		now:        time.Now,
	}
}

func (j *FileJar) CookieHeader() (string, error) {
	cookies, err := j.Cookies()
	if err != nil {
		return "", err
	}
	return FormatCookieHeader(cookies), nil
}

func (j *FileJar) Cookies() ([]*models.Cookie, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	live := make([]*models.Cookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		if c.Expired(now) {
			continue
		}
		cp := *c
		live = append(live, &cp)
	}
	return live, nil
}

// SetCookie replaces a cookie with the same name, path and domain in place, or
// appends it. A cookie that is already expired removes its predecessor. The
// in-memory jar only changes once the snapshot reached the disk.
func (j *FileJar) SetCookie(cookie *models.Cookie) error {
	if err := checkCookieSize(cookie); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	cp := *cookie
	key := cookieKey(cookie)
	replaced := false

	next := make([]*models.Cookie, 0, len(j.cookies)+1)
	for _, existing := range j.cookies {
		if existing.Expired(now) {
			continue
		}
		if cookieKey(existing) == key {
			replaced = true
			if !cp.Expired(now) {
				next = append(next, &cp)
			}
			continue
		}
		next = append(next, existing)
	}
	if !replaced && !cp.Expired(now) {
		next = append(next, &cp)
	}

	if err := j.SaveToFile(next); err != nil {
		return err
	}
	j.cookies = next
	return nil
}

func (j *FileJar) SaveToFile(cookies []*models.Cookie) error {
	jsonData, err := json.Marshal(&models.JarSnapshot{Version: jarSnapshotVersion, Cookies: cookies})
	if err != nil {
		return err
	}
	data, err := j.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := j.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, j.path)
}

func (j *FileJar) LoadFromFile() error {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := j.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("unable to decompress cookie jar: %w", err)
	}

	var snapshot models.JarSnapshot
	if err := json.Unmarshal(decompressedData, &snapshot); err != nil {
		return fmt.Errorf("unable to decode cookie jar: %w", err)
	}

	now := j.now()
	cookies := make([]*models.Cookie, 0, len(snapshot.Cookies))
	for _, c := range snapshot.Cookies {
		if c == nil || c.Expired(now) {
			continue
		}
		cookies = append(cookies, c)
	}
	if dropped := len(snapshot.Cookies) - len(cookies); dropped > 0 {
		j.logger.Debugf(providers.TypeLedger, "Dropped %d expired cookies from %s", dropped, j.path)
	}

	j.mu.Lock()
	j.cookies = cookies
	j.mu.Unlock()
	return nil
}

func (j *FileJar) Close() {
	j.compressor.Close()
}
