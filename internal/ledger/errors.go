package ledger

import (
	"errors"
	"fmt"
	"pvc/internal/models"
)

var (
	ErrQuotaExceeded   = errors.New("cookie jar quota exceeded")
	ErrStorageDisabled = errors.New("cookie storage disabled")
)

// maxCookieSize mirrors the 4096 byte per-cookie limit browsers enforce.
const maxCookieSize = 4096

func checkCookieSize(c *models.Cookie) error {
	if size := len(c.Name) + len(c.Value); size > maxCookieSize {
		return fmt.Errorf("%w: cookie %s is %d bytes", ErrQuotaExceeded, c.Name, size)
	}
	return nil
}

// cookieKey identifies a cookie the way a browser does: name, path and domain.
func cookieKey(c *models.Cookie) string {
	return c.Name + "\x00" + c.Path + "\x00" + c.Domain
}
