package interfaces

import "pvc/internal/models"

// JarInterface is the storage medium behind the visit ledger.
type JarInterface interface {
	// CookieHeader returns the live cookies as "k1=v1; k2=v2", in jar order.
	CookieHeader() (string, error)
	SetCookie(cookie *models.Cookie) error
	Cookies() ([]*models.Cookie, error)
}
