package ledger

import (
	"pvc/internal/models"
	"strings"
)

// ParseCookieHeader tokenizes a "k1=v1; k2=v2" header once, keeping the order
// of the header. A segment without "=" yields an empty value. Only the first
// "=" splits, so tokens may carry padding.
func ParseCookieHeader(header string) []models.Pair {
	var pairs []models.Pair
	for _, segment := range strings.Split(header, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, models.Pair{Key: strings.TrimSpace(key), Value: value})
	}
	return pairs
}

func FormatCookieHeader(cookies []*models.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
