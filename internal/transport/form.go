package transport

import (
	"pvc/internal/models"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent escapes s exactly like the JavaScript builtin of the same
// name: everything but A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent encoded as
// UTF-8. url.QueryEscape differs on ! ~ * ' ( ) and on spaces.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// PrepareRequestData builds an application/x-www-form-urlencoded body in pair
// order. Spaces come out as "+", the classic form encoding the server expects.
func PrepareRequestData(pairs []models.Pair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, EncodeURIComponent(p.Key)+"="+EncodeURIComponent(p.Value))
	}
	return strings.ReplaceAll(strings.Join(parts, "&"), "%20", "+")
}
