package model

import "strings"

// Slugify builds a URL slug from the given parts: lowercase, non-alphanumeric
// runs collapsed to single dashes.
func Slugify(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, "-"))
	var b strings.Builder
	dash := true
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// LedgerRef carries the optional links of a balance transaction.
type LedgerRef struct {
	PaymentID *uint
	OrderID   *uint
	AdminID   *uint
}
