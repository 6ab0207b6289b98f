// Package category maps free-form category text and merchant names onto the
// fixed category enum. It never guesses: when no hint matches it returns
// ok=false and the caller supplies a default (normally CategoryOther).
package category

import (
	"strings"

	"github.com/pairshare/pairshare/internal/models"
)

// normalizeToken lowercases and strips everything that is not a letter or
// digit, so "Food & Dining" and "food-dining" compare equal.
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify matches raw text against the known category identifiers and
// labels: exact identifier first, then exact label, then label containment.
func Classify(raw string) (models.Category, bool) {
	n := normalizeToken(raw)
	if n == "" {
		return "", false
	}

	for _, info := range models.Categories {
		if normalizeToken(string(info.ID)) == n {
			return info.ID, true
		}
	}
	for _, info := range models.Categories {
		label := normalizeToken(info.Label)
		if label == n || strings.Contains(label, n) {
			return info.ID, true
		}
	}
	return "", false
}
