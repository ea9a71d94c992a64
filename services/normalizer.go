package services

import (
	"regexp"
	"strconv"
	"strings"
)

var nonPriceChars = regexp.MustCompile(`[^\d.]`)

// NormalizePrice converts a localized currency string such as "€ 1.300"
// into a comparable integer. A decimal cents part after a comma is cut
// off, every remaining non-digit non-dot character is stripped, and
// dots are treated as thousands separators when more than one segment
// results from splitting on them. Empty or unparsable input degrades to
// 0: downstream filtering treats "no minimum" and "unparsable minimum"
// identically, so this function never fails.
func NormalizePrice(text string) int {
	if i := strings.IndexRune(text, ','); i >= 0 {
		text = text[:i]
	}

	cleaned := nonPriceChars.ReplaceAllString(text, "")
	if parts := strings.Split(cleaned, "."); len(parts) > 1 {
		cleaned = strings.Join(parts, "")
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}
