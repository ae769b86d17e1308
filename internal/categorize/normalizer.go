package categorize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a transaction description for matching:
// Unicode lowercase, diacritics stripped, whitespace runs collapsed to
// single spaces, leading/trailing whitespace trimmed. The function is
// pure and idempotent; rule patterns and descriptions must both pass
// through it so that matching is insensitive to case, accents, and
// spacing.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	// Decompose, drop combining marks, recompose. This turns
	// "Phở Hà Nội" into "pho ha noi" without touching scripts that
	// carry no diacritics.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lowercased input rather than dropping the description.
		stripped = lowered
	}

	return strings.Join(strings.Fields(stripped), " ")
}
