package identity

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	nameSuffix      = regexp.MustCompile(`\b(jr|sr|ii|iii|iv|v)\b`)
)

// NormalizeName lowercases name, strips accents and punctuation, drops
// generational suffixes and collapses whitespace. It is idempotent.
func NormalizeName(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}

	value := strings.ToLower(name)
	// Transformers carry state, so the chain is built per call.
	stripped, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), value)
	if err == nil {
		value = stripped
	}

	value = nonAlphanumeric.ReplaceAllString(value, " ")
	value = nameSuffix.ReplaceAllString(value, " ")
	return strings.Join(strings.Fields(value), " ")
}

// firstToken returns the first whitespace-separated token of an already normalized name.
func firstToken(normalized string) string {
	if i := strings.IndexByte(normalized, ' '); i >= 0 {
		return normalized[:i]
	}
	return normalized
}

// lastToken returns the last whitespace-separated token of an already normalized name.
func lastToken(normalized string) string {
	if i := strings.LastIndexByte(normalized, ' '); i >= 0 {
		return normalized[i+1:]
	}
	return normalized
}
