package subtitle

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Cleaner removes characters that are not allowed in subtitle text
type Cleaner func(line string) string

var badChars = runes.Predicate(func(r rune) bool {
	switch r {
	case '\t', '\n':
		return false
	case '\ufeff', '\u200b':
		return true
	}
	return unicode.IsControl(r)
})

// drops control characters (except tab and newline), DEL, byte order
// marks and zero-width spaces
func RemoveBadChars(line string) string {
	out, _, err := transform.String(runes.Remove(badChars), line)
	if err != nil {
		return line
	}
	return out
}
