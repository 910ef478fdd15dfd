package pattern

import "github.com/coregx/coregex"

// Escape returns a fragment matching s verbatim. Each of
// . * + ? ^ $ { } ( ) | [ ] \ is prefixed with a backslash and every other
// character passes through unchanged. Escape("") is the empty pattern.
func Escape(s string) string {
	return coregex.QuoteMeta(s)
}
