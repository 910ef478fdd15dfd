// Package pattern builds regular expressions from a typed tree of parts
// instead of hand-escaped strings.
//
// A pattern is described with literals, character classes, raw fragments,
// lookaheads, repetitions and groups:
//
//	re, err := pattern.Build(
//		pattern.Frag(`[a-z]`),
//		[]any{pattern.Star, pattern.Frag(`[a-zA-Z0-9_.-]`)},
//		[]any{pattern.Next, pattern.Frag(`[\s>]`)},
//	)
//
// Untyped input (strings, Fragment values, nested []any lists and tagged
// pairs) is turned into a Part tree by Into. Compile renders a Part into
// PCRE-style text: (?:...), (?=...), (?!...), {m,n}, [...] and [^...].
// A Builder accumulates parts and finalizes them into a Regexp backed by
// regexp2, which runs the whole emitted dialect. coregex is used when asked
// for with WithEngine, or for RE2-only syntax regexp2 rejects.
//
// Everything here is a pure transformation. Parts are immutable values and
// a finalized *Regexp is safe for concurrent use.
package pattern
