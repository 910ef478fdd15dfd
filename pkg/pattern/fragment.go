package pattern

import (
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
)

// Flags are dialect options that can only be applied to a whole pattern.
type Flags uint8

const (
	// IgnoreCase is the i flag.
	IgnoreCase Flags = 1 << iota
	// Multiline makes ^ and $ match at line boundaries (m).
	Multiline
	// DotAll lets . match a newline (s).
	DotAll
)

var flagLetters = []struct {
	flag   Flags
	letter byte
}{
	{IgnoreCase, 'i'},
	{Multiline, 'm'},
	{DotAll, 's'},
}

// String returns the flags as letters in canonical "ims" order.
func (f Flags) String() string {
	var b strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			b.WriteByte(fl.letter)
		}
	}
	return b.String()
}

// ParseFlags parses a string of flag letters such as "im".
func ParseFlags(s string) (Flags, error) {
	var f Flags
outer:
	for i := 0; i < len(s); i++ {
		for _, fl := range flagLetters {
			if s[i] == fl.letter {
				f |= fl.flag
				continue outer
			}
		}
		return 0, errors.Newf(errors.ErrInvalidInput, "unknown flag %q", s[i]).
			WithDetail("flags", s)
	}
	return f, nil
}

// Fragment is a piece of regex source text, optionally carrying flags.
// Fragments with flags are only meaningful as a complete pattern: the
// composer and the normalizer reject them.
type Fragment struct {
	Source string
	Flags  Flags
}

// Frag returns an unflagged fragment.
func Frag(source string) Fragment {
	return Fragment{Source: source}
}

// FragWithFlags returns a flagged fragment.
func FragWithFlags(source string, flags Flags) Fragment {
	return Fragment{Source: source, Flags: flags}
}

func (f Fragment) String() string {
	return f.Source
}

// unflagged returns the source of f, or an unsupported-flags error.
func (f Fragment) unflagged() (string, error) {
	if f.Flags != 0 {
		return "", errors.Newf(errors.ErrUnsupportedFlags, "unsupported flags: %s", f.Flags).
			WithDetail("flags", f.Flags.String()).
			WithDetail("source", f.Source)
	}
	return f.Source, nil
}
