package pattern

import (
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
)

// Compose joins raw regex segments with arguments placed between them:
// segments[0] args[0] segments[1] args[1] ... segments[len(args)]. There
// must be at least len(args)+1 segments; extra ones are appended in order.
//
// A string argument is escaped; a Fragment or *Regexp is inserted verbatim
// and must not carry flags, since they cannot be scoped to part of the
// output; a Part is compiled.
func Compose(segments []string, args ...any) (Fragment, error) {
	if len(segments) < len(args)+1 {
		return Fragment{}, errors.Newf(errors.ErrInvalidInput,
			"%d arguments need at least %d segments, got %d", len(args), len(args)+1, len(segments))
	}

	var b strings.Builder
	for i, arg := range args {
		b.WriteString(segments[i])
		source, err := argSource(arg)
		if err != nil {
			return Fragment{}, err
		}
		b.WriteString(source)
	}
	for _, seg := range segments[len(args):] {
		b.WriteString(seg)
	}
	return Fragment{Source: b.String()}, nil
}

func argSource(arg any) (string, error) {
	switch a := arg.(type) {
	case string:
		return Escape(a), nil
	case Fragment:
		return a.unflagged()
	case *Regexp:
		if a == nil {
			return "", errors.New(errors.ErrInvalidInput, "nil *Regexp argument")
		}
		return a.Fragment().unflagged()
	case Part:
		if err := Validate(a); err != nil {
			return "", err
		}
		return Compile(a), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported template argument %T", arg)
	}
}

// Format is Compose with the segments written inline: each %s in format
// takes the next argument and %% is a literal percent sign. The number of
// %s verbs must equal len(args).
func Format(format string, args ...any) (Fragment, error) {
	segments := splitFormat(format)
	if len(segments)-1 != len(args) {
		return Fragment{}, errors.Newf(errors.ErrInvalidInput,
			"format has %d placeholders but %d arguments were given", len(segments)-1, len(args)).
			WithDetail("format", format)
	}
	return Compose(segments, args...)
}

// MustFormat is like Format but panics on error. It is meant for
// package-level pattern variables.
func MustFormat(format string, args ...any) Fragment {
	f, err := Format(format, args...)
	if err != nil {
		panic("pattern: Format(`" + format + "`): " + err.Error())
	}
	return f
}

func splitFormat(format string) []string {
	var (
		segments []string
		cur      strings.Builder
	)
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			switch format[i+1] {
			case 's':
				segments = append(segments, cur.String())
				cur.Reset()
				i++
				continue
			case '%':
				cur.WriteByte('%')
				i++
				continue
			}
		}
		cur.WriteByte(format[i])
	}
	return append(segments, cur.String())
}
