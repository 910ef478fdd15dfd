package pattern

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
)

// Into converts untyped input into a Part:
//
//   - string: Literal
//   - Fragment or *Regexp: CharClass when the source is a single bracket
//     expression (see SniffCharClass), Raw otherwise; flags are rejected
//   - []any{Modifier, x}: Modified
//   - []any{GroupMode, list}: Group in that mode
//   - any other []any, []string or []Part: concatenation Group
//   - Part: itself
func Into(v any) (Part, error) {
	switch x := v.(type) {
	case string:
		return Literal{Text: x}, nil
	case Fragment:
		return fromFragment(x)
	case *Regexp:
		if x == nil {
			return nil, errors.New(errors.ErrInvalidInput, "nil *Regexp")
		}
		return fromFragment(x.Fragment())
	case []any:
		return intoList(x)
	case []string:
		parts := make([]Part, len(x))
		for i, s := range x {
			parts[i] = Literal{Text: s}
		}
		return Group{Parts: parts, Mode: Concat}, nil
	case []Part:
		return Group{Parts: append([]Part(nil), x...), Mode: Concat}, nil
	case Part:
		return x, nil
	case nil:
		return nil, errors.New(errors.ErrInvalidInput, "cannot build a pattern from nil")
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "cannot build a pattern from %T", v).
			WithDetail("value", fmt.Sprint(v))
	}
}

// Pattern normalizes each value. A single value is returned as is; several
// become a concatenation group.
func Pattern(vs ...any) (Part, error) {
	if len(vs) == 1 {
		return Into(vs[0])
	}
	return intoGroup(vs, Concat)
}

func intoList(list []any) (Part, error) {
	if len(list) == 2 {
		switch tag := list[0].(type) {
		case GroupMode:
			members, ok := asList(list[1])
			if !ok {
				return nil, errors.Newf(errors.ErrInvalidInput, "%s expects a list, got %T", tag, list[1])
			}
			return intoGroup(members, tag)
		case Modifier:
			if err := validateModifier(tag); err != nil {
				return nil, err
			}
			inner, err := Into(list[1])
			if err != nil {
				return nil, err
			}
			return Modified{Inner: inner, Modifier: tag}, nil
		}
	}
	return intoGroup(list, Concat)
}

func intoGroup(members []any, mode GroupMode) (Part, error) {
	if mode == Alternation && len(members) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "alternation requires at least one member")
	}
	parts := make([]Part, 0, len(members))
	for _, m := range members {
		p, err := Into(m)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return Group{Parts: parts, Mode: mode}, nil
}

func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case []Part:
		out := make([]any, len(x))
		for i, p := range x {
			out[i] = p
		}
		return out, true
	}
	return nil, false
}

func fromFragment(f Fragment) (Part, error) {
	source, err := f.unflagged()
	if err != nil {
		return nil, err
	}
	if class, ok := SniffCharClass(source); ok {
		return class, nil
	}
	return Raw{Source: source}, nil
}

// SniffCharClass reports whether source is exactly one bracket expression
// and returns it as a CharClass. The body must be non-empty and must not
// contain an unescaped ']' outside a POSIX class such as [:alpha:], so
// "[a-z]|[0-9]" stays an opaque fragment.
func SniffCharClass(source string) (CharClass, bool) {
	if len(source) < 3 || source[0] != '[' || source[len(source)-1] != ']' {
		return CharClass{}, false
	}
	body := source[1 : len(source)-1]
	negative := false
	if strings.HasPrefix(body, "^") {
		negative = true
		body = body[1:]
	}
	if body == "" {
		return CharClass{}, false
	}

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			// a trailing backslash escapes the closing bracket
			if i+1 >= len(body) {
				return CharClass{}, false
			}
			i++
		case '[':
			if i+1 < len(body) && body[i+1] == ':' {
				end := strings.Index(body[i+2:], ":]")
				if end < 0 {
					return CharClass{}, false
				}
				i += 2 + end + 1
			}
		case ']':
			return CharClass{}, false
		}
	}
	return CharClass{Body: body, Negative: negative}, true
}
