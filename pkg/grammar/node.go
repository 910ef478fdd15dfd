package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/pattern"
)

// resolver turns decoded pattern nodes into pattern input, expanding refs.
type resolver struct {
	vars   map[string]any
	active map[string]bool
}

func newResolver(vars map[string]any) *resolver {
	return &resolver{vars: vars, active: make(map[string]bool)}
}

// topLevel converts a rule pattern. A list yields one input per element so
// the builder concatenates them without an enclosing group.
func (r *resolver) topLevel(node any) ([]any, error) {
	list, ok := node.([]any)
	if !ok {
		in, err := r.input(node)
		if err != nil {
			return nil, err
		}
		return []any{in}, nil
	}
	out := make([]any, 0, len(list))
	for _, el := range list {
		in, err := r.input(el)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func (r *resolver) input(node any) (any, error) {
	switch n := node.(type) {
	case string:
		return n, nil
	case []any:
		out := make([]any, 0, len(n))
		for _, el := range n {
			in, err := r.input(el)
			if err != nil {
				return nil, err
			}
			out = append(out, in)
		}
		// a one-element sequence would otherwise need a group
		if len(out) == 1 {
			return out[0], nil
		}
		return out, nil
	case map[string]any:
		return r.tagged(n)
	case nil:
		return nil, errors.New(errors.ErrGrammarInvalid, "empty pattern node")
	default:
		return nil, errors.Newf(errors.ErrGrammarInvalid, "unsupported pattern node %T", node).
			WithDetail("value", fmt.Sprint(node))
	}
}

func (r *resolver) tagged(n map[string]any) (any, error) {
	if len(n) != 1 {
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, errors.Newf(errors.ErrGrammarInvalid,
			"pattern node must have exactly one key, got [%s]", strings.Join(keys, ", "))
	}

	for key, value := range n {
		switch key {
		case "lit":
			s, err := asString(key, value)
			return s, err
		case "re":
			s, err := asString(key, value)
			if err != nil {
				return nil, err
			}
			return pattern.Frag(s), nil
		case "class", "not_class":
			s, err := asString(key, value)
			if err != nil {
				return nil, err
			}
			if key == "not_class" {
				return pattern.NotClass(s), nil
			}
			return pattern.Class(s), nil
		case "next":
			return r.modified(pattern.Next, value)
		case "not_next":
			return r.modified(pattern.NotNext, value)
		case "star":
			return r.modified(pattern.Star, value)
		case "plus":
			return r.modified(pattern.Plus, value)
		case "opt":
			return r.modified(pattern.Opt, value)
		case "repeat":
			return r.repeat(value)
		case "oneof":
			list, ok := value.([]any)
			if !ok {
				return nil, errors.Newf(errors.ErrGrammarInvalid, "oneof expects a list, got %T", value)
			}
			members := make([]any, 0, len(list))
			for _, el := range list {
				in, err := r.input(el)
				if err != nil {
					return nil, err
				}
				members = append(members, in)
			}
			return []any{pattern.OneOf, members}, nil
		case "ref":
			name, err := asString(key, value)
			if err != nil {
				return nil, err
			}
			return r.ref(name)
		case "fmt":
			return r.format(value)
		default:
			return nil, errors.Newf(errors.ErrGrammarInvalid, "unknown pattern node %q", key)
		}
	}
	return nil, nil
}

func (r *resolver) modified(m pattern.Modifier, value any) (any, error) {
	in, err := r.input(value)
	if err != nil {
		return nil, err
	}
	return []any{m, in}, nil
}

func (r *resolver) repeat(value any) (any, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrGrammarInvalid, "repeat expects a table, got %T", value)
	}
	from, err := asInt("repeat.min", fields["min"])
	if err != nil {
		return nil, err
	}
	to, err := asInt("repeat.max", fields["max"])
	if err != nil {
		return nil, err
	}
	if from < 0 || from > to {
		return nil, errors.Newf(errors.ErrGrammarInvalid, "repeat range {%d,%d} is invalid", from, to)
	}
	return r.modified(pattern.Between(from, to), fields["of"])
}

func (r *resolver) ref(name string) (any, error) {
	node, ok := r.vars[name]
	if !ok {
		return nil, errors.Newf(errors.ErrGrammarInvalid, "unknown var %s", name)
	}
	if r.active[name] {
		return nil, errors.Newf(errors.ErrGrammarInvalid, "var %s refers to itself", name)
	}
	r.active[name] = true
	defer delete(r.active, name)
	return r.input(node)
}

func (r *resolver) format(value any) (any, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrGrammarInvalid, "fmt expects a table, got %T", value)
	}
	template, err := asString("fmt.template", fields["template"])
	if err != nil {
		return nil, err
	}
	var rawArgs []any
	if v, present := fields["args"]; present && v != nil {
		list, ok := v.([]any)
		if !ok {
			return nil, errors.Newf(errors.ErrGrammarInvalid, "fmt.args expects a list, got %T", v)
		}
		rawArgs = list
	}
	args := make([]any, 0, len(rawArgs))
	for _, a := range rawArgs {
		if s, ok := a.(string); ok {
			args = append(args, s)
			continue
		}
		in, err := r.input(a)
		if err != nil {
			return nil, err
		}
		part, err := pattern.Into(in)
		if err != nil {
			return nil, err
		}
		args = append(args, part)
	}
	return pattern.Format(template, args...)
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.ErrGrammarInvalid, "%s expects a string, got %T", key, v)
	}
	return s, nil
}

func asInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, errors.Newf(errors.ErrGrammarInvalid, "%s expects an integer, got %v", key, v)
}
