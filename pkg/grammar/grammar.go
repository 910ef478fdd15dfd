package grammar

import (
	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/pattern"
)

// Grammar is a grammar file as written.
type Grammar struct {
	Name      string         `yaml:"name" toml:"name"`
	ScopeName string         `yaml:"scope_name" toml:"scope_name"`
	FileTypes []string       `yaml:"file_types" toml:"file_types"`
	Vars      map[string]any `yaml:"vars" toml:"vars"`
	// Patterns lists the rules active at the top level. Empty means all.
	Patterns []string `yaml:"patterns" toml:"patterns"`
	Rules    []Rule   `yaml:"rules" toml:"rules"`
}

// Rule is one tokenizer rule.
type Rule struct {
	Name     string   `yaml:"name" toml:"name"`
	Scope    string   `yaml:"scope" toml:"scope"`
	Match    any      `yaml:"match" toml:"match"`
	Begin    any      `yaml:"begin" toml:"begin"`
	End      any      `yaml:"end" toml:"end"`
	Flags    string   `yaml:"flags" toml:"flags"`
	Contains []string `yaml:"contains" toml:"contains"`
}

// Validate checks the grammar's structure. Pattern nodes are checked when
// the grammar is compiled.
func (g *Grammar) Validate() error {
	if g.Name == "" {
		return errors.New(errors.ErrGrammarInvalid, "grammar has no name")
	}
	if len(g.Rules) == 0 {
		return errors.Newf(errors.ErrGrammarInvalid, "grammar %s has no rules", g.Name)
	}

	seen := make(map[string]bool, len(g.Rules))
	for i, r := range g.Rules {
		if r.Name == "" {
			return errors.Newf(errors.ErrGrammarInvalid, "rule %d has no name", i).
				WithDetail("grammar", g.Name)
		}
		if seen[r.Name] {
			return errors.Newf(errors.ErrGrammarInvalid, "duplicate rule %s", r.Name).
				WithDetail("grammar", g.Name)
		}
		seen[r.Name] = true

		hasMatch := r.Match != nil
		hasBegin := r.Begin != nil || r.End != nil
		switch {
		case hasMatch && hasBegin:
			return errors.Newf(errors.ErrGrammarInvalid, "rule %s has both match and begin/end", r.Name)
		case !hasMatch && !hasBegin:
			return errors.Newf(errors.ErrGrammarInvalid, "rule %s has neither match nor begin/end", r.Name)
		case hasBegin && (r.Begin == nil || r.End == nil):
			return errors.Newf(errors.ErrGrammarInvalid, "rule %s needs both begin and end", r.Name)
		}

		if _, err := pattern.ParseFlags(r.Flags); err != nil {
			return errors.Wrapf(err, errors.ErrGrammarInvalid, "rule %s has invalid flags", r.Name)
		}
	}

	for _, r := range g.Rules {
		for _, name := range r.Contains {
			if !seen[name] {
				return errors.Newf(errors.ErrGrammarInvalid, "rule %s contains unknown rule %s", r.Name, name)
			}
		}
	}
	for _, name := range g.Patterns {
		if !seen[name] {
			return errors.Newf(errors.ErrGrammarInvalid, "top-level pattern %s is not a rule", name)
		}
	}
	return nil
}

// rule returns the named rule.
func (g *Grammar) rule(name string) (*Rule, error) {
	for i := range g.Rules {
		if g.Rules[i].Name == name {
			return &g.Rules[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrRuleNotFound, "no rule named %s", name).
		WithDetail("grammar", g.Name)
}

// TopLevel returns the names of the rules active at the top level.
func (g *Grammar) TopLevel() []string {
	if len(g.Patterns) > 0 {
		return g.Patterns
	}
	names := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		names[i] = r.Name
	}
	return names
}
