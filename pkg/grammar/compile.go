package grammar

import (
	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/logging"
	"github.com/arthur-debert/regexkit/pkg/pattern"
)

// CompiledRule is a rule whose patterns have been finalized. Either Match
// is set, or Begin and End are.
type CompiledRule struct {
	Name     string
	Scope    string
	Contains []string
	Match    *pattern.Regexp
	Begin    *pattern.Regexp
	End      *pattern.Regexp
}

// Opening returns Match, or Begin for begin/end rules.
func (r *CompiledRule) Opening() *pattern.Regexp {
	if r.Match != nil {
		return r.Match
	}
	return r.Begin
}

// Compiled is a grammar with every rule compiled.
type Compiled struct {
	Grammar *Grammar
	Rules   []*CompiledRule
	byName  map[string]*CompiledRule
}

// Compile compiles every rule. opts apply to each rule; a rule's own flags
// are added on top.
func (g *Grammar) Compile(opts ...pattern.Option) (*Compiled, error) {
	logger := logging.GetLogger("grammar")
	done := logging.LogOperationStart(logger, "compile "+g.Name)
	defer done()

	c := &Compiled{
		Grammar: g,
		Rules:   make([]*CompiledRule, 0, len(g.Rules)),
		byName:  make(map[string]*CompiledRule, len(g.Rules)),
	}

	for i := range g.Rules {
		rule := &g.Rules[i]
		ruleOpts := opts
		if rule.Flags != "" {
			flags, err := pattern.ParseFlags(rule.Flags)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrGrammarInvalid, "rule %s has invalid flags", rule.Name)
			}
			ruleOpts = append(append([]pattern.Option(nil), opts...), pattern.WithFlags(flags))
		}

		cr := &CompiledRule{Name: rule.Name, Scope: rule.Scope, Contains: rule.Contains}
		var err error
		if rule.Match != nil {
			cr.Match, err = g.build(rule.Name, "match", rule.Match, ruleOpts)
		} else {
			if cr.Begin, err = g.build(rule.Name, "begin", rule.Begin, ruleOpts); err == nil {
				cr.End, err = g.build(rule.Name, "end", rule.End, ruleOpts)
			}
		}
		if err != nil {
			return nil, err
		}

		logger.Trace().Str("rule", rule.Name).Str("source", cr.Opening().String()).Msg("Rule compiled")
		c.Rules = append(c.Rules, cr)
		c.byName[cr.Name] = cr
	}
	return c, nil
}

func (g *Grammar) build(rule, field string, node any, opts []pattern.Option) (*pattern.Regexp, error) {
	inputs, err := newResolver(g.Vars).topLevel(node)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGrammarInvalid, "rule %s: bad %s pattern", rule, field)
	}

	b := pattern.NewBuilder(opts...)
	for _, in := range inputs {
		b.Add(in)
	}
	re, err := b.Finalize()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGrammarInvalid, "rule %s: cannot build %s pattern", rule, field)
	}
	return re, nil
}

// RulePart returns the pattern tree of a rule's match (or begin) field.
func (g *Grammar) RulePart(name string) (pattern.Part, error) {
	rule, err := g.rule(name)
	if err != nil {
		return nil, err
	}
	node := rule.Match
	if node == nil {
		node = rule.Begin
	}
	inputs, err := newResolver(g.Vars).topLevel(node)
	if err != nil {
		return nil, err
	}
	return pattern.Pattern(inputs...)
}

// Rule returns the named compiled rule.
func (c *Compiled) Rule(name string) (*CompiledRule, error) {
	r, ok := c.byName[name]
	if !ok {
		return nil, errors.Newf(errors.ErrRuleNotFound, "no rule named %s", name).
			WithDetail("grammar", c.Grammar.Name)
	}
	return r, nil
}

// MatchResult is the leftmost match of a rule's opening pattern.
type MatchResult struct {
	Rule    string `json:"rule"`
	Scope   string `json:"scope"`
	Pattern string `json:"pattern"`
	Engine  string `json:"engine"`
	Matched bool   `json:"matched"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Text    string `json:"text"`
}

// Match runs a rule's opening pattern against input.
func (c *Compiled) Match(rule, input string) (MatchResult, error) {
	r, err := c.Rule(rule)
	if err != nil {
		return MatchResult{}, err
	}
	re := r.Opening()
	res := MatchResult{
		Rule:    r.Name,
		Scope:   r.Scope,
		Pattern: re.String(),
		Engine:  string(re.Engine()),
		Start:   -1,
		End:     -1,
	}
	if loc := re.FindStringIndex(input); loc != nil {
		res.Matched = true
		res.Start, res.End = loc[0], loc[1]
		res.Text = input[loc[0]:loc[1]]
	}
	return res, nil
}
