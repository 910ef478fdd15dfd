// Package display holds the command results handed to renderers.
package display

import (
	"github.com/arthur-debert/regexkit/pkg/grammar"
)

// EscapedText pairs an input with its escaped form.
type EscapedText struct {
	Input   string `json:"input"`
	Escaped string `json:"escaped"`
}

// EscapeResult is the output of the escape command.
type EscapeResult struct {
	Items []EscapedText `json:"items"`
}

// CompileResult is the output of the compile command.
type CompileResult struct {
	Grammar grammar.Exported `json:"grammar"`
}

// MatchResult is the output of the match command.
type MatchResult struct {
	Input string `json:"input"`
	grammar.MatchResult
}

// ExplainResult is the output of the explain command.
type ExplainResult struct {
	Grammar  string   `json:"grammar"`
	Rules    []string `json:"rules"`
	Markdown string   `json:"markdown"`
}

// Row is one table row of a compiled rule. Begin/end rules produce two.
type Row struct {
	Rule    string
	Scope   string
	Kind    string
	Pattern string
	Engine  string
}

// Rows flattens an exported grammar into table rows.
func (r *CompileResult) Rows() []Row {
	rows := make([]Row, 0, len(r.Grammar.Rules))
	for _, rule := range r.Grammar.Rules {
		if rule.Match != "" {
			rows = append(rows, Row{rule.Name, rule.Scope, "match", rule.Match, rule.Engine})
			continue
		}
		rows = append(rows,
			Row{rule.Name, rule.Scope, "begin", rule.Begin, rule.Engine},
			Row{"", "", "end", rule.End, ""},
		)
	}
	return rows
}

// TableData returns the rows as a header plus cells.
func (r *CompileResult) TableData() [][]string {
	data := [][]string{{"RULE", "SCOPE", "KIND", "PATTERN", "ENGINE"}}
	for _, row := range r.Rows() {
		data = append(data, []string{row.Rule, row.Scope, row.Kind, row.Pattern, row.Engine})
	}
	return data
}

// Segments splits the input around the match: before, matched, after.
// Without a match the whole input is returned as before.
func (r *MatchResult) Segments() (string, string, string) {
	if !r.Matched {
		return r.Input, "", ""
	}
	return r.Input[:r.Start], r.Input[r.Start:r.End], r.Input[r.End:]
}
