// Package grammar loads declarative tokenizer grammars whose patterns are
// written as pattern trees instead of escaped regex strings.
//
// A grammar file (YAML or TOML) names a set of rules. Each rule has a scope
// and either a match pattern or a begin/end pair. Pattern nodes are:
//
//	"text"                      literal text
//	[a, b, c]                   sequence
//	{re: '\s+'}                 raw regex fragment ("[...]" becomes a class)
//	{class: 'a-z'}              character class, {not_class: ...} negated
//	{next: X}, {not_next: X}    lookahead and negative lookahead
//	{star: X}, {plus: X}, {opt: X}
//	{repeat: {min: 1, max: 3, of: X}}
//	{oneof: [X, Y]}             alternation
//	{ref: name}                 a named entry of the grammar's vars
//	{lit: "text"}               explicit literal
//	{fmt: {template: '@%s', args: [X]}}
//
// Compiled grammars can be exported as JSON or as a TextMate plist.
package grammar
