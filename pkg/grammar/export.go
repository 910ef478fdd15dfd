package grammar

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/regexkit/pkg/pattern"
	"github.com/beevik/etree"
)

// ExportedRule is the serialized form of a compiled rule.
type ExportedRule struct {
	Name     string   `json:"name"`
	Scope    string   `json:"scope,omitempty"`
	Match    string   `json:"match,omitempty"`
	Begin    string   `json:"begin,omitempty"`
	End      string   `json:"end,omitempty"`
	Engine   string   `json:"engine"`
	Contains []string `json:"contains,omitempty"`
}

// Exported is the serialized form of a compiled grammar.
type Exported struct {
	Name      string         `json:"name"`
	ScopeName string         `json:"scopeName,omitempty"`
	FileTypes []string       `json:"fileTypes,omitempty"`
	Patterns  []string       `json:"patterns"`
	Rules     []ExportedRule `json:"rules"`
}

// Export flattens c for serialization. Flags are written inline as (?ims).
func (c *Compiled) Export() Exported {
	out := Exported{
		Name:      c.Grammar.Name,
		ScopeName: c.Grammar.ScopeName,
		FileTypes: c.Grammar.FileTypes,
		Patterns:  c.Grammar.TopLevel(),
		Rules:     make([]ExportedRule, 0, len(c.Rules)),
	}
	for _, r := range c.Rules {
		er := ExportedRule{
			Name:     r.Name,
			Scope:    r.Scope,
			Engine:   string(r.Opening().Engine()),
			Contains: r.Contains,
		}
		if r.Match != nil {
			er.Match = withInlineFlags(r.Match)
		} else {
			er.Begin = withInlineFlags(r.Begin)
			er.End = withInlineFlags(r.End)
		}
		out.Rules = append(out.Rules, er)
	}
	return out
}

func withInlineFlags(re *pattern.Regexp) string {
	if re.Flags() == 0 {
		return re.String()
	}
	return "(?" + re.Flags().String() + ")" + re.String()
}

// WriteJSON writes the exported grammar as indented JSON.
func (c *Compiled) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c.Export())
}

// WriteTextMate writes the grammar as a TextMate .tmLanguage plist. Every
// rule goes into the repository; top-level patterns and begin/end
// contents are includes.
func (c *Compiled) WriteTextMate(w io.Writer) error {
	exported := c.Export()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	root := plist.CreateElement("dict")

	plistString(root, "name", exported.Name)
	if exported.ScopeName != "" {
		plistString(root, "scopeName", exported.ScopeName)
	}
	if len(exported.FileTypes) > 0 {
		root.CreateElement("key").SetText("fileTypes")
		arr := root.CreateElement("array")
		for _, ft := range exported.FileTypes {
			arr.CreateElement("string").SetText(ft)
		}
	}

	root.CreateElement("key").SetText("patterns")
	includes(root.CreateElement("array"), exported.Patterns)

	root.CreateElement("key").SetText("repository")
	repo := root.CreateElement("dict")
	for i, r := range exported.Rules {
		repo.CreateElement("key").SetText(r.Name)
		rule := repo.CreateElement("dict")
		if r.Scope != "" {
			plistString(rule, "name", r.Scope)
		}
		if c.Rules[i].Match != nil {
			plistString(rule, "match", r.Match)
			continue
		}
		plistString(rule, "begin", r.Begin)
		plistString(rule, "end", r.End)
		if len(r.Contains) > 0 {
			rule.CreateElement("key").SetText("patterns")
			includes(rule.CreateElement("array"), r.Contains)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func plistString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func includes(arr *etree.Element, names []string) {
	for _, name := range names {
		plistString(arr.CreateElement("dict"), "include", "#"+name)
	}
}
