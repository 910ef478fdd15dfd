package regexkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compose regular expressions from pattern trees"
	MsgEscapeShort     = "Escape text so it matches literally"
	MsgEscapeLong      = "Escape prints each argument with every regex metacharacter backslash-escaped."
	MsgCompileShort    = "Compile a grammar and show its patterns"
	MsgMatchShort      = "Run one grammar rule against input"
	MsgMatchLong       = "Match compiles GRAMMAR and reports the leftmost match of RULE in INPUT. For begin/end rules the begin pattern is used."
	MsgExplainShort    = "Describe grammar rules as a pattern outline"
	MsgExplainLong     = "Explain prints each rule's compiled pattern together with an outline of the pattern tree it was built from. Without RULE every rule is described."
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgGenConfigLong   = "Output the default configuration with every value commented out. With -w it is written to the user config file instead."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s"
	MsgExportWritten = "Wrote %s export to %s"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrUnknownExport = "unknown export format %q (want json or tmlanguage)"
	MsgErrConfigExists  = "%s already exists"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/regexkit/config.toml)"
	MsgFlagEngine  = "Pattern engine: auto, coregex or regexp2"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagExport  = "Write the grammar as json or tmlanguage instead of a table"
	MsgFlagOutput  = "Write the export to this file instead of stdout"
	MsgFlagWrite   = "Write the config file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/compile-long.txt
	msgCompileLongRaw string
	MsgCompileLong    = strings.TrimSpace(msgCompileLongRaw)

	//go:embed msgs/compile-example.txt
	msgCompileExampleRaw string
	MsgCompileExample    = strings.TrimRight(msgCompileExampleRaw, "\n")

	//go:embed msgs/match-example.txt
	msgMatchExampleRaw string
	MsgMatchExample    = strings.TrimRight(msgMatchExampleRaw, "\n")

	//go:embed msgs/explain-example.txt
	msgExplainExampleRaw string
	MsgExplainExample    = strings.TrimRight(msgExplainExampleRaw, "\n")

	//go:embed msgs/escape-example.txt
	msgEscapeExampleRaw string
	MsgEscapeExample    = strings.TrimRight(msgEscapeExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
