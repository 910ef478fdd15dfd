package regexkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/regexkit/internal/version"
	"github.com/arthur-debert/regexkit/pkg/config"
	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/grammar"
	"github.com/arthur-debert/regexkit/pkg/logging"
	"github.com/arthur-debert/regexkit/pkg/paths"
	"github.com/arthur-debert/regexkit/pkg/pattern"
	"github.com/arthur-debert/regexkit/pkg/ui"
	"github.com/arthur-debert/regexkit/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags and the configuration they resolve to.
type globals struct {
	verbosity  int
	configPath string
	engine     string
	format     string

	cfg *config.Config
}

// setup loads the configuration, letting explicitly set flags win, and
// configures logging.
func (g *globals) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("engine") {
		overrides["engine.default"] = g.engine
	}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = g.format
	}

	cfg, err := config.Load(config.LoadOptions{Path: g.configPath, Overrides: overrides})
	if err != nil {
		return err
	}
	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: g.verbosity,
		File:      cfg.Logging.File,
		Out:       cmd.ErrOrStderr(),
	})
	g.cfg = cfg

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout(), g.cfg.Output.Width)
}

// compile finds, loads and compiles a grammar with the configured engine.
// Names are looked up in grammar.paths, then in the installed grammars.
func (g *globals) compile(name string) (*grammar.Compiled, error) {
	dirs := append(append([]string(nil), g.cfg.Grammar.Paths...), paths.New().GrammarsDir())
	path, err := grammar.Find(name, dirs)
	if err != nil {
		return nil, err
	}
	gr, err := grammar.Load(path)
	if err != nil {
		return nil, err
	}
	return gr.Compile(g.cfg.PatternOptions()...)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "regexkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.engine, "engine", "", MsgFlagEngine)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newEscapeCmd(g))
	rootCmd.AddCommand(newCompileCmd(g))
	rootCmd.AddCommand(newMatchCmd(g))
	rootCmd.AddCommand(newExplainCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newEscapeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "escape TEXT...",
		Short:   MsgEscapeShort,
		Long:    MsgEscapeLong,
		Example: MsgEscapeExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := &display.EscapeResult{Items: make([]display.EscapedText, len(args))}
			for i, text := range args {
				result.Items[i] = display.EscapedText{Input: text, Escaped: pattern.Escape(text)}
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
}

func newCompileCmd(g *globals) *cobra.Command {
	var export, output string

	cmd := &cobra.Command{
		Use:     "compile GRAMMAR",
		Short:   MsgCompileShort,
		Long:    MsgCompileLong,
		Example: MsgCompileExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.compile")

			c, err := g.compile(args[0])
			if err != nil {
				return err
			}
			logger.Info().Str("grammar", c.Grammar.Name).Int("rules", len(c.Rules)).Msg("Grammar compiled")

			if export == "" {
				r, err := g.renderer(cmd)
				if err != nil {
					return err
				}
				return r.RenderResult(&display.CompileResult{Grammar: c.Export()})
			}
			return writeExport(cmd, c, export, output)
		},
	}

	cmd.Flags().StringVar(&export, "export", "", MsgFlagExport)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func writeExport(cmd *cobra.Command, c *grammar.Compiled, export, output string) error {
	var write func(io.Writer) error
	switch export {
	case "json":
		write = c.WriteJSON
	case "tmlanguage", "plist":
		write = c.WriteTextMate
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownExport, export)
	}

	if output == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", output)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", output)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", output)
	}
	_, err = fmt.Fprintf(cmd.ErrOrStderr(), MsgExportWritten+"\n", export, output)
	return err
}

func newMatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "match GRAMMAR RULE INPUT",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.compile(args[0])
			if err != nil {
				return err
			}
			res, err := c.Match(args[1], args[2])
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.MatchResult{Input: args[2], MatchResult: res})
		},
	}
}

func newExplainCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "explain GRAMMAR [RULE...]",
		Short:   MsgExplainShort,
		Long:    MsgExplainLong,
		Example: MsgExplainExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.compile(args[0])
			if err != nil {
				return err
			}
			rules := args[1:]
			markdown, err := c.Explain(rules...)
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.ExplainResult{
				Grammar:  c.Grammar.Name,
				Rules:    rules,
				Markdown: markdown,
			})
		},
	}
}

func newGenConfigCmd(g *globals) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), content)
				return err
			}

			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "regexkit version %s\n  commit: %s\n  built:  %s\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
