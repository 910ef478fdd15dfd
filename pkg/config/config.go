package config

import (
	"time"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/pattern"
)

// Engine holds pattern engine settings
type Engine struct {
	Default      string        `koanf:"default" json:"default"`
	MatchTimeout time.Duration `koanf:"match_timeout" json:"matchTimeout"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format" json:"format"`
	Width  int    `koanf:"width" json:"width"`
}

// Grammar holds grammar lookup settings
type Grammar struct {
	Paths []string `koanf:"paths" json:"paths"`
}

// Logging holds log file settings
type Logging struct {
	File bool `koanf:"file" json:"file"`
}

// Config is the complete regexkit configuration
type Config struct {
	Engine  Engine  `koanf:"engine" json:"engine"`
	Output  Output  `koanf:"output" json:"output"`
	Grammar Grammar `koanf:"grammar" json:"grammar"`
	Logging Logging `koanf:"logging" json:"logging"`
}

var outputFormats = map[string]bool{"auto": true, "term": true, "text": true, "json": true}

// Default returns the configuration described by the embedded defaults.
func Default() *Config {
	return &Config{
		Engine:  Engine{Default: string(pattern.EngineAuto)},
		Output:  Output{Format: "auto"},
		Grammar: Grammar{Paths: []string{"."}},
		Logging: Logging{File: true},
	}
}

// Validate checks values that cannot be expressed by the decoder.
func (c *Config) Validate() error {
	if _, err := pattern.ParseEngine(c.Engine.Default); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid engine.default").
			WithDetail("value", c.Engine.Default)
	}
	if c.Engine.MatchTimeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "engine.match_timeout must not be negative, got %s", c.Engine.MatchTimeout)
	}
	if !outputFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigValid, "invalid output.format %q", c.Output.Format)
	}
	if c.Output.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.width must not be negative, got %d", c.Output.Width)
	}
	return nil
}

// PatternOptions returns the finalize options implied by the engine section.
func (c *Config) PatternOptions() []pattern.Option {
	engine, err := pattern.ParseEngine(c.Engine.Default)
	if err != nil {
		engine = pattern.EngineAuto
	}
	opts := []pattern.Option{pattern.WithEngine(engine)}
	if c.Engine.MatchTimeout > 0 {
		opts = append(opts, pattern.WithMatchTimeout(c.Engine.MatchTimeout))
	}
	return opts
}
