package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/ustring/internal/config/loader"
	"github.com/dshills/ustring/internal/ustr"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "USTRING_"

// Config holds every ustring setting.
type Config struct {
	Log      LogConfig      `toml:"log" yaml:"log"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Split    SplitConfig    `toml:"split" yaml:"split"`
	Multiply MultiplyConfig `toml:"multiply" yaml:"multiply"`
	Format   FormatConfig   `toml:"format" yaml:"format"`
	Script   ScriptConfig   `toml:"script" yaml:"script"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error or disabled.
	Level string `toml:"level" yaml:"level"`
	// Format is console, json or auto (console on a terminal).
	Format string `toml:"format" yaml:"format"`
}

// OutputConfig controls command results written to stdout.
type OutputConfig struct {
	// Format is text or json.
	Format string `toml:"format" yaml:"format"`
}

// SplitConfig holds defaults for the split and join commands.
type SplitConfig struct {
	Separator   ustr.String `toml:"separator" yaml:"separator"`
	RemoveEmpty bool        `toml:"remove_empty" yaml:"remove_empty"`
}

// MultiplyConfig holds defaults for the repeat command.
type MultiplyConfig struct {
	Separator ustr.String `toml:"separator" yaml:"separator"`
}

// FormatConfig holds defaults for the format command.
type FormatConfig struct {
	FloatSpec ustr.String `toml:"float_spec" yaml:"float_spec"`
}

// ScriptConfig holds limits for Lua scripts.
type ScriptConfig struct {
	// InstructionLimit bounds the instructions a script may execute.
	// Zero means unlimited.
	InstructionLimit int64 `toml:"instruction_limit" yaml:"instruction_limit"`
}

// stringSettings are the text-valued settings. Environment values for them
// are taken verbatim.
var stringSettings = []string{
	"log.level",
	"log.format",
	"output.format",
	"split.separator",
	"multiply.separator",
	"format.float_spec",
}

var (
	logLevels     = []string{"debug", "info", "warn", "error", "disabled"}
	logFormats    = []string{"auto", "console", "json"}
	outputFormats = []string{"text", "json"}
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "auto"},
		Output:   OutputConfig{Format: "text"},
		Split:    SplitConfig{Separator: ustr.New(",")},
		Multiply: MultiplyConfig{},
		Format:   FormatConfig{FloatSpec: ustr.New("%g")},
		Script:   ScriptConfig{InstructionLimit: 1_000_000},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	path      string
	fs        loader.FileSystem
	environ   []string
	useEnv    bool
	overrides map[string]any
}

// WithFile reads settings from path. An empty path disables the file layer.
func WithFile(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFS reads the config file through fs.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnviron replaces the process environment with env (KEY=VALUE pairs).
func WithEnviron(env []string) Option {
	return func(o *options) {
		o.environ = env
		o.useEnv = true
	}
}

// WithOverride sets a dot separated setting above every other layer.
func WithOverride(path string, value any) Option {
	return func(o *options) {
		loader.SetPath(o.overrides, path, value)
	}
}

// DefaultPath returns the per-user config file location, or "" when the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ustring", "config.toml")
}

// Load resolves settings from defaults, the config file, the environment
// and overrides, then validates them.
func Load(opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS(), overrides: make(map[string]any)}
	for _, opt := range opts {
		opt(&o)
	}

	var layers []map[string]any
	if o.path != "" {
		file, err := loader.NewFileLoaderWithFS(o.fs, o.path).Load()
		if err != nil {
			return nil, err
		}
		layers = append(layers, file)
	}

	env := loader.NewEnvLoader(EnvPrefix)
	if o.useEnv {
		env = loader.NewEnvLoaderFrom(EnvPrefix, o.environ)
	}
	vars, err := env.KeepStrings(stringSettings...).Load()
	if err != nil {
		return nil, err
	}
	layers = append(layers, vars, o.overrides)

	cfg := Default()
	if err := cfg.apply(loader.DeepMerge(layers...)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes settings over the current values. Settings absent from
// the map keep their value.
func (c *Config) apply(settings map[string]any) error {
	if len(settings) == 0 {
		return nil
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: unknown setting: %s", ErrDecode, strict.String())
		}
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Validate reports every setting outside its domain.
func (c *Config) Validate() error {
	var errs []error
	oneOf := func(path, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, &ValidationError{
				Path:    path,
				Value:   value,
				Message: fmt.Sprintf("must be one of %v", allowed),
			})
		}
	}
	oneOf("log.level", c.Log.Level, logLevels)
	oneOf("log.format", c.Log.Format, logFormats)
	oneOf("output.format", c.Output.Format, outputFormats)

	if c.Format.FloatSpec.IsEmpty() {
		errs = append(errs, &ValidationError{Path: "format.float_spec", Value: `""`, Message: "must not be empty"})
	} else if _, err := ustr.Format(1.5, c.Format.FloatSpec); err != nil {
		errs = append(errs, &ValidationError{Path: "format.float_spec", Value: c.Format.FloatSpec, Message: err.Error()})
	}
	if c.Script.InstructionLimit < 0 {
		errs = append(errs, &ValidationError{
			Path:    "script.instruction_limit",
			Value:   c.Script.InstructionLimit,
			Message: "must not be negative",
		})
	}
	return errors.Join(errs...)
}

// Dump encodes the settings as TOML or YAML.
func (c *Config) Dump(format loader.Format) ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, err
	}
	switch format {
	case loader.FormatTOML:
		return data, nil
	case loader.FormatYAML:
		var settings map[string]any
		if err := toml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
		return yaml.Marshal(settings)
	}
	return nil, fmt.Errorf("%s: %w", format, loader.ErrUnknownFormat)
}
