// Package cli implements the ustring command tree.
//
// Every command reads its text from the first argument, or from stdin when
// the argument is omitted, and writes its result to stdout as plain text or,
// with --output json, as one JSON object per invocation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/ustring/internal/config"
	"github.com/dshills/ustring/internal/logging"
	"github.com/dshills/ustring/internal/ustr"
)

// Version information (set via ldflags during build).
var (
	Version = "dev"
	Commit  = "unknown"
)

// Streams are the standard streams a command tree reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// app is the state shared by every command of one invocation.
type app struct {
	streams Streams

	configPath string
	output     string
	logLevel   string
	environ    []string

	cfg *config.Config
	log *logging.Logger
}

// Option configures the command tree.
type Option func(*app)

// WithEnviron replaces the process environment used for USTRING_ settings.
func WithEnviron(env []string) Option {
	return func(a *app) {
		a.environ = env
	}
}

// NewRootCommand builds the ustring command tree.
func NewRootCommand(streams Streams, opts ...Option) *cobra.Command {
	a := &app{streams: streams, log: logging.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "ustring",
		Short: "Unicode aware string tool",
		Long: `ustring applies UTF-8 string operations to its input.

Positions and lengths count codepoints, not bytes. Text is read from the
first argument, or from stdin when it is omitted.`,
		Version:           fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: user config dir/ustring/config.toml)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text or json")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error or disabled")

	root.AddCommand(
		a.lenCmd(),
		a.hashCmd(),
		a.widthCmd(),
		a.padCmd(),
		a.mapCmd("upper", "Convert to upper case", ustr.String.ToUpper),
		a.mapCmd("lower", "Convert to lower case", ustr.String.ToLower),
		a.mapCmd("trim", "Strip leading and trailing white space", ustr.String.Trim),
		a.mapCmd("reverse", "Reverse the codepoint order", ustr.String.Reverse),
		a.repeatCmd(),
		a.splitCmd(),
		a.joinCmd(),
		a.freqCmd(),
		a.uniqCmd(),
		a.replaceCmd(),
		a.findCmd(),
		a.substrCmd(),
		a.matchCmd(),
		a.intCmd(),
		a.floatCmd(),
		a.formatCmd(),
		a.runCmd(),
		a.configCmd(),
	)
	return root
}

// Execute runs the command tree with args and returns the exit code.
func Execute(args []string, streams Streams, opts ...Option) int {
	root := NewRootCommand(streams, opts...)
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	fmt.Fprintf(streams.Err, "Error: %v\n", err)
	if cmd != nil && isUsageError(err) {
		fmt.Fprintln(streams.Err, cmd.UsageString())
	}
	return 1
}

// usageError marks errors caused by the command line itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

// setup loads the configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	opts := []config.Option{config.WithFile(path)}
	if a.environ != nil {
		opts = append(opts, config.WithEnviron(a.environ))
	}
	if a.output != "" {
		opts = append(opts, config.WithOverride("output.format", a.output))
	}
	if a.logLevel != "" {
		opts = append(opts, config.WithOverride("log.level", a.logLevel))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.log = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: a.streams.Err,
	}).WithComponent("cli")
	a.log.Debug("command", "name", cmd.Name(), "config", path)
	return nil
}

// text returns args[i] as a String, or stdin without its final line break
// when args has no element i.
func (a *app) text(args []string, i int) (ustr.String, error) {
	if i < len(args) {
		return ustr.New(args[i]), nil
	}
	data, err := io.ReadAll(a.streams.In)
	if err != nil {
		return ustr.String{}, fmt.Errorf("reading stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	return ustr.New(s), nil
}

// report writes line in text mode, or the key/value pairs as one JSON
// object in json mode.
func (a *app) report(line string, keyValues ...any) error {
	if a.cfg.Output.Format != "json" {
		_, err := fmt.Fprintln(a.streams.Out, line)
		return err
	}
	doc := "{}"
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			return fmt.Errorf("report: key %v is not a string", keyValues[i])
		}
		var err error
		if doc, err = sjson.Set(doc, key, plain(keyValues[i+1])); err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}
	}
	_, err := fmt.Fprintln(a.streams.Out, doc)
	return err
}

// plain converts Strings to Go strings so sjson encodes them as JSON
// strings.
func plain(v any) any {
	switch v := v.(type) {
	case ustr.String:
		return v.String()
	case []ustr.String:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = s.String()
		}
		return out
	}
	return v
}

// textArgs accepts the arguments before the text plus an optional text.
func textArgs(before int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(before, before+1)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
