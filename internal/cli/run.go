package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ustring/internal/config/loader"
	"github.com/dshills/ustring/internal/script"
)

func (a *app) runCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "run <script.lua> [arg...]",
		Short: "Run a Lua script with the ustr module",
		Long: `Run a Lua script in a sandbox with the ustr module loaded.

Extra arguments are available to the script in the global table arg.
print writes to stdout. The instruction budget comes from
script.instruction_limit.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			state := script.NewState(
				script.WithInstructionLimit(a.cfg.Script.InstructionLimit),
				script.WithExecutionTimeout(timeout),
				script.WithOutput(a.streams.Out),
				script.WithLogger(a.log.WithComponent("script")),
			)
			defer state.Close()

			argv := state.L.NewTable()
			for i, v := range args {
				argv.RawSetInt(i, lua.LString(v))
			}
			state.SetGlobal("arg", argv)

			if err := state.DoFile(ctx, args[0]); err != nil {
				return err
			}
			a.log.Debug("script done", "path", args[0], "instructions", state.InstructionCount())
			return nil
		},
	}
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", script.DefaultExecutionTimeout, "execution timeout (0 disables)")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Dump(loader.Format(format))
			if err != nil {
				return usageError{err}
			}
			_, err = fmt.Fprint(a.streams.Out, string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(loader.FormatTOML), "toml or yaml")
	return cmd
}
