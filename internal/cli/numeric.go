package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/ustring/internal/ustr"
)

func (a *app) intCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "int [text]",
		Short: "Parse a decimal integer",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			v, err := s.ToInt()
			if err != nil {
				return err
			}
			return a.report(ustr.FromInt(v).String(), "value", v)
		},
	}
}

func (a *app) floatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float [text]",
		Short: "Parse a decimal number",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			v, err := s.ToFloat()
			if err != nil {
				return err
			}
			text := ustr.FromFloat(v)
			return a.report(text.String(), "value", text)
		},
	}
}

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <spec> [value]",
		Short: "Format a number with a printf verb",
		Long: `Format a number with a printf style spec such as "%08.3f" or "%x".

Integers are formatted as int, anything else as float64. With an empty
spec integers use "%d" and floats use format.float_spec from the config.`,
		Args: textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 1)
			if err != nil {
				return err
			}

			var value any
			layout := ustr.New(args[0])
			if i, ok := s.TryToInt(); ok {
				value = i
				if layout.IsEmpty() {
					layout = ustr.New("%d")
				}
			} else {
				f, err := s.ToFloat()
				if err != nil {
					return err
				}
				value = f
				if layout.IsEmpty() {
					layout = a.cfg.Format.FloatSpec
				}
			}

			out, err := ustr.Format(value, layout)
			if err != nil {
				return err
			}
			return a.report(out.String(), "result", out)
		},
	}
}
