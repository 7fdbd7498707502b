package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/ustring/internal/strmap"
	"github.com/dshills/ustring/internal/ustr"
)

// separator returns the --sep value when it was given, else def.
func separator(cmd *cobra.Command, flag string, def ustr.String) ustr.String {
	if cmd.Flags().Changed("sep") {
		return ustr.New(flag)
	}
	return def
}

func (a *app) repeatCmd() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "repeat <count> [text]",
		Short: "Repeat text count times",
		Args:  textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{fmt.Errorf("count %q: %w", args[0], err)}
			}
			s, err := a.text(args, 1)
			if err != nil {
				return err
			}
			out := s.Multiply(count, separator(cmd, sep, a.cfg.Multiply.Separator))
			return a.report(out.String(), "result", out)
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "separator between copies (default from config)")
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var (
		sep         string
		removeEmpty bool
	)
	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split text on a separator, one part per line",
		Long: `Split text on every occurrence of the separator.

An empty separator splits between codepoints and yields an empty part at
each end.`,
		Args: textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			drop := a.cfg.Split.RemoveEmpty
			if cmd.Flags().Changed("remove-empty") {
				drop = removeEmpty
			}
			parts := s.Split(separator(cmd, sep, a.cfg.Split.Separator), drop)
			a.log.Debug("split", "parts", len(parts), "remove_empty", drop)
			return a.report(joinLines(parts), "parts", parts, "count", len(parts))
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "separator (default from config)")
	cmd.Flags().BoolVarP(&removeEmpty, "remove-empty", "r", false, "drop empty parts")
	return cmd
}

func (a *app) joinCmd() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "join [part...]",
		Short: "Join parts with a separator",
		Long:  "Join the arguments, or the lines of stdin when there are none.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var parts []ustr.String
			if len(args) > 0 {
				parts = make([]ustr.String, len(args))
				for i, arg := range args {
					parts[i] = ustr.New(arg)
				}
			} else {
				s, err := a.text(nil, 0)
				if err != nil {
					return err
				}
				parts = s.Split(ustr.New("\n"), false)
			}
			out := ustr.Join(parts, separator(cmd, sep, a.cfg.Split.Separator))
			return a.report(out.String(), "result", out)
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "separator (default from config)")
	return cmd
}

func (a *app) freqCmd() *cobra.Command {
	var (
		sep        string
		ignoreCase bool
	)
	cmd := &cobra.Command{
		Use:   "freq [text]",
		Short: "Count how often each part occurs",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			counts := strmap.New[int]()
			defer counts.Clear()
			for _, part := range s.Split(separator(cmd, sep, ustr.New(" ")), true) {
				if ignoreCase {
					part = part.ToLower()
				}
				n, _ := counts.Get(part)
				counts.Set(part, n+1)
			}

			keys := counts.SortedKeys()
			width := 0
			for _, k := range keys {
				width = max(width, k.DisplayWidth())
			}
			var b strings.Builder
			doc := make(map[string]int, len(keys))
			for i, k := range keys {
				n, _ := counts.Get(k)
				doc[k.String()] = n
				if i > 0 {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, "%s %d", k.PadRight(width, ' '), n)
			}
			return a.report(b.String(), "counts", doc, "distinct", len(keys))
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "separator (default: space)")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "count case variants together")
	return cmd
}

func (a *app) uniqCmd() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "uniq [text]",
		Short: "Drop repeated parts, keeping the first occurrence",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			in := strmap.NewInterner()
			defer in.Reset()

			var parts []ustr.String
			for _, part := range s.Split(separator(cmd, sep, ustr.New("\n")), false) {
				before := in.Len()
				part = in.Intern(part)
				if in.Len() > before {
					parts = append(parts, part)
				}
			}
			return a.report(joinLines(parts), "parts", parts, "count", len(parts))
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", "", `separator (default: "\n")`)
	return cmd
}

func joinLines(parts []ustr.String) string {
	return ustr.Join(parts, ustr.New("\n")).String()
}
