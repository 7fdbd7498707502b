package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/ustring/internal/ustr"
)

func (a *app) lenCmd() *cobra.Command {
	var bytes bool
	cmd := &cobra.Command{
		Use:   "len [text]",
		Short: "Count codepoints",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			n := s.Len()
			if bytes {
				n = s.ByteLen()
			}
			return a.report(strconv.Itoa(n),
				"codepoints", s.Len(),
				"bytes", s.ByteLen(),
				"inline", s.IsInline())
		},
	}
	cmd.Flags().BoolVarP(&bytes, "bytes", "b", false, "count bytes instead of codepoints")
	return cmd
}

func (a *app) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [text]",
		Short: "Print the 64-bit FNV-1a hash",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			h := fmt.Sprintf("%016x", s.Hash())
			return a.report(h, "hash", h)
		},
	}
}

func (a *app) widthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width [text]",
		Short: "Count monospace display cells",
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			w := s.DisplayWidth()
			return a.report(strconv.Itoa(w), "width", w)
		},
	}
}

func (a *app) padCmd() *cobra.Command {
	var (
		left bool
		fill string
	)
	cmd := &cobra.Command{
		Use:   "pad <width> [text]",
		Short: "Pad text to a display width",
		Args:  textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{fmt.Errorf("width %q: %w", args[0], err)}
			}
			s, err := a.text(args, 1)
			if err != nil {
				return err
			}
			pad := ustr.New(fill)
			if pad.Len() != 1 {
				return usageError{fmt.Errorf("--char must be a single codepoint, got %q", fill)}
			}
			it := pad.Begin()
			out := s.PadRight(width, it.Rune())
			if left {
				out = s.PadLeft(width, it.Rune())
			}
			return a.report(out.String(), "result", out)
		},
	}
	cmd.Flags().BoolVarP(&left, "left", "l", false, "pad on the left (right-align)")
	cmd.Flags().StringVar(&fill, "char", " ", "padding codepoint")
	return cmd
}

// mapCmd builds a command that transforms its text with fn.
func (a *app) mapCmd(name, short string, fn func(ustr.String) ustr.String) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [text]",
		Short: short,
		Args:  textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 0)
			if err != nil {
				return err
			}
			out := fn(s)
			a.log.Debug(name, "in_bytes", s.ByteLen(), "out_bytes", out.ByteLen())
			return a.report(out.String(), "result", out)
		},
	}
}
