package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/ustring/internal/ustr"
)

func (a *app) replaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <needle> <replacement> [text]",
		Short: "Replace every occurrence of needle",
		Args:  textArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 2)
			if err != nil {
				return err
			}
			out, err := s.Replace(ustr.New(args[0]), ustr.New(args[1]))
			if err != nil {
				return usageError{err}
			}
			return a.report(out.String(), "result", out)
		},
	}
}

func (a *app) findCmd() *cobra.Command {
	var (
		from       int
		last       bool
		ignoreCase bool
	)
	cmd := &cobra.Command{
		Use:   "find <needle> [text]",
		Short: "Print the codepoint position of needle, or -1",
		Args:  textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.text(args, 1)
			if err != nil {
				return err
			}
			needle := ustr.New(args[0])

			var it ustr.Iterator
			switch {
			case ignoreCase:
				if last || from != 0 {
					return usageError{fmt.Errorf("--ignore-case cannot be combined with --last or --from")}
				}
				it = s.IndexIgnoreCase(needle)
			case last:
				it = s.FindLast(needle, from)
			default:
				it = s.FindFirst(needle, from)
			}

			found := !it.Equal(s.End())
			pos := -1
			if found {
				pos = it.Position()
			}
			return a.report(strconv.Itoa(pos), "found", found, "position", pos)
		},
	}
	cmd.Flags().IntVarP(&from, "from", "f", 0, "codepoint position to start at")
	cmd.Flags().BoolVarP(&last, "last", "l", false, "find the last occurrence")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare case insensitively")
	return cmd
}

func (a *app) substrCmd() *cobra.Command {
	var (
		count int
		bytes bool
	)
	cmd := &cobra.Command{
		Use:   "substr <start> [text]",
		Short: "Extract codepoints starting at start",
		Args:  textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{fmt.Errorf("start %q: %w", args[0], err)}
			}
			s, err := a.text(args, 1)
			if err != nil {
				return err
			}

			var out ustr.String
			switch {
			case bytes:
				if count < 0 {
					count = s.ByteLen() - start
				}
				out, err = s.SubstrBytes(start, count)
			case count < 0:
				out, err = s.Substr(start)
			default:
				out, err = s.SubstrN(start, count)
			}
			if err != nil {
				return err
			}
			return a.report(out.String(), "result", out)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", -1, "number of codepoints (default: to the end)")
	cmd.Flags().BoolVar(&bytes, "bytes", false, "start and count are byte offsets")
	return cmd
}

func (a *app) matchCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "match <pattern> [text]",
		Short: "Match an ECMAScript regular expression",
		Long: `Match an ECMAScript regular expression and print the whole match
followed by its groups, tab separated. Exits with an error when nothing
matches.`,
		Args: textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := ustr.CompileRegex(ustr.New(args[0]))
			if err != nil {
				return usageError{err}
			}
			s, err := a.text(args, 1)
			if err != nil {
				return err
			}

			limit := 1
			if all {
				limit = -1
			}
			matches, err := s.RegexFindAll(re, limit)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return fmt.Errorf("no match for %q", args[0])
			}

			lines := make([]string, len(matches))
			groups := make([][]string, len(matches))
			index := make([]int, len(matches))
			for i, m := range matches {
				groups[i] = plain(m.Groups).([]string)
				lines[i] = strings.Join(groups[i], "\t")
				index[i] = m.Index
			}
			return a.report(strings.Join(lines, "\n"), "matches", groups, "index", index)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match")
	return cmd
}
