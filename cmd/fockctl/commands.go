// SPDX-License-Identifier: MIT
// Subcommands of fockctl. Each one parses its ket arguments, runs one fock
// operation and prints the result(s), one state per line.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fockspace/fock"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <ket>",
		Short: "Parse a state and describe it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			writeln(w, "state:   ", a.render(s))
			writeln(w, "modes:   ", s.Modes())
			writeln(w, "photons: ", s.Photons())
			writeln(w, "defined: ", s.Defined())
			if counts, err := s.Counts(); err == nil {
				writeln(w, "counts:  ", counts)
				writeln(w, "nfact:   ", s.ProdNFact())
			}
			writeln(w, "hash:    ", fmt.Sprintf("%016x", s.Hash()))

			return nil
		},
	}
}

func (a *app) nextCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "next <ket>",
		Short: "Print the successor of a state in enumeration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return err
			}
			next, err := s.Advance(count)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), a.render(next))

			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of successor steps")

	return cmd
}

func (a *app) enumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enum <modes> <photons>",
		Short: "List every placement of photons in modes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, n, err := atoi2(args[0], args[1])
			if err != nil {
				return err
			}
			if _, err = fock.New(m, n); err != nil {
				return err
			}
			limit := a.v.GetInt(cfgKeyLimit)
			a.log.Debug("enumerating", "modes", m, "photons", n, "total", fock.NumStates(m, n), "limit", limit)

			w := cmd.OutOrStdout()
			printed := 0
			for s := range fock.All(m, n) {
				if limit > 0 && printed == limit {
					break
				}
				writeln(w, a.render(s))
				printed++
			}

			return nil
		},
	}
	cmd.Flags().Int(flagName(cfgKeyLimit), 0, "stop after this many states (0 = all)")

	return cmd
}

func (a *app) tensorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tensor <ket> <ket>...",
		Short: "Compose states left to right",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.parse(args[0])
			if err != nil {
				return err
			}
			for _, text := range args[1:] {
				s, err := a.parse(text)
				if err != nil {
					return err
				}
				if acc, err = acc.Tensor(s); err != nil {
					return fmt.Errorf("tensor with %s: %w", text, err)
				}
			}
			writeln(cmd.OutOrStdout(), a.render(acc))

			return nil
		},
	}
}

func (a *app) sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <ket> <start> <end> [step]",
		Short: "Extract a range of modes",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return err
			}
			start, end, err := atoi2(args[1], args[2])
			if err != nil {
				return err
			}
			step := 1
			if len(args) == 4 {
				if step, err = strconv.Atoi(args[3]); err != nil {
					return fmt.Errorf("step: %w", err)
				}
			}
			out, err := s.Slice(start, end, step)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), a.render(out))

			return nil
		},
	}
}

func (a *app) setSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-slice <ket> <replacement> <start> <end>",
		Short: "Replace a range of modes",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return err
			}
			r, err := a.parse(args[1])
			if err != nil {
				return err
			}
			start, end, err := atoi2(args[2], args[3])
			if err != nil {
				return err
			}
			out, err := s.SetSlice(r, start, end)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), a.render(out))

			return nil
		},
	}
}

func (a *app) separateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "separate <ket>",
		Short: "Split a state into distinguishable annotation-free states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return err
			}
			parts, err := s.Separate()
			if err != nil {
				return err
			}
			a.log.Debug("separated", "state", s.String(), "groups", len(parts))
			w := cmd.OutOrStdout()
			for _, p := range parts {
				writeln(w, a.render(p))
			}

			return nil
		},
	}
}

// atoi2 converts two integer arguments.
func atoi2(x, y string) (int, int, error) {
	a, err := strconv.Atoi(x)
	if err != nil {
		return 0, 0, fmt.Errorf("not an integer: %q", x)
	}
	b, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, fmt.Errorf("not an integer: %q", y)
	}

	return a, b, nil
}
