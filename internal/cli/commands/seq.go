package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/minitorch/internal/config"
	"github.com/born-ml/minitorch/internal/funcs"
	"github.com/born-ml/minitorch/internal/operators"
	"github.com/born-ml/minitorch/internal/parallel"
)

// NewSeqCommand creates the seq command and its list-operation subcommands.
//
// Values may be given as separate arguments or comma-separated lists.
func NewSeqCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Apply list operations to a sequence of numbers",
		Long: `Apply the sequence combinators to numbers given on the command line.

Use -- before negative values.`,
	}

	cmd.AddCommand(newSeqNegCommand())
	cmd.AddCommand(newSeqReduceCommand("sum", "Sum the values", funcs.Sum[float64]))
	cmd.AddCommand(newSeqReduceCommand("prod", "Multiply the values", funcs.Prod[float64]))
	cmd.AddCommand(newSeqAddCommand())
	cmd.AddCommand(newSeqMapCommand())

	return cmd
}

func writeValues(w io.Writer, vals []float64) error {
	parts := funcs.Map(formatFloat, vals)
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func newSeqNegCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "neg <values...>",
		Short: "Negate every value",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), funcs.NegList(vals))
		},
	}
}

func newSeqReduceCommand(name, short string, reduce func([]float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <values...>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatFloat(reduce(vals)))
			return err
		},
	}
}

func newSeqAddCommand() *cobra.Command {
	var (
		with   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "add --with <values> <values...>",
		Short: "Add two sequences elementwise",
		Long: `Add two sequences elementwise.

The result is as long as the shorter sequence unless --strict is set, in which
case sequences of different length are an error.`,
		Example: `  minitorch seq add --with 10,20 1 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseFloats(args)
			if err != nil {
				return err
			}
			b, err := parseFloats([]string{with})
			if err != nil {
				return err
			}

			var out []float64
			if strict {
				out, err = funcs.ZipWithExact(a, b, operators.Add[float64])
				if err != nil {
					return err
				}
			} else {
				out = funcs.AddLists(a, b)
			}
			return writeValues(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&with, "with", "", "Comma-separated second sequence")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the sequences differ in length")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}

func newSeqMapCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "map <op> <values...>",
		Short:   "Apply a unary operator to every value",
		Example: `  minitorch seq map sigmoid 0 1 2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.GetLogger(ctx)

			e, err := operators.Lookup(args[0])
			if err != nil {
				return err
			}
			fn, ok := e.Unary()
			if !ok {
				return fmt.Errorf("operator %q cannot be mapped: it must take one argument and never fail", e.Name)
			}

			vals, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			pcfg := parallel.DefaultConfig().WithWorkers(cfg.Workers)
			out, err := funcs.MapParallel(ctx, fn, vals, pcfg)
			if err != nil {
				return err
			}
			logger.Debug("mapped sequence", "op", e.Name, "n", len(vals), "workers", pcfg.NumWorkers)

			return writeValues(cmd.OutOrStdout(), out)
		},
	}
}
