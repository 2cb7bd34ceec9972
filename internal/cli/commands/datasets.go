package commands

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/minitorch/internal/config"
	"github.com/born-ml/minitorch/internal/datasets"
)

// NewDatasetsCommand creates the datasets command.
func NewDatasetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Generate synthetic classification datasets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List dataset generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range datasets.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sample <name>",
		Short: "Generate a labelled point set",
		Long: `Generate a labelled point set.

The number of points and the random seed come from --points and --seed
(or the config file / MINITORCH_POINTS / MINITORCH_SEED).`,
		Example: `  minitorch datasets sample xor --points 20 --seed 7 -o csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.GetLogger(ctx)

			gen, err := datasets.Lookup(args[0])
			if err != nil {
				return err
			}

			g := gen(cfg.Points, rand.NewPCG(cfg.Seed, cfg.Seed))
			positives, ratio := datasets.Summary(g)
			logger.Debug("generated dataset",
				"name", args[0], "points", len(g.X), "seed", cfg.Seed,
				"positives", positives, "ratio", ratio)

			r := result{header: []string{"X1", "X2", "Y"}, data: g}
			for i, p := range g.X {
				r.rows = append(r.rows, []string{formatFloat(p.X1), formatFloat(p.X2), strconv.Itoa(g.Y[i])})
			}
			return render(cmd.OutOrStdout(), cfg.Output, r)
		},
	})

	return cmd
}
