package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/minitorch/internal/config"
	"github.com/born-ml/minitorch/internal/operators"
)

type opRecord struct {
	Name     string         `json:"name"`
	Arity    int            `json:"arity"`
	Kind     operators.Kind `json:"kind"`
	Fallible bool           `json:"fallible"`
}

// NewOpsCommand creates the ops command.
func NewOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List scalar operators",
		Long:  `List the scalar operators available to eval and seq map.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			entries := operators.Entries()
			r := result{header: []string{"Name", "Arity", "Kind", "Fallible"}}
			records := make([]opRecord, len(entries))
			for i, e := range entries {
				r.rows = append(r.rows, []string{e.Name, strconv.Itoa(e.Arity), string(e.Kind), strconv.FormatBool(e.Fallible)})
				records[i] = opRecord{Name: e.Name, Arity: e.Arity, Kind: e.Kind, Fallible: e.Fallible}
			}
			r.data = records

			return render(cmd.OutOrStdout(), cfg.Output, r)
		},
	}
}

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <args...>",
		Short: "Evaluate a scalar operator",
		Long: `Evaluate one scalar operator on the given arguments.

Backward operators take the forward input followed by the upstream gradient.
Use -- before negative arguments.`,
		Example: `  minitorch eval sigmoid 0
  minitorch eval log_back 2 1
  minitorch eval neg -- -3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.GetLogger(cmd.Context())

			e, err := operators.Lookup(args[0])
			if err != nil {
				return err
			}
			vals, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			v, err := e.Call(vals...)
			if err != nil {
				return err
			}
			logger.Debug("evaluated operator", "op", e.Name, "args", vals, "result", v)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.Format(v))
			return err
		},
	}
}
