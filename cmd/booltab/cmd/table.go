package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/booltab/booltab/internal/expr"
	"github.com/booltab/booltab/internal/render"
)

// identWarnThreshold is where enumeration starts to hurt: 2^18 rows.
const identWarnThreshold = 18

var (
	tableOnlyTrue  bool
	tableOnlyFalse bool
)

var tableCmd = &cobra.Command{
	Use:   "table <expression>",
	Short: "Print the truth table for an expression, identifiers are supported",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if tableOnlyTrue && tableOnlyFalse {
			return fail(errors.New("cannot filter for both true and false"))
		}
		filter := render.AllRows
		if tableOnlyTrue {
			filter = render.TrueRows
		} else if tableOnlyFalse {
			filter = render.FalseRows
		}

		ev, err := expr.Compile(args[0], true)
		if err != nil {
			return fail(err)
		}

		if n := len(ev.Identifiers()); n >= identWarnThreshold {
			prompt := fmt.Sprintf(
				"Performance warning: you're about to calculate %d results. Continue? [y/n]: ",
				uint64(1)<<n)
			if !confirm(prompt) {
				return fail(errors.New("aborted"))
			}
		}

		return render.WriteTruthTable(os.Stdout, ev, filter)
	},
}

func init() {
	tableCmd.Flags().BoolVarP(&tableOnlyTrue, "true", "t", false, "only print rows where the result is true")
	tableCmd.Flags().BoolVarP(&tableOnlyFalse, "false", "f", false, "only print rows where the result is false")
	rootCmd.AddCommand(tableCmd)
}
