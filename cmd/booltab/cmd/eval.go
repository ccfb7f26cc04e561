package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/booltab/booltab/internal/expr"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression, identifiers are not supported",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := expr.EvaluateConst(args[0])
		if err != nil {
			return fail(err)
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
