package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/booltab/booltab/internal/expr"
)

var truthCmd = &cobra.Command{
	Use:   "truth <value>... <expression>",
	Short: "Evaluate an expression under an explicit assignment, identifiers are supported",
	Long: `Evaluate an expression under an explicit assignment.

The values before the expression form the assignment. A single value may be
a boolean (true|false|0|1), a binary string (e.g. 0101) or an unsigned
number; multiple values assign one boolean per identifier in ascending
order.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, expression := args[:len(args)-1], args[len(args)-1]

		pass, err := parseAssignment(values)
		if err != nil {
			return fail(err)
		}

		res, err := expr.EvaluatePass(expression, pass)
		if err != nil {
			return fail(err)
		}
		fmt.Println(res.Result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(truthCmd)
}
