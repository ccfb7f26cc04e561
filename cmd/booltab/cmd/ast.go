package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/booltab/booltab/internal/ast"
	"github.com/booltab/booltab/internal/expr"
	"github.com/booltab/booltab/internal/render"
)

// largeTreeNodes is where the grid renderer's exponential width becomes
// noticeable and the compact renderer is offered instead.
const largeTreeNodes = 10

var (
	astPretty   bool
	astExtended bool
)

var astCmd = &cobra.Command{
	Use:   "ast <expression>",
	Short: "Print the AST of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := expr.Parse(args[0])
		if err != nil {
			return fail(err)
		}

		pretty := astPretty
		if !pretty && ast.NodeCount(root) > largeTreeNodes {
			if confirm("Performance warning: switch to the more efficient compact renderer? [y/n]: ") {
				pretty = true
			}
		}

		if pretty {
			fmt.Println(render.CompactTree(root, astExtended))
		} else {
			fmt.Println(render.GridTree(root, astExtended))
		}
		return nil
	},
}

func init() {
	astCmd.Flags().BoolVarP(&astPretty, "pretty", "p", false, "use the compact box-drawing renderer")
	astCmd.Flags().BoolVarP(&astExtended, "extended", "e", false, "use expanded node labels")
	rootCmd.AddCommand(astCmd)
}
