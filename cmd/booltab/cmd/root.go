// Package cmd implements the booltab command line. Subcommand errors are
// printed by the command that raised them (diagnostics span several lines,
// which cobra's own error printing mangles), so the root silences both.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "booltab",
	Short: "Evaluates boolean algebra expressions",
	Long: `Evaluates boolean algebra expressions.

Syntax:
  AND: &
  OR: |
  XOR: ^
  NOT: !
  EQUAL: =
  TRUE: 1 or true
  FALSE: 0 or false
  IDENTIFIERS: a-z`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// fail prints the error to stderr and hands it back so Execute reports a
// non-zero exit.
func fail(err error) error {
	fmt.Fprintln(os.Stderr, err)
	return err
}

// confirm loops on stdin until one of the offered answers is entered and
// reports whether it was the affirmative one.
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.TrimSpace(line) {
		case "y":
			return true
		case "n":
			return false
		}
		fmt.Println()
	}
}
