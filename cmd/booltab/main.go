package main

import (
	"os"

	"github.com/booltab/booltab/cmd/booltab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
