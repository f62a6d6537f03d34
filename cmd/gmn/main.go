package main

import (
	"os"

	"github.com/bnema/guess-my-number-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
