package main

import (
	"os"

	"github.com/lazypower/lovesim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
