package main

import (
	"os"

	"github.com/springen/springen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
