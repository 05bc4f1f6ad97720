package main

import (
	"os"

	"github.com/shapestone/shape-dsv/cmd/dsv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
