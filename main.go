package main

import (
	"os"

	"github.com/propertyloop/leadmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
