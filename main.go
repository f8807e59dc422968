package main

import (
	"os"

	"github.com/lernio/lernio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
