package main

import (
	"os"

	"github.com/containment-chamber/containment-chamber/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
