package main

import (
	"os"

	"github.com/jhartmann/carwatch/cmd/carwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
