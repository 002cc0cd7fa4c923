// Package main is the entry point for the cw CLI client.
package main

import (
	"github.com/jhartmann/carwatch/cmd/cw/cmd"
)

func main() {
	cmd.Execute()
}
