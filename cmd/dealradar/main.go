// Package main is the entry point for the dealradar server.
package main

import (
	"os"

	"github.com/dealradar/dealradar/cmd/dealradar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
