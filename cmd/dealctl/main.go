// Package main is the entry point for the dealctl CLI client.
package main

import (
	"github.com/dealradar/dealradar/cmd/dealctl/cmd"
)

func main() {
	cmd.Execute()
}
