// Package main provides the gemlive CLI tool.
//
// Usage:
//
//	gemlive [flags] <command> [args]
//
// Commands:
//
//	chat     - Interactive live session over WebSocket
//	generate - One-shot text generation
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.gemlive/gemlive/
//	Use 'gemlive config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/aaron-wade/gemlive/cmd/gemlive/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
