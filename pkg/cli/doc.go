// Package cli provides common utilities for the gemlive command-line tool.
//
// This package includes:
//   - Configuration management (named contexts, kubectl style)
//   - Output formatting (YAML, JSON, raw)
//   - Request file loading (YAML/JSON)
//   - Terminal styling for the chat console
//
// Configuration is stored under ~/.gemlive/<app>/ and supports multiple
// contexts so different API keys and hosts can be switched between
// without re-entering credentials.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("gemlive")
//
//	ctx, err := cfg.GetCurrentContext()
//
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatYAML,
//	})
package cli
