// Package cmd provides CLI commands for the sqltidy tool.
//
// This package implements the command-line interface for sqltidy. Each
// command is implemented as a separate function that returns a *cli.Command,
// following the urfave/cli/v3 pattern, with Run wiring them into the root
// application.
//
// # Available Commands
//
//   - fmt: Reformat SQL files, directory trees, or standard input
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: Specify the config file (defaults to sqltidy.yaml)
//   - --help, -h: Display command help
//   - --version: Display version information
package cmd
