package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sqltidy/sqltidy/pkg/config"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/urfave/cli/v3"
)

var currentConfig *config.Config

// Version carries build metadata stamped into the binary at release time.
type Version struct {
	Version   string
	Commit    string
	Timestamp string
}

// Run creates and executes the main sqltidy CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations and handles global configuration.
//
// The application looks for a sqltidy.yaml config file before running any
// command; when present it initializes the global currentConfig used by
// subcommands, and when absent the formatter defaults apply.
//
// Global Flags:
//   - --config, -c: Config file path (defaults to sqltidy.yaml)
//
// Example usage:
//
//	# Format a file to stdout
//	err := Run(ctx, version, []string{"sqltidy", "fmt", "queries.sql"})
//
//	# Format a directory tree in place with an explicit config
//	err := Run(ctx, version, []string{"sqltidy", "--config", "ci.yaml", "fmt", "-w", "db/"})
func Run(ctx context.Context, version *Version, args []string) error {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqltidy",
		Usage: "A tool for reformatting dense SQL into readable SQL",
		Description: `sqltidy is a CLI tool that rewrites compact machine-written SQL into a
readable multi-line form: one value per line with column annotations for
INSERT statements, one assignment per line for UPDATE and SET, and pretty
printed JSON inside string values.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqltidy config file",
				Sources: cli.EnvVars("SQLTIDY_CONFIG"),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")

			_, err := os.Stat(path)
			if os.IsNotExist(err) {
				return ctx, nil
			}
			if err != nil {
				return ctx, err
			}

			cfg, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, err
			}

			currentConfig = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			fmtCmd(),
		},
	}

	return app.Run(ctx, args)
}
