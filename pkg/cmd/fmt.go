package cmd

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/format"
	"github.com/urfave/cli/v3"
)

// errColor highlights failed statements when writing to a terminal.
var errColor = color.New(color.FgRed)

// fmtCmd creates a CLI command for reformatting SQL files. This command
// provides gofmt-like behavior for SQL, formatting individual files or entire
// directory trees recursively.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Path handling:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//   - "-": Read SQL from standard input and write to standard output
//
// A statement the formatter cannot handle never fails the command: it comes
// out as a comment naming the problem followed by the original statement,
// and every other statement in the file still formats.
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - --pretty-json: Enable or disable JSON pretty printing, overriding config
//
// Examples:
//
//	# Format single file to stdout
//	sqltidy fmt queries.sql
//
//	# Format single file in-place
//	sqltidy fmt -w queries.sql
//
//	# Format all SQL files in a directory tree in-place
//	sqltidy fmt -w db/
//
//	# Format standard input
//	cat queries.sql | sqltidy fmt -
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "pretty-json",
				Usage: "Pretty print JSON found inside string values",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			opts := currentConfig.Options()
			if cmd.IsSet("pretty-json") {
				opts.PrettyJSON = cmd.Bool("pretty-json")
			}

			path := cmd.Args().First()
			writeBack := cmd.Bool("write")

			if path == "-" {
				return formatStream(os.Stdin, cmd.Writer, opts)
			}

			return formatPath(path, opts, writeBack, cmd.Writer)
		},
	}
}

// formatPath handles formatting of either a single file or directory
// recursively.
func formatPath(path string, opts format.Options, writeBack bool, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, opts, writeBack, writer)
	}

	return formatFile(path, opts, writeBack, writer)
}

// formatDirectory recursively walks through a directory and formats all .sql
// files. Files are processed in lexicographical order for consistent behavior
// across platforms.
func formatDirectory(dir string, opts format.Options, writeBack bool, writer io.Writer) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := formatFile(sqlFile, opts, writeBack, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single SQL file and either writes to stdout or back to
// the file.
func formatFile(path string, opts format.Options, writeBack bool, writer io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	if !writeBack {
		return renderOutcomes(writer, format.Document(string(content), opts))
	}

	var buf bytes.Buffer
	if err := format.Format(&buf, opts, string(content)); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
	}

	return nil
}

// formatStream formats SQL read from r onto w.
func formatStream(r io.Reader, w io.Writer, opts format.Options) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	return renderOutcomes(w, format.Document(string(content), opts))
}

// renderOutcomes writes one block per statement separated by blank lines.
// Failed statements render as a highlighted comment naming the problem,
// followed by the original statement text.
func renderOutcomes(w io.Writer, outcomes []format.Outcome) error {
	for i, o := range outcomes {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}

		if o.Err != nil {
			if _, err := errColor.Fprintf(w, "-- sqltidy: %v", o.Err); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"+o.Statement.Text+";"); err != nil {
				return err
			}
			continue
		}

		if _, err := io.WriteString(w, o.Text); err != nil {
			return err
		}
	}

	if len(outcomes) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
