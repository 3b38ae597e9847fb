package format_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/sqltidy/sqltidy/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	// Find all *.in.sql files
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.sql files found in testdata directory")

	for _, inputFile := range matches {
		// Derive output filename: "example.in.sql" -> "example.sql"
		basename := filepath.Base(inputFile)
		outputName := strings.TrimSuffix(basename, ".in.sql") + ".sql"

		t.Run(outputName, func(t *testing.T) {
			inputSQL, err := os.ReadFile(inputFile)
			require.NoError(t, err, "Failed to read input file %s", inputFile)

			var buf bytes.Buffer
			require.NoError(t, Format(&buf, Defaults, string(inputSQL)))
			result := buf.String()

			// Add final newline for proper file ending
			if result != "" {
				result += "\n"
			}

			golden.Assert(t, result, outputName)
		})
	}
}
