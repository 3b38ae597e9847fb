package format_test

import (
	"strings"
	"testing"

	. "github.com/sqltidy/sqltidy/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestSetVariable(t *testing.T) {
	t.Run("canonical spacing", func(t *testing.T) {
		o := formatOne(t, "SET @MaxUsers=100;")
		require.NoError(t, o.Err)
		require.Equal(t, "SET @MaxUsers = 100;", o.Text)
	})

	t.Run("walrus assignment folds to equals", func(t *testing.T) {
		o := formatOne(t, "SET @Greeting:='Hello, world!';")
		require.NoError(t, o.Err)
		require.Equal(t, "SET @Greeting = 'Hello, world!';", o.Text)
	})

	t.Run("bare field assignment with where clause", func(t *testing.T) {
		o := formatOne(t, "SET balance = 0 WHERE frozen = 1;")
		require.NoError(t, o.Err)
		require.Equal(t, "SET balance = 0\nWHERE frozen = 1;", o.Text)
	})

	t.Run("value casing preserved", func(t *testing.T) {
		o := formatOne(t, "set @Path = '/Tmp/File';")
		require.NoError(t, o.Err)
		require.Equal(t, "SET @Path = '/Tmp/File';", o.Text)
	})

	t.Run("errors", func(t *testing.T) {
		for _, sql := range []string{"SET @a", "SET @a ="} {
			o := formatOne(t, sql+";")
			require.Error(t, o.Err, sql)
			require.Empty(t, o.Text)
		}
	})
}

func TestJSONValues(t *testing.T) {
	t.Run("object literal reindents under its assignment", func(t *testing.T) {
		o := formatOne(t, `UPDATE users SET prefs = '{"theme":"dark","tabs":[1,2]}' WHERE id = 7;`)
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"UPDATE users",
			"SET",
			`    prefs = '{`,
			`        "theme": "dark",`,
			`        "tabs": [`,
			"            1,",
			"            2",
			"        ]",
			"    }'",
			"WHERE id = 7;",
		}, "\n"), o.Text)
	})

	t.Run("array literal in a set statement", func(t *testing.T) {
		o := formatOne(t, `SET @ids = '[1,2,3]';`)
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"SET @ids = '[",
			"    1,",
			"    2,",
			"    3",
			"]';",
		}, "\n"), o.Text)
	})

	t.Run("escaped quotes survive the round trip", func(t *testing.T) {
		o := formatOne(t, `SET @msg = '{"note":"it''s fine"}';`)
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"SET @msg = '{",
			`    "note": "it''s fine"`,
			"}';",
		}, "\n"), o.Text)
	})

	t.Run("invalid json passes through unchanged", func(t *testing.T) {
		o := formatOne(t, `SET @bad = '{"a":}';`)
		require.NoError(t, o.Err)
		require.Equal(t, `SET @bad = '{"a":}';`, o.Text)
	})

	t.Run("non-json strings pass through unchanged", func(t *testing.T) {
		o := formatOne(t, `SET @s = 'hello {world}';`)
		require.NoError(t, o.Err)
		require.Equal(t, `SET @s = 'hello {world}';`, o.Text)
	})

	t.Run("disabled by options", func(t *testing.T) {
		opts := Defaults
		opts.PrettyJSON = false

		outcomes := Document(`SET @ids = '[1,2]';`, opts)
		require.Len(t, outcomes, 1)
		require.NoError(t, outcomes[0].Err)
		require.Equal(t, `SET @ids = '[1,2]';`, outcomes[0].Text)
	})
}
