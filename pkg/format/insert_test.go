package format_test

import (
	"strings"
	"testing"

	. "github.com/sqltidy/sqltidy/pkg/format"
	"github.com/sqltidy/sqltidy/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestInsertValues(t *testing.T) {
	t.Run("annotates each value with its column", func(t *testing.T) {
		o := formatOne(t, "INSERT INTO users(id,name) VALUES(1,'Bob'),(2,'Sue');")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO users (",
			"    id,",
			"    name",
			") VALUES (",
			"    1,     /* id */",
			"    'Bob'  /* name */",
			"), (",
			"    2,     /* id */",
			"    'Sue'  /* name */",
			");",
		}, "\n"), o.Text)
	})

	t.Run("no alignment", func(t *testing.T) {
		opts := Defaults
		opts.AlignValues = false

		o := New(opts).Statement(parser.Statement{
			Text: "INSERT INTO users(id,name) VALUES(1,'Bob')",
		})
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO users (",
			"    id,",
			"    name",
			") VALUES (",
			"    1,  /* id */",
			"    'Bob'  /* name */",
			");",
		}, "\n"), o.Text)
	})

	t.Run("count mismatch skips annotations", func(t *testing.T) {
		o := formatOne(t, "INSERT INTO users(id,name) VALUES(1,'Bob','extra');")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO users (",
			"    id,",
			"    name",
			") VALUES (",
			"    1,",
			"    'Bob',",
			"    'extra'",
			");",
		}, "\n"), o.Text)
	})

	t.Run("commas inside values never split", func(t *testing.T) {
		o := formatOne(t, "INSERT INTO t(a,b) VALUES('x,y',GREATEST(1,2));")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO t (",
			"    a,",
			"    b",
			") VALUES (",
			"    'x,y',         /* a */",
			"    GREATEST(1,2)  /* b */",
			");",
		}, "\n"), o.Text)
	})

	t.Run("alignment counts runes, not bytes", func(t *testing.T) {
		o := formatOne(t, "INSERT INTO t(a,b) VALUES('шест',1);")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO t (",
			"    a,",
			"    b",
			") VALUES (",
			"    'шест',  /* a */",
			"    1        /* b */",
			");",
		}, "\n"), o.Text)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			sql  string
			want string
		}{
			{"INSERT INTO users(id,name)", "missing VALUES clause"},
			{"INSERT INTO users VALUES(1)", "missing column list"},
			{"INSERT INTO users() VALUES(1)", "empty column list"},
			{"INSERT INTO users(id VALUES(1)", "unbalanced parentheses in column list"},
			{"INSERT INTO t(a,b) VALUES(1,2))", "unbalanced parentheses"},
			{"INSERT INTO t(a) VALUES 1", "does not start with a parenthesis"},
			{"INSERT INTO t(a) VALUES", "empty VALUES clause"},
		}

		for _, tt := range tests {
			o := formatOne(t, tt.sql+";")
			require.Error(t, o.Err, tt.sql)
			require.ErrorContains(t, o.Err, tt.want)
			require.Empty(t, o.Text)
		}
	})
}

func TestInsertSelect(t *testing.T) {
	t.Run("annotates projections and breaks trailing clauses", func(t *testing.T) {
		sql := "INSERT INTO archive(id,name) SELECT u.id, u.name FROM users u " +
			"JOIN teams t ON t.id = u.team_id WHERE u.active = 0 ORDER BY u.id LIMIT 10;"

		o := formatOne(t, sql)
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO archive (",
			"    id,",
			"    name",
			") SELECT",
			"    u.id,   /* id */",
			"    u.name  /* name */",
			"FROM users u",
			"JOIN teams t ON t.id = u.team_id",
			"WHERE u.active = 0",
			"ORDER BY u.id",
			"LIMIT 10;",
		}, "\n"), o.Text)
	})

	t.Run("select without from", func(t *testing.T) {
		o := formatOne(t, "INSERT INTO t(a,b) SELECT 1, 2;")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"INSERT INTO t (",
			"    a,",
			"    b",
			") SELECT",
			"    1,  /* a */",
			"    2   /* b */;",
		}, "\n"), o.Text)
	})

	t.Run("empty projection", func(t *testing.T) {
		o := formatOne(t, "INSERT INTO t(a) SELECT FROM x;")
		require.Error(t, o.Err)
		require.ErrorContains(t, o.Err, "empty SELECT projection")
	})
}
