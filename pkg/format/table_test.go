package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTable(t *testing.T) {
	t.Run("one definition per line", func(t *testing.T) {
		o := formatOne(t, "CREATE TABLE t (id INT NOT NULL, name VARCHAR(50), PRIMARY KEY (id)) ENGINE=InnoDB;")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"CREATE TABLE t (",
			"    id INT NOT NULL,",
			"    name VARCHAR(50),",
			"    PRIMARY KEY (id)",
			") ENGINE=InnoDB;",
		}, "\n"), o.Text)
	})

	t.Run("no table options", func(t *testing.T) {
		o := formatOne(t, "create table t(a int);")
		require.NoError(t, o.Err)
		require.Equal(t, "CREATE TABLE t (\n    a int\n);", o.Text)
	})

	t.Run("nested parens stay with their definition", func(t *testing.T) {
		o := formatOne(t, "CREATE TABLE t (price DECIMAL(10,2), CHECK (price > 0));")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"CREATE TABLE t (",
			"    price DECIMAL(10,2),",
			"    CHECK (price > 0)",
			");",
		}, "\n"), o.Text)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			sql  string
			want string
		}{
			{"CREATE TABLE t", "missing column definition list"},
			{"CREATE TABLE t (id INT", "unbalanced parentheses"},
			{"CREATE TABLE t ()", "empty definition list"},
		}

		for _, tt := range tests {
			o := formatOne(t, tt.sql+";")
			require.Error(t, o.Err, tt.sql)
			require.ErrorContains(t, o.Err, tt.want)
		}
	})
}

func TestAlterTable(t *testing.T) {
	t.Run("one operation per line", func(t *testing.T) {
		o := formatOne(t, "ALTER TABLE users ADD COLUMN age INT, DROP COLUMN old, RENAME TO members;")
		require.NoError(t, o.Err)
		require.Equal(t, strings.Join([]string{
			"ALTER TABLE users",
			"    ADD COLUMN age INT,",
			"    DROP COLUMN old,",
			"    RENAME TO members;",
		}, "\n"), o.Text)
	})

	t.Run("single operation", func(t *testing.T) {
		o := formatOne(t, "alter table t add column a int;")
		require.NoError(t, o.Err)
		require.Equal(t, "ALTER TABLE t\n    ADD COLUMN a int;", o.Text)
	})

	t.Run("missing operations", func(t *testing.T) {
		o := formatOne(t, "ALTER TABLE users;")
		require.Error(t, o.Err)
		require.ErrorContains(t, o.Err, "missing alter operations")
	})
}

func TestDropObject(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"drop table if exists tmp;", "DROP TABLE IF EXISTS tmp;"},
		{"DROP   INDEX\n idx_users_name;", "DROP INDEX idx_users_name;"},
	}

	for _, tt := range tests {
		o := formatOne(t, tt.sql)
		require.NoError(t, o.Err)
		require.Equal(t, tt.want, o.Text)
	}
}
