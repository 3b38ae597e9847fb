package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/parser"
)

// insertTarget captures the "INSERT INTO table (cols)" prefix shared by the
// VALUES and SELECT forms. rest holds the text after the column list.
type insertTarget struct {
	table   string
	columns []string
	rest    string
}

func parseInsertTarget(text string) (*insertTarget, error) {
	into := parser.IndexKeyword(text, "INTO")
	if into < 0 {
		return nil, errors.Errorf("%s: missing INTO clause", head(text))
	}

	rest := strings.TrimLeftFunc(text[into+len("INTO"):], unicode.IsSpace)
	nameEnd := strings.IndexFunc(rest, func(r rune) bool {
		return r == '(' || unicode.IsSpace(r)
	})
	if nameEnd <= 0 {
		return nil, errors.Errorf("%s: missing target table", head(text))
	}
	table := rest[:nameEnd]

	rest = strings.TrimLeftFunc(rest[nameEnd:], unicode.IsSpace)
	if !strings.HasPrefix(rest, "(") {
		return nil, errors.Errorf("%s: missing column list", head(text))
	}
	closing := parser.MatchParen(rest, 0)
	if closing < 0 {
		return nil, errors.Errorf("%s: unbalanced parentheses in column list", head(text))
	}

	columns := parser.SplitList(rest[1:closing])
	if len(columns) == 0 {
		return nil, errors.Errorf("%s: empty column list", head(text))
	}

	return &insertTarget{table: table, columns: columns, rest: rest[closing+1:]}, nil
}

// insertValues formats INSERT INTO table (...) VALUES (...), (...) with one
// value per line, annotated with its column name when the counts line up.
func (f *Formatter) insertValues(text string) (string, error) {
	target, err := parseInsertTarget(text)
	if err != nil {
		return "", err
	}

	vi := parser.IndexKeyword(target.rest, "VALUES")
	if vi < 0 {
		return "", errors.Errorf("%s: missing VALUES clause", head(text))
	}
	tuples, err := splitTuples(target.rest[vi+len("VALUES"):])
	if err != nil {
		return "", errors.Wrap(err, head(text))
	}

	lines := f.insertHeader(target)
	lines = append(lines, ") "+f.keyword("VALUES")+" (")
	for r, tuple := range tuples {
		if r > 0 {
			lines = append(lines, "), (")
		}
		lines = append(lines, f.annotatedLines(parser.SplitList(tuple), target.columns)...)
	}
	lines = append(lines, ");")

	return strings.Join(lines, "\n"), nil
}

// insertSelect formats INSERT INTO table (...) SELECT ... with one projection
// per line annotated with its target column, and trailing clauses each on
// their own line.
func (f *Formatter) insertSelect(text string) (string, error) {
	target, err := parseInsertTarget(text)
	if err != nil {
		return "", err
	}

	si := parser.IndexKeyword(target.rest, "SELECT")
	if si < 0 {
		return "", errors.Errorf("%s: missing SELECT clause", head(text))
	}
	tail := target.rest[si+len("SELECT"):]

	projection := tail
	var trailing []string
	if fi := parser.IndexKeyword(tail, "FROM"); fi >= 0 {
		projection = tail[:fi]
		trailing = parser.SplitClauses(tail[fi:],
			"LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "FULL JOIN", "CROSS JOIN", "JOIN",
			"WHERE", "GROUP BY", "HAVING", "ORDER BY", "LIMIT", "UNION")
	}

	items := parser.SplitList(projection)
	if len(items) == 0 {
		return "", errors.Errorf("%s: empty SELECT projection", head(text))
	}

	lines := f.insertHeader(target)
	lines = append(lines, ") "+f.keyword("SELECT"))
	lines = append(lines, f.annotatedLines(items, target.columns)...)
	for _, clause := range trailing {
		lines = append(lines, f.normalize(clause))
	}

	return strings.Join(lines, "\n") + ";", nil
}

// insertHeader renders the INSERT INTO prefix with one column per line. The
// column list's closing paren is left for the caller, which pairs it with the
// VALUES or SELECT keyword.
func (f *Formatter) insertHeader(target *insertTarget) []string {
	lines := make([]string, 0, len(target.columns)+1)
	lines = append(lines, f.keyword("INSERT INTO")+" "+target.table+" (")
	for i, col := range target.columns {
		line := f.indent(1) + col
		if i < len(target.columns)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	return lines
}

// splitTuples parses the comma-separated parenthesized groups of a VALUES
// clause, returning each group's inner text.
func splitTuples(text string) ([]string, error) {
	items := parser.SplitList(text)
	if len(items) == 0 {
		return nil, errors.New("empty VALUES clause")
	}

	tuples := make([]string, 0, len(items))
	for _, item := range items {
		if !strings.HasPrefix(item, "(") {
			return nil, errors.Errorf("value row %s does not start with a parenthesis", head(item))
		}
		closing := parser.MatchParen(item, 0)
		if closing < 0 || strings.TrimSpace(item[closing+1:]) != "" {
			return nil, errors.Errorf("unbalanced parentheses in value row %s", head(item))
		}
		tuples = append(tuples, item[1:closing])
	}
	return tuples, nil
}

// annotatedLines renders one item per line, each cleaned onto a single line
// and annotated with its column name when the item count matches the column
// list exactly. Mismatched counts emit the items unannotated.
func (f *Formatter) annotatedLines(items, columns []string) []string {
	withComma := make([]string, len(items))
	width := 0
	for i, item := range items {
		v := parser.CollapseSpaces(item)
		if i < len(items)-1 {
			v += ","
		}
		withComma[i] = v
		if n := utf8.RuneCountInString(v); n > width {
			width = n
		}
	}

	annotate := len(items) == len(columns)
	lines := make([]string, 0, len(items))
	for i, v := range withComma {
		if annotate {
			if f.opts.AlignValues {
				v = padRight(v, width)
			}
			v += "  /* " + columns[i] + " */"
		}
		lines = append(lines, f.indent(1)+v)
	}
	return lines
}
