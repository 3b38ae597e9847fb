package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/parser"
)

// updateSet formats UPDATE table SET col = value, ... [WHERE ...] with one
// assignment per line. String-literal values route through the embedded JSON
// pretty printer.
func (f *Formatter) updateSet(text string) (string, error) {
	si := parser.IndexKeyword(text, "SET")
	if si < 0 {
		return "", errors.Errorf("%s: missing SET clause", head(text))
	}
	header := f.normalize(text[:si])
	tail := text[si+len("SET"):]

	var where string
	if wi := parser.IndexKeyword(tail, "WHERE"); wi >= 0 {
		where = tail[wi:]
		tail = tail[:wi]
	}

	assigns := parser.SplitList(tail)
	if len(assigns) == 0 {
		return "", errors.Errorf("%s: empty SET clause", head(text))
	}

	lines := make([]string, 0, len(assigns)+2)
	lines = append(lines, header, f.keyword("SET"))
	for i, assign := range assigns {
		col, value, err := splitAssign(assign)
		if err != nil {
			return "", errors.Wrap(err, head(text))
		}
		line := f.indent(1) + col + " = " + f.prettyLiteral(value, 1)
		if i < len(assigns)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	if where != "" {
		lines = append(lines, f.normalize(where))
	}

	return strings.Join(lines, "\n") + ";", nil
}

// splitAssign splits "col = value" at the first top-level equals sign,
// accepting := as well. Both sides come back cleaned onto a single line.
func splitAssign(text string) (col, value string, err error) {
	eq := parser.IndexTopByte(text, '=')
	if eq < 0 {
		return "", "", errors.Errorf("assignment %s has no equals sign", head(text))
	}

	col = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text[:eq]), ":"))
	if col == "" {
		return "", "", errors.Errorf("assignment %s has no left-hand side", head(text))
	}
	value = parser.CollapseSpaces(text[eq+1:])
	if value == "" {
		return "", "", errors.Errorf("assignment %s has no value", head(text))
	}
	return col, value, nil
}
