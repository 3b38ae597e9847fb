package format

import (
	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/parser"
)

// setVariable formats a SET variable assignment into the canonical
// SET @name = value form. The := operator is folded into =. The bare
// SET field = value WHERE ... variant keeps its WHERE clause on its own
// line, and string-literal values route through the JSON pretty printer.
func (f *Formatter) setVariable(text string) (string, error) {
	si := parser.IndexKeyword(text, "SET")
	if si < 0 {
		return "", errors.Errorf("%s: missing SET keyword", head(text))
	}
	tail := text[si+len("SET"):]

	var where string
	if wi := parser.IndexKeyword(tail, "WHERE"); wi >= 0 {
		where = tail[wi:]
		tail = tail[:wi]
	}

	name, value, err := splitAssign(tail)
	if err != nil {
		return "", errors.Wrap(err, head(text))
	}

	out := f.keyword("SET") + " " + name + " = " + f.prettyLiteral(value, 0)
	if where != "" {
		out += "\n" + f.normalize(where)
	}
	return out + ";", nil
}
