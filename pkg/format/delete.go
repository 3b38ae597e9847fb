package format

import (
	"strings"

	"github.com/sqltidy/sqltidy/pkg/parser"
)

// deleteFrom formats DELETE FROM table [WHERE ...]. A compound predicate gets
// one term per line with its AND/OR connective; anything simpler stays on a
// single normalized line.
func (f *Formatter) deleteFrom(text string) (string, error) {
	wi := parser.IndexKeyword(text, "WHERE")
	if wi < 0 {
		return f.normalize(text) + ";", nil
	}

	header := f.normalize(text[:wi])
	terms := parser.SplitClauses(text[wi+len("WHERE"):], "AND", "OR")
	if len(terms) <= 1 {
		return header + " " + f.normalize(text[wi:]) + ";", nil
	}

	lines := make([]string, 0, len(terms)+1)
	lines = append(lines, header)
	lines = append(lines, f.keyword("WHERE")+" "+f.normalize(terms[0]))
	for _, term := range terms[1:] {
		lines = append(lines, f.indent(1)+f.normalize(term))
	}

	return strings.Join(lines, "\n") + ";", nil
}

// dropObject formats DROP TABLE / DROP INDEX statements onto one normalized
// line.
func (f *Formatter) dropObject(text string) (string, error) {
	return f.normalize(text) + ";", nil
}
