package format

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/parser"
)

// createTable formats CREATE TABLE name (...) with one column or constraint
// definition per line. Table options after the closing paren stay on the
// closing line.
func (f *Formatter) createTable(text string) (string, error) {
	open := parser.IndexTopByte(text, '(')
	if open < 0 {
		return "", errors.Errorf("%s: missing column definition list", head(text))
	}
	closing := parser.MatchParen(text, open)
	if closing < 0 {
		return "", errors.Errorf("%s: unbalanced parentheses in definition list", head(text))
	}

	defs := parser.SplitList(text[open+1 : closing])
	if len(defs) == 0 {
		return "", errors.Errorf("%s: empty definition list", head(text))
	}

	lines := make([]string, 0, len(defs)+2)
	lines = append(lines, f.normalize(text[:open])+" (")
	for i, def := range defs {
		line := f.indent(1) + f.normalize(def)
		if i < len(defs)-1 {
			line += ","
		}
		lines = append(lines, line)
	}

	closingLine := ")"
	if tail := strings.TrimSpace(text[closing+1:]); tail != "" {
		closingLine += " " + f.normalize(tail)
	}
	lines = append(lines, closingLine+";")

	return strings.Join(lines, "\n"), nil
}

// alterTable formats ALTER TABLE name with one operation per line.
func (f *Formatter) alterTable(text string) (string, error) {
	ti := parser.IndexKeyword(text, "TABLE")
	if ti < 0 {
		return "", errors.Errorf("%s: missing TABLE keyword", head(text))
	}

	rest := strings.TrimLeftFunc(text[ti+len("TABLE"):], unicode.IsSpace)
	nameEnd := strings.IndexFunc(rest, unicode.IsSpace)
	if nameEnd <= 0 {
		return "", errors.Errorf("%s: missing alter operations", head(text))
	}
	name := rest[:nameEnd]

	ops := parser.SplitList(rest[nameEnd:])
	if len(ops) == 0 {
		return "", errors.Errorf("%s: missing alter operations", head(text))
	}

	lines := make([]string, 0, len(ops)+1)
	lines = append(lines, f.keyword("ALTER TABLE")+" "+name)
	for i, op := range ops {
		line := f.indent(1) + f.normalize(op)
		if i < len(ops)-1 {
			line += ","
		} else {
			line += ";"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
