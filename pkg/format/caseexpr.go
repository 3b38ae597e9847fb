package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/parser"
)

// maxCaseDepth bounds how deep nested CASE expressions are expanded into
// blocks; anything deeper stays inline so adversarial nesting cannot exhaust
// the stack.
const maxCaseDepth = 10

// caseExpression reformats the first top-level CASE ... END expression in a
// statement into one WHEN/THEN per line, with ELSE and END aligned to CASE.
// Text around the expression keeps its place on surrounding lines.
func (f *Formatter) caseExpression(text string) (string, error) {
	ci := parser.IndexKeyword(text, "CASE")
	if ci < 0 {
		return "", errors.Errorf("%s: missing CASE keyword", head(text))
	}
	end := parser.MatchCaseEnd(text, ci)
	if end < 0 {
		return "", errors.Errorf("%s: CASE without matching END", head(text))
	}

	var lines []string
	if prefix := strings.TrimSpace(text[:ci]); prefix != "" {
		lines = append(lines, f.normalize(prefix))
	}
	lines = append(lines, f.caseLines(text[ci:end], 0, 0)...)

	out := strings.Join(lines, "\n")
	if suffix := strings.TrimSpace(text[end:]); suffix != "" {
		out += "\n" + f.normalize(suffix)
	}
	return out + ";", nil
}

// caseLines renders one CASE expression at the given indent level. depth
// counts nested expansions.
func (f *Formatter) caseLines(expr string, level, depth int) []string {
	operand, arms, elseArm := parser.SplitCase(expr)

	open := f.keyword("CASE")
	if operand != "" {
		open += " " + f.normalize(operand)
	}

	lines := make([]string, 0, len(arms)+2)
	lines = append(lines, f.indent(level)+open)
	for _, arm := range arms {
		label := f.keyword("WHEN") + " " + f.normalize(arm.Cond) + " " + f.keyword("THEN")
		if arm.Result == "" {
			label = f.keyword("WHEN") + " " + f.normalize(arm.Cond)
		}
		lines = append(lines, f.armLines(level+1, label, arm.Result, depth)...)
	}
	if elseArm != "" {
		lines = append(lines, f.armLines(level+1, f.keyword("ELSE"), elseArm, depth)...)
	}
	lines = append(lines, f.indent(level)+f.keyword("END"))

	return lines
}

// armLines renders one WHEN or ELSE arm. A result that is itself a whole
// CASE expression expands into a nested block one level deeper; anything
// else stays inline on the arm's line.
func (f *Formatter) armLines(level int, label, result string, depth int) []string {
	if result == "" {
		return []string{f.indent(level) + label}
	}

	trimmed := strings.TrimSpace(result)
	if depth < maxCaseDepth && parser.IndexKeyword(trimmed, "CASE") == 0 &&
		parser.MatchCaseEnd(trimmed, 0) == len(trimmed) {
		lines := []string{f.indent(level) + label}
		lines = append(lines, f.caseLines(trimmed, level+1, depth+1)...)
		return lines
	}

	return []string{f.indent(level) + label + " " + f.normalize(result)}
}
