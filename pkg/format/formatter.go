package format

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sqltidy/sqltidy/pkg/parser"
)

// Options controls formatting behavior.
type Options struct {
	// IndentSize is the number of spaces per indent level
	IndentSize int
	// UppercaseKeywords selects upper or lower canonical keyword casing
	UppercaseKeywords bool
	// AlignValues aligns the column-name annotations in INSERT output
	AlignValues bool
	// PrettyJSON reindents JSON found inside string-literal values
	PrettyJSON bool
}

// Defaults are the standard formatting options.
var Defaults = Options{
	IndentSize:        4,
	UppercaseKeywords: true,
	AlignValues:       true,
	PrettyJSON:        true,
}

// Outcome is the result of formatting one statement. Err is non-nil when the
// statement's structure prevented formatting; Text is then empty and the
// original text remains available through Statement.
type Outcome struct {
	Statement parser.Statement
	Text      string
	Err       error
}

// Formatted reports whether the statement formatted successfully.
func (o Outcome) Formatted() bool { return o.Err == nil }

// Formatter formats SQL statements according to its options. A Formatter
// holds no per-call state and is safe for concurrent use.
type Formatter struct {
	opts Options
}

// New creates a Formatter with the given options.
func New(opts Options) *Formatter {
	if opts.IndentSize <= 0 {
		opts.IndentSize = Defaults.IndentSize
	}
	return &Formatter{opts: opts}
}

// Statement formats a single statement, selecting the strategy from its
// classified kind. Structural problems surface in the returned Outcome; the
// method itself never fails.
func (f *Formatter) Statement(stmt parser.Statement) Outcome {
	var (
		text string
		err  error
	)

	switch parser.Classify(stmt) {
	case parser.KindInsertValues:
		text, err = f.insertValues(stmt.Text)
	case parser.KindInsertSelect:
		text, err = f.insertSelect(stmt.Text)
	case parser.KindUpdateSet:
		text, err = f.updateSet(stmt.Text)
	case parser.KindSetVariable:
		text, err = f.setVariable(stmt.Text)
	case parser.KindCreateTable:
		text, err = f.createTable(stmt.Text)
	case parser.KindAlterTable:
		text, err = f.alterTable(stmt.Text)
	case parser.KindDelete:
		text, err = f.deleteFrom(stmt.Text)
	case parser.KindDrop:
		text, err = f.dropObject(stmt.Text)
	case parser.KindCaseExpression:
		text, err = f.caseExpression(stmt.Text)
	default:
		text = f.passthrough(stmt.Text)
	}

	if err != nil {
		return Outcome{Statement: stmt, Err: err}
	}
	return Outcome{Statement: stmt, Text: text}
}

// Document splits raw SQL text and formats every statement, returning one
// outcome per statement in source order. A structural error in one statement
// never stops the rest of the batch.
func (f *Formatter) Document(text string) []Outcome {
	stmts := parser.SplitStatements(text)
	outcomes := make([]Outcome, 0, len(stmts))
	for _, stmt := range stmts {
		outcomes = append(outcomes, f.Statement(stmt))
	}
	return outcomes
}

// Document formats raw SQL text with the given options (convenience function).
func Document(text string, opts Options) []Outcome {
	return New(opts).Document(text)
}

// Format writes rendered outcomes to w, one block per statement separated by
// blank lines. Errored statements render as a comment naming the problem
// followed by the original text, so neighboring statements still come out
// formatted.
func Format(w io.Writer, opts Options, text string) error {
	outcomes := Document(text, opts)
	blocks := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			blocks = append(blocks, "-- sqltidy: "+o.Err.Error()+"\n"+o.Statement.Text+";")
			continue
		}
		blocks = append(blocks, o.Text)
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n"))
	return err
}

// keyword returns kw in the canonical case selected by the options.
func (f *Formatter) keyword(kw string) string {
	if f.opts.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

// indent returns the given number of indent levels as spaces.
func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.opts.IndentSize)
}

// normalize collapses a fragment onto one line and applies canonical keyword
// casing.
func (f *Formatter) normalize(s string) string {
	return parser.NormalizeKeywords(parser.CollapseSpaces(s), f.opts.UppercaseKeywords)
}

// passthrough trims the statement and restores its terminator.
func (f *Formatter) passthrough(text string) string {
	return strings.TrimSpace(text) + ";"
}

// head returns the first few words of a statement for error messages.
func head(text string) string {
	fields := strings.Fields(text)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	s := strings.Join(fields, " ")
	if len(s) > 40 {
		cut := 40
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// padRight pads s to width runes with spaces.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
