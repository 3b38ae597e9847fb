package format

import (
	"bytes"
	"encoding/json"
	"strings"
)

// prettyLiteral reindents a quoted string literal whose content is a JSON
// object or array, keeping the result a single legal SQL string. level is the
// indent level the literal sits at, so continuation lines line up under it.
//
// Anything that is not such a literal passes through unchanged: the wrong
// quoting, invalid JSON, or PrettyJSON disabled all return the input as-is.
// The caller never sees an error from this path.
func (f *Formatter) prettyLiteral(lit string, level int) string {
	if !f.opts.PrettyJSON || len(lit) < 2 {
		return lit
	}
	quote := lit[0]
	if (quote != '\'' && quote != '"') || lit[len(lit)-1] != quote {
		return lit
	}

	inner := strings.TrimSpace(unescapeQuote(lit[1:len(lit)-1], quote))
	if len(inner) == 0 || (inner[0] != '{' && inner[0] != '[') {
		return lit
	}
	if !json.Valid([]byte(inner)) {
		return lit
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(inner), f.indent(level), f.indent(1)); err != nil {
		return lit
	}

	// json.Indent is a textual transform: key and element order survive.
	pretty := escapeQuote(buf.String(), quote)
	return string(quote) + pretty + string(quote)
}

// unescapeQuote undoes SQL escaping of the outer quote character, both the
// doubled-quote form and the backslash form.
func unescapeQuote(s string, quote byte) string {
	q := string(quote)
	s = strings.ReplaceAll(s, q+q, q)
	return strings.ReplaceAll(s, `\`+q, q)
}

// escapeQuote doubles the outer quote character, the standard SQL escape.
func escapeQuote(s string, quote byte) string {
	q := string(quote)
	return strings.ReplaceAll(s, q, q+q)
}
