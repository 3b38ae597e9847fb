package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// sqlLexer tokenizes statements for classification and keyword casing.
	// The rules cover common SQL lexical structure; input the lexer cannot
	// match falls back to a plain field scan so no caller ever fails.
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`},
		{Name: "BacktickIdent", Pattern: "`([^`\\\\]|\\\\.)*`"},
		{Name: "Number", Pattern: `\d+(\.\d*)?`},
		{Name: "Ident", Pattern: `@?[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Assign", Pattern: `:=`},
		{Name: "NotEq", Pattern: `!=|<>`},
		{Name: "LtEq", Pattern: `<=`},
		{Name: "GtEq", Pattern: `>=`},
		{Name: "Punct", Pattern: `[(),.;=+\-*/%<>\[\]!:]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	symbols = sqlLexer.Symbols()

	// sqlKeywords are the words NormalizeKeywords rewrites to canonical case.
	sqlKeywords = map[string]bool{}

	keywordList = []string{
		"SELECT", "INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "FROM",
		"WHERE", "CREATE", "ALTER", "DROP", "TABLE", "INDEX", "ADD", "COLUMN",
		"MODIFY", "CHANGE", "RENAME", "TO", "IF", "EXISTS", "NOT", "NULL",
		"DEFAULT", "PRIMARY", "FOREIGN", "UNIQUE", "KEY", "REFERENCES",
		"CONSTRAINT", "CHECK", "AUTO_INCREMENT", "UNSIGNED", "ENGINE", "COMMENT",
		"AND", "OR", "IN", "IS", "LIKE", "BETWEEN", "AS", "ON", "CASCADE",
		"CASE", "WHEN", "THEN", "ELSE", "END", "JOIN", "LEFT", "RIGHT", "INNER",
		"OUTER", "FULL", "CROSS", "GROUP", "ORDER", "BY", "HAVING", "LIMIT",
		"OFFSET", "DISTINCT", "UNION", "ALL",
	}
)

func init() {
	for _, kw := range keywordList {
		sqlKeywords[kw] = true
	}
}

// leadingTokens returns up to max significant token values from the start of
// text, skipping comments and whitespace. Lexing trouble degrades to a plain
// whitespace field scan so the result is never an error.
func leadingTokens(text string, max int) []string {
	lx, err := sqlLexer.LexString("", text)
	if err != nil {
		return fieldTokens(text, max)
	}

	toks := make([]string, 0, max)
	for len(toks) < max {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		switch tok.Type {
		case symbols["Comment"], symbols["MultilineComment"], symbols["Whitespace"]:
			continue
		}
		toks = append(toks, tok.Value)
	}
	if len(toks) == 0 {
		return fieldTokens(text, max)
	}
	return toks
}

func fieldTokens(text string, max int) []string {
	fields := strings.Fields(text)
	if len(fields) > max {
		fields = fields[:max]
	}
	return fields
}

// NormalizeKeywords rewrites recognized SQL keywords to upper (or lower) case
// without touching string literals, comments, or quoted identifiers. Input
// the lexer cannot tokenize is returned unchanged.
func NormalizeKeywords(text string, upper bool) string {
	lx, err := sqlLexer.LexString("", text)
	if err != nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for {
		tok, err := lx.Next()
		if err != nil {
			return text
		}
		if tok.EOF() {
			break
		}
		off := tok.Pos.Offset
		if off < last || off+len(tok.Value) > len(text) {
			return text
		}
		b.WriteString(text[last:off])
		if tok.Type == symbols["Ident"] && sqlKeywords[strings.ToUpper(tok.Value)] {
			if upper {
				b.WriteString(strings.ToUpper(tok.Value))
			} else {
				b.WriteString(strings.ToLower(tok.Value))
			}
		} else {
			b.WriteString(tok.Value)
		}
		last = off + len(tok.Value)
	}
	b.WriteString(text[last:])
	return b.String()
}
