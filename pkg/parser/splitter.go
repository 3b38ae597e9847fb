package parser

import "strings"

// Statement is one semicolon-delimited top-level SQL command. Index records
// the statement's position within the source text.
type Statement struct {
	Text  string
	Index int
}

// scanState tracks delimiter context during an iterative left-to-right scan.
// One state machine backs every splitting function so quoting and nesting
// rules never diverge between them.
type scanState struct {
	depth        int  // unclosed parenthesis count
	quote        byte // active string quote, 0 outside literals
	lineComment  bool
	blockComment bool
}

// top reports whether the scanner sits at top level: outside any string
// literal, comment, and parenthesized group.
func (s *scanState) top() bool {
	return s.depth == 0 && s.quote == 0 && !s.lineComment && !s.blockComment
}

// step consumes the byte at text[i], updates the state, and returns the
// number of bytes consumed. Escape sequences consume two bytes so that \' and
// '' never terminate a literal.
func (s *scanState) step(text string, i int) int {
	c := text[i]
	switch {
	case s.lineComment:
		if c == '\n' {
			s.lineComment = false
		}
	case s.blockComment:
		if c == '*' && i+1 < len(text) && text[i+1] == '/' {
			s.blockComment = false
			return 2
		}
	case s.quote != 0:
		switch {
		case c == '\\' && i+1 < len(text):
			return 2
		case c == s.quote:
			if i+1 < len(text) && text[i+1] == s.quote {
				return 2
			}
			s.quote = 0
		}
	default:
		switch c {
		case '\'', '"':
			s.quote = c
		case '(':
			s.depth++
		case ')':
			if s.depth > 0 {
				s.depth--
			}
		case '-':
			if i+1 < len(text) && text[i+1] == '-' {
				s.lineComment = true
				return 2
			}
		case '/':
			if i+1 < len(text) && text[i+1] == '*' {
				s.blockComment = true
				return 2
			}
		}
	}
	return 1
}

// SplitStatements splits raw SQL text into its top-level statements. A
// semicolon ends a statement only at parenthesis depth zero, outside string
// literals and comments. Statement texts are trimmed and carry no trailing
// semicolon; whitespace-only statements are dropped.
func SplitStatements(text string) []Statement {
	var (
		stmts []Statement
		state scanState
		start int
	)

	flush := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			stmts = append(stmts, Statement{Text: s, Index: len(stmts)})
		}
	}

	i := 0
	for i < len(text) {
		if state.top() && text[i] == ';' {
			flush(i)
			start = i + 1
			i++
			continue
		}
		i += state.step(text, i)
	}
	flush(len(text))

	return stmts
}

// SplitList splits text on top-level commas. Commas inside parentheses,
// string literals, or comments never break an item. Items are trimmed and
// blank items are dropped.
func SplitList(text string) []string {
	var (
		items []string
		state scanState
		start int
	)

	flush := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			items = append(items, s)
		}
	}

	i := 0
	for i < len(text) {
		if state.top() && text[i] == ',' {
			flush(i)
			start = i + 1
			i++
			continue
		}
		i += state.step(text, i)
	}
	flush(len(text))

	return items
}

// SplitClauses breaks text before each top-level, word-bounded occurrence of
// any of the given keywords, keeping the keyword attached to the clause it
// introduces. Keywords may contain a single internal space ("ORDER BY"); list
// multi-word keywords before their single-word suffixes so the longest form
// matches first.
func SplitClauses(text string, keywords ...string) []string {
	var (
		clauses []string
		state   scanState
		start   int
	)

	flush := func(end int) {
		if c := strings.TrimSpace(text[start:end]); c != "" {
			clauses = append(clauses, c)
		}
	}

	i := 0
	for i < len(text) {
		if state.top() {
			matched := 0
			for _, kw := range keywords {
				if keywordAt(text, i, kw) {
					matched = len(kw)
					break
				}
			}
			if matched > 0 {
				if i > start {
					flush(i)
					start = i
				}
				i += matched
				continue
			}
		}
		i += state.step(text, i)
	}
	flush(len(text))

	return clauses
}

// IndexKeyword returns the byte offset of the first top-level, word-bounded,
// case-insensitive occurrence of kw in text, or -1. Occurrences inside string
// literals, comments, or parenthesized groups do not count.
func IndexKeyword(text, kw string) int {
	var state scanState
	i := 0
	for i < len(text) {
		if state.top() && keywordAt(text, i, kw) {
			return i
		}
		i += state.step(text, i)
	}
	return -1
}

// IndexTopByte returns the offset of the first top-level occurrence of c in
// text, or -1.
func IndexTopByte(text string, c byte) int {
	var state scanState
	i := 0
	for i < len(text) {
		if state.top() && text[i] == c {
			return i
		}
		i += state.step(text, i)
	}
	return -1
}

// MatchParen returns the index of the parenthesis closing the group opened at
// text[open], or -1 when the group never closes. String literals and comments
// inside the group are honored.
func MatchParen(text string, open int) int {
	if open < 0 || open >= len(text) || text[open] != '(' {
		return -1
	}
	var state scanState
	i := open
	for i < len(text) {
		j := i
		i += state.step(text, i)
		if j > open && text[j] == ')' && state.top() {
			return j
		}
	}
	return -1
}

// keywordAt reports whether a word-bounded, case-insensitive occurrence of kw
// starts at text[i]. The caller is responsible for checking delimiter state.
func keywordAt(text string, i int, kw string) bool {
	n := len(kw)
	if i+n > len(text) || !strings.EqualFold(text[i:i+n], kw) {
		return false
	}
	before := i == 0 || !isWordByte(text[i-1])
	after := i+n == len(text) || !isWordByte(text[i+n])
	return before && after
}

func isWordByte(c byte) bool {
	return c == '_' || c == '@' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// CollapseSpaces rewrites text onto a single line: comments are dropped and
// every whitespace run outside string literals collapses to a single space.
// String-literal contents are preserved byte for byte.
func CollapseSpaces(text string) string {
	var (
		b     strings.Builder
		state scanState
		space bool
	)
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		start := i
		inQuote := state.quote != 0
		inComment := state.lineComment || state.blockComment
		i += state.step(text, i)

		switch {
		case inComment || state.lineComment || state.blockComment:
			// comments separate tokens the way whitespace does
			space = true
		case inQuote || state.quote != 0:
			if !inQuote && space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteString(text[start:i])
		case isSpaceByte(text[start]):
			space = true
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteString(text[start:i])
		}
	}

	return strings.TrimSpace(b.String())
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
