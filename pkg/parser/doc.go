// Package parser provides delimiter-aware splitting and classification of raw
// SQL text.
//
// Unlike a grammar-driven parser, this package never rejects input: it scans
// text left to right with an explicit state machine that tracks parenthesis
// depth, string-literal quoting (with backslash and doubled-quote escapes),
// and line/block comments. A separator only counts when the scanner sits at
// top level, so a semicolon inside a string literal or a comma inside a
// function call never breaks a statement or a list item. Unterminated
// literals, comments, and groups run to end of input instead of failing.
//
// The package exposes three layers:
//
//   - Splitting: SplitStatements, SplitList, SplitClauses, and the positional
//     helpers IndexKeyword, IndexTopByte, MatchParen, and MatchCaseEnd.
//   - Classification: Classify maps any statement to exactly one Kind from
//     its leading significant tokens. It is total; unrecognized input lands
//     in KindPassthrough rather than producing an error.
//   - Token helpers: NormalizeKeywords and CollapseSpaces rewrite statement
//     fragments without ever touching string-literal contents.
//
// Basic usage:
//
//	for _, stmt := range parser.SplitStatements(raw) {
//		switch parser.Classify(stmt) {
//		case parser.KindInsertValues:
//			// ...
//		}
//	}
package parser
