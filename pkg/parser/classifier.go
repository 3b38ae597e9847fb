package parser

import "strings"

// Kind identifies the formatting strategy for a statement. The set is closed:
// every statement maps to exactly one Kind, with KindPassthrough as the
// catch-all for anything unrecognized.
type Kind int

const (
	KindPassthrough Kind = iota
	KindInsertValues
	KindInsertSelect
	KindUpdateSet
	KindSetVariable
	KindCreateTable
	KindAlterTable
	KindDelete
	KindDrop
	KindCaseExpression
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInsertValues:
		return "InsertValues"
	case KindInsertSelect:
		return "InsertSelect"
	case KindUpdateSet:
		return "UpdateSet"
	case KindSetVariable:
		return "SetVariable"
	case KindCreateTable:
		return "CreateTable"
	case KindAlterTable:
		return "AlterTable"
	case KindDelete:
		return "Delete"
	case KindDrop:
		return "Drop"
	case KindCaseExpression:
		return "CaseExpression"
	default:
		return "Passthrough"
	}
}

// Classify assigns a Kind from the statement's leading significant tokens,
// case-insensitively and with leading comments discarded. The primary verb
// wins; a statement with no recognized verb falls back to KindCaseExpression
// when it contains a top-level CASE expression, and to KindPassthrough
// otherwise. Classification is total and never fails.
func Classify(stmt Statement) Kind {
	toks := leadingTokens(stmt.Text, 3)
	kw := func(i int) string {
		if i < len(toks) {
			return strings.ToUpper(toks[i])
		}
		return ""
	}

	switch kw(0) {
	case "INSERT":
		if kw(1) == "INTO" {
			if IndexKeyword(stmt.Text, "SELECT") >= 0 {
				return KindInsertSelect
			}
			return KindInsertValues
		}
	case "UPDATE":
		return KindUpdateSet
	case "SET":
		// variable assignment: SET @name = ..., SET @name := ..., SET name = ...
		if strings.HasPrefix(kw(1), "@") || kw(2) == "=" || kw(2) == ":=" {
			return KindSetVariable
		}
	case "CREATE":
		if kw(1) == "TABLE" {
			return KindCreateTable
		}
	case "ALTER":
		if kw(1) == "TABLE" {
			return KindAlterTable
		}
	case "DELETE":
		if kw(1) == "FROM" {
			return KindDelete
		}
	case "DROP":
		if kw(1) == "TABLE" || kw(1) == "INDEX" {
			return KindDrop
		}
	}

	if ci := IndexKeyword(stmt.Text, "CASE"); ci >= 0 && MatchCaseEnd(stmt.Text, ci) > 0 {
		return KindCaseExpression
	}
	return KindPassthrough
}
