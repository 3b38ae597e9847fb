package parser

import "strings"

// CaseArm is one WHEN/THEN pair of a CASE expression. Result is empty when
// the arm had no THEN clause, in which case Cond holds the whole arm text.
type CaseArm struct {
	Cond   string
	Result string
}

// MatchCaseEnd returns the offset just past the END matching the CASE keyword
// at text[ci], or -1 when the expression never closes. Nested CASE
// expressions are tracked with an explicit counter, not recursion.
func MatchCaseEnd(text string, ci int) int {
	var state scanState
	depth := 0
	i := ci
	for i < len(text) {
		if state.top() {
			switch {
			case keywordAt(text, i, "CASE"):
				depth++
				i += len("CASE")
				continue
			case keywordAt(text, i, "END"):
				depth--
				i += len("END")
				if depth == 0 {
					return i
				}
				continue
			}
		}
		i += state.step(text, i)
	}
	return -1
}

// SplitCase decomposes a CASE expression into its leading operand (non-empty
// only for the simple CASE form), WHEN arms, and ELSE result. The text must
// span exactly CASE through its matching END; callers locate that span with
// IndexKeyword and MatchCaseEnd. Decomposition is best effort: structurally
// odd input yields arms with empty results rather than an error.
func SplitCase(text string) (operand string, arms []CaseArm, elseArm string) {
	if !keywordAt(text, 0, "CASE") {
		return strings.TrimSpace(text), nil, ""
	}
	body := text[len("CASE"):]
	if end := len(body) - len("END"); end >= 0 && keywordAt(body, end, "END") {
		body = body[:end]
	}

	marks := caseMarks(body)
	if len(marks) == 0 {
		return strings.TrimSpace(body), nil, ""
	}

	operand = strings.TrimSpace(body[:marks[0].off])

	segEnd := func(i int) int {
		// end of the segment started by marks[i]: the next WHEN/ELSE mark
		for _, m := range marks[i+1:] {
			if m.kw != "THEN" {
				return m.off
			}
		}
		return len(body)
	}

	for i, m := range marks {
		switch m.kw {
		case "WHEN":
			arm := CaseArm{}
			end := segEnd(i)
			condEnd := end
			if i+1 < len(marks) && marks[i+1].kw == "THEN" && marks[i+1].off < end {
				condEnd = marks[i+1].off
				arm.Result = strings.TrimSpace(body[marks[i+1].off+len("THEN") : end])
			}
			arm.Cond = strings.TrimSpace(body[m.off+len("WHEN") : condEnd])
			arms = append(arms, arm)
		case "ELSE":
			elseArm = strings.TrimSpace(body[m.off+len("ELSE") : segEnd(i)])
		}
	}

	return operand, arms, elseArm
}

type caseMark struct {
	off int
	kw  string
}

// caseMarks locates the WHEN/THEN/ELSE keywords belonging to the outermost
// CASE level of body, skipping over nested CASE expressions.
func caseMarks(body string) []caseMark {
	var (
		marks []caseMark
		state scanState
		depth int
	)
	i := 0
	for i < len(body) {
		if state.top() {
			switch {
			case keywordAt(body, i, "CASE"):
				depth++
				i += len("CASE")
				continue
			case depth > 0 && keywordAt(body, i, "END"):
				depth--
				i += len("END")
				continue
			case depth == 0 && keywordAt(body, i, "WHEN"):
				marks = append(marks, caseMark{off: i, kw: "WHEN"})
				i += len("WHEN")
				continue
			case depth == 0 && keywordAt(body, i, "THEN"):
				marks = append(marks, caseMark{off: i, kw: "THEN"})
				i += len("THEN")
				continue
			case depth == 0 && keywordAt(body, i, "ELSE"):
				marks = append(marks, caseMark{off: i, kw: "ELSE"})
				i += len("ELSE")
				continue
			}
		}
		i += state.step(body, i)
	}
	return marks
}
