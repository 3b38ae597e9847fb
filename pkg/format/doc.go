// Package format turns dense SQL text into multi-line, human-readable SQL.
//
// The package splits raw text into statements, classifies each one, and
// applies a per-kind formatting strategy: INSERT statements get one value per
// line annotated with the matching column name, UPDATE and SET statements get
// one assignment per line with optional pretty printing of JSON string
// values, CREATE/ALTER TABLE get one definition per line, and CASE
// expressions get one WHEN/THEN arm per line. Anything unrecognized passes
// through with its whitespace trimmed.
//
// Formatting is a pure function of the input text and options: no state
// survives a call, and failures are confined to the statement that caused
// them. Each statement produces exactly one Outcome, in source order, so a
// malformed statement in the middle of a batch never hides its neighbors.
//
// Usage:
//
//	// One outcome per statement
//	for _, o := range format.Document(raw, format.Defaults) {
//		if o.Err != nil {
//			log.Printf("statement %d: %v", o.Statement.Index, o.Err)
//			continue
//		}
//		fmt.Println(o.Text)
//	}
//
//	// Rendered document in one call
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, raw)
//
// Formatting an already-formatted statement with the same options reproduces
// it byte for byte, so running the formatter twice is always safe.
package format
