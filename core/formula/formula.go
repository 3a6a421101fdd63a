// Package formula implements the spreadsheet-style formula engine used by
// editable data grids: a fixed-grammar evaluator that computes per-cell
// values from a row's fields, plus a textual dependency analyzer used to
// warn about self-referential formula columns.
//
// A formula is a string of the form "=FUNC(arg1,arg2,...)". Each argument
// is resolved against a Row: a token that matches a field name takes that
// field's value, a token starting with "=" is evaluated as a nested
// formula, and anything else is kept as literal text. Evaluation never
// raises: malformed input degrades to literal display and runtime faults
// are replaced with diagnostic values, so the caller always receives
// something it can render.
package formula

// Row represents a single record of grid data, mapping field names to
// scalar values. Rows are owned by the caller; the engine only reads them.
type Row map[string]any

// Function computes a value from an ordered list of resolved arguments.
// The row is provided because some functions (notably IF) carry
// comparison operands inside literal arguments and must resolve them
// against the row at call time.
type Function func(row Row, args []any) (any, error)

// ResultKind classifies how an evaluation result was produced.
type ResultKind string

const (
	// ResultLiteral means the input was not an evaluable formula and is
	// returned unchanged. This covers both non-formula values and
	// formulas that do not match the grammar.
	ResultLiteral ResultKind = "literal"
	// ResultComputed means a registered function produced the value.
	ResultComputed ResultKind = "computed"
	// ResultDiagnostic means evaluation failed and the value is a
	// displayable diagnostic string rather than a computed result.
	ResultDiagnostic ResultKind = "diagnostic"
)

// Result is the evaluation outcome. Lenient callers can render Value
// directly; stricter callers (validation tools, tests) can branch on Kind
// to tell literal pass-through apart from computed values and
// diagnostics.
type Result struct {
	Kind  ResultKind `json:"kind"`
	Value any        `json:"value"`
}
