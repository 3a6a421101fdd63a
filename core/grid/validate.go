package grid

import (
	"fmt"
	"regexp"
	"time"

	"github.com/asaidimu/go-formula/core/formula"
)

// functionNamePattern extracts the function name from the head of a
// formula without evaluating it.
var functionNamePattern = regexp.MustCompile(`^=([A-Z]+)\(`)

// ValidateColumns checks formula column definitions before they are put
// in front of the evaluator. It reports self references as errors and
// unregistered function names as warnings. Mutual textual references
// between two formula columns are reported as warnings as well: the
// check is textual, not structural, so a mention in both directions may
// or may not be a real cycle.
func (p *Processor) ValidateColumns(columns []Column) []Issue {
	var issues []Issue

	for _, column := range columns {
		if !column.IsFormula() {
			continue
		}

		if formula.HasCircularReference(column.Formula, column.Name) {
			issues = append(issues, Issue{
				Code:     "circular_reference",
				Message:  fmt.Sprintf("formula for column %q references the column itself", column.Name),
				Column:   column.Name,
				Severity: "error",
			})
		}

		if match := functionNamePattern.FindStringSubmatch(column.Formula); match != nil {
			if !p.evaluator.HasFunction(match[1]) {
				issues = append(issues, Issue{
					Code:     "unknown_function",
					Message:  fmt.Sprintf("formula for column %q calls unregistered function %s", column.Name, match[1]),
					Column:   column.Name,
					Severity: "warning",
				})
			}
		}
	}

	for i, a := range columns {
		if !a.IsFormula() {
			continue
		}
		for _, b := range columns[i+1:] {
			if !b.IsFormula() {
				continue
			}
			if formula.HasCircularReference(a.Formula, b.Name) &&
				formula.HasCircularReference(b.Formula, a.Name) {
				issues = append(issues, Issue{
					Code:     "cross_reference",
					Message:  fmt.Sprintf("formula columns %q and %q reference each other", a.Name, b.Name),
					Column:   a.Name,
					Severity: "warning",
				})
			}
		}
	}

	p.emitEvent(createEvent(ColumnsValidated, nil, 0, nil, issues, time.Time{}))
	return issues
}

// ColumnDependencies returns which column names a formula column
// textually mentions, in column definition order.
func ColumnDependencies(column Column, columns []Column) []string {
	return formula.TextualDependencies(column.Formula, FieldNames(columns))
}
