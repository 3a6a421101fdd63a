package formula

import "regexp"

// TextualDependencies reports which of knownFields a formula mentions as
// a whole word, preserving the order of knownFields rather than the
// order of appearance in the formula. It is a textual heuristic, not a
// parse: a field name inside a quoted literal still counts, and a
// mention is not proof the field is used as a real argument.
func TextualDependencies(formula string, knownFields []string) []string {
	if formula == "" || len(knownFields) == 0 {
		return nil
	}
	var deps []string
	for _, field := range knownFields {
		if mentionsField(formula, field) {
			deps = append(deps, field)
		}
	}
	return deps
}

// HasCircularReference reports whether a formula textually mentions the
// field that hosts it. This check is necessary but not sufficient: it
// does not follow chains through other fields' formulas, so a false
// result is no guarantee of acyclicity when formula columns reference
// each other transitively.
func HasCircularReference(formula, fieldName string) bool {
	if formula == "" {
		return false
	}
	return mentionsField(formula, fieldName)
}

// mentionsField does a whole-word match of field inside formula.
func mentionsField(formula, field string) bool {
	if field == "" {
		return false
	}
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(field) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(formula)
}
