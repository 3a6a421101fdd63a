package formula

import (
	"fmt"
	"strings"
)

// DefaultFunctions returns the built-in function table: SUM, AVG, MIN,
// MAX, COUNT and IF. The map is a fresh copy on every call, so callers
// may extend it without affecting evaluators constructed elsewhere.
func DefaultFunctions() map[string]Function {
	return map[string]Function{
		"SUM":   sumFunc,
		"AVG":   avgFunc,
		"MIN":   minFunc,
		"MAX":   maxFunc,
		"COUNT": countFunc,
		"IF":    ifFunc,
	}
}

func sumFunc(_ Row, args []any) (any, error) {
	total := 0.0
	for _, arg := range args {
		total += NumberOf(arg)
	}
	return total, nil
}

func avgFunc(row Row, args []any) (any, error) {
	if len(args) == 0 {
		return 0.0, nil
	}
	total, err := sumFunc(row, args)
	if err != nil {
		return nil, err
	}
	return total.(float64) / float64(len(args)), nil
}

func minFunc(_ Row, args []any) (any, error) {
	if len(args) == 0 {
		return 0.0, nil
	}
	lowest := NumberOf(args[0])
	for _, arg := range args[1:] {
		if n := NumberOf(arg); n < lowest {
			lowest = n
		}
	}
	return lowest, nil
}

func maxFunc(_ Row, args []any) (any, error) {
	if len(args) == 0 {
		return 0.0, nil
	}
	highest := NumberOf(args[0])
	for _, arg := range args[1:] {
		if n := NumberOf(arg); n > highest {
			highest = n
		}
	}
	return highest, nil
}

// countFunc counts the arguments supplied, with no numeric coercion and
// no regard for whether they resolved to row fields.
func countFunc(_ Row, args []any) (any, error) {
	return len(args), nil
}

// ifFunc requires condition, then-value and else-value. Fewer than three
// arguments yields nil; arguments beyond the third are ignored.
func ifFunc(row Row, args []any) (any, error) {
	if len(args) < 3 {
		return nil, nil
	}
	if evaluateCondition(row, args[0]) {
		return args[1], nil
	}
	return args[2], nil
}

// conditionOperators are checked in priority order: "=" before ">"
// before "<". The first operator found splits the condition.
var conditionOperators = []string{"=", ">", "<"}

// evaluateCondition decides an IF condition. Booleans are used directly.
// A string containing a comparison operator is split on its first
// occurrence and the trimmed sides are compared after row resolution:
// "=" compares as strings, ">" and "<" numerically. Anything else is
// coerced by truthiness.
func evaluateCondition(row Row, condition any) bool {
	if b, ok := condition.(bool); ok {
		return b
	}
	text, ok := condition.(string)
	if !ok {
		return Truthy(condition)
	}

	for _, op := range conditionOperators {
		idx := strings.Index(text, op)
		if idx < 0 {
			continue
		}
		left := resolveOperand(row, strings.TrimSpace(text[:idx]))
		right := resolveOperand(row, strings.TrimSpace(text[idx+len(op):]))
		switch op {
		case "=":
			return fmt.Sprintf("%v", left) == fmt.Sprintf("%v", right)
		case ">":
			return NumberOf(left) > NumberOf(right)
		default:
			return NumberOf(left) < NumberOf(right)
		}
	}
	return Truthy(text)
}

// resolveOperand substitutes a row field for a comparison operand; text
// that is not a field name stays literal.
func resolveOperand(row Row, token string) any {
	if v, ok := row[token]; ok {
		return v
	}
	return token
}
