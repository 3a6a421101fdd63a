package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFunctions(t *testing.T) {
	table := DefaultFunctions()
	for _, name := range []string{"SUM", "AVG", "MIN", "MAX", "COUNT", "IF"} {
		assert.Contains(t, table, name)
	}

	// Each call returns a fresh copy.
	delete(table, "SUM")
	assert.Contains(t, DefaultFunctions(), "SUM")
}

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected float64
	}{
		{"integers", []any{2, 3}, 5.0},
		{"floats", []any{1.5, 2.5}, 4.0},
		{"numeric_strings", []any{"2", "3.5"}, 5.5},
		{"non_numeric_coerced_to_zero", []any{"abc", 4, nil}, 4.0},
		{"empty", nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sumFunc(Row{}, tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAvg(t *testing.T) {
	result, err := avgFunc(Row{}, []any{2, 4, 6})
	assert.NoError(t, err)
	assert.Equal(t, 4.0, result)

	// Zero arguments must not divide by zero.
	result, err = avgFunc(Row{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result)
}

func TestMinMax(t *testing.T) {
	result, err := minFunc(Row{}, []any{5, 2, 8})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, result)

	result, err = maxFunc(Row{}, []any{5, 2, 8})
	assert.NoError(t, err)
	assert.Equal(t, 8.0, result)

	// Zero arguments behave like an empty numeric set.
	result, err = minFunc(Row{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result)

	result, err = maxFunc(Row{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result)
}

func TestCount(t *testing.T) {
	result, err := countFunc(Row{}, []any{"a", "b", "c"})
	assert.NoError(t, err)
	assert.Equal(t, 3, result)

	result, err = countFunc(Row{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestIf(t *testing.T) {
	row := Row{"a": 5, "b": 2, "name": "x", "other": "x", "active": true}

	tests := []struct {
		name     string
		args     []any
		expected any
	}{
		{"boolean_condition_true", []any{true, "yes", "no"}, "yes"},
		{"boolean_condition_false", []any{false, "yes", "no"}, "no"},
		{"numeric_gt", []any{"a>b", "bigger", "smaller"}, "bigger"},
		{"numeric_lt", []any{"a<b", "smaller", "bigger"}, "bigger"},
		{"string_equality", []any{"name=other", "same", "different"}, "same"},
		{"string_inequality", []any{"name=b", "same", "different"}, "different"},
		{"truthy_string", []any{"anything", "yes", "no"}, "yes"},
		{"empty_string_falsy", []any{"", "yes", "no"}, "no"},
		{"zero_falsy", []any{0, "yes", "no"}, "no"},
		{"nil_falsy", []any{nil, "yes", "no"}, "no"},
		{"extra_arguments_ignored", []any{true, "yes", "no", "ignored"}, "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ifFunc(row, tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIf_ArityViolation(t *testing.T) {
	result, err := ifFunc(Row{}, []any{true, "yes"})
	assert.NoError(t, err)
	assert.Nil(t, result)

	result, err = ifFunc(Row{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestEvaluateCondition_OperatorPriority(t *testing.T) {
	// "=" is checked before ">" and "<", so a condition containing both
	// splits on the "=".
	row := Row{"a": "b>c"}
	assert.True(t, evaluateCondition(row, "a=b>c"))
}

func TestEvaluateCondition_UnresolvedOperands(t *testing.T) {
	// Operands that are not field names are compared as literals:
	// non-numeric text coerces to zero for ordering comparisons.
	assert.False(t, evaluateCondition(Row{}, "x>y"))
	assert.True(t, evaluateCondition(Row{}, "3>2"))
	assert.True(t, evaluateCondition(Row{}, "2<3"))
	assert.True(t, evaluateCondition(Row{}, "x=x"))
}
