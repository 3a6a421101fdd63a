package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func issueCodes(issues []Issue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func TestProcessor_ValidateColumns(t *testing.T) {
	p, err := NewProcessor(nil, nil)
	assert.NoError(t, err)

	t.Run("clean_columns", func(t *testing.T) {
		issues := p.ValidateColumns(testColumns())
		assert.Empty(t, issues)
	})

	t.Run("self_reference", func(t *testing.T) {
		columns := []Column{
			{Name: "total", Type: ColumnTypeFormula, Formula: "=SUM(total,fee)"},
		}
		issues := p.ValidateColumns(columns)
		assert.Len(t, issues, 1)
		assert.Equal(t, "circular_reference", issues[0].Code)
		assert.Equal(t, "error", issues[0].Severity)
		assert.Equal(t, "total", issues[0].Column)
	})

	t.Run("unknown_function", func(t *testing.T) {
		columns := []Column{
			{Name: "x", Type: ColumnTypeFormula, Formula: "=NOPE(a)"},
		}
		issues := p.ValidateColumns(columns)
		assert.Len(t, issues, 1)
		assert.Equal(t, "unknown_function", issues[0].Code)
		assert.Equal(t, "warning", issues[0].Severity)
	})

	t.Run("cross_reference", func(t *testing.T) {
		columns := []Column{
			{Name: "a", Type: ColumnTypeFormula, Formula: "=SUM(b,1)"},
			{Name: "b", Type: ColumnTypeFormula, Formula: "=SUM(a,1)"},
		}
		issues := p.ValidateColumns(columns)
		assert.Contains(t, issueCodes(issues), "cross_reference")
	})

	t.Run("one_way_reference_is_fine", func(t *testing.T) {
		columns := []Column{
			{Name: "price", Type: ColumnTypeNumber},
			{Name: "a", Type: ColumnTypeFormula, Formula: "=SUM(price,1)"},
			{Name: "b", Type: ColumnTypeFormula, Formula: "=SUM(a,1)"},
		}
		issues := p.ValidateColumns(columns)
		assert.Empty(t, issues)
	})

	t.Run("non_formula_columns_skipped", func(t *testing.T) {
		columns := []Column{
			{Name: "name", Type: ColumnTypeText},
			{Name: "name_again", Type: ColumnTypeText},
		}
		issues := p.ValidateColumns(columns)
		assert.Empty(t, issues)
	})
}

func TestColumnDependencies(t *testing.T) {
	columns := []Column{
		{Name: "price", Type: ColumnTypeNumber},
		{Name: "tax", Type: ColumnTypeNumber},
		{Name: "name", Type: ColumnTypeText},
		{Name: "total", Type: ColumnTypeFormula, Formula: "=SUM(price,tax)"},
	}

	deps := ColumnDependencies(columns[3], columns)
	assert.Equal(t, []string{"price", "tax"}, deps)

	// Non-formula columns have no formula text and therefore no
	// dependencies.
	assert.Empty(t, ColumnDependencies(columns[0], columns))
}
