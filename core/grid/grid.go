// Package grid applies formula columns to grid rows. It is the
// rendering-side collaborator of the formula engine: it owns column
// definitions, validates formula columns before use, and fills formula
// cells across rows while emitting observability events.
package grid

// ColumnType identifies how a grid column sources its values.
type ColumnType string

// Supported column types.
const (
	ColumnTypeText    ColumnType = "text"
	ColumnTypeNumber  ColumnType = "number"
	ColumnTypeBoolean ColumnType = "boolean"
	ColumnTypeFormula ColumnType = "formula"
)

// Column is a single grid column definition. Formula is only meaningful
// when Type is ColumnTypeFormula.
type Column struct {
	Name    string     `json:"name"`
	Type    ColumnType `json:"type"`
	Formula string     `json:"formula,omitempty"`
}

// IsFormula reports whether the column carries an evaluable formula.
func (c Column) IsFormula() bool {
	return c.Type == ColumnTypeFormula && c.Formula != ""
}

// FieldNames returns the column names in definition order.
func FieldNames(columns []Column) []string {
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}
	return names
}
