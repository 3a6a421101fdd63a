// Utility conversions shared by the function table and the evaluator.
// These encode the engine's coercion policy: numbers parse as float64
// and default to zero on failure.
package formula

import "strconv"

// ToFloat64 converts a value of various numeric types to a float64. It
// returns the converted float64 and a boolean indicating whether the
// conversion was successful.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// NumberOf applies the numeric coercion policy: parse as float, default
// 0 on failure.
func NumberOf(v any) float64 {
	f, ok := ToFloat64(v)
	if !ok {
		return 0
	}
	return f
}

// Truthy coerces a scalar to a boolean. Nil and empty strings are false,
// booleans are themselves, numbers are true when non-zero, and any other
// non-empty value is true.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	default:
		if f, ok := ToFloat64(v); ok {
			return f != 0
		}
		return true
	}
}
