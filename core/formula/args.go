package formula

import "strings"

// splitArguments splits a formula's argument text on top-level commas.
// Commas inside parentheses (nested formula arguments) or inside single
// or double quotes (string literals) do not split. Tokens are trimmed
// but otherwise kept in their original string form, quotes included.
func splitArguments(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
		depth   int
		quote   rune
	)
	for _, r := range s {
		switch {
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case r == ',' && depth == 0:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	tokens = append(tokens, strings.TrimSpace(current.String()))
	return tokens
}
