package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString keeps the caller's casing. Used for free-form profile
// fields where "DevOps Engineer" should not become "devops engineer".
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}

func TrimInputStrings(inputs []string) []string {
	out := make([]string, 0, len(inputs))
	for _, s := range inputs {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
