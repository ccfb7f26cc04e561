package stringsutil

import "strings"

// SplitTrimmed splits a comma-separated list, trims each entry and drops the
// empty ones. Used for list-valued environment variables.
func SplitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return RemoveEmptyStrings(parts)
}

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// RuneStrings converts a rune slice to one string per rune, preserving
// order. Identifier lists cross API boundaries in this form.
func RuneStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
