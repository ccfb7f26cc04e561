package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAssignment turns the truth subcommand's value arguments into an
// assignment mask. One value is read as a whole mask (binary string first,
// then boolean words, then decimal); several values set one bit each, value
// i mapping to bit i.
func parseAssignment(values []string) (uint64, error) {
	if len(values) == 1 {
		v := values[0]
		switch {
		case allDigitsOf(v, "01"):
			return strconv.ParseUint(v, 2, 64)
		case strings.EqualFold(v, "true"):
			return 1, nil
		case strings.EqualFold(v, "false"):
			return 0, nil
		case allDigitsOf(v, "0123456789"):
			return strconv.ParseUint(v, 10, 64)
		default:
			return 0, fmt.Errorf(
				"invalid input %q: must be a boolean (true|false|0|1), a binary string (010101) or an unsigned number", v)
		}
	}

	var pass uint64
	for i, v := range values {
		switch {
		case strings.EqualFold(v, "true") || v == "1":
			pass |= 1 << i
		case strings.EqualFold(v, "false") || v == "0":
		default:
			return 0, fmt.Errorf(
				"invalid input %q at index %d: must be a boolean (true|false|0|1)", v, i)
		}
	}
	return pass, nil
}

func allDigitsOf(s, digits string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(digits, c) {
			return false
		}
	}
	return true
}
