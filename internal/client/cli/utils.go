package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// argID parses args[i] as a positive id.
func argID(args []string, i int, usage string) (int64, error) {
	if len(args) <= i {
		return 0, &usageError{usage}
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, &usageError{usage}
	}
	return id, nil
}

// argPage parses an optional page number at args[i], 1 when absent.
func argPage(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, &usageError{"page must be a positive number"}
	}
	return n, nil
}

// argRest joins args[i:] back into free text.
func argRest(args []string, i int) string {
	if len(args) <= i {
		return ""
	}
	return strings.TrimSpace(strings.Join(args[i:], " "))
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
