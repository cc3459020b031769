// Package strings holds the text helpers shared by the court stores.
package strings

import "strings"

// SplitLines splits a stored multi-line address into trimmed, non-empty
// lines. Repeated lines are kept.
//
//	SplitLines("1 High St\r\n\n  Town Hall ") // []string{"1 High St", "Town Hall"}
func SplitLines(value string) []string {
	lines := []string{}
	for l := range strings.Lines(strings.ReplaceAll(value, "\r\n", "\n")) {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// JoinLines normalises lines into the stored newline-separated form.
func JoinLines(lines []string) string {
	return strings.Join(SplitLines(strings.Join(lines, "\n")), "\n")
}

// EqualFoldAny reports whether target equals any of values ignoring case.
func EqualFoldAny(target string, values ...string) bool {
	for _, v := range values {
		if strings.EqualFold(target, v) {
			return true
		}
	}
	return false
}
