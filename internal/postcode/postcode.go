// Package postcode checks UK postcode shape before any geocoding call.
//
// The grammar is:
//
//	outward = letter{1,2} digit letter? | letter{1,2} digit digit | "GIR"
//	inward  = digit letter letter
//	full    = outward [" "] inward
//	partial = outward
//
// Checks are single-pass over at most maxLen bytes and never panic.
package postcode

import (
	"strings"
	"unicode"
)

const (
	maxLen     = 8 // "AA9A 9AA"
	inwardLen  = 3
	girOutward = "GIR"
)

// Normalize trims, collapses internal whitespace to single spaces and
// upper-cases ASCII letters.
func Normalize(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}

// ValidFull reports whether text is a complete postcode (outward + inward).
func ValidFull(text string) bool {
	_, _, ok := split(text)
	return ok
}

// ValidPartial reports whether text is an outward code on its own.
func ValidPartial(text string) bool {
	n := Normalize(text)
	if len(n) > maxLen || !ascii(n) {
		return false
	}
	return validOutward(n)
}

// Valid accepts either form, which is what public search allows.
func Valid(text string) bool {
	return ValidFull(text) || ValidPartial(text)
}

// Outward returns the outward code of a full or partial postcode.
func Outward(text string) (string, bool) {
	if out, _, ok := split(text); ok {
		return out, true
	}
	if ValidPartial(text) {
		return Normalize(text), true
	}
	return "", false
}

// Canonical renders a valid full postcode as "OUTWARD INWARD" and a valid
// partial one as its outward code.
func Canonical(text string) (string, bool) {
	if out, in, ok := split(text); ok {
		return out + " " + in, true
	}
	if ValidPartial(text) {
		return Normalize(text), true
	}
	return "", false
}

// Compact strips all whitespace and upper-cases, the form used for
// whitespace-insensitive comparisons.
func Compact(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), ""))
}

func split(text string) (outward, inward string, ok bool) {
	n := Normalize(text)
	if len(n) > maxLen || !ascii(n) {
		return "", "", false
	}

	compact := n
	if i := strings.IndexByte(n, ' '); i >= 0 {
		// A single space is only allowed right before the inward code.
		if i != len(n)-inwardLen-1 {
			return "", "", false
		}
		compact = n[:i] + n[i+1:]
	}
	if len(compact) <= inwardLen {
		return "", "", false
	}

	outward, inward = compact[:len(compact)-inwardLen], compact[len(compact)-inwardLen:]
	if !validInward(inward) || !validOutward(outward) {
		return "", "", false
	}
	return outward, inward, true
}

func validInward(s string) bool {
	return len(s) == inwardLen && isDigit(s[0]) && isLetter(s[1]) && isLetter(s[2])
}

func validOutward(s string) bool {
	if s == girOutward {
		return true
	}
	if len(s) < 2 || len(s) > 4 {
		return false
	}

	i := 0
	for i < len(s) && i < 2 && isLetter(s[i]) {
		i++
	}
	if i == 0 {
		return false
	}

	digits := 0
	for i < len(s) && digits < 2 && isDigit(s[i]) {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	// A trailing letter only follows a single digit (A9A, AA9A).
	return digits == 1 && i == len(s)-1 && isLetter(s[i])
}

func ascii(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > unicode.MaxASCII || !(isLetter(c) || isDigit(c) || c == ' ') {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
