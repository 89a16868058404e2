package parser

import "strings"

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// substr returns s[i:j] with both bounds clamped to the string, so short
// tokens never panic.
func substr(s string, i, j int) string {
	if i > len(s) {
		i = len(s)
	}
	if j > len(s) {
		j = len(s)
	}
	if i < 0 {
		i = 0
	}
	if j < i {
		return ""
	}
	return s[i:j]
}

// charAt returns s[i], or 0 when i is out of range.
func charAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// findFirstInList returns the lowest index in txt of any item, or -1.
func findFirstInList(txt string, items []string) int {
	start := -1
	for _, item := range items {
		if idx := strings.Index(txt, item); idx > -1 && (start == -1 || idx < start) {
			start = idx
		}
	}
	return start
}

// isPossibleTemp reports whether every character is a digit or M (minus).
func isPossibleTemp(temp string) bool {
	for i := 0; i < len(temp); i++ {
		if !isDigit(temp[i]) && temp[i] != 'M' {
			return false
		}
	}
	return true
}
