package lqueue

import "strconv"

// ParseInt parses the leading base-10 integer of s.
//
// Leading whitespace and a single sign are accepted. Parsing stops at the first
// non-digit. A string without digits yields 0 and out of range values saturate.
func ParseInt(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := i
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}

	if i == digits {
		return 0
	}

	// On a range error v holds the saturated value.
	v, _ := strconv.ParseInt(s[start:i], 10, 64)

	return v
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
