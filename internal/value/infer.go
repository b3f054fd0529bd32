package value

import (
	"strconv"
	"strings"
)

// Infer converts a cell into a scalar. The input is trimmed first.
//
// Attempts run in a fixed order: blank is Null, then true/false (any case),
// then a base-10 int64, then a finite decimal float. Everything else stays a
// String holding the trimmed text.
func Infer(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Null{}
	}

	switch {
	case strings.EqualFold(s, "true"):
		return Bool(true)
	case strings.EqualFold(s, "false"):
		return Bool(false)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}

	// ParseFloat alone would also take "Inf", "NaN", hex floats and
	// underscores. None of those are numbers in a CSV cell.
	if isDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}

	return String(s)
}

// isDecimal matches [+-]digits[.digits][(e|E)[+-]digits] with at least one
// mantissa digit on either side of the point.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}

	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
