// Package numeric parses locale-ambiguous numeric strings found in
// exchange-exported CSV files. Exports produced on pt-BR machines write
// "1.234,56" where en-US machines write "1,234.56"; this package is the single
// source of truth for telling those apart.
package numeric

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts a locale-formatted numeric string into a float64.
// The boolean reports success; failure covers empty input, non-numeric text
// and non-finite results. The disambiguation rules, in order:
//
//  1. Internal whitespace is stripped.
//  2. If both ',' and '.' appear, the separator occurring last is the decimal
//     separator; every occurrence of the other one is a thousands separator.
//  3. If a single separator kind appears more than once, all occurrences are
//     thousands separators.
//  4. If it appears exactly once, it is a thousands separator only when the
//     right fragment is exactly 3 characters and the left fragment is 1-3
//     digits that are not all zero; otherwise it is the decimal separator.
//
// Only plain decimal notation is accepted. Hex and digit-underscore forms
// ("0x10", "1_000") are valid number literals in some languages but never
// appear in exchange exports, so they are rejected deliberately.
func Parse(raw string) (float64, bool) {
	value := stripSpaces(strings.TrimSpace(raw))
	if value == "" {
		return 0, false
	}

	hasComma := strings.Contains(value, ",")
	hasDot := strings.Contains(value, ".")

	if hasComma && hasDot {
		if strings.LastIndex(value, ",") > strings.LastIndex(value, ".") {
			// Comma is the decimal separator, dots group thousands.
			normalized := strings.Replace(strings.ReplaceAll(value, ".", ""), ",", ".", 1)
			return finite(normalized)
		}
		return finite(strings.ReplaceAll(value, ",", ""))
	}

	if hasComma {
		return parseSingleSeparator(value, ',')
	}

	if hasDot {
		return parseSingleSeparator(value, '.')
	}

	return finite(value)
}

// ParseMonetary parses currency-formatted cells such as "+$1,234.56" or
// "-$0,20". Currency sigils and any character that is not a digit, separator
// or sign are stripped before delegating to Parse; a '-' anywhere in the
// cleaned string makes the value negative, so sign tokens embedded mid-string
// are still honored.
func ParseMonetary(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r), r == '$':
			return -1
		case r >= '0' && r <= '9', r == '.', r == ',', r == '+', r == '-':
			return r
		default:
			return -1
		}
	}, trimmed)
	if cleaned == "" {
		return 0, false
	}

	sign := ""
	if strings.Contains(cleaned, "-") {
		sign = "-"
	}

	unsigned := strings.Map(func(r rune) rune {
		if r == '+' || r == '-' {
			return -1
		}
		return r
	}, cleaned)
	if unsigned == "" {
		return 0, false
	}

	return Parse(sign + unsigned)
}

func parseSingleSeparator(value string, sep byte) (float64, bool) {
	switch strings.Count(value, string(sep)) {
	case 0:
		return finite(value)
	case 1:
		// Fall through to the ambiguous single-occurrence case below.
	default:
		// Repeated separators can only be thousands grouping.
		return finite(strings.ReplaceAll(value, string(sep), ""))
	}

	idx := strings.IndexByte(value, sep)
	left, right := value[:idx], value[idx+1:]

	leftDigits := left
	if leftDigits != "" && (leftDigits[0] == '+' || leftDigits[0] == '-') {
		leftDigits = leftDigits[1:]
	}
	normalizedLeft := strings.TrimLeft(leftDigits, "0")
	if normalizedLeft == "" {
		normalizedLeft = "0"
	}

	likelyThousands := len(right) == 3 &&
		len(leftDigits) >= 1 && len(leftDigits) <= 3 &&
		normalizedLeft != "0"

	if likelyThousands {
		return finite(strings.Replace(value, string(sep), "", 1))
	}

	if sep == ',' {
		value = strings.Replace(value, ",", ".", 1)
	}
	return finite(value)
}

func finite(value string) (float64, bool) {
	// strconv accepts Go literal syntax (digit underscores, hex floats) that
	// no exchange export legitimately contains.
	if strings.ContainsAny(value, "_xX") {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return 0, false
	}
	return parsed, true
}

func stripSpaces(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}
