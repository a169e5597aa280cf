package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "us_decimal", input: "1234.56", expected: 1234.56, ok: true},
		{name: "br_thousands_and_decimal", input: "1.234,56", expected: 1234.56, ok: true},
		{name: "us_thousands_and_decimal", input: "1,234.56", expected: 1234.56, ok: true},
		{name: "dot_decimal_below_one", input: "0.566", expected: 0.566, ok: true},
		{name: "comma_decimal_below_one", input: "0,566", expected: 0.566, ok: true},
		{name: "negative_dot_decimal", input: "-0.566", expected: -0.566, ok: true},
		{name: "plain_integer", input: "42", expected: 42, ok: true},
		{name: "single_dot_thousands", input: "1.234", expected: 1234, ok: true},
		{name: "single_comma_thousands", input: "1,234", expected: 1234, ok: true},
		{name: "four_digit_left_is_decimal", input: "1234.567", expected: 1234.567, ok: true},
		{name: "repeated_dots_are_thousands", input: "1.234.567", expected: 1234567, ok: true},
		{name: "repeated_commas_are_thousands", input: "1,234,567", expected: 1234567, ok: true},
		{name: "internal_whitespace", input: "1 234.56", expected: 1234.56, ok: true},
		{name: "signed_with_plus", input: "+2.5", expected: 2.5, ok: true},
		{name: "two_digit_right_is_decimal", input: "1,23", expected: 1.23, ok: true},
		{name: "non_numeric", input: "invalid", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "whitespace_only", input: "   ", ok: false},
		{name: "lone_separator", input: ".", ok: false},
		{name: "infinity_rejected", input: "Infinity", ok: false},
		{name: "nan_rejected", input: "NaN", ok: false},
		{name: "hex_rejected", input: "0x10", ok: false},
		{name: "underscore_digits_rejected", input: "1_000", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}

func TestParseMonetary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "dollar_prefix", input: "$16.8", expected: 16.8, ok: true},
		{name: "signed_positive", input: "+$0.11", expected: 0.11, ok: true},
		{name: "signed_negative", input: "-$0.2", expected: -0.2, ok: true},
		{name: "sign_after_sigil", input: "$-0.01", expected: -0.01, ok: true},
		{name: "grouped_thousands", input: "$2,946.5", expected: 2946.5, ok: true},
		{name: "br_grouping", input: "R$ 1.234,56", expected: 1234.56, ok: true},
		{name: "stray_unit_suffix", input: "0.0057 ETH", expected: 0.0057, ok: true},
		{name: "plain_number", input: "15", expected: 15, ok: true},
		{name: "only_sigils", input: "$", ok: false},
		{name: "only_sign", input: "+-", ok: false},
		{name: "non_numeric", input: "invalid", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonetary(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}
