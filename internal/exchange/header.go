package exchange

import (
	"regexp"
	"strings"
)

var (
	headerSeparators  = regexp.MustCompile(`[\s-]+`)
	headerUnderscores = regexp.MustCompile(`__+`)
)

// compactHeader lowers a raw header cell into snake_case: trimmed, lowercased,
// whitespace and hyphens collapsed to single underscores.
func compactHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = headerSeparators.ReplaceAllString(normalized, "_")
	return headerUnderscores.ReplaceAllString(normalized, "_")
}

// canonicalizeHeader maps a raw header cell onto its canonical column name.
// The alias table is consulted with both the snake_case form and the fully
// collapsed (underscore-free) form, so "Market Symbol", "market-symbol" and
// "marketsymbol" all resolve to market_symbol.
func canonicalizeHeader(header string, aliases map[string]string) string {
	normalized := compactHeader(header)
	if canonical, ok := aliases[normalized]; ok {
		return canonical
	}
	collapsed := strings.ReplaceAll(normalized, "_", "")
	if canonical, ok := aliases[collapsed]; ok {
		return canonical
	}
	return normalized
}
