package core

// convert.go provides the string and numeric normalization used by the transforms.
//
// Numeric parsing is strict: only plain decimal text (optionally
// signed, optionally in exponent form) is accepted. Currency symbols and
// thousands separators must already be gone, which is why RemoveCurrencySymbols
// runs before ConvertDataTypes.

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var (
	// every rune unicode.IsSpace accepts
	whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// parseDecimal parses s as a finite decimal number.
// Plain decimals go through pgtype.Numeric so the digits are read exactly
// before widening to float64.
func parseDecimal(s string) (float64, bool) {
	if !numericRegex.MatchString(s) {
		return 0, false
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err == nil {
		if f, err := n.Float64Value(); err == nil && f.Valid && !math.IsInf(f.Float64, 0) {
			return f.Float64, true
		}
	}

	// pgtype.Numeric rejects exponent notation
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toFloat coerces a cell to a float. Unparseable text becomes missing.
func toFloat(v Value) Value {
	if i, ok := v.AsInt(); ok {
		return Float(float64(i))
	}
	s, ok := v.AsText()
	if !ok {
		return v
	}

	f, ok := parseDecimal(strings.TrimSpace(s))
	if !ok {
		return Missing()
	}
	return Float(f)
}

// toQuantity coerces a cell to an integer when it holds integral text and to
// a float when it holds a fractional number. Unparseable text becomes missing.
func toQuantity(v Value) Value {
	s, ok := v.AsText()
	if !ok {
		return v
	}

	s = strings.TrimSpace(s)
	if integerRegex.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n)
		}
	}
	f, ok := parseDecimal(s)
	if !ok {
		return Missing()
	}
	return Float(f)
}

// NormalizeColumnName lowercases name, joins words with single underscores,
// and strips surrounding whitespace and underscores. It is idempotent.
//
// Example: " Product   Name " -> "product_name"
func NormalizeColumnName(name string) string {
	s := strings.TrimSpace(name)
	s = cases.Lower(language.Und).String(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
