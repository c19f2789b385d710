package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a raw cell to float64. Comma decimal separators are
// accepted; empty or non-numeric cells yield NaN.
func ParseNumber(s string) float64 {
	f, ok := ParseNumberOk(s)
	if !ok {
		return math.NaN()
	}
	return f
}

// ParseNumberOk converts a raw cell to float64, returning success status.
func ParseNumberOk(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParseCycle converts a cycle cell to an integer. Integral floats such as
// "12.0" are accepted.
func ParseCycle(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}

	f, ok := ParseNumberOk(s)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// NormalizeColumn converts every cell of a column with ParseNumber.
func NormalizeColumn(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, c := range cells {
		out[i] = ParseNumber(c)
	}
	return out
}

// FormatFloat renders a float for delimited output. NaN becomes an empty cell.
func FormatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatValue converts any value to a string representation for CSV output.
func FormatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return FormatFloat(val)
	case float32:
		return FormatFloat(float64(val))
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
