package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12,5", 12.5},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"-0,25", -0.25},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumber(tt.in), "ParseNumber(%q)", tt.in)
	}
}

func TestParseNumber_Missing(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "nan", "NaN", "1,2,3"} {
		assert.True(t, math.IsNaN(ParseNumber(in)), "ParseNumber(%q) should be NaN", in)
	}
}

func TestParseCycle(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"3", 3, true},
		{" 42 ", 42, true},
		{"12.0", 12, true},
		{"12,0", 12, true},
		{"12.5", 0, false},
		{"", 0, false},
		{"x", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCycle(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseCycle(%q) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParseCycle(%q)", tt.in)
	}
}

func TestNormalizeColumn(t *testing.T) {
	got := NormalizeColumn([]string{"1,5", "", "2"})
	assert.Equal(t, 1.5, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 2.0, got[2])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "", FormatValue(math.NaN()))
	assert.Equal(t, "12.5", FormatValue(12.5))
	assert.Equal(t, "110", FormatValue(110.0))
	assert.Equal(t, "4", FormatValue(4))
	assert.Equal(t, "sync", FormatValue("sync"))
}
