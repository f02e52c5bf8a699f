package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		input float64
		want  int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{10.0, 10},
		{-0.5, -1},
		{-1.4, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.input), "RoundHalfUp(%v)", tt.input)
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"binary value below the tie", 100.0 - 37.45, 1, "62.5"},
		{"exact tie rounds up", 62.25, 1, "62.3"},
		{"another exact tie", 0.75, 1, "0.8"},
		{"carry into integer part", 9.96, 1, "10.0"},
		{"carry adds a digit", 99.95, 1, "100.0"},
		{"zero", 0, 1, "0.0"},
		{"integer", 42, 1, "42.0"},
		{"no decimals", 2.5, 0, "3"},
		{"negative", -1.25, 1, "-1.3"},
		{"negative rounding to zero", -0.01, 1, "0.0"},
		{"negative decimals clamp", 1.6, -2, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fixed(tt.value, tt.decimals))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, "62.5 kL", Remaining(100.0, 37.45, "kL"))
	assert.Equal(t, "0.0 kL", Remaining(0, 0, "kL"))
	assert.Equal(t, "-5.0 kL", Remaining(10, 15, "kL"))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "37.5 / 100.0 kL", Ratio(37.45, 100, "kL"))
	assert.Equal(t, "0.0 / 0.0 kL", Ratio(0, 0, "kL"))
}
