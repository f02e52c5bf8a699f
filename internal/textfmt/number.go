package textfmt

import (
	"math"
	"strconv"
	"strings"
)

// guardDigits is how many decimals past the rounding position are inspected.
const guardDigits = 30

// RoundHalfUp rounds x to the nearest integer, with exact halves going away from zero.
func RoundHalfUp(x float64) int {
	if x < 0 {
		return -int(math.Floor(-x + 0.5))
	}
	return int(math.Floor(x + 0.5))
}

// Fixed formats v with the given number of decimals, rounding half away from
// zero on the exact binary value of v (62.549999... stays 62.5).
func Fixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', decimals+guardDigits, 64)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot+1:]

	digits := []byte(intPart + frac[:decimals])
	if frac[decimals] >= '5' {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	split := len(digits) - decimals
	out := string(digits[:split])
	if decimals > 0 {
		out += "." + string(digits[split:])
	}
	if v < 0 && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}
	return out
}

// Remaining formats the free capacity left: "{max-current:0.0} unit".
func Remaining(max, current float64, unit string) string {
	return Fixed(max-current, 1) + " " + unit
}

// Ratio formats fill against capacity: "{current:0.0} / {max:0.0} unit".
func Ratio(current, max float64, unit string) string {
	return Fixed(current, 1) + " / " + Fixed(max, 1) + " " + unit
}
