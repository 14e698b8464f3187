// Package fraction holds the integer helpers shared by fraction exercises
// and the fraction answer validator.
package fraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned when a string is neither "n/d" nor an integer.
	ErrMalformed = errors.New("malformed fraction")

	// ErrZeroDenominator is returned when the denominator parses to 0.
	ErrZeroDenominator = errors.New("zero denominator")
)

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm: gcd(a, 0) = a, gcd(a, b) = gcd(b, a mod b).
// Both a and b must be non-negative.
func GCD(a, b int) int {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// LCD returns the least common denominator of ds, folding LCM pairwise.
// Returns 0 for an empty list.
func LCD(ds ...int) int {
	if len(ds) == 0 {
		return 0
	}
	l := ds[0]
	for _, d := range ds[1:] {
		l = LCM(l, d)
	}
	return l
}

// Simplify reduces n/d by the GCD of their absolute values. Signs stay on
// the component that carried them.
func Simplify(n, d int) (int, int) {
	g := GCD(Abs(n), Abs(d))
	if g == 0 {
		return n, d
	}
	return n / g, d / g
}

// Add returns n1/d1 + n2/d2 in lowest terms, using the least common
// denominator of d1 and d2.
func Add(n1, d1, n2, d2 int) (int, int) {
	lcd := LCM(d1, d2)
	return Simplify(n1*(lcd/d1)+n2*(lcd/d2), lcd)
}

// Sub returns n1/d1 - n2/d2 in lowest terms.
func Sub(n1, d1, n2, d2 int) (int, int) {
	return Add(n1, d1, -n2, d2)
}

// Parse parses "n/d" or a bare integer (read as n/1).
func Parse(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, isFrac := strings.Cut(s, "/")
	num, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: numerator %q", ErrMalformed, numStr)
	}
	if !isFrac {
		return num, 1, nil
	}
	den, err := strconv.Atoi(strings.TrimSpace(denStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: denominator %q", ErrMalformed, denStr)
	}
	if den == 0 {
		return 0, 0, ErrZeroDenominator
	}
	return num, den, nil
}

// Format renders n/d as "n/d".
func Format(n, d int) string {
	return fmt.Sprintf("%d/%d", n, d)
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
