package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/fraction"
)

// ValidatorName identifies an answer validator.
type ValidatorName string

const (
	NumberValidator   ValidatorName = "numberValidator"
	FractionValidator ValidatorName = "fractionValidator"
	DecimalValidator  ValidatorName = "decimalValidator"
)

// DecimalTolerance is the absolute tolerance of ValidateDecimal.
const DecimalTolerance = 0.01

var validators = map[ValidatorName]func(user, correct string) bool{
	NumberValidator:   ValidateNumber,
	FractionValidator: ValidateFraction,
	DecimalValidator:  ValidateDecimal,
}

// ParseValidator resolves a validator name.
func ParseValidator(name string) (ValidatorName, error) {
	v := ValidatorName(name)
	if _, ok := validators[v]; !ok {
		return "", fmt.Errorf("unknown validator %q", name)
	}
	return v, nil
}

// Validate runs the named validator. The only error is an unknown name.
func Validate(name ValidatorName, user, correct string) (bool, error) {
	fn, ok := validators[name]
	if !ok {
		return false, fmt.Errorf("unknown validator %q", name)
	}
	return fn(user, correct), nil
}

// CheckAnswer compares the learner's input against the exercise's
// canonical answer using the validator for its kind. Empty input is
// never correct.
func CheckAnswer(userAnswer string, ex *Exercise) bool {
	if ex == nil || strings.TrimSpace(userAnswer) == "" {
		return false
	}
	ok, err := Validate(ex.Validator(), userAnswer, ex.AnswerString())
	return err == nil && ok
}

// ValidateNumber parses both sides as base-10 integers and requires exact
// equality. Whitespace is trimmed; anything unparseable is wrong.
func ValidateNumber(user, correct string) bool {
	u, err := strconv.Atoi(strings.TrimSpace(user))
	if err != nil {
		return false
	}
	c, err := strconv.Atoi(strings.TrimSpace(correct))
	if err != nil {
		return false
	}
	return u == c
}

// ValidateFraction accepts "n/d" or a bare integer (read as n/1) on both
// sides. Each side is reduced by the GCD of its absolute values and the
// numerators and denominators must then match exactly, signs included.
// A zero denominator or unparseable input is wrong.
func ValidateFraction(user, correct string) bool {
	un, ud, err := fraction.Parse(user)
	if err != nil {
		return false
	}
	cn, cd, err := fraction.Parse(correct)
	if err != nil {
		return false
	}
	un, ud = fraction.Simplify(un, ud)
	cn, cd = fraction.Simplify(cn, cd)
	return un == cn && ud == cd
}

// ValidateDecimal parses both sides as decimals and accepts a difference
// below DecimalTolerance.
func ValidateDecimal(user, correct string) bool {
	u, err := strconv.ParseFloat(strings.TrimSpace(user), 64)
	if err != nil || math.IsNaN(u) || math.IsInf(u, 0) {
		return false
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(correct), 64)
	if err != nil || math.IsNaN(c) || math.IsInf(c, 0) {
		return false
	}
	return math.Abs(u-c) < DecimalTolerance
}
