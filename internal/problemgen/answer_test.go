package problemgen

import "testing"

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		user, correct string
		want          bool
	}{
		{"42", "42", true},
		{" 42 ", "42", true},
		{"042", "42", true},
		{"-7", "-7", true},
		{"43", "42", false},
		{"", "42", false},
		{"abc", "5", false},
		{"5abc", "5", false},
		{"4.0", "4", false},
	}

	for _, tc := range tests {
		got := ValidateNumber(tc.user, tc.correct)
		if got != tc.want {
			t.Errorf("ValidateNumber(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
		}
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		user, correct string
		want          bool
	}{
		{"1/2", "1/2", true},
		{"2/4", "1/2", true},
		{"3/6", "1/2", true},
		{" 1/2 ", "1/2", true},
		{"5", "5/1", true},
		{"10/2", "5", true},
		{"3/4", "1/2", false},
		{"1/3", "1/2", false},
		{"1/0", "1/2", false},
		{"", "1/2", false},
		{"a/b", "1/2", false},
		{"-1/2", "-1/2", true},
		{"-1/2", "1/2", false},
	}

	for _, tc := range tests {
		got := ValidateFraction(tc.user, tc.correct)
		if got != tc.want {
			t.Errorf("ValidateFraction(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
		}
	}
}

func TestValidateDecimal(t *testing.T) {
	tests := []struct {
		user, correct string
		want          bool
	}{
		{"3.5", "3.5", true},
		{"3.50", "3.5", true},
		{"3.333", "3.33", true},
		{"3.335", "3.33", true},
		{"3.36", "3.33", false},
		{"14", "14", true},
		{"-2.5", "-2.5", true},
		{"NaN", "1", false},
		{"Inf", "1", false},
		{"", "1", false},
	}

	for _, tc := range tests {
		got := ValidateDecimal(tc.user, tc.correct)
		if got != tc.want {
			t.Errorf("ValidateDecimal(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
		}
	}
}

func TestValidate_UnknownName(t *testing.T) {
	if _, err := Validate("romanValidator", "V", "5"); err == nil {
		t.Error("expected error for unknown validator")
	}
	if _, err := ParseValidator("romanValidator"); err == nil {
		t.Error("expected ParseValidator error for unknown validator")
	}
	v, err := ParseValidator("fractionValidator")
	if err != nil || v != FractionValidator {
		t.Errorf("ParseValidator(fractionValidator) = %q, %v", v, err)
	}
}

func TestCheckAnswer_UsesKindValidator(t *testing.T) {
	frac := &Exercise{
		Kind:  KindFractionAddition,
		Shape: ShapeFraction,
		Fraction: &FractionExercise{
			Numerator1: 1, Denominator1: 4, Numerator2: 1, Denominator2: 4,
			Operation: OpAdd, AnswerNumerator: 1, AnswerDenominator: 2, Answer: "1/2",
		},
	}
	if !CheckAnswer("2/4", frac) {
		t.Error("expected 2/4 to be accepted for 1/2")
	}
	if CheckAnswer("3/4", frac) {
		t.Error("expected 3/4 to be rejected for 1/2")
	}

	order := &Exercise{
		Kind:              KindOrderOfOperations,
		Shape:             ShapeOrderOfOperations,
		OrderOfOperations: &OrderOfOperationsExercise{Expression: "7 ÷ 3", Answer: 2.33},
	}
	if !CheckAnswer("2.333", order) {
		t.Error("expected decimal within tolerance to be accepted")
	}

	sum := &Exercise{Kind: KindAdditionAdvanced, Shape: ShapeNumber, Number: &NumberExercise{Num1: 20, Num2: 22, Op: OpAdd, Answer: 42}}
	if CheckAnswer("   ", sum) {
		t.Error("blank input must be wrong")
	}
	if CheckAnswer("42", nil) {
		t.Error("nil exercise must be wrong")
	}
}
