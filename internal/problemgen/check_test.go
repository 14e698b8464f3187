package problemgen

import (
	"strings"
	"testing"
)

func validSum() *Exercise {
	ex := numberExercise(20, 22, OpAdd)
	ex.Kind = KindAdditionAdvanced
	ex.Level = 2
	ex.Key = QuestionKey(ex)
	return ex
}

func validFraction() *Exercise {
	ex := fractionExercise(1, 2, 1, 3, OpAdd)
	ex.Kind = KindFractionAddition
	ex.Level = 4
	ex.Key = QuestionKey(ex)
	return ex
}

func TestRunChecks_Valid(t *testing.T) {
	for _, ex := range []*Exercise{validSum(), validFraction()} {
		if err := RunChecks(ex, DefaultChecks()...); err != nil {
			t.Errorf("RunChecks(%s) = %v, want nil", ex.Key, err)
		}
	}
}

func TestStructuralCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Exercise)
		want   string
	}{
		{"unknown kind", func(ex *Exercise) { ex.Kind = "divideByZero" }, "unknown kind"},
		{"wrong shape", func(ex *Exercise) { ex.Shape = ShapeFraction }, "produces shape"},
		{"two payloads", func(ex *Exercise) { ex.LCD = &LCDExercise{Denominators: []int{2, 3}, Answer: 6} }, "exactly one payload"},
		{"no payload", func(ex *Exercise) { ex.Number = nil }, "exactly one payload"},
		{"empty key", func(ex *Exercise) { ex.Key = "" }, "key is empty"},
		{"stale key", func(ex *Exercise) { ex.Key = "22+20" }, "does not match"},
	}

	c := &StructuralCheck{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ex := validSum()
			tc.mutate(ex)
			cerr := c.Check(ex)
			if cerr == nil {
				t.Fatal("expected structural failure")
			}
			if cerr.Check != "structural" {
				t.Errorf("Check = %q, want structural", cerr.Check)
			}
			if !strings.Contains(cerr.Message, tc.want) {
				t.Errorf("Message = %q, want it to contain %q", cerr.Message, tc.want)
			}
		})
	}

	if cerr := c.Check(nil); cerr == nil {
		t.Error("nil exercise should fail")
	}
}

func TestMathCheck(t *testing.T) {
	c := &MathCheck{}

	sum := validSum()
	sum.Number.Answer = 41
	if cerr := c.Check(sum); cerr == nil {
		t.Error("wrong sum should fail")
	}

	frac := validFraction()
	frac.Fraction.AnswerNumerator, frac.Fraction.AnswerDenominator, frac.Fraction.Answer = 10, 12, "10/12"
	if cerr := c.Check(frac); cerr == nil {
		t.Error("wrong fraction should fail")
	}

	unreduced := fractionExercise(1, 4, 1, 4, OpAdd)
	unreduced.Fraction.AnswerNumerator, unreduced.Fraction.AnswerDenominator, unreduced.Fraction.Answer = 2, 4, "2/4"
	if cerr := c.Check(unreduced); cerr == nil {
		t.Error("answer not in lowest terms should fail")
	}

	order := &Exercise{Shape: ShapeOrderOfOperations, OrderOfOperations: &OrderOfOperationsExercise{Expression: "2 + 3 × 4", Answer: 20}}
	if cerr := c.Check(order); cerr == nil {
		t.Error("left-to-right evaluation should fail")
	}
	order.OrderOfOperations.Answer = 14
	if cerr := c.Check(order); cerr != nil {
		t.Errorf("2 + 3 × 4 = 14 should pass: %v", cerr)
	}

	line := &Exercise{Shape: ShapeNumberLine, NumberLine: &NumberLineExercise{TargetNumber: 10, Min: 0, Max: 10, Step: 1, Answer: 10}}
	if cerr := c.Check(line); cerr == nil {
		t.Error("endpoint target should fail")
	}

	cmp := &Exercise{Shape: ShapeCompare, Compare: &CompareExercise{Num1: 4, Num2: 4, Comparison: ComparisonGreater, Answer: 4}}
	if cerr := c.Check(cmp); cerr == nil {
		t.Error("equal numbers should fail")
	}

	seq := &Exercise{Shape: ShapeSequence, Sequence: &SequenceExercise{Sequence: []int{1, 2, 4, 5}, MissingIndex: 2, Answer: 4}}
	if cerr := c.Check(seq); cerr == nil {
		t.Error("non-arithmetic sequence should fail")
	}

	pv := &Exercise{Shape: ShapePlaceValue, PlaceValue: &PlaceValueExercise{Number: 472, Place: PlaceTens, Answer: 7}}
	if cerr := c.Check(pv); cerr != nil {
		t.Errorf("tens digit of 472 is 7: %v", cerr)
	}
	pv.PlaceValue.Answer = 2
	if cerr := c.Check(pv); cerr == nil {
		t.Error("wrong digit should fail")
	}
}

func TestSchemaCheck(t *testing.T) {
	c := &SchemaCheck{}
	if cerr := c.Check(validSum()); cerr != nil {
		t.Fatalf("valid exercise failed schema: %v", cerr)
	}

	bad := validSum()
	bad.Number.Op = "^"
	if cerr := c.Check(bad); cerr == nil {
		t.Error("unknown operator should fail schema")
	}

	missing := validFraction()
	missing.Fraction = nil
	if cerr := c.Check(missing); cerr == nil {
		t.Error("fraction shape without payload should fail schema")
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid lcd", `{"kind":"leastCommonDenominator","shape":"lcd","level":1,"key":"lcd:2,3","lcd":{"denominators":[2,3],"answer":6}}`, false},
		{"one denominator", `{"kind":"leastCommonDenominator","shape":"lcd","level":1,"key":"lcd:2","lcd":{"denominators":[2],"answer":2}}`, true},
		{"extra field", `{"kind":"numberLine","shape":"numberLine","level":1,"key":"k","extra":true}`, true},
		{"bad place", `{"kind":"placeValue","shape":"placeValue","level":1,"key":"k","placeValue":{"number":12,"place":"thousands","answer":0}}`, true},
		{"not json", `{`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateJSON([]byte(tc.raw))
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateJSON() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestKeySet_NilSafe(t *testing.T) {
	var s KeySet
	if s.Has("1+1") {
		t.Error("nil set should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
