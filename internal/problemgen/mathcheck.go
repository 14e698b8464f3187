package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathdrill/internal/expr"
	"github.com/abhisek/mathdrill/internal/fraction"
)

// MathCheck independently recomputes the answer from the other fields of
// the exercise and compares it with the stored answer. Fraction answers
// must also be in lowest terms. Run StructuralCheck first; MathCheck
// assumes the payload for ex.Shape is set.
type MathCheck struct{}

func (c *MathCheck) Name() string { return "math-check" }

func (c *MathCheck) Check(ex *Exercise) *CheckError {
	switch ex.Shape {
	case ShapeNumber:
		n := ex.Number
		if want := n.Op.Apply(n.Num1, n.Num2); n.Answer != want {
			return c.mismatch(want, n.Answer)
		}

	case ShapeFraction:
		return c.checkFraction(ex.Fraction)

	case ShapeLCD:
		l := ex.LCD
		if want := fraction.LCD(l.Denominators...); l.Answer != want {
			return c.mismatch(want, l.Answer)
		}

	case ShapeOrderOfOperations:
		o := ex.OrderOfOperations
		v, err := expr.Evaluate(o.Expression)
		if err != nil {
			return &CheckError{Check: c.Name(), Message: fmt.Sprintf("expression %q: %v", o.Expression, err)}
		}
		if want := expr.Round2(v); o.Answer != want {
			return c.mismatch(want, o.Answer)
		}

	case ShapeNumberLine:
		nl := ex.NumberLine
		if nl.Answer != nl.TargetNumber {
			return c.mismatch(nl.TargetNumber, nl.Answer)
		}
		if nl.TargetNumber <= nl.Min || nl.TargetNumber >= nl.Max {
			return &CheckError{Check: c.Name(), Message: fmt.Sprintf("target %d outside (%d, %d)", nl.TargetNumber, nl.Min, nl.Max)}
		}
		if nl.Step <= 0 || (nl.TargetNumber-nl.Min)%nl.Step != 0 {
			return &CheckError{Check: c.Name(), Message: fmt.Sprintf("target %d is not on a tick of %d", nl.TargetNumber, nl.Step)}
		}

	case ShapeCompare:
		cmp := ex.Compare
		if cmp.Num1 == cmp.Num2 {
			return &CheckError{Check: c.Name(), Message: "compared numbers are equal"}
		}
		want := max(cmp.Num1, cmp.Num2)
		if cmp.Comparison == ComparisonLesser {
			want = min(cmp.Num1, cmp.Num2)
		}
		if cmp.Answer != want {
			return c.mismatch(want, cmp.Answer)
		}

	case ShapeSequence:
		s := ex.Sequence
		if s.MissingIndex < 0 || s.MissingIndex >= len(s.Sequence) {
			return &CheckError{Check: c.Name(), Message: fmt.Sprintf("missing index %d out of range", s.MissingIndex)}
		}
		if len(s.Sequence) > 2 {
			step := s.Sequence[1] - s.Sequence[0]
			for i := 2; i < len(s.Sequence); i++ {
				if s.Sequence[i]-s.Sequence[i-1] != step {
					return &CheckError{Check: c.Name(), Message: "sequence is not arithmetic"}
				}
			}
		}
		if want := s.Sequence[s.MissingIndex]; s.Answer != want {
			return c.mismatch(want, s.Answer)
		}

	case ShapePlaceValue:
		p := ex.PlaceValue
		if !slices.Contains(threeDigitPlaces, p.Place) {
			return &CheckError{Check: c.Name(), Message: fmt.Sprintf("unknown place %q", p.Place)}
		}
		if want := p.Place.Digit(p.Number); p.Answer != want {
			return c.mismatch(want, p.Answer)
		}
	}
	return nil
}

func (c *MathCheck) checkFraction(f *FractionExercise) *CheckError {
	if f.Denominator1 == 0 || f.Denominator2 == 0 {
		return &CheckError{Check: c.Name(), Message: "zero denominator"}
	}
	var wn, wd int
	switch f.Operation {
	case OpAdd:
		wn, wd = fraction.Add(f.Numerator1, f.Denominator1, f.Numerator2, f.Denominator2)
	case OpSub:
		wn, wd = fraction.Sub(f.Numerator1, f.Denominator1, f.Numerator2, f.Denominator2)
	default:
		return &CheckError{Check: c.Name(), Message: fmt.Sprintf("unsupported operation %q", f.Operation)}
	}
	if f.AnswerNumerator != wn || f.AnswerDenominator != wd {
		return &CheckError{
			Check:   c.Name(),
			Message: fmt.Sprintf("computed %s but stored %d/%d", fraction.Format(wn, wd), f.AnswerNumerator, f.AnswerDenominator),
		}
	}
	if g := fraction.GCD(fraction.Abs(f.AnswerNumerator), fraction.Abs(f.AnswerDenominator)); g != 1 {
		return &CheckError{Check: c.Name(), Message: fmt.Sprintf("answer %s is not in lowest terms", f.Answer)}
	}
	if f.Answer != fraction.Format(f.AnswerNumerator, f.AnswerDenominator) {
		return &CheckError{Check: c.Name(), Message: fmt.Sprintf("answer %q does not match %d/%d", f.Answer, f.AnswerNumerator, f.AnswerDenominator)}
	}
	return nil
}

func (c *MathCheck) mismatch(want, got any) *CheckError {
	return &CheckError{Check: c.Name(), Message: fmt.Sprintf("computed %v but stored %v", want, got)}
}
