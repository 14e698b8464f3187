package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// AnswerString returns the canonical answer in the form its validator
// expects: an integer, a decimal, or "n/d".
func (ex *Exercise) AnswerString() string {
	switch ex.Shape {
	case ShapeNumber:
		return strconv.Itoa(ex.Number.Answer)
	case ShapeFraction:
		return ex.Fraction.Answer
	case ShapeLCD:
		return strconv.Itoa(ex.LCD.Answer)
	case ShapeOrderOfOperations:
		return strconv.FormatFloat(ex.OrderOfOperations.Answer, 'f', -1, 64)
	case ShapeNumberLine:
		return strconv.Itoa(ex.NumberLine.Answer)
	case ShapeCompare:
		return strconv.Itoa(ex.Compare.Answer)
	case ShapeSequence:
		return strconv.Itoa(ex.Sequence.Answer)
	case ShapePlaceValue:
		return strconv.Itoa(ex.PlaceValue.Answer)
	default:
		return ""
	}
}

// Validator returns the validator that grades answers to ex.
func (ex *Exercise) Validator() ValidatorName {
	if info, ok := catalogIndex[ex.Kind]; ok {
		return info.Validator
	}
	switch ex.Shape {
	case ShapeFraction:
		return FractionValidator
	case ShapeOrderOfOperations:
		return DecimalValidator
	default:
		return NumberValidator
	}
}

// Text returns a plain-text prompt for terminal display.
func (ex *Exercise) Text() string {
	switch ex.Shape {
	case ShapeNumber:
		n := ex.Number
		return fmt.Sprintf("%d %s %d = ?", n.Num1, n.Op, n.Num2)
	case ShapeFraction:
		f := ex.Fraction
		return fmt.Sprintf("%d/%d %s %d/%d = ?", f.Numerator1, f.Denominator1, f.Operation, f.Numerator2, f.Denominator2)
	case ShapeLCD:
		fracs := make([]string, len(ex.LCD.Denominators))
		for i, d := range ex.LCD.Denominators {
			fracs[i] = "1/" + strconv.Itoa(d)
		}
		return fmt.Sprintf("What is the least common denominator of %s?", strings.Join(fracs, ", "))
	case ShapeOrderOfOperations:
		return ex.OrderOfOperations.Expression + " = ?"
	case ShapeNumberLine:
		nl := ex.NumberLine
		if ex.Kind == KindLocateNumberLine {
			return fmt.Sprintf("On a number line from %d to %d with ticks every %d, which tick value is %d? Type the value.",
				nl.Min, nl.Max, nl.Step, nl.TargetNumber)
		}
		tick := (nl.TargetNumber - nl.Min) / nl.Step
		return fmt.Sprintf("A number line runs from %d to %d with ticks every %d. The marker is on tick %d. What number is it?",
			nl.Min, nl.Max, nl.Step, tick)
	case ShapeCompare:
		c := ex.Compare
		word := "greater"
		if c.Comparison == ComparisonLesser {
			word = "smaller"
		}
		return fmt.Sprintf("Which is %s: %d or %d?", word, c.Num1, c.Num2)
	case ShapeSequence:
		s := ex.Sequence
		terms := make([]string, len(s.Sequence))
		for i, v := range s.Sequence {
			if i == s.MissingIndex {
				terms[i] = "_"
				continue
			}
			terms[i] = strconv.Itoa(v)
		}
		return "Fill in the missing number: " + strings.Join(terms, ", ")
	case ShapePlaceValue:
		p := ex.PlaceValue
		return fmt.Sprintf("What digit is in the %s place of %d?", p.Place, p.Number)
	default:
		return ""
	}
}
