package problemgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxAttempts bounds duplicate avoidance. After this many colliding draws
// the last candidate is returned even though it repeats a prior question.
// Small level-1 ranges make collisions routine, so this is a soft limit,
// never an error.
const MaxAttempts = 10

// KeySet is the caller-owned set of question keys already served in a
// session. Generators read it and never retain it.
type KeySet map[string]struct{}

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts key.
func (s KeySet) Add(key string) { s[key] = struct{}{} }

// Has reports whether key is present. A nil set holds nothing.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Record inserts the key of ex.
func (s KeySet) Record(ex *Exercise) {
	if ex != nil && ex.Key != "" {
		s.Add(ex.Key)
	}
}

// Len returns the number of keys.
func (s KeySet) Len() int { return len(s) }

// Seen reports whether ex, or its operand-swapped form for commutative
// operations, is already in the set.
func (s KeySet) Seen(ex *Exercise) bool {
	if s.Has(ex.Key) {
		return true
	}
	if rev := ReverseKey(ex); rev != "" && s.Has(rev) {
		return true
	}
	return false
}

// generateUnique draws candidates until one is not in used, giving up
// after MaxAttempts draws and returning the last one.
func generateUnique(used KeySet, draw func() *Exercise) *Exercise {
	var ex *Exercise
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		ex = draw()
		if !used.Seen(ex) {
			return ex
		}
	}
	return ex
}

// QuestionKey builds the literal key for ex from its payload.
func QuestionKey(ex *Exercise) string {
	switch ex.Shape {
	case ShapeNumber:
		n := ex.Number
		return fmt.Sprintf("%d%s%d", n.Num1, n.Op, n.Num2)
	case ShapeFraction:
		f := ex.Fraction
		return fmt.Sprintf("%d/%d%s%d/%d", f.Numerator1, f.Denominator1, f.Operation, f.Numerator2, f.Denominator2)
	case ShapeLCD:
		ds := slices.Clone(ex.LCD.Denominators)
		slices.Sort(ds)
		return "lcd:" + joinInts(ds)
	case ShapeOrderOfOperations:
		return ex.OrderOfOperations.Expression
	case ShapeNumberLine:
		nl := ex.NumberLine
		return fmt.Sprintf("%s:%d:%d:%d", ex.Kind, nl.TargetNumber, nl.Min, nl.Max)
	case ShapeCompare:
		c := ex.Compare
		return fmt.Sprintf("compare:%d:%d:%s", c.Num1, c.Num2, c.Comparison)
	case ShapeSequence:
		s := ex.Sequence
		return fmt.Sprintf("sequence:%s:%d", joinInts(s.Sequence), s.MissingIndex)
	case ShapePlaceValue:
		p := ex.PlaceValue
		return fmt.Sprintf("placeValue:%d:%s", p.Number, p.Place)
	default:
		return ""
	}
}

// ReverseKey returns the operand-swapped key for commutative exercises
// (addition, multiplication, fraction addition), or "" when operand order
// matters. LCD keys are already order-free.
func ReverseKey(ex *Exercise) string {
	switch ex.Shape {
	case ShapeNumber:
		n := ex.Number
		if !commutative(n.Op) {
			return ""
		}
		return fmt.Sprintf("%d%s%d", n.Num2, n.Op, n.Num1)
	case ShapeFraction:
		f := ex.Fraction
		if !commutative(f.Operation) {
			return ""
		}
		return fmt.Sprintf("%d/%d%s%d/%d", f.Numerator2, f.Denominator2, f.Operation, f.Numerator1, f.Denominator1)
	default:
		return ""
	}
}

func commutative(op Operator) bool {
	return op == OpAdd || op == OpMul
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
