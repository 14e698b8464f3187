package problemgen

import "fmt"

// StructuralCheck verifies the discriminated union is well formed: the
// kind is known, the shape is the one this kind produces, exactly that
// payload is set, and the key matches the payload.
type StructuralCheck struct{}

func (c *StructuralCheck) Name() string { return "structural" }

func (c *StructuralCheck) Check(ex *Exercise) *CheckError {
	if ex == nil {
		return c.fail("exercise is nil")
	}
	info, ok := catalogIndex[ex.Kind]
	if !ok {
		return c.fail(fmt.Sprintf("unknown kind %q", ex.Kind))
	}
	if ex.Shape != info.Shape {
		return c.fail(fmt.Sprintf("kind %q produces shape %q, got %q", ex.Kind, info.Shape, ex.Shape))
	}

	set := payloadShapes(ex)
	if len(set) != 1 {
		return c.fail(fmt.Sprintf("expected exactly one payload, got %d", len(set)))
	}
	if set[0] != ex.Shape {
		return c.fail(fmt.Sprintf("shape %q but payload %q is set", ex.Shape, set[0]))
	}

	if ex.Key == "" {
		return c.fail("key is empty")
	}
	if want := QuestionKey(ex); ex.Key != want {
		return c.fail(fmt.Sprintf("key %q does not match payload key %q", ex.Key, want))
	}
	return nil
}

func (c *StructuralCheck) fail(msg string) *CheckError {
	return &CheckError{Check: c.Name(), Message: msg}
}

// payloadShapes lists the shapes whose payload pointer is non-nil.
func payloadShapes(ex *Exercise) []Shape {
	var set []Shape
	if ex.Number != nil {
		set = append(set, ShapeNumber)
	}
	if ex.Fraction != nil {
		set = append(set, ShapeFraction)
	}
	if ex.LCD != nil {
		set = append(set, ShapeLCD)
	}
	if ex.OrderOfOperations != nil {
		set = append(set, ShapeOrderOfOperations)
	}
	if ex.NumberLine != nil {
		set = append(set, ShapeNumberLine)
	}
	if ex.Compare != nil {
		set = append(set, ShapeCompare)
	}
	if ex.Sequence != nil {
		set = append(set, ShapeSequence)
	}
	if ex.PlaceValue != nil {
		set = append(set, ShapePlaceValue)
	}
	return set
}
