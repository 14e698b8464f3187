package problemgen

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a name does not match any generator.
var ErrUnknownKind = errors.New("unknown exercise kind")

// Kind identifies an exercise generator. The set is closed: every Kind
// constant has exactly one entry in the dispatch table.
type Kind string

const (
	KindAdditionWithoutConversion    Kind = "additionWithoutConversion"
	KindAdditionWithConversion       Kind = "additionWithConversion"
	KindAdditionAdvanced             Kind = "additionAdvanced"
	KindAdditionAdvanced3Digits      Kind = "additionAdvanced3Digits"
	KindSubtractionWithoutConversion Kind = "subtractionWithoutConversion"
	KindSubtractionWithConversion    Kind = "subtractionWithConversion"
	KindSubtractionAdvanced2Digits   Kind = "subtractionAdvanced2Digits"
	KindSubtractionAdvanced3Digits   Kind = "subtractionAdvanced3Digits"
	KindMultiplicationTable          Kind = "multiplicationTable"
	KindMultiplicationAdvanced       Kind = "multiplicationAdvanced"
	KindOrderOfOperations            Kind = "orderOfOperations"
	KindFractionAddition             Kind = "fractionAddition"
	KindLeastCommonDenominator       Kind = "leastCommonDenominator"
	KindFractionMixed                Kind = "fractionMixed"
	KindNumberLine                   Kind = "numberLine"
	KindCompareNumbers               Kind = "compareNumbers"
	KindCompleteSequence             Kind = "completeSequence"
	KindFindMissingNumber            Kind = "findMissingNumber"
	KindPlaceValue                   Kind = "placeValue"
	KindLocateNumberLine             Kind = "locateNumberLine"
)

// Strand groups related kinds for listing.
type Strand string

const (
	StrandNumberPlace Strand = "number-and-place-value"
	StrandAddSub      Strand = "addition-and-subtraction"
	StrandMultDiv     Strand = "multiplication-and-division"
	StrandOperations  Strand = "order-of-operations"
	StrandFractions   Strand = "fractions"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{
		StrandNumberPlace,
		StrandAddSub,
		StrandMultDiv,
		StrandOperations,
		StrandFractions,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandNumberPlace:
		return "Number & Place Value"
	case StrandAddSub:
		return "Addition & Subtraction"
	case StrandMultDiv:
		return "Multiplication"
	case StrandOperations:
		return "Order of Operations"
	case StrandFractions:
		return "Fractions"
	default:
		return string(s)
	}
}

// KindInfo is the catalog entry for a Kind.
type KindInfo struct {
	Kind        Kind
	Name        string
	Description string
	Strand      Strand
	Shape       Shape
	Validator   ValidatorName
}

// catalog lists every kind in display order.
var catalog = []KindInfo{
	{KindAdditionWithoutConversion, "Addition", "Small sums without carrying", StrandAddSub, ShapeNumber, NumberValidator},
	{KindAdditionWithConversion, "Addition with Carry", "Sums whose units digits carry into the tens", StrandAddSub, ShapeNumber, NumberValidator},
	{KindAdditionAdvanced, "2-Digit Addition", "Adding two 2-digit numbers", StrandAddSub, ShapeNumber, NumberValidator},
	{KindAdditionAdvanced3Digits, "3-Digit Addition", "Adding two 3-digit numbers", StrandAddSub, ShapeNumber, NumberValidator},
	{KindSubtractionWithoutConversion, "Subtraction", "Differences with no borrowing", StrandAddSub, ShapeNumber, NumberValidator},
	{KindSubtractionWithConversion, "Subtraction with Borrow", "Differences that borrow from the tens", StrandAddSub, ShapeNumber, NumberValidator},
	{KindSubtractionAdvanced2Digits, "2-Digit Subtraction", "Subtracting 2-digit numbers", StrandAddSub, ShapeNumber, NumberValidator},
	{KindSubtractionAdvanced3Digits, "3-Digit Subtraction", "Subtracting 3-digit numbers", StrandAddSub, ShapeNumber, NumberValidator},
	{KindMultiplicationTable, "Times Tables", "Multiplication facts up to 10 × 10", StrandMultDiv, ShapeNumber, NumberValidator},
	{KindMultiplicationAdvanced, "Multi-Digit Multiplication", "A 2-digit number times a small factor", StrandMultDiv, ShapeNumber, NumberValidator},
	{KindOrderOfOperations, "Order of Operations", "Expressions mixing +, - and × with parentheses", StrandOperations, ShapeOrderOfOperations, DecimalValidator},
	{KindFractionAddition, "Adding Fractions", "Fraction sums reduced to lowest terms", StrandFractions, ShapeFraction, FractionValidator},
	{KindLeastCommonDenominator, "Least Common Denominator", "Smallest shared denominator of 2 or 3 fractions", StrandFractions, ShapeLCD, NumberValidator},
	{KindFractionMixed, "Fraction Sums and Differences", "Adding or subtracting fractions", StrandFractions, ShapeFraction, FractionValidator},
	{KindNumberLine, "Number Line", "Read the value marked on a number line", StrandNumberPlace, ShapeNumberLine, NumberValidator},
	{KindCompareNumbers, "Compare Numbers", "Pick the greater or lesser number", StrandNumberPlace, ShapeCompare, NumberValidator},
	{KindCompleteSequence, "Complete the Sequence", "Give the next term of a counting pattern", StrandNumberPlace, ShapeSequence, NumberValidator},
	{KindFindMissingNumber, "Find the Missing Number", "Fill a gap inside a counting pattern", StrandNumberPlace, ShapeSequence, NumberValidator},
	{KindPlaceValue, "Place Value", "Name the hundreds, tens or units digit", StrandNumberPlace, ShapePlaceValue, NumberValidator},
	{KindLocateNumberLine, "Locate on a Number Line", "Place a number on a number line", StrandNumberPlace, ShapeNumberLine, NumberValidator},
}

var catalogIndex = func() map[Kind]KindInfo {
	m := make(map[Kind]KindInfo, len(catalog))
	for _, info := range catalog {
		m[info.Kind] = info
	}
	return m
}()

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	kinds := make([]Kind, len(catalog))
	for i, info := range catalog {
		kinds[i] = info.Kind
	}
	return kinds
}

// ParseKind resolves a generator name. Unknown names fail here, before
// any generation is attempted.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := catalogIndex[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Info returns the catalog entry for k.
func Info(k Kind) (KindInfo, error) {
	info, ok := catalogIndex[k]
	if !ok {
		return KindInfo{}, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return info, nil
}

// ByStrand returns the catalog entries in strand s, in display order.
func ByStrand(s Strand) []KindInfo {
	var out []KindInfo
	for _, info := range catalog {
		if info.Strand == s {
			out = append(out, info)
		}
	}
	return out
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := catalogIndex[k]
	return ok
}
