package problemgen

import "github.com/abhisek/mathdrill/internal/randsrc"

// lineBand describes a number line of Span units starting at a multiple
// of Step no larger than Step*OffsetMax.
type lineBand struct {
	Span, Step, OffsetMax int
}

var numberLineBands = bands[lineBand]{
	levels:   [MaxLevel]lineBand{{10, 1, 0}, {20, 2, 0}, {50, 5, 0}, {100, 10, 0}, {1000, 50, 0}},
	fallback: lineBand{20, 2, 0},
}

var locateNumberLineBands = bands[lineBand]{
	levels:   [MaxLevel]lineBand{{10, 1, 0}, {20, 1, 10}, {50, 5, 10}, {100, 10, 10}, {1000, 100, 10}},
	fallback: lineBand{20, 1, 10},
}

var compareNumbersBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{1, 10}, {1, 20}, {10, 100}, {100, 999}, {1000, 9999}},
	fallback: rangeBand{1, 50},
}

type sequenceBand struct {
	Length           int
	StartMax         int
	StepMin, StepMax int
	Descending       bool // whether descending sequences may be drawn
}

var sequenceBands = bands[sequenceBand]{
	levels: [MaxLevel]sequenceBand{
		{5, 10, 1, 1, false},
		{5, 20, 1, 2, false},
		{6, 30, 2, 5, false},
		{6, 50, 2, 10, true},
		{7, 100, 3, 25, true},
	},
	fallback: sequenceBand{5, 20, 1, 2, false},
}

type placeBand struct {
	Min, Max int
	Places   []Place
}

var (
	twoDigitPlaces   = []Place{PlaceTens, PlaceUnits}
	threeDigitPlaces = []Place{PlaceHundreds, PlaceTens, PlaceUnits}
)

var placeValueBands = bands[placeBand]{
	levels: [MaxLevel]placeBand{
		{10, 50, twoDigitPlaces},
		{10, 99, twoDigitPlaces},
		{100, 500, threeDigitPlaces},
		{100, 999, threeDigitPlaces},
		{100, 999, threeDigitPlaces},
	},
	fallback: placeBand{10, 99, twoDigitPlaces},
}

func drawNumberLine(src randsrc.Source, level int, _ *Config) *Exercise {
	return numberLineExercise(src, numberLineBands.at(level))
}

func drawLocateNumberLine(src randsrc.Source, level int, _ *Config) *Exercise {
	return numberLineExercise(src, locateNumberLineBands.at(level))
}

// numberLineExercise places the target on an interior tick.
func numberLineExercise(src randsrc.Source, b lineBand) *Exercise {
	lo := randsrc.Between(src, 0, b.OffsetMax) * b.Step
	hi := lo + b.Span
	ticks := b.Span / b.Step
	target := lo + randsrc.Between(src, 1, ticks-1)*b.Step
	return &Exercise{
		Shape: ShapeNumberLine,
		NumberLine: &NumberLineExercise{
			TargetNumber: target,
			Min:          lo,
			Max:          hi,
			Step:         b.Step,
			Answer:       target,
		},
	}
}

func drawCompareNumbers(src randsrc.Source, level int, _ *Config) *Exercise {
	b := compareNumbersBands.at(level)
	a := randsrc.Between(src, b.Min, b.Max)
	c := randsrc.Between(src, b.Min, b.Max-1)
	if c >= a {
		c++
	}
	cmp := randsrc.Pick(src, []Comparison{ComparisonGreater, ComparisonLesser})
	answer := max(a, c)
	if cmp == ComparisonLesser {
		answer = min(a, c)
	}
	return &Exercise{
		Shape: ShapeCompare,
		Compare: &CompareExercise{
			Num1:       a,
			Num2:       c,
			Comparison: cmp,
			Answer:     answer,
		},
	}
}

func drawCompleteSequence(src randsrc.Source, level int, _ *Config) *Exercise {
	seq := drawSequence(src, sequenceBands.at(level))
	return sequenceExercise(seq, len(seq)-1)
}

func drawFindMissingNumber(src randsrc.Source, level int, _ *Config) *Exercise {
	seq := drawSequence(src, sequenceBands.at(level))
	return sequenceExercise(seq, randsrc.Between(src, 1, len(seq)-2))
}

// drawSequence draws an arithmetic progression whose terms are all
// non-negative.
func drawSequence(src randsrc.Source, b sequenceBand) []int {
	step := randsrc.Between(src, b.StepMin, b.StepMax)
	base := randsrc.Between(src, 0, b.StartMax)
	if b.Descending && randsrc.Between(src, 0, 1) == 1 {
		base += step * (b.Length - 1)
		step = -step
	}
	seq := make([]int, b.Length)
	for i := range seq {
		seq[i] = base + i*step
	}
	return seq
}

func sequenceExercise(seq []int, missing int) *Exercise {
	return &Exercise{
		Shape: ShapeSequence,
		Sequence: &SequenceExercise{
			Sequence:     seq,
			MissingIndex: missing,
			Answer:       seq[missing],
		},
	}
}

func drawPlaceValue(src randsrc.Source, level int, _ *Config) *Exercise {
	b := placeValueBands.at(level)
	n := randsrc.Between(src, b.Min, b.Max)
	place := randsrc.Pick(src, b.Places)
	return &Exercise{
		Shape: ShapePlaceValue,
		PlaceValue: &PlaceValueExercise{
			Number: n,
			Place:  place,
			Answer: place.Digit(n),
		},
	}
}
