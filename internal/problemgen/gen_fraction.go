package problemgen

import (
	"github.com/abhisek/mathdrill/internal/fraction"
	"github.com/abhisek/mathdrill/internal/randsrc"
)

// denominatorMode selects how the two denominators relate.
type denominatorMode int

const (
	denomSame      denominatorMode = iota // d1 == d2
	denomMultiple                         // one is a multiple of the other
	denomUnrelated                        // neither divides the other; needs an LCD
)

type fractionBand struct {
	Mode           denominatorMode
	DenMin, DenMax int
	MultMax        int // largest multiplier for denomMultiple
}

var fractionAdditionBands = bands[fractionBand]{
	levels: [MaxLevel]fractionBand{
		{denomSame, 2, 6, 0},
		{denomMultiple, 2, 4, 2},
		{denomMultiple, 2, 5, 3},
		{denomUnrelated, 2, 6, 0},
		{denomUnrelated, 2, 10, 0},
	},
	fallback: fractionBand{denomMultiple, 2, 4, 2},
}

var fractionMixedBands = bands[fractionBand]{
	levels: [MaxLevel]fractionBand{
		{denomSame, 2, 8, 0},
		{denomSame, 2, 10, 0},
		{denomMultiple, 2, 5, 3},
		{denomUnrelated, 2, 8, 0},
		{denomUnrelated, 2, 12, 0},
	},
	fallback: fractionBand{denomSame, 2, 10, 0},
}

// lcdBand draws distinct denominators from [2, Max]. Three values are
// possible only when AllowThree is set.
type lcdBand struct {
	Max        int
	AllowThree bool
}

var leastCommonDenominatorBands = bands[lcdBand]{
	levels:   [MaxLevel]lcdBand{{5, false}, {8, false}, {10, false}, {10, true}, {12, true}},
	fallback: lcdBand{8, false},
}

func drawFractionAddition(src randsrc.Source, level int, _ *Config) *Exercise {
	b := fractionAdditionBands.at(level)
	d1, d2 := drawDenominators(src, b)
	n1 := randsrc.Between(src, 1, d1-1)
	n2 := randsrc.Between(src, 1, d2-1)
	return fractionExercise(n1, d1, n2, d2, OpAdd)
}

func drawFractionMixed(src randsrc.Source, level int, _ *Config) *Exercise {
	b := fractionMixedBands.at(level)
	op := randsrc.Pick(src, []Operator{OpAdd, OpSub})
	d1, d2 := drawDenominators(src, b)
	n1 := randsrc.Between(src, 1, d1-1)
	n2 := randsrc.Between(src, 1, d2-1)
	if op == OpSub && n1*d2 < n2*d1 {
		n1, d1, n2, d2 = n2, d2, n1, d1
	}
	return fractionExercise(n1, d1, n2, d2, op)
}

func fractionExercise(n1, d1, n2, d2 int, op Operator) *Exercise {
	var an, ad int
	if op == OpSub {
		an, ad = fraction.Sub(n1, d1, n2, d2)
	} else {
		an, ad = fraction.Add(n1, d1, n2, d2)
	}
	return &Exercise{
		Shape: ShapeFraction,
		Fraction: &FractionExercise{
			Numerator1:        n1,
			Denominator1:      d1,
			Numerator2:        n2,
			Denominator2:      d2,
			Operation:         op,
			AnswerNumerator:   an,
			AnswerDenominator: ad,
			Answer:            fraction.Format(an, ad),
		},
	}
}

// drawDenominators picks a denominator pair according to the band mode.
func drawDenominators(src randsrc.Source, b fractionBand) (int, int) {
	switch b.Mode {
	case denomMultiple:
		d := randsrc.Between(src, b.DenMin, b.DenMax)
		k := randsrc.Between(src, 2, b.MultMax)
		if randsrc.Between(src, 0, 1) == 1 {
			return d * k, d
		}
		return d, d * k
	case denomUnrelated:
		d1 := randsrc.Between(src, b.DenMin, b.DenMax)
		var candidates []int
		for v := b.DenMin; v <= b.DenMax; v++ {
			if v%d1 != 0 && d1%v != 0 {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			return d1, d1 + 1
		}
		return d1, randsrc.Pick(src, candidates)
	default:
		d := randsrc.Between(src, b.DenMin, b.DenMax)
		return d, d
	}
}

func drawLeastCommonDenominator(src randsrc.Source, level int, _ *Config) *Exercise {
	b := leastCommonDenominatorBands.at(level)
	count := 2
	if b.AllowThree {
		count = randsrc.Between(src, 2, 3)
	}
	ds := drawDistinct(src, 2, b.Max, count)
	return &Exercise{
		Shape: ShapeLCD,
		LCD: &LCDExercise{
			Denominators: ds,
			Answer:       fraction.LCD(ds...),
		},
	}
}

// drawDistinct draws count distinct values from [lo, hi] with a partial
// Fisher-Yates shuffle.
func drawDistinct(src randsrc.Source, lo, hi, count int) []int {
	pool := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		pool = append(pool, v)
	}
	count = min(count, len(pool))
	for i := 0; i < count; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count:count]
}
