package problemgen

import "github.com/abhisek/mathdrill/internal/randsrc"

// sumBand draws operands from [1, Max] with a sum strictly below Ceiling.
type sumBand struct {
	Max, Ceiling int
}

var additionWithoutConversionBands = bands[sumBand]{
	levels:   [MaxLevel]sumBand{{4, 6}, {5, 8}, {7, 10}, {9, 12}, {10, 15}},
	fallback: sumBand{6, 9},
}

// carryBand bounds the tens digit of both operands. Units digits are
// always chosen so that they carry.
type carryBand struct {
	TensMin, TensMax int
}

var additionWithConversionBands = bands[carryBand]{
	levels:   [MaxLevel]carryBand{{0, 0}, {0, 1}, {1, 2}, {1, 4}, {1, 8}},
	fallback: carryBand{0, 1},
}

var additionAdvancedBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{10, 30}, {10, 50}, {10, 70}, {10, 90}, {10, 99}},
	fallback: rangeBand{10, 50},
}

var additionAdvanced3DigitsBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{100, 300}, {100, 500}, {100, 700}, {100, 900}, {100, 999}},
	fallback: rangeBand{100, 500},
}

// Minuend range for subtraction without borrowing.
var subtractionWithoutConversionBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{2, 5}, {2, 9}, {2, 20}, {10, 50}, {10, 99}},
	fallback: rangeBand{2, 15},
}

// borrowBand bounds the minuend's tens digit. When TwoDigit is false the
// subtrahend is a single digit.
type borrowBand struct {
	TensMin, TensMax int
	TwoDigit         bool
}

var subtractionWithConversionBands = bands[borrowBand]{
	levels:   [MaxLevel]borrowBand{{1, 2, false}, {1, 5, false}, {2, 5, true}, {2, 9, true}, {3, 9, true}},
	fallback: borrowBand{1, 5, false},
}

var subtractionAdvanced2DigitsBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{10, 30}, {10, 50}, {10, 70}, {10, 90}, {10, 99}},
	fallback: rangeBand{10, 50},
}

var subtractionAdvanced3DigitsBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{100, 300}, {100, 500}, {100, 700}, {100, 900}, {100, 999}},
	fallback: rangeBand{100, 500},
}

// Tables drawn for times-table facts; the other factor is always 1-10.
var multiplicationTableBands = bands[rangeBand]{
	levels:   [MaxLevel]rangeBand{{1, 2}, {1, 5}, {1, 7}, {1, 9}, {1, 10}},
	fallback: rangeBand{1, 6},
}

// productBand draws a 2-digit Num1 from [10, Max1] and Num2 from [2, Max2].
type productBand struct {
	Max1, Max2 int
}

var multiplicationAdvancedBands = bands[productBand]{
	levels:   [MaxLevel]productBand{{20, 3}, {30, 5}, {50, 9}, {99, 9}, {99, 12}},
	fallback: productBand{30, 5},
}

func numberExercise(a, b int, op Operator) *Exercise {
	return &Exercise{
		Shape:  ShapeNumber,
		Number: &NumberExercise{Num1: a, Num2: b, Op: op, Answer: op.Apply(a, b)},
	}
}

func drawAdditionWithoutConversion(src randsrc.Source, level int, _ *Config) *Exercise {
	b := additionWithoutConversionBands.at(level)
	a := randsrc.Between(src, 1, min(b.Max, b.Ceiling-2))
	c := randsrc.Between(src, 1, min(b.Max, b.Ceiling-1-a))
	return numberExercise(a, c, OpAdd)
}

func drawAdditionWithConversion(src randsrc.Source, level int, _ *Config) *Exercise {
	b := additionWithConversionBands.at(level)
	u1 := randsrc.Between(src, 1, 9)
	u2 := randsrc.Between(src, 10-u1, 9)
	t1 := randsrc.Between(src, b.TensMin, b.TensMax)
	t2 := randsrc.Between(src, b.TensMin, b.TensMax)
	return numberExercise(t1*10+u1, t2*10+u2, OpAdd)
}

func drawAdditionAdvanced(src randsrc.Source, level int, _ *Config) *Exercise {
	return drawPair(src, additionAdvancedBands.at(level), OpAdd)
}

func drawAdditionAdvanced3Digits(src randsrc.Source, level int, _ *Config) *Exercise {
	return drawPair(src, additionAdvanced3DigitsBands.at(level), OpAdd)
}

func drawSubtractionWithoutConversion(src randsrc.Source, level int, _ *Config) *Exercise {
	b := subtractionWithoutConversionBands.at(level)
	a := randsrc.Between(src, b.Min, b.Max)
	return numberExercise(a, noBorrowSubtrahend(src, a), OpSub)
}

func drawSubtractionWithConversion(src randsrc.Source, level int, _ *Config) *Exercise {
	b := subtractionWithConversionBands.at(level)
	u1 := randsrc.Between(src, 0, 8)
	u2 := randsrc.Between(src, u1+1, 9)
	t1 := randsrc.Between(src, b.TensMin, b.TensMax)
	t2 := 0
	if b.TwoDigit {
		t2 = randsrc.Between(src, 1, t1-1)
	}
	return numberExercise(t1*10+u1, t2*10+u2, OpSub)
}

func drawSubtractionAdvanced2Digits(src randsrc.Source, level int, _ *Config) *Exercise {
	return drawPair(src, subtractionAdvanced2DigitsBands.at(level), OpSub)
}

func drawSubtractionAdvanced3Digits(src randsrc.Source, level int, _ *Config) *Exercise {
	return drawPair(src, subtractionAdvanced3DigitsBands.at(level), OpSub)
}

func drawMultiplicationTable(src randsrc.Source, level int, _ *Config) *Exercise {
	b := multiplicationTableBands.at(level)
	table := randsrc.Between(src, b.Min, b.Max)
	factor := randsrc.Between(src, 1, 10)
	return numberExercise(table, factor, OpMul)
}

func drawMultiplicationAdvanced(src randsrc.Source, level int, _ *Config) *Exercise {
	b := multiplicationAdvancedBands.at(level)
	a := randsrc.Between(src, 10, b.Max1)
	c := randsrc.Between(src, 2, b.Max2)
	return numberExercise(a, c, OpMul)
}

// drawPair draws two operands from b. For subtraction the larger operand
// goes first so the difference is never negative.
func drawPair(src randsrc.Source, b rangeBand, op Operator) *Exercise {
	a := randsrc.Between(src, b.Min, b.Max)
	c := randsrc.Between(src, b.Min, b.Max)
	if op == OpSub && c > a {
		a, c = c, a
	}
	return numberExercise(a, c, op)
}

// noBorrowSubtrahend draws a positive number whose every digit is at most
// the matching digit of n, so n minus it never borrows.
func noBorrowSubtrahend(src randsrc.Source, n int) int {
	result, place, lowest := 0, 1, 0
	for rest := n; rest > 0; rest /= 10 {
		d := rest % 10
		if d > 0 && lowest == 0 {
			lowest = place
		}
		result += randsrc.Between(src, 0, d) * place
		place *= 10
	}
	if result == 0 {
		return lowest
	}
	return result
}
