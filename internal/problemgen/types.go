package problemgen

// Shape tags which payload an Exercise carries. Renderers switch on Shape;
// exactly the payload field matching it is non-nil.
type Shape string

const (
	ShapeNumber            Shape = "number"
	ShapeFraction          Shape = "fraction"
	ShapeLCD               Shape = "lcd"
	ShapeOrderOfOperations Shape = "orderOfOperations"
	ShapeNumberLine        Shape = "numberLine"
	ShapeCompare           Shape = "compareNumbers"
	ShapeSequence          Shape = "sequence"
	ShapePlaceValue        Shape = "placeValue"
)

// Operator is an arithmetic operator as displayed to the learner.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "×"
	OpDiv Operator = "÷"
)

// Apply evaluates a op b on integers. Division truncates; callers that
// need exact division use the expression evaluator instead.
func (op Operator) Apply(a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// Exercise is one generated question plus its canonical answer.
// It is immutable once returned by a Generator.
type Exercise struct {
	// Kind is the generator that produced this exercise.
	Kind Kind `json:"kind"`

	// Shape is the payload discriminator.
	Shape Shape `json:"shape"`

	// Level is the difficulty level that was requested.
	Level int `json:"level"`

	// Key is the question fingerprint used for duplicate detection.
	Key string `json:"key"`

	Number            *NumberExercise            `json:"number,omitempty"`
	Fraction          *FractionExercise          `json:"fraction,omitempty"`
	LCD               *LCDExercise               `json:"lcd,omitempty"`
	OrderOfOperations *OrderOfOperationsExercise `json:"orderOfOperations,omitempty"`
	NumberLine        *NumberLineExercise        `json:"numberLine,omitempty"`
	Compare           *CompareExercise           `json:"compareNumbers,omitempty"`
	Sequence          *SequenceExercise          `json:"sequence,omitempty"`
	PlaceValue        *PlaceValueExercise        `json:"placeValue,omitempty"`
}

// NumberExercise is a two-operand integer problem: Answer = Num1 Op Num2.
type NumberExercise struct {
	Num1   int      `json:"num1"`
	Num2   int      `json:"num2"`
	Op     Operator `json:"op"`
	Answer int      `json:"answer"`
}

// FractionExercise adds or subtracts two fractions. The answer is stored
// in lowest terms.
type FractionExercise struct {
	Numerator1        int      `json:"numerator1"`
	Denominator1      int      `json:"denominator1"`
	Numerator2        int      `json:"numerator2"`
	Denominator2      int      `json:"denominator2"`
	Operation         Operator `json:"operation"`
	AnswerNumerator   int      `json:"answerNumerator"`
	AnswerDenominator int      `json:"answerDenominator"`
	Answer            string   `json:"answer"`
}

// LCDExercise asks for the least common denominator of 2 or 3 values.
type LCDExercise struct {
	Denominators []int `json:"denominators"`
	Answer       int   `json:"answer"`
}

// OrderOfOperationsExercise is an arithmetic expression whose answer is
// the evaluated result rounded to two decimals.
type OrderOfOperationsExercise struct {
	Expression string  `json:"expression"`
	Answer     float64 `json:"answer"`
}

// NumberLineExercise places TargetNumber on a line from Min to Max with a
// tick every Step.
type NumberLineExercise struct {
	TargetNumber int `json:"targetNumber"`
	Min          int `json:"min"`
	Max          int `json:"max"`
	Step         int `json:"step"`
	Answer       int `json:"answer"`
}

// Comparison selects which of two numbers the learner must pick.
type Comparison string

const (
	ComparisonGreater Comparison = "greater"
	ComparisonLesser  Comparison = "lesser"
)

// CompareExercise asks for the greater or lesser of two distinct numbers.
type CompareExercise struct {
	Num1       int        `json:"num1"`
	Num2       int        `json:"num2"`
	Comparison Comparison `json:"comparison"`
	Answer     int        `json:"answer"`
}

// SequenceExercise is an arithmetic progression with one hidden term.
// Sequence holds every term; the renderer hides Sequence[MissingIndex].
type SequenceExercise struct {
	Sequence     []int `json:"sequence"`
	MissingIndex int   `json:"missingIndex"`
	Answer       int   `json:"answer"`
}

// Place names a decimal digit position.
type Place string

const (
	PlaceHundreds Place = "hundreds"
	PlaceTens     Place = "tens"
	PlaceUnits    Place = "units"
)

// Digit returns the digit of n at this place.
func (p Place) Digit(n int) int {
	if n < 0 {
		n = -n
	}
	switch p {
	case PlaceHundreds:
		return n / 100 % 10
	case PlaceTens:
		return n / 10 % 10
	default:
		return n % 10
	}
}

// PlaceValueExercise asks for the digit of Number at Place.
type PlaceValueExercise struct {
	Number int   `json:"number"`
	Place  Place `json:"place"`
	Answer int   `json:"answer"`
}
