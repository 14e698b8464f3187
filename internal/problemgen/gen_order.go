package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathdrill/internal/expr"
	"github.com/abhisek/mathdrill/internal/randsrc"
)

// exprStructure is the shape of an order-of-operations expression.
type exprStructure int

const (
	structFlat   exprStructure = iota // a op b op c
	structParen                       // one parenthesised pair, 3 operators
	structNested                      // nested or double parentheses, 4 operators
)

type orderBand struct {
	Max       int
	Structure exprStructure
}

var orderOfOperationsBands = bands[orderBand]{
	levels: [MaxLevel]orderBand{
		{5, structFlat},
		{9, structFlat},
		{9, structParen},
		{12, structParen},
		{12, structNested},
	},
	fallback: orderBand{9, structFlat},
}

// Templates with %s placeholders: operands and operators alternate.
var (
	parenTemplates = []string{
		"(%s %s %s) %s %s %s %s",
		"%s %s (%s %s %s) %s %s",
		"%s %s %s %s (%s %s %s)",
	}
	nestedTemplates = []string{
		"(%s %s (%s %s %s)) %s %s %s %s",
		"(%s %s %s) %s (%s %s %s) %s %s",
	}
)

func drawOrderOfOperations(src randsrc.Source, level int, cfg *Config) *Exercise {
	b := orderOfOperationsBands.at(level)

	template := "%s %s %s %s %s"
	operators := 2
	switch b.Structure {
	case structParen:
		template = randsrc.Pick(src, parenTemplates)
		operators = 3
	case structNested:
		template = randsrc.Pick(src, nestedTemplates)
		operators = 4
	}

	operands := make([]int, operators+1)
	for i := range operands {
		operands[i] = randsrc.Between(src, 1, b.Max)
	}
	ops := make([]Operator, operators)
	for i := range ops {
		ops[i] = randsrc.Pick(src, cfg.OrderOperators)
	}

	expression := formatExpression(template, operands, ops)
	value, err := expr.Evaluate(expression)
	if err != nil {
		// Only a zero divisor can fail here; multiply instead.
		for i, op := range ops {
			if op == OpDiv {
				ops[i] = OpMul
			}
		}
		expression = formatExpression(template, operands, ops)
		value, _ = expr.Evaluate(expression)
	}

	return &Exercise{
		Shape: ShapeOrderOfOperations,
		OrderOfOperations: &OrderOfOperationsExercise{
			Expression: expression,
			Answer:     expr.Round2(value),
		},
	}
}

func formatExpression(template string, operands []int, ops []Operator) string {
	args := make([]any, 0, len(operands)+len(ops))
	for i, n := range operands {
		args = append(args, strconv.Itoa(n))
		if i < len(ops) {
			args = append(args, string(ops[i]))
		}
	}
	return fmt.Sprintf(template, args...)
}
