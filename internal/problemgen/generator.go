package problemgen

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/randsrc"
)

// drawFunc produces one candidate exercise for a level, without duplicate
// avoidance. It must set the payload and Shape; Kind, Level and Key are
// filled in by the Generator.
type drawFunc func(src randsrc.Source, level int, cfg *Config) *Exercise

// drawers is the fixed dispatch table from Kind to implementation.
var drawers = map[Kind]drawFunc{
	KindAdditionWithoutConversion:    drawAdditionWithoutConversion,
	KindAdditionWithConversion:       drawAdditionWithConversion,
	KindAdditionAdvanced:             drawAdditionAdvanced,
	KindAdditionAdvanced3Digits:      drawAdditionAdvanced3Digits,
	KindSubtractionWithoutConversion: drawSubtractionWithoutConversion,
	KindSubtractionWithConversion:    drawSubtractionWithConversion,
	KindSubtractionAdvanced2Digits:   drawSubtractionAdvanced2Digits,
	KindSubtractionAdvanced3Digits:   drawSubtractionAdvanced3Digits,
	KindMultiplicationTable:          drawMultiplicationTable,
	KindMultiplicationAdvanced:       drawMultiplicationAdvanced,
	KindOrderOfOperations:            drawOrderOfOperations,
	KindFractionAddition:             drawFractionAddition,
	KindLeastCommonDenominator:       drawLeastCommonDenominator,
	KindFractionMixed:                drawFractionMixed,
	KindNumberLine:                   drawNumberLine,
	KindCompareNumbers:               drawCompareNumbers,
	KindCompleteSequence:             drawCompleteSequence,
	KindFindMissingNumber:            drawFindMissingNumber,
	KindPlaceValue:                   drawPlaceValue,
	KindLocateNumberLine:             drawLocateNumberLine,
}

// Generator produces exercises from an injected random source.
// It holds no per-session state and is not safe for concurrent use
// unless its Source is.
type Generator struct {
	src    randsrc.Source
	config Config
}

// New creates a Generator drawing from src.
func New(src randsrc.Source, cfg Config) *Generator {
	if len(cfg.OrderOperators) == 0 {
		cfg.OrderOperators = DefaultConfig().OrderOperators
	}
	return &Generator{src: src, config: cfg}
}

// Generate produces an exercise of kind k at level whose key is not in
// used, retrying up to MaxAttempts times. When every attempt collides the
// last candidate is returned anyway. The only error is an unknown kind.
func (g *Generator) Generate(k Kind, level int, used KeySet) (*Exercise, error) {
	draw, ok := drawers[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return generateUnique(used, func() *Exercise {
		ex := draw(g.src, level, &g.config)
		ex.Kind = k
		ex.Level = level
		ex.Key = QuestionKey(ex)
		return ex
	}), nil
}

// GenerateChecked is Generate followed by the configured checks.
func (g *Generator) GenerateChecked(k Kind, level int, used KeySet) (*Exercise, error) {
	ex, err := g.Generate(k, level, used)
	if err != nil {
		return nil, err
	}
	if err := RunChecks(ex, g.config.Checks...); err != nil {
		return ex, err
	}
	return ex, nil
}
