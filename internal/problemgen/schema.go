package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const exerciseSchemaURL = "schema://exercise.json"

func intField() map[string]any    { return map[string]any{"type": "integer"} }
func posIntField() map[string]any { return map[string]any{"type": "integer", "minimum": 1} }

func object(required []any, props map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"required":             required,
		"properties":           props,
		"additionalProperties": false,
	}
}

// ExerciseSchema is the JSON contract for a serialised Exercise.
var ExerciseSchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"kind", "shape", "level", "key"},
	"properties": map[string]any{
		"kind":  map[string]any{"type": "string", "minLength": 1},
		"shape": map[string]any{"enum": []any{"number", "fraction", "lcd", "orderOfOperations", "numberLine", "compareNumbers", "sequence", "placeValue"}},
		"level": intField(),
		"key":   map[string]any{"type": "string", "minLength": 1},
		"number": object([]any{"num1", "num2", "op", "answer"}, map[string]any{
			"num1":   intField(),
			"num2":   intField(),
			"op":     map[string]any{"enum": []any{"+", "-", "×", "÷"}},
			"answer": intField(),
		}),
		"fraction": object([]any{"numerator1", "denominator1", "numerator2", "denominator2", "operation", "answerNumerator", "answerDenominator", "answer"}, map[string]any{
			"numerator1":        intField(),
			"denominator1":      posIntField(),
			"numerator2":        intField(),
			"denominator2":      posIntField(),
			"operation":         map[string]any{"enum": []any{"+", "-"}},
			"answerNumerator":   intField(),
			"answerDenominator": posIntField(),
			"answer":            map[string]any{"type": "string", "pattern": `^-?\d+/\d+$`},
		}),
		"lcd": object([]any{"denominators", "answer"}, map[string]any{
			"denominators": map[string]any{"type": "array", "items": posIntField(), "minItems": 2, "maxItems": 3},
			"answer":       posIntField(),
		}),
		"orderOfOperations": object([]any{"expression", "answer"}, map[string]any{
			"expression": map[string]any{"type": "string", "minLength": 1},
			"answer":     map[string]any{"type": "number"},
		}),
		"numberLine": object([]any{"targetNumber", "min", "max", "step", "answer"}, map[string]any{
			"targetNumber": intField(),
			"min":          intField(),
			"max":          intField(),
			"step":         posIntField(),
			"answer":       intField(),
		}),
		"compareNumbers": object([]any{"num1", "num2", "comparison", "answer"}, map[string]any{
			"num1":       intField(),
			"num2":       intField(),
			"comparison": map[string]any{"enum": []any{"greater", "lesser"}},
			"answer":     intField(),
		}),
		"sequence": object([]any{"sequence", "missingIndex", "answer"}, map[string]any{
			"sequence":     map[string]any{"type": "array", "items": intField(), "minItems": 3},
			"missingIndex": map[string]any{"type": "integer", "minimum": 0},
			"answer":       intField(),
		}),
		"placeValue": object([]any{"number", "place", "answer"}, map[string]any{
			"number": intField(),
			"place":  map[string]any{"enum": []any{"hundreds", "tens", "units"}},
			"answer": map[string]any{"type": "integer", "minimum": 0, "maximum": 9},
		}),
	},
	"additionalProperties": false,
	"allOf":                shapeRequirements(),
}

// shapeRequirements ties each shape tag to its payload property.
func shapeRequirements() []any {
	shapes := []string{"number", "fraction", "lcd", "orderOfOperations", "numberLine", "compareNumbers", "sequence", "placeValue"}
	rules := make([]any, 0, len(shapes))
	for _, s := range shapes {
		rules = append(rules, map[string]any{
			"if": map[string]any{
				"properties": map[string]any{"shape": map[string]any{"const": s}},
			},
			"then": map[string]any{"required": []any{s}},
		})
	}
	return rules
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func exerciseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the
		// Go literal through encoding/json.
		b, err := json.Marshal(ExerciseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(b, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(exerciseSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(exerciseSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateJSON checks raw JSON against ExerciseSchema.
func ValidateJSON(raw []byte) error {
	sch, err := exerciseSchema()
	if err != nil {
		return fmt.Errorf("compile exercise schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// SchemaCheck validates the JSON encoding of an exercise against
// ExerciseSchema.
type SchemaCheck struct{}

func (c *SchemaCheck) Name() string { return "schema" }

func (c *SchemaCheck) Check(ex *Exercise) *CheckError {
	raw, err := json.Marshal(ex)
	if err != nil {
		return &CheckError{Check: c.Name(), Message: fmt.Sprintf("marshal: %v", err)}
	}
	if err := ValidateJSON(raw); err != nil {
		return &CheckError{Check: c.Name(), Message: err.Error()}
	}
	return nil
}
