package problemgen

// Config controls optional Generator behavior.
type Config struct {
	// OrderOperators is the operator pool for order-of-operations
	// expressions. Include OpDiv for the division variant.
	OrderOperators []Operator

	// Checks run by GenerateChecked, in order. The first failure stops
	// the pipeline.
	Checks []Check
}

// DefaultConfig returns a Config with the standard operator pool and
// check chain.
func DefaultConfig() Config {
	return Config{
		OrderOperators: []Operator{OpAdd, OpSub, OpMul},
		Checks:         DefaultChecks(),
	}
}

// DivisionConfig returns DefaultConfig with division added to the
// order-of-operations operator pool.
func DivisionConfig() Config {
	cfg := DefaultConfig()
	cfg.OrderOperators = []Operator{OpAdd, OpSub, OpMul, OpDiv}
	return cfg
}
