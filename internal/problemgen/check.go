package problemgen

import "fmt"

// Check inspects a generated exercise for internal consistency.
// Implementations should be stateless and safe for concurrent use.
type Check interface {
	// Name returns a short identifier for this check, e.g. "structural",
	// "math-check", "schema".
	Name() string

	// Check returns nil if the exercise passes.
	Check(ex *Exercise) *CheckError
}

// CheckError describes why an exercise failed a check.
type CheckError struct {
	Check   string // Name of the check that failed
	Message string // Human-readable description of the failure
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

// DefaultChecks returns the standard check chain.
func DefaultChecks() []Check {
	return []Check{
		&StructuralCheck{},
		&MathCheck{},
		&SchemaCheck{},
	}
}

// RunChecks runs checks in order and returns the first failure.
func RunChecks(ex *Exercise, checks ...Check) error {
	for _, c := range checks {
		if cerr := c.Check(ex); cerr != nil {
			return cerr
		}
	}
	return nil
}
