package he

import "fmt"

// ValidationError reports a geometric or topological invariant violation
// detected by a validation pass (as opposed to the boolean/empty-result
// convention used by ordinary degenerate-input conditions).
type ValidationError struct {
	Type    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s", e.Type, e.Message)
}
