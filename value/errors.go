package value

import (
	"errors"
	"fmt"
)

// NotResolvedError reports a programming error: a value's concrete type or
// unwrapped data was requested before resolution completed. It is delivered by
// panic, never by return value, and is never recovered inside this package.
type NotResolvedError struct {
	What string
}

// Error implements the error interface.
func (e *NotResolvedError) Error() string {
	return "value is not resolved, call Resolve first: " + e.What
}

// UnresolvedSubstitutionError reports that a required (non-optional)
// substitution could not be resolved, either because no value or fallback was
// found or because it was part of a substitution cycle. It is the only
// resolution failure visible to callers.
type UnresolvedSubstitutionError struct {
	// Origin of the unresolved Reference.
	Origin Origin
	// Expression is the substitution that failed.
	Expression Expression
	// CycleTrace is a human-readable chain of the substitutions involved in
	// a cycle, or empty when the failure was a plain missing value.
	CycleTrace string
}

// Error implements the error interface.
func (e *UnresolvedSubstitutionError) Error() string {
	if e.CycleTrace != "" {
		return fmt.Sprintf("%s: %s was part of a cycle of substitutions involving %s",
			e.Origin, e.Expression, e.CycleTrace)
	}

	return fmt.Sprintf("%s: could not resolve substitution %s", e.Origin, e.Expression)
}

// cycleError is the internal signal that a value was re-entered while already
// being resolved. It must not escape to callers of the package: every cycle is
// converted by the nearest enclosing Reference frame into either absence (for
// an optional substitution) or an UnresolvedSubstitutionError.
type cycleError struct {
	trace string
}

func (e *cycleError) Error() string {
	return "substitution cycle: " + e.trace
}

func asCycle(err error) (*cycleError, bool) {
	var cycle *cycleError
	if errors.As(err, &cycle) {
		return cycle, true
	}

	return nil, false
}
