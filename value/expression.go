package value

import (
	"github.com/0xalexb/ersatta/path"
)

// Expression is a substitution expression: a path plus an optional flag
// distinguishing ${?path} from ${path}. Expressions are immutable; ChangePath
// returns a new expression with the same optionality.
type Expression struct {
	path     path.Path
	optional bool
}

// NewExpression creates a substitution expression.
func NewExpression(p path.Path, optional bool) Expression {
	return Expression{path: p, optional: optional}
}

// Path returns the referenced path.
func (e Expression) Path() path.Path { return e.path }

// Optional reports whether the expression is the ${?path} form, which
// resolves to absence rather than an error when unresolvable.
func (e Expression) Optional() bool { return e.optional }

// ChangePath returns a new expression referencing newPath with the same
// optionality.
func (e Expression) ChangePath(newPath path.Path) Expression {
	return Expression{path: newPath, optional: e.optional}
}

// Equal reports whether both expressions have the same path and optionality.
func (e Expression) Equal(other Expression) bool {
	return e.optional == other.optional && e.path.Equal(other.path)
}

// String renders the expression back to substitution syntax: ${path} or
// ${?path}.
func (e Expression) String() string {
	if e.optional {
		return "${?" + e.path.Render() + "}"
	}

	return "${" + e.path.Render() + "}"
}
