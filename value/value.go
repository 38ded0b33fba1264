package value

import (
	"github.com/0xalexb/ersatta/path"
)

// Type identifies the concrete kind of a resolved value.
type Type int

// Value types.
const (
	ObjectType Type = iota
	ListType
	NumberType
	StringType
	BoolType
	NullType
)

// String returns the type's name.
func (t Type) String() string {
	switch t {
	case ObjectType:
		return "object"
	case ListType:
		return "list"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case NullType:
		return "null"
	default:
		return "unknown"
	}
}

// Status reports whether a value still contains unresolved substitutions.
type Status int

// Resolution statuses. A composite is Unresolved iff any descendant is.
const (
	Unresolved Status = iota
	Resolved
)

// String returns the status name.
func (s Status) String() string {
	if s == Resolved {
		return "resolved"
	}

	return "unresolved"
}

// Value is a node in an immutable configuration tree. The variant set is
// closed: Object, List, String, Int, Float, Bool, Null and Reference.
//
// Resolution never mutates a tree; it builds new resolved nodes, so an
// unresolved tree stays shareable across independent resolution passes.
type Value interface {
	// Origin reports the value's provenance, used only for diagnostics.
	Origin() Origin
	// Type reports the concrete value type. It panics with *NotResolvedError
	// on an unresolved Reference, which has no concrete type.
	Type() Type
	// Unwrapped returns the value as plain Go data (map[string]any, []any,
	// string, int64, float64, bool or nil). It panics with *NotResolvedError
	// if the value or any descendant is an unresolved Reference.
	Unwrapped() any
	// Status reports whether the value still contains unresolved substitutions.
	Status() Status
	// WithOrigin returns a copy of the value carrying the given origin.
	WithOrigin(origin Origin) Value
	// Relativized returns a copy adjusted for grafting the value under the
	// given prefix: every Reference below rewrites its path so lookups keep
	// working from the new tree position.
	Relativized(prefix path.Path) Value
	// Render produces a textual form. An unresolved Reference renders as
	// exactly ${path} or ${?path}, so trees holding intentionally-unresolved
	// placeholders round-trip to text.
	Render() string

	// resolveSubstitutions resolves this value against the source, threading
	// the context through recursive work. A nil result value means the value
	// resolved to absence (an optional substitution with no target).
	resolveSubstitutions(ctx *Context, source *Source) (Result, error)
}

// ResolveObject performs one full resolution pass over root and returns the
// resolved tree. The pass owns a fresh context; nothing is shared between
// passes, so the same unresolved root may be resolved repeatedly and
// concurrently.
func ResolveObject(root *Object, options ResolveOptions) (*Object, error) {
	ctx := NewContext(options)
	source := NewSource(root, path.Path{})

	res, err := ctx.Resolve(root, source)
	if err != nil {
		return nil, err
	}

	resolved, isObject := res.Value.(*Object)
	if !isObject {
		// Object resolution always yields an object; keep the invariant loud.
		panic(&NotResolvedError{What: "root did not resolve to an object"})
	}

	return resolved, nil
}
