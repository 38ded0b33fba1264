package value

import (
	"strings"

	"github.com/0xalexb/ersatta/path"
)

// List is an ordered sequence of child values. The element slice is copied at
// construction and never mutated afterwards.
type List struct {
	origin   Origin
	elements []Value
	status   Status
}

// NewList creates a List from the given elements. The list is Resolved only
// when every element is Resolved.
func NewList(origin Origin, elements []Value) *List {
	copied := make([]Value, len(elements))
	status := Resolved

	for i, element := range elements {
		copied[i] = element

		if element.Status() == Unresolved {
			status = Unresolved
		}
	}

	return &List{origin: origin, elements: copied, status: status}
}

// Elements returns a copy of the element slice.
func (l *List) Elements() []Value {
	copied := make([]Value, len(l.elements))
	copy(copied, l.elements)

	return copied
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.elements) }

// Origin implements Value.
func (l *List) Origin() Origin { return l.origin }

// Type implements Value.
func (l *List) Type() Type { return ListType }

// Unwrapped implements Value. It panics with *NotResolvedError if any
// descendant is an unresolved Reference.
func (l *List) Unwrapped() any {
	result := make([]any, len(l.elements))
	for i, element := range l.elements {
		result[i] = element.Unwrapped()
	}

	return result
}

// Status implements Value.
func (l *List) Status() Status { return l.status }

// WithOrigin implements Value.
func (l *List) WithOrigin(origin Origin) Value {
	return &List{origin: origin, elements: l.elements, status: l.status}
}

// Relativized implements Value.
func (l *List) Relativized(prefix path.Path) Value {
	elements := make([]Value, len(l.elements))
	for i, element := range l.elements {
		elements[i] = element.Relativized(prefix)
	}

	return &List{origin: l.origin, elements: elements, status: l.status}
}

// Render implements Value.
func (l *List) Render() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, element := range l.elements {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(element.Render())
	}

	sb.WriteByte(']')

	return sb.String()
}

// resolveSubstitutions resolves each element in order. Substitution paths
// cannot address list elements, so children resolve against the parent's
// source anchor unchanged. Elements resolving to absence are dropped.
func (l *List) resolveSubstitutions(ctx *Context, source *Source) (Result, error) {
	if l.status == Resolved {
		return Result{Context: ctx, Value: l}, nil
	}

	elements := make([]Value, 0, len(l.elements))

	for _, element := range l.elements {
		res, err := ctx.Resolve(element, source)
		if err != nil {
			return Result{}, err
		}

		ctx = res.Context

		if res.Value == nil {
			continue
		}

		elements = append(elements, res.Value)
	}

	return Result{Context: ctx, Value: NewList(l.origin, elements)}, nil
}
