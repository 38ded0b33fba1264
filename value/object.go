package value

import (
	"sort"
	"strings"

	"github.com/0xalexb/ersatta/path"
)

// Object is a map of string keys to child values. The entry map is copied at
// construction and never mutated afterwards.
type Object struct {
	origin  Origin
	entries map[string]Value
	status  Status
}

// NewObject creates an Object from the given entries. The object is Resolved
// only when every child is Resolved.
func NewObject(origin Origin, entries map[string]Value) *Object {
	copied := make(map[string]Value, len(entries))
	status := Resolved

	for key, child := range entries {
		copied[key] = child

		if child.Status() == Unresolved {
			status = Unresolved
		}
	}

	return &Object{origin: origin, entries: copied, status: status}
}

// Get returns the child at key.
func (o *Object) Get(key string) (Value, bool) {
	child, present := o.entries[key]

	return child, present
}

// Keys returns the object's keys in sorted order, which fixes both the
// resolve order and the rendering order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.entries))
	for key := range o.entries {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.entries) }

// Origin implements Value.
func (o *Object) Origin() Origin { return o.origin }

// Type implements Value.
func (o *Object) Type() Type { return ObjectType }

// Unwrapped implements Value. It panics with *NotResolvedError if any
// descendant is an unresolved Reference.
func (o *Object) Unwrapped() any {
	result := make(map[string]any, len(o.entries))
	for key, child := range o.entries {
		result[key] = child.Unwrapped()
	}

	return result
}

// Status implements Value.
func (o *Object) Status() Status { return o.status }

// WithOrigin implements Value.
func (o *Object) WithOrigin(origin Origin) Value {
	return &Object{origin: origin, entries: o.entries, status: o.status}
}

// Relativized implements Value, rewriting every Reference in the subtree for
// grafting under prefix.
func (o *Object) Relativized(prefix path.Path) Value {
	entries := make(map[string]Value, len(o.entries))
	for key, child := range o.entries {
		entries[key] = child.Relativized(prefix)
	}

	return &Object{origin: o.origin, entries: entries, status: o.status}
}

// Render implements Value.
func (o *Object) Render() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(o.entries[key].Render())
	}

	sb.WriteByte('}')

	return sb.String()
}

// resolveSubstitutions resolves each child against a source re-anchored at
// that child's path. A child resolving to absence (an optional substitution
// with no target) is dropped from the result.
func (o *Object) resolveSubstitutions(ctx *Context, source *Source) (Result, error) {
	if o.status == Resolved {
		return Result{Context: ctx, Value: o}, nil
	}

	entries := make(map[string]Value, len(o.entries))

	for _, key := range o.Keys() {
		res, err := ctx.Resolve(o.entries[key], source.descend(key))
		if err != nil {
			return Result{}, err
		}

		ctx = res.Context

		if res.Value == nil {
			continue
		}

		entries[key] = res.Value
	}

	return Result{Context: ctx, Value: NewObject(o.origin, entries)}, nil
}
