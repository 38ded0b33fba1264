package value

import (
	"github.com/0xalexb/ersatta/path"
)

// Reference is the unresolved substitution variant: a placeholder standing in
// for a value found elsewhere in the tree or supplied by the fallback
// resolver. It is the only variant that starts Unresolved; resolution replaces
// it in the tree with the value it references.
type Reference struct {
	origin Origin
	expr   Expression
	// prefixLength counts the leading path segments added by Relativized, so
	// lookups that are absolute by nature (the external fallback, and the
	// in-tree retry after a miss) can strip the grafted prefix and use the
	// path the author originally wrote.
	prefixLength int
}

// NewReference creates an unresolved Reference for the given expression.
func NewReference(origin Origin, expr Expression) *Reference {
	return &Reference{origin: origin, expr: expr}
}

// Expression returns the substitution expression.
func (r *Reference) Expression() Expression { return r.expr }

// Origin implements Value.
func (r *Reference) Origin() Origin { return r.origin }

// Type panics with *NotResolvedError: a Reference has no concrete type until
// it is resolved.
func (r *Reference) Type() Type {
	panic(r.notResolved())
}

// Unwrapped panics with *NotResolvedError, like Type.
func (r *Reference) Unwrapped() any {
	panic(r.notResolved())
}

func (r *Reference) notResolved() *NotResolvedError {
	return &NotResolvedError{What: "substitution " + r.Render()}
}

// Status implements Value. A Reference is always Unresolved.
func (r *Reference) Status() Status { return Unresolved }

// WithOrigin implements Value.
func (r *Reference) WithOrigin(origin Origin) Value {
	return &Reference{origin: origin, expr: r.expr, prefixLength: r.prefixLength}
}

// Relativized implements Value. Grafting a Reference into another tree
// position prepends the grafted location to its path; prefixLength accumulates
// the total prepended length across repeated relocations.
func (r *Reference) Relativized(prefix path.Path) Value {
	newExpr := r.expr.ChangePath(r.expr.Path().Prepend(prefix))

	return &Reference{
		origin:       r.origin,
		expr:         newExpr,
		prefixLength: r.prefixLength + prefix.Len(),
	}
}

// Equal reports whether both references hold the same expression. Origin is
// deliberately not part of equality.
func (r *Reference) Equal(other *Reference) bool {
	return other != nil && r.expr.Equal(other.expr)
}

// Render implements Value, reproducing exactly ${path} or ${?path}.
func (r *Reference) Render() string { return r.expr.String() }

// resolveSubstitutions is the firewall against the internal cycle signal:
// any failure to resolve starts at a Reference, so the signal can escape no
// further than the nearest enclosing Reference frame, which converts it here
// into absence (optional) or an UnresolvedSubstitutionError (required).
func (r *Reference) resolveSubstitutions(ctx *Context, source *Source) (Result, error) {
	newCtx, markErr := ctx.AddCycleMarker(r)
	if markErr != nil {
		// Re-entered while already being resolved in this pass. Hand the
		// signal to the enclosing Reference frame instead of recursing.
		return Result{}, markErr
	}

	var resolved Value

	res, err := r.lookupAndResolve(newCtx, source)

	switch cycle, isCycle := asCycle(err); {
	case err == nil:
		newCtx = res.Context
		resolved = res.Value
	case isCycle:
		if newCtx.tracing() {
			newCtx.trace("not possible to resolve " + r.expr.String() + ", cycle involved: " + cycle.trace)
		}

		if !r.expr.Optional() {
			return Result{}, &UnresolvedSubstitutionError{
				Origin:     r.origin,
				Expression: r.expr,
				CycleTrace: cycle.trace,
			}
		}

		resolved = nil
	default:
		return Result{}, err
	}

	newCtx = newCtx.RemoveCycleMarker(r)

	if resolved == nil && !r.expr.Optional() {
		if newCtx.Options().AllowUnresolved {
			return Result{Context: newCtx, Value: r}, nil
		}

		return Result{}, &UnresolvedSubstitutionError{Origin: r.origin, Expression: r.expr}
	}

	return Result{Context: newCtx, Value: resolved}, nil
}

// lookupAndResolve locates the substitution target and, when found, resolves
// it against a source anchored at the found value's own location rather than
// the referencing location, since the found value may contain substitutions
// meaningful only in its own scope. When nothing is found in the tree, the
// configured fallback is consulted with the original, unprefixed path.
func (r *Reference) lookupAndResolve(ctx *Context, source *Source) (Result, error) {
	found, err := source.LookupSubstitution(ctx, r.expr, r.prefixLength)
	if err != nil {
		return Result{}, err
	}

	ctx = found.Result.Context

	if found.Result.Value != nil {
		if ctx.tracing() {
			ctx.trace("recursively resolving " + found.Result.Value.Render() +
				" found at " + found.PathFromRoot.Render() +
				", which was the resolution of " + r.expr.String())
		}

		recursive := NewSource(source.Root(), found.PathFromRoot)

		return ctx.Resolve(found.Result.Value, recursive)
	}

	if fallback := ctx.Options().Fallback; fallback != nil {
		original := r.expr.Path().SubPath(r.prefixLength)

		if ctx.tracing() {
			ctx.trace("falling back to external lookup of " + original.Render())
		}

		if v := fallback.Lookup(original.Render()); v != nil {
			return Result{Context: ctx, Value: v}, nil
		}
	}

	return Result{Context: ctx}, nil
}
