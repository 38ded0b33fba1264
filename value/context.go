package value

import (
	"strings"
)

// Resolver is the fallback lookup capability consulted when a substitution
// path is not found inside the tree itself, typically backed by environment
// variables or system properties. The engine treats it as opaque; a nil
// return means the path is absent.
type Resolver interface {
	Lookup(renderedPath string) Value
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(renderedPath string) Value

// Lookup implements Resolver.
func (f ResolverFunc) Lookup(renderedPath string) Value { return f(renderedPath) }

// Tracer is an optional diagnostic sink invoked with the current resolution
// depth and a free-text message at key algorithm steps. It is purely
// observational and has no effect on results.
type Tracer func(depth int, message string)

// ResolveOptions configures one resolution pass.
type ResolveOptions struct {
	// AllowUnresolved leaves a required substitution unchanged in the tree
	// instead of failing, for staged or partial resolution passes.
	AllowUnresolved bool
	// Fallback is consulted, by rendered path, for substitutions not found in
	// the tree. May be nil.
	Fallback Resolver
	// Tracer receives diagnostic messages. May be nil.
	Tracer Tracer
}

// Result pairs the value produced by a resolution step with the context to
// use for subsequent steps. Contexts are never merged: the most recently
// returned context wins. A nil Value means the step resolved to absence.
type Result struct {
	Context *Context
	Value   Value
}

// Context is the transient state threaded through one resolution pass: the
// identity-keyed set of values currently being resolved (cycle markers), the
// depth for diagnostics, and the pass options. Contexts are immutable;
// updates return new contexts.
type Context struct {
	options ResolveOptions
	depth   int
	// markers holds the values currently being resolved. All Value variants
	// are pointer types, so interface keys compare by node identity: two
	// distinct Reference nodes with equal expressions are tracked
	// independently.
	markers map[Value]struct{}
	// order preserves marker insertion order for cycle traces.
	order []Value
}

// NewContext creates a fresh context for one resolution pass.
func NewContext(options ResolveOptions) *Context {
	return &Context{
		options: options,
		markers: make(map[Value]struct{}),
	}
}

// Options returns the pass options.
func (c *Context) Options() ResolveOptions { return c.options }

// Depth returns the current resolution depth. It is tracked only for
// diagnostic tracing, never enforced as a limit.
func (c *Context) Depth() int { return c.depth }

// AddCycleMarker returns a new context with v marked as currently being
// resolved. If v is already marked, the pass has re-entered a value it is in
// the middle of resolving: AddCycleMarker then returns the internal cycle
// signal, which callers must treat as the trigger for cycle handling, not as
// a generic error.
func (c *Context) AddCycleMarker(v Value) (*Context, error) {
	if _, resolving := c.markers[v]; resolving {
		if c.tracing() {
			c.trace("cycle detected at " + v.Render())
		}

		return nil, &cycleError{trace: c.cycleTrace(v)}
	}

	next := c.clone()
	next.markers[v] = struct{}{}
	next.order = append(next.order, v)

	return next, nil
}

// RemoveCycleMarker returns a new context with v no longer marked.
func (c *Context) RemoveCycleMarker(v Value) *Context {
	next := c.clone()
	delete(next.markers, v)

	for i, marked := range next.order {
		if marked == v {
			next.order = append(next.order[:i:i], next.order[i+1:]...)

			break
		}
	}

	return next
}

// Resolve is the generic re-entry point used by composites recursing into
// children and by Reference resolving a found value. The returned Result's
// context must replace the caller's context for subsequent steps.
func (c *Context) Resolve(v Value, source *Source) (Result, error) {
	if c.tracing() {
		c.trace("resolving " + v.Render() + " against " + source.describe())
	}

	res, err := v.resolveSubstitutions(c.withDepth(c.depth+1), source)
	if err != nil {
		return Result{}, err
	}

	return Result{Context: res.Context.withDepth(c.depth), Value: res.Value}, nil
}

func (c *Context) clone() *Context {
	markers := make(map[Value]struct{}, len(c.markers)+1)
	for v := range c.markers {
		markers[v] = struct{}{}
	}

	order := make([]Value, len(c.order), len(c.order)+1)
	copy(order, c.order)

	return &Context{
		options: c.options,
		depth:   c.depth,
		markers: markers,
		order:   order,
	}
}

func (c *Context) withDepth(depth int) *Context {
	next := c.clone()
	next.depth = depth

	return next
}

// cycleTrace renders the chain of values currently being resolved, closing
// with the re-entered value.
func (c *Context) cycleTrace(reentered Value) string {
	parts := make([]string, 0, len(c.order)+1)
	for _, marked := range c.order {
		parts = append(parts, marked.Render())
	}

	parts = append(parts, reentered.Render())

	return strings.Join(parts, " -> ")
}

// tracing reports whether a tracer is configured, so callers can skip
// building trace messages nobody will see.
func (c *Context) tracing() bool {
	return c.options.Tracer != nil
}

func (c *Context) trace(message string) {
	if c.options.Tracer != nil {
		c.options.Tracer(c.depth, message)
	}
}
