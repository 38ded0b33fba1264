package value

import (
	"github.com/0xalexb/ersatta/path"
)

// Source locates substitution targets by walking the tree from a fixed root.
// pathFromRoot tracks the location currently being resolved, so a found value
// can be handed a source anchored at its own location and resolve any of its
// own substitutions in the right scope.
type Source struct {
	root         *Object
	pathFromRoot path.Path
}

// NewSource creates a Source rooted at root, anchored at pathFromRoot.
func NewSource(root *Object, pathFromRoot path.Path) *Source {
	return &Source{root: root, pathFromRoot: pathFromRoot}
}

// Root returns the tree root lookups descend from.
func (s *Source) Root() *Object { return s.root }

// PathFromRoot returns the anchor path.
func (s *Source) PathFromRoot() path.Path { return s.pathFromRoot }

// descend returns a source anchored one key deeper, for resolving an object's
// child.
func (s *Source) descend(key string) *Source {
	return &Source{root: s.root, pathFromRoot: s.pathFromRoot.Append(key)}
}

func (s *Source) describe() string {
	if s.pathFromRoot.Len() == 0 {
		return "root"
	}

	return s.pathFromRoot.Render()
}

// FoundValue pairs a lookup result with the path from the root at which the
// value was found. The path is what lets the found value be resolved in its
// own scope rather than the referencing scope.
type FoundValue struct {
	Result       Result
	PathFromRoot path.Path
}

// LookupSubstitution locates the value the expression refers to. The full
// (possibly relativized) path is tried first; on a miss, a path with the
// grafted prefix stripped is retried from the root, so references grafted
// under a sub-key still reach the values the author originally pointed at.
// A FoundValue with a nil Result.Value means nothing was found.
func (s *Source) LookupSubstitution(ctx *Context, expr Expression, prefixLength int) (FoundValue, error) {
	found, err := s.find(ctx, expr.Path())
	if err != nil {
		return FoundValue{}, err
	}

	if found.Result.Value == nil && prefixLength > 0 {
		unprefixed := expr.Path().SubPath(prefixLength)

		if found.Result.Context.tracing() {
			found.Result.Context.trace("did not find " + expr.Path().Render() +
				", retrying with grafted prefix stripped: " + unprefixed.Render())
		}

		found, err = s.find(found.Result.Context, unprefixed)
		if err != nil {
			return FoundValue{}, err
		}
	}

	return found, nil
}

// find descends from the root along p. An unresolved value met before the
// last segment is resolved first, in its own scope, since the target may sit
// behind a substitution (a = ${b}, b = {c: 1}, d = ${a.c}). A miss at any
// point is reported as absence, not an error.
func (s *Source) find(ctx *Context, p path.Path) (FoundValue, error) {
	var current Value = s.root

	walked := path.Path{}

	for _, segment := range p.Segments() {
		obj, isObject := current.(*Object)
		if !isObject {
			if current.Status() == Resolved {
				// Resolved but not an object: nothing to descend into.
				return FoundValue{Result: Result{Context: ctx}}, nil
			}

			res, err := ctx.Resolve(current, NewSource(s.root, walked))
			if err != nil {
				return FoundValue{}, err
			}

			ctx = res.Context

			obj, isObject = res.Value.(*Object)
			if !isObject {
				return FoundValue{Result: Result{Context: ctx}}, nil
			}
		}

		child, present := obj.Get(segment)
		if !present {
			return FoundValue{Result: Result{Context: ctx}}, nil
		}

		current = child
		walked = walked.Append(segment)
	}

	return FoundValue{
		Result:       Result{Context: ctx, Value: current},
		PathFromRoot: walked,
	}, nil
}
