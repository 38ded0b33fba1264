package value_test

import (
	"errors"
	"testing"

	"github.com/0xalexb/ersatta/path"
	"github.com/0xalexb/ersatta/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObject(entries map[string]value.Value) *value.Object {
	return value.NewObject(value.NewOrigin("test"), entries)
}

func newInt(v int64) *value.Int {
	return value.NewInt(value.NewOrigin("test"), v)
}

func newString(v string) *value.String {
	return value.NewString(value.NewOrigin("test"), v)
}

func TestResolve_SimpleReference(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newInt(1),
		"b": newReference(t, "a", false),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(1)}, resolved.Unwrapped())
	assert.Equal(t, value.Resolved, resolved.Status())
}

func TestResolve_ChainedReferences(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "b", false),
		"b": newReference(t, "c", false),
		"c": newString("end"),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": "end", "b": "end", "c": "end"}, resolved.Unwrapped())
}

func TestResolve_NestedScope(t *testing.T) {
	t.Parallel()

	// d points through a, which is itself a substitution for an object; the
	// found value must be resolved at its own location before descending.
	root := newObject(map[string]value.Value{
		"a": newReference(t, "b", false),
		"b": newObject(map[string]value.Value{"c": newInt(1)}),
		"d": newReference(t, "a.c", false),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": map[string]any{"c": int64(1)},
		"b": map[string]any{"c": int64(1)},
		"d": int64(1),
	}, resolved.Unwrapped())
}

func TestResolve_ObjectValueWithInnerReference(t *testing.T) {
	t.Parallel()

	// The object found for ${app} carries its own substitution, which must
	// resolve in the found value's scope, not the referencing scope.
	root := newObject(map[string]value.Value{
		"host": newString("example.com"),
		"app": newObject(map[string]value.Value{
			"addr": newReference(t, "host", false),
		}),
		"copy": newReference(t, "app", false),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	expectedApp := map[string]any{"addr": "example.com"}
	assert.Equal(t, map[string]any{
		"host": "example.com",
		"app":  expectedApp,
		"copy": expectedApp,
	}, resolved.Unwrapped())
}

func TestResolve_OptionalMissingIsDropped(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"b": newReference(t, "missing", true),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, resolved.Len(), "an absent optional substitution drops its key")
	_, present := resolved.Get("b")
	assert.False(t, present)
}

func TestResolve_OptionalPresent(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newInt(1),
		"b": newReference(t, "a", true),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(1)}, resolved.Unwrapped())
}

func TestResolve_MissingRequiredFails(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "missing", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{})
	require.Error(t, err)

	var unresolved *value.UnresolvedSubstitutionError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "${missing}", unresolved.Expression.String())
	assert.Empty(t, unresolved.CycleTrace)
}

func TestResolve_FallbackResolver(t *testing.T) {
	t.Parallel()

	var lookedUp []string

	fallback := value.ResolverFunc(func(renderedPath string) value.Value {
		lookedUp = append(lookedUp, renderedPath)

		if renderedPath == "b" {
			return value.NewInt(value.NewOrigin("fallback"), 42)
		}

		return nil
	})

	root := newObject(map[string]value.Value{
		"a": newReference(t, "b", false),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{Fallback: fallback})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": int64(42)}, resolved.Unwrapped())
	assert.Equal(t, []string{"b"}, lookedUp)
}

func TestResolve_FallbackForOptional(t *testing.T) {
	t.Parallel()

	fallback := value.ResolverFunc(func(renderedPath string) value.Value {
		if renderedPath == "missing" {
			return value.NewString(value.NewOrigin("fallback"), "from-fallback")
		}

		return nil
	})

	root := newObject(map[string]value.Value{
		"a": newReference(t, "missing", true),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{Fallback: fallback})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": "from-fallback"}, resolved.Unwrapped())
}

func TestResolve_InTreeValueWinsOverFallback(t *testing.T) {
	t.Parallel()

	fallback := value.ResolverFunc(func(string) value.Value {
		t.Error("fallback must not be consulted when the tree has the value")

		return nil
	})

	root := newObject(map[string]value.Value{
		"a": newInt(1),
		"b": newReference(t, "a", false),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{Fallback: fallback})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(1)}, resolved.Unwrapped())
}

func TestResolve_AllowUnresolved(t *testing.T) {
	t.Parallel()

	ref := newReference(t, "missing", false)
	root := newObject(map[string]value.Value{"a": ref})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{AllowUnresolved: true})
	require.NoError(t, err)

	assert.Equal(t, value.Unresolved, resolved.Status())

	kept, present := resolved.Get("a")
	require.True(t, present)

	keptRef, isReference := kept.(*value.Reference)
	require.True(t, isReference, "the placeholder is returned unchanged")
	assert.True(t, ref.Equal(keptRef))
}

func TestResolve_SelfCycleFails(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "a", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{})
	require.Error(t, err)

	var unresolved *value.UnresolvedSubstitutionError
	require.ErrorAs(t, err, &unresolved)
	assert.Contains(t, unresolved.CycleTrace, "a", "the trace names the cycle participant")
	assert.Contains(t, err.Error(), "cycle")
}

func TestResolve_OptionalSelfCycleResolvesToAbsent(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "a", true),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, resolved.Len())
}

func TestResolve_MutualCycleFails(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "b", false),
		"b": newReference(t, "a", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{})
	require.Error(t, err)

	var unresolved *value.UnresolvedSubstitutionError
	require.ErrorAs(t, err, &unresolved)
	assert.NotEmpty(t, unresolved.CycleTrace)
	assert.Contains(t, unresolved.CycleTrace, "${a}")
	assert.Contains(t, unresolved.CycleTrace, "${b}")
}

func TestResolve_LongerCycleFails(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "b", false),
		"b": newReference(t, "c", false),
		"c": newReference(t, "a", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{})
	require.Error(t, err)

	var unresolved *value.UnresolvedSubstitutionError
	require.ErrorAs(t, err, &unresolved)
	assert.NotEmpty(t, unresolved.CycleTrace)
}

func TestResolve_CycleErrorDoesNotLeakInternalSignal(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "a", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{})
	require.Error(t, err)

	// The only externally visible resolution failure type.
	var unresolved *value.UnresolvedSubstitutionError
	assert.True(t, errors.As(err, &unresolved))
}

func TestResolve_TwoPassesAreIndependent(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newInt(1),
		"b": newReference(t, "a", false),
		"nested": newObject(map[string]value.Value{
			"c": newReference(t, "b", false),
		}),
	})

	first, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	second, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Unwrapped(), second.Unwrapped())
	assert.Equal(t, value.Unresolved, root.Status(), "the input tree is untouched")
}

func TestResolve_PassAfterFailedPass(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newReference(t, "a", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{})
	require.Error(t, err)

	// A failed pass leaves no cycle markers behind for the next one; the
	// second pass fails for the same reason, not a leaked marker.
	_, err = value.ResolveObject(root, value.ResolveOptions{})
	var unresolved *value.UnresolvedSubstitutionError
	require.ErrorAs(t, err, &unresolved)
	assert.NotEmpty(t, unresolved.CycleTrace)
}

func TestResolve_ListElements(t *testing.T) {
	t.Parallel()

	origin := value.NewOrigin("test")
	root := newObject(map[string]value.Value{
		"a": newInt(1),
		"l": value.NewList(origin, []value.Value{
			newReference(t, "a", false),
			newInt(2),
			newReference(t, "missing", true),
		}),
	})

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": int64(1),
		"l": []any{int64(1), int64(2)},
	}, resolved.Unwrapped())
}

func TestResolve_RelativizedLookupOrder(t *testing.T) {
	t.Parallel()

	graft := func(extra map[string]value.Value) *value.Object {
		inner := newObject(map[string]value.Value{
			"x": newReference(t, "y", false),
		})

		entries := map[string]value.Value{
			"sub": inner.Relativized(path.New("sub")),
		}
		for key, v := range extra {
			entries[key] = v
		}

		return newObject(entries)
	}

	t.Run("relativized path found in tree", func(t *testing.T) {
		t.Parallel()

		// sub.y exists, so the grafted reference resolves inside sub.
		inner := newObject(map[string]value.Value{
			"x": newReference(t, "y", false),
			"y": newInt(7),
		})
		root := newObject(map[string]value.Value{
			"sub": inner.Relativized(path.New("sub")),
		})

		resolved, err := value.ResolveObject(root, value.ResolveOptions{})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"sub": map[string]any{"x": int64(7), "y": int64(7)},
		}, resolved.Unwrapped())
	})

	t.Run("miss under graft falls back to the unprefixed path in the tree", func(t *testing.T) {
		t.Parallel()

		root := graft(map[string]value.Value{"y": newInt(10)})

		resolved, err := value.ResolveObject(root, value.ResolveOptions{})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"sub": map[string]any{"x": int64(10)},
			"y":   int64(10),
		}, resolved.Unwrapped())
	})

	t.Run("external fallback receives the original unprefixed path", func(t *testing.T) {
		t.Parallel()

		var lookedUp []string

		fallback := value.ResolverFunc(func(renderedPath string) value.Value {
			lookedUp = append(lookedUp, renderedPath)

			return value.NewInt(value.NewOrigin("fallback"), 99)
		})

		root := graft(nil)

		resolved, err := value.ResolveObject(root, value.ResolveOptions{Fallback: fallback})
		require.NoError(t, err)

		assert.Equal(t, []string{"y"}, lookedUp,
			"the grafted prefix is stripped for the external lookup")
		assert.Equal(t, map[string]any{
			"sub": map[string]any{"x": int64(99)},
		}, resolved.Unwrapped())
	})
}

func TestResolve_Tracer(t *testing.T) {
	t.Parallel()

	type traceLine struct {
		depth   int
		message string
	}

	var lines []traceLine

	tracer := func(depth int, message string) {
		lines = append(lines, traceLine{depth: depth, message: message})
	}

	root := newObject(map[string]value.Value{
		"a": newInt(1),
		"b": newReference(t, "a", false),
	})

	_, err := value.ResolveObject(root, value.ResolveOptions{Tracer: tracer})
	require.NoError(t, err)

	require.NotEmpty(t, lines)

	for _, line := range lines {
		assert.GreaterOrEqual(t, line.depth, 0)
		assert.NotEmpty(t, line.message)
	}
}

func TestResolve_AlreadyResolvedTreeIsReturnedAsIs(t *testing.T) {
	t.Parallel()

	root := newObject(map[string]value.Value{
		"a": newInt(1),
	})
	require.Equal(t, value.Resolved, root.Status())

	resolved, err := value.ResolveObject(root, value.ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, root, resolved)
}
