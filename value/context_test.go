package value_test

import (
	"errors"
	"testing"

	"github.com/0xalexb/ersatta/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_AddCycleMarker(t *testing.T) {
	t.Parallel()

	ctx := value.NewContext(value.ResolveOptions{})
	ref := newReference(t, "a", false)

	marked, err := ctx.AddCycleMarker(ref)
	require.NoError(t, err)
	require.NotNil(t, marked)

	_, err = marked.AddCycleMarker(ref)
	require.Error(t, err, "re-adding a marker signals a cycle")

	var unresolved *value.UnresolvedSubstitutionError
	assert.False(t, errors.As(err, &unresolved),
		"the cycle signal is internal, not the user-facing error")
}

func TestContext_IsImmutable(t *testing.T) {
	t.Parallel()

	ctx := value.NewContext(value.ResolveOptions{})
	ref := newReference(t, "a", false)

	marked, err := ctx.AddCycleMarker(ref)
	require.NoError(t, err)

	// The original context was not touched by the update.
	again, err := ctx.AddCycleMarker(ref)
	require.NoError(t, err)
	require.NotNil(t, again)

	// Removing from the marked context allows marking again.
	removed := marked.RemoveCycleMarker(ref)

	remarked, err := removed.AddCycleMarker(ref)
	require.NoError(t, err)
	require.NotNil(t, remarked)
}

func TestContext_MarkersAreIdentityKeyed(t *testing.T) {
	t.Parallel()

	// Two distinct nodes with equal expressions are tracked independently.
	first := newReference(t, "a", false)
	second := newReference(t, "a", false)
	require.True(t, first.Equal(second))

	ctx := value.NewContext(value.ResolveOptions{})

	marked, err := ctx.AddCycleMarker(first)
	require.NoError(t, err)

	both, err := marked.AddCycleMarker(second)
	require.NoError(t, err, "an equal but distinct node is not a cycle")
	require.NotNil(t, both)

	_, err = both.AddCycleMarker(first)
	require.Error(t, err)
}

func TestContext_Depth(t *testing.T) {
	t.Parallel()

	ctx := value.NewContext(value.ResolveOptions{})
	assert.Equal(t, 0, ctx.Depth())
}
