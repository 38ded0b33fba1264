package ersatta_test

import (
	"testing"

	ersatta "github.com/0xalexb/ersatta"
	"github.com/0xalexb/ersatta/value"

	"github.com/stretchr/testify/require"
)

func TestWithFallback(t *testing.T) {
	t.Parallel()

	fallback := value.ResolverFunc(func(string) value.Value { return nil })

	var opts ersatta.Options

	ersatta.WithFallback(fallback)(&opts)

	require.NotNil(t, opts.Fallback)
}

func TestWithEnvFallback(t *testing.T) {
	t.Parallel()

	var opts ersatta.Options

	require.Nil(t, opts.Fallback)

	ersatta.WithEnvFallback()(&opts)

	require.NotNil(t, opts.Fallback)
}

func TestWithAllowUnresolved(t *testing.T) {
	t.Parallel()

	var opts ersatta.Options

	require.False(t, opts.AllowUnresolved)

	ersatta.WithAllowUnresolved()(&opts)

	require.True(t, opts.AllowUnresolved)
}

func TestWithTracer(t *testing.T) {
	t.Parallel()

	var opts ersatta.Options

	require.Nil(t, opts.Tracer)

	ersatta.WithTracer(func(int, string) {})(&opts)

	require.NotNil(t, opts.Tracer)
}
