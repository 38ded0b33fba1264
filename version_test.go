package ersatta_test

import (
	"testing"

	ersatta "github.com/0xalexb/ersatta"

	"github.com/stretchr/testify/require"
)

func TestVersionDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", ersatta.Version)
	require.Equal(t, "unknown", ersatta.CompiledAt)
}
