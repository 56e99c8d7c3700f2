//go:build assertly_nodebug

package assertly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugAssertionsDisabled(t *testing.T) {
	t.Parallel()

	require.False(t, debugAssertions)
	require.NotPanics(t, func() { DebugAssertEq(1, 2) })
	require.NotPanics(t, func() { DebugAssertContains("alfa", "z") })
	require.NotPanics(t, func() { DebugAssertLenEqExpr([]int{1}, 2) })

	// The regular variants are unaffected by the tag.
	require.Panics(t, func() { AssertEq(1, 2) })
}
