package assertly

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFn(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertFnEqAsResult(strings.ToLower, "A", "a"))
	require.Error(t, AssertFnEqAsResult(strings.ToLower, "A", "B"))
	require.NoError(t, AssertFnNeAsResult(strings.ToLower, "A", "B"))
	require.Error(t, AssertFnNeAsResult(strings.ToLower, "A", "a"))

	length := func(s string) int { return len(s) }
	require.NoError(t, AssertFnLtAsResult(length, "a", "bb"))
	require.Error(t, AssertFnLtAsResult(length, "aa", "bb"))
	require.NoError(t, AssertFnLeAsResult(length, "aa", "bb"))
	require.NoError(t, AssertFnGtAsResult(length, "ccc", "bb"))
	require.Error(t, AssertFnGtAsResult(length, "c", "bb"))
	require.NoError(t, AssertFnGeAsResult(length, "cc", "bb"))

	require.Panics(t, func() { AssertFnEq(strings.TrimSpace, " a", "b") })
	ok, err := AssureFnGe(length, "", "x")
	require.False(t, ok)
	require.NoError(t, err)
}

func TestFnOk(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertFnOkEqAsResult(strconv.Atoi, "1", "01"))
	require.Error(t, AssertFnOkEqAsResult(strconv.Atoi, "1", "2"))
	require.NoError(t, AssertFnOkNeAsResult(strconv.Atoi, "1", "2"))
	require.NoError(t, AssertFnOkLtAsResult(strconv.Atoi, "1", "2"))
	require.NoError(t, AssertFnOkLeAsResult(strconv.Atoi, "2", "2"))
	require.NoError(t, AssertFnOkGtAsResult(strconv.Atoi, "3", "2"))
	require.Error(t, AssertFnOkGeAsResult(strconv.Atoi, "1", "2"))

	require.EqualError(t, AssertFnOkEqAsResult(strconv.Atoi, "1", "x"),
		"assertion failed: `AssertFnOkEq(fn, left, right)`\n"+
			"     function: `strconv.Atoi`,\n"+
			"   left input: `\"1\"`,\n"+
			"  right input: `\"x\"`,\n"+
			"  left output: `1`,\n"+
			" right output: `0`,\n"+
			"   left error: `nil`,\n"+
			"  right error: `\"strconv.Atoi: parsing \\\"x\\\": invalid syntax\"`")

	// An error returned by fn is part of the comparison, not a failure to
	// compare.
	ok, err := AssureFnOkEq(strconv.Atoi, "x", "x")
	require.False(t, ok)
	require.NoError(t, err)
}

func TestFnErr(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertFnErrEqAsResult(strconv.Atoi, "x", "x"))
	require.Error(t, AssertFnErrEqAsResult(strconv.Atoi, "x", "y"))
	require.NoError(t, AssertFnErrNeAsResult(strconv.Atoi, "x", "y"))
	require.NoError(t, AssertFnErrLtAsResult(strconv.Atoi, "x", "y"))
	require.NoError(t, AssertFnErrLeAsResult(strconv.Atoi, "x", "x"))
	require.NoError(t, AssertFnErrGtAsResult(strconv.Atoi, "y", "x"))
	require.NoError(t, AssertFnErrGeAsResult(strconv.Atoi, "y", "x"))
	require.Error(t, AssertFnErrGeAsResult(strconv.Atoi, "x", "y"))

	// A call that succeeds fails every FnErr comparison.
	require.Error(t, AssertFnErrNeAsResult(strconv.Atoi, "1", "x"))

	err := AssertFnErrEqAsResult(strconv.Atoi, "1", "x")
	require.Contains(t, err.Error(), "\n  left output: `nil`,\n")
}

func TestFuncName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "strings.ToLower", funcName(strings.ToLower))
	require.Equal(t, "assertly.isEven", funcName(isEven))
	require.Equal(t, "nil", funcName(nil))
	require.Equal(t, "nil", funcName((func())(nil)))
	require.Equal(t, "nil", funcName(42))
}
