package assertly

import (
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAssure(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		ok, err := assure(nil)
		require.True(t, ok)
		require.NoError(t, err)
	})

	t.Run("failure", func(t *testing.T) {
		ok, err := assure(failure("AssertEq(left, right)"))
		require.False(t, ok)
		require.NoError(t, err)
	})

	t.Run("broken", func(t *testing.T) {
		cause := errors.New("permission denied")
		ok, err := assure(broken("AssertOk(err)", cause, "error"))
		require.False(t, ok)
		require.Error(t, err)
		require.ErrorIs(t, err, cause)
	})

	t.Run("foreign error", func(t *testing.T) {
		ok, err := assure(fs.ErrNotExist)
		require.False(t, ok)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestMust(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { must(nil) })

	err := failure("AssertEq(left, right)")
	require.PanicsWithError(t, err.Error(), func() { must(err) })
}

func TestFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := broken("AssertFsReadToStringEqExpr(path, x)", cause, "read error",
		Field{Label: "path", Value: "missing.txt"})

	var f *Failure
	require.True(t, errors.As(err, &f))
	require.Equal(t, "AssertFsReadToStringEqExpr(path, x)", f.Call)
	require.Len(t, f.Fields, 2)
	require.Equal(t, "read error", f.Fields[1].Label)
	require.Same(t, cause, f.Unwrap())
	require.Equal(t, "assertion failed: `AssertFsReadToStringEqExpr(path, x)`\n"+
		"       path: `\"missing.txt\"`,\n"+
		" read error: `\"no such file\"`", err.Error())
}

func TestFailureRender(t *testing.T) {
	t.Parallel()

	err := AssertEqAsResult("a\nb\n", "a\nc\n")
	var f *Failure
	require.True(t, errors.As(err, &f))

	plain := f.Render(RenderOptions{})
	require.Equal(t, err.Error(), plain)
	require.Contains(t, plain, "\n  diff:\n    --- left\n    +++ right\n")
	require.Contains(t, plain, "\n    -b\n    +c")

	colored := f.Render(RenderOptions{Colorize: true})
	require.NotEqual(t, plain, colored)
	require.Contains(t, colored, "\x1b[")
	require.Contains(t, colored, "`AssertEq(left, right)`")
}

func TestOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   op
		text string
		a, b int
		want bool
	}{
		{opEq, "==", 1, 1, true},
		{opNe, "!=", 1, 1, false},
		{opLt, "<", 1, 2, true},
		{opLe, "<=", 2, 2, true},
		{opGt, ">", 1, 2, false},
		{opGe, ">=", 3, 2, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.text, tt.op.String())
		require.Equal(t, tt.want, compareOrdered(tt.op, tt.a, tt.b), tt.text)
	}

	require.Equal(t, "?", op(99).String())
	require.True(t, compareEqual(opEq, "a", "a"))
	require.True(t, compareEqual(opNe, "a", "b"))
	require.Panics(t, func() { compareEqual(opLt, "a", "b") })
}
