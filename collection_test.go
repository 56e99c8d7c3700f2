package assertly

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertIsEmptyAsResult(""))
	require.NoError(t, AssertIsEmptyAsResult([]int(nil)))
	require.NoError(t, AssertIsEmptyAsResult(map[string]int{}))
	require.NoError(t, AssertIsEmptyAsResult(make(chan int)))
	require.Error(t, AssertIsEmptyAsResult("a"))
	require.NoError(t, AssertNotEmptyAsResult([1]int{}))
	require.Error(t, AssertNotEmptyAsResult([]string{}))

	require.EqualError(t, AssertIsEmptyAsResult([]int{1, 2}),
		"assertion failed: `AssertIsEmpty(value)`\n value: `[1 2]`,\n   len: `2`")
}

func TestLengthErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		label string
		msg   string
	}{
		{"empty nil", AssertIsEmptyAsResult(nil), "error", "nil has no length"},
		{"empty int", AssertNotEmptyAsResult(42), "error", "int has no length"},
		{"len a", AssertLenEqAsResult(3.5, "abc"), "a error", "float64 has no length"},
		{"len b", AssertLenEqAsResult("abc", struct{}{}), "b error", "struct {} has no length"},
		{"len expr", AssertLenEqExprAsResult(true, 1), "a error", "bool has no length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *Failure
			require.True(t, errors.As(tt.err, &f))
			require.EqualError(t, f.Err, tt.msg)
			last := f.Fields[len(f.Fields)-1]
			require.Equal(t, tt.label, last.Label)

			ok, err := assure(tt.err)
			require.False(t, ok)
			require.Error(t, err)
		})
	}
}

func TestLen(t *testing.T) {
	t.Parallel()

	abc, xy := "abc", []int{1, 2}

	require.NoError(t, AssertLenEqAsResult(abc, []byte("xyz")))
	require.Error(t, AssertLenEqAsResult(abc, xy))
	require.NoError(t, AssertLenNeAsResult(abc, xy))
	require.NoError(t, AssertLenLtAsResult(xy, abc))
	require.Error(t, AssertLenLtAsResult(abc, xy))
	require.NoError(t, AssertLenLeAsResult(abc, abc))
	require.NoError(t, AssertLenGtAsResult(abc, xy))
	require.NoError(t, AssertLenGeAsResult(map[int]int{1: 1, 2: 2}, xy))
	require.Error(t, AssertLenGeAsResult(xy, abc))

	require.EqualError(t, AssertLenEqAsResult(abc, xy),
		"assertion failed: `AssertLenEq(a, b)`\n"+
			"     a: `\"abc\"`,\n"+
			" a len: `3`,\n"+
			"     b: `[1 2]`,\n"+
			" b len: `2`")
}

func TestLenExpr(t *testing.T) {
	t.Parallel()

	s := []string{"a", "b"}
	require.NoError(t, AssertLenEqExprAsResult(s, 2))
	require.Error(t, AssertLenEqExprAsResult(s, 3))
	require.NoError(t, AssertLenNeExprAsResult(s, 3))
	require.NoError(t, AssertLenLtExprAsResult(s, 3))
	require.NoError(t, AssertLenLeExprAsResult(s, 2))
	require.NoError(t, AssertLenGtExprAsResult(s, 1))
	require.NoError(t, AssertLenGeExprAsResult(s, 2))
	require.Error(t, AssertLenGeExprAsResult(s, 3))

	require.EqualError(t, AssertLenGtExprAsResult(s, 2),
		"assertion failed: `AssertLenGtExpr(a, x)`\n"+
			"     a: `[\"a\" \"b\"]`,\n"+
			" a len: `2`,\n"+
			"     x: `2`")
}

func TestIter(t *testing.T) {
	t.Parallel()

	seq := func(s []int) iter.Seq[int] { return slices.Values(s) }

	require.NoError(t, AssertIterEqAsResult(seq([]int{1, 2}), seq([]int{1, 2})))
	require.Error(t, AssertIterEqAsResult(seq([]int{1, 2}), seq([]int{1})))
	require.NoError(t, AssertIterNeAsResult(seq([]int{1}), seq([]int{2})))
	require.NoError(t, AssertIterLtAsResult(seq([]int{1, 2}), seq([]int{1, 3})))
	require.NoError(t, AssertIterLtAsResult(seq([]int{1}), seq([]int{1, 0})))
	require.Error(t, AssertIterLtAsResult(seq([]int{2}), seq([]int{1, 9})))
	require.NoError(t, AssertIterLeAsResult(seq([]int{}), seq([]int{})))
	require.NoError(t, AssertIterGtAsResult(seq([]int{2}), seq([]int{1, 9})))
	require.NoError(t, AssertIterGeAsResult(seq([]int{1, 2}), seq([]int{1, 2})))

	keys := slices.Sorted(maps.Keys(map[string]int{"b": 1, "a": 2}))
	require.NoError(t, AssertIterEqAsResult(slices.Values(keys), slices.Values(strings.Fields("a b"))))

	require.EqualError(t, AssertIterEqAsResult(seq([]int{1, 2}), seq([]int{1})),
		"assertion failed: `AssertIterEq(a, b)`\n a: `[1 2]`,\n b: `[1]`")
}

func isEven(n int) bool { return n%2 == 0 }

func TestAllAny(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertAllAsResult([]int{2, 4}, isEven))
	require.NoError(t, AssertAllAsResult(nil, isEven))
	require.NoError(t, AssertAnyAsResult([]int{1, 4}, isEven))
	require.Error(t, AssertAnyAsResult(nil, isEven))

	require.EqualError(t, AssertAllAsResult([]int{2, 3, 5}, isEven),
		"assertion failed: `AssertAll(items, predicate)`\n"+
			"         items: `[2 3 5]`,\n"+
			"     predicate: `assertly.isEven`,\n"+
			" failing index: `1`,\n"+
			"  failing item: `3`")
	require.EqualError(t, AssertAnyAsResult([]int{1, 3}, isEven),
		"assertion failed: `AssertAny(items, predicate)`\n"+
			"     items: `[1 3]`,\n"+
			" predicate: `assertly.isEven`")
}

func TestSet(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertSetEqAsResult([]int{1, 2, 2}, []int{2, 1}))
	require.Error(t, AssertSetEqAsResult([]int{1, 2}, []int{1, 3}))
	require.Error(t, AssertSetEqAsResult([]int{1}, []int{1, 2}))
	require.NoError(t, AssertSetNeAsResult([]int{1}, []int{1, 2}))
	require.Error(t, AssertSetNeAsResult([]int{1, 1}, []int{1}))

	require.NoError(t, AssertSetSubsetAsResult([]string{"a"}, []string{"a", "b"}))
	require.NoError(t, AssertSetSubsetAsResult(nil, []string{"a"}))
	require.Error(t, AssertSetSubsetAsResult([]string{"c"}, []string{"a", "b"}))
	require.NoError(t, AssertSetSupersetAsResult([]string{"a", "b"}, []string{"b"}))
	require.Error(t, AssertSetSupersetAsResult([]string{"a"}, []string{"b"}))

	require.NoError(t, AssertSetJointAsResult([]int{1, 2}, []int{2, 3}))
	require.Error(t, AssertSetJointAsResult([]int{1}, []int{2}))
	require.Error(t, AssertSetJointAsResult(nil, []int{2}))
	require.NoError(t, AssertSetDisjointAsResult([]int{1}, []int{2}))
	require.Error(t, AssertSetDisjointAsResult([]int{1, 2}, []int{2}))

	// Members render deduplicated in first-seen order.
	require.EqualError(t, AssertSetEqAsResult([]int{3, 1, 3}, []int{1, 2}),
		"assertion failed: `AssertSetEq(a, b)`\n a: `[3 1]`,\n b: `[1 2]`")
}

func TestBag(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertBagEqAsResult([]int{1, 2, 1}, []int{1, 1, 2}))
	require.Error(t, AssertBagEqAsResult([]int{1, 2, 1}, []int{1, 2}))
	require.NoError(t, AssertBagNeAsResult([]int{1, 2, 1}, []int{1, 2}))
	require.Error(t, AssertBagNeAsResult([]int{1}, []int{1}))

	require.NoError(t, AssertBagSubbagAsResult([]int{1, 1}, []int{1, 1, 2}))
	require.Error(t, AssertBagSubbagAsResult([]int{1, 1}, []int{1, 2}))
	require.NoError(t, AssertBagSuperbagAsResult([]int{1, 1, 2}, []int{1, 1}))
	require.Error(t, AssertBagSuperbagAsResult([]int{1}, []int{1, 1}))

	ok, err := AssureBagSubbag([]string{"x"}, nil)
	require.False(t, ok)
	require.NoError(t, err)
}
