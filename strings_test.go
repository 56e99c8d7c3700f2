package assertly

import (
	"regexp"
	"testing"

	"github.com/bmatcuk/doublestar"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertContainsAsResult("alfa", "lf"))
	require.NoError(t, AssertContainsAsResult("alfa", ""))
	require.Error(t, AssertContainsAsResult("alfa", "zz"))
	require.NoError(t, AssertNotContainsAsResult("alfa", "zz"))
	require.Error(t, AssertNotContainsAsResult("alfa", "al"))

	require.EqualError(t, AssertContainsAsResult("alfa", "zz"),
		"assertion failed: `AssertContains(container, containee)`\n"+
			" container: `\"alfa\"`,\n"+
			" containee: `\"zz\"`")
}

func TestContainsElemAndKey(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertContainsElemAsResult([]int{1, 2, 3}, 2))
	require.Error(t, AssertContainsElemAsResult([]int{1, 2, 3}, 4))
	require.Error(t, AssertContainsElemAsResult(nil, 4))
	require.NoError(t, AssertNotContainsElemAsResult([]string{"a"}, "b"))
	require.Error(t, AssertNotContainsElemAsResult([]string{"a"}, "a"))

	m := map[string]int{"a": 0}
	require.NoError(t, AssertContainsKeyAsResult(m, "a"))
	require.Error(t, AssertContainsKeyAsResult(m, "b"))
	require.NoError(t, AssertNotContainsKeyAsResult(m, "b"))
	require.Error(t, AssertNotContainsKeyAsResult(m, "a"))

	require.EqualError(t, AssertContainsKeyAsResult(m, "b"),
		"assertion failed: `AssertContainsKey(container, key)`\n"+
			" container: `map[a:0]`,\n"+
			"       key: `\"b\"`")
}

func TestStartsEnds(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertStartsWithAsResult("alfa", "al"))
	require.Error(t, AssertStartsWithAsResult("alfa", "fa"))
	require.NoError(t, AssertNotStartsWithAsResult("alfa", "fa"))
	require.Error(t, AssertNotStartsWithAsResult("alfa", ""))
	require.NoError(t, AssertEndsWithAsResult("alfa", "fa"))
	require.Error(t, AssertEndsWithAsResult("alfa", "al"))
	require.NoError(t, AssertNotEndsWithAsResult("alfa", "al"))
	require.Error(t, AssertNotEndsWithAsResult("alfa", "a"))

	require.EqualError(t, AssertEndsWithAsResult("alfa", "al"),
		"assertion failed: `AssertEndsWith(whole, part)`\n"+
			" whole: `\"alfa\"`,\n"+
			"  part: `\"al\"`")
}

func TestIsMatch(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`^\d+$`)
	require.NoError(t, AssertIsMatchAsResult(digits, "123"))
	require.Error(t, AssertIsMatchAsResult(digits, "12a"))
	require.NoError(t, AssertNotMatchAsResult(digits, "12a"))
	require.Error(t, AssertNotMatchAsResult(digits, "9"))

	require.EqualError(t, AssertIsMatchAsResult(digits, "12a"),
		"assertion failed: `AssertIsMatch(matcher, matchee)`\n"+
			" matcher: `\"^\\\\d+$\"`,\n"+
			" matchee: `\"12a\"`")
}

func TestGlobMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern, name string
		match         bool
	}{
		{"*.go", "main.go", true},
		{"*.go", "cmd/main.go", false},
		{"**/*.go", "cmd/proofread/main.go", true},
		{"src/**/*.go", "src/main.go", true},
		{"{cmd,internal}/*", "internal/x", true},
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.name, func(t *testing.T) {
			if tt.match {
				require.NoError(t, AssertGlobMatchAsResult(tt.pattern, tt.name))
				require.Error(t, AssertNotGlobMatchAsResult(tt.pattern, tt.name))
			} else {
				require.Error(t, AssertGlobMatchAsResult(tt.pattern, tt.name))
				require.NoError(t, AssertNotGlobMatchAsResult(tt.pattern, tt.name))
			}
		})
	}
}

func TestGlobMatch_BadPattern(t *testing.T) {
	t.Parallel()

	err := AssertGlobMatchAsResult("[", "x")
	var f *Failure
	require.True(t, errors.As(err, &f))
	require.ErrorIs(t, f.Err, doublestar.ErrBadPattern)
	require.Contains(t, err.Error(), "   error: `\"glob \\\"[\\\": syntax error in pattern\"`")

	ok, aerr := AssureNotGlobMatch("[", "x")
	require.False(t, ok)
	require.ErrorIs(t, aerr, doublestar.ErrBadPattern)
}

func TestNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var e error

	require.NoError(t, AssertNilAsResult(nil))
	require.NoError(t, AssertNilAsResult(p))
	require.NoError(t, AssertNilAsResult(m))
	require.NoError(t, AssertNilAsResult(e))
	require.Error(t, AssertNilAsResult(0))
	require.Error(t, AssertNilAsResult(""))
	require.NoError(t, AssertNotNilAsResult(new(int)))
	require.Error(t, AssertNotNilAsResult(p))

	require.EqualError(t, AssertNilAsResult(3),
		"assertion failed: `AssertNil(value)`\n value: `3`")
}

var errNotFound = errors.New("not found")

func TestResult(t *testing.T) {
	t.Parallel()

	wrapped := errors.Wrap(errNotFound, "load order 7")

	require.NoError(t, AssertOkAsResult(nil))
	require.Error(t, AssertOkAsResult(errNotFound))
	require.NoError(t, AssertErrAsResult(errNotFound))
	require.Error(t, AssertErrAsResult(nil))

	require.NoError(t, AssertErrIsAsResult(wrapped, errNotFound))
	require.Error(t, AssertErrIsAsResult(errors.New("other"), errNotFound))
	require.Error(t, AssertErrIsAsResult(nil, errNotFound))

	require.NoError(t, AssertErrContainsAsResult(wrapped, "order 7"))
	require.Error(t, AssertErrContainsAsResult(wrapped, "order 8"))
	require.Error(t, AssertErrContainsAsResult(nil, ""))

	require.EqualError(t, AssertOkAsResult(wrapped),
		"assertion failed: `AssertOk(err)`\n err: `\"load order 7: not found\"`")
	require.EqualError(t, AssertErrAsResult(nil),
		"assertion failed: `AssertErr(err)`\n err: `nil`")

	// A failed comparison keeps Failure.Err nil even when the compared value
	// is itself an error.
	ok, err := AssureOk(errNotFound)
	require.False(t, ok)
	require.NoError(t, err)
}
