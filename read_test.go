package assertly

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
	}
	return dir
}

func TestFsReadToString(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"alfa.txt":  "alfa\n",
		"alfa2.txt": "alfa\n",
		"bravo.txt": "bravo\n",
	})
	alfa := filepath.Join(dir, "alfa.txt")
	alfa2 := filepath.Join(dir, "alfa2.txt")
	bravo := filepath.Join(dir, "bravo.txt")

	require.NoError(t, AssertFsReadToStringEqAsResult(alfa, alfa2))
	require.Error(t, AssertFsReadToStringEqAsResult(alfa, bravo))
	require.NoError(t, AssertFsReadToStringNeAsResult(alfa, bravo))
	require.NoError(t, AssertFsReadToStringLtAsResult(alfa, bravo))
	require.NoError(t, AssertFsReadToStringLeAsResult(alfa, alfa2))
	require.NoError(t, AssertFsReadToStringGtAsResult(bravo, alfa))
	require.NoError(t, AssertFsReadToStringGeAsResult(bravo, alfa))
	require.Error(t, AssertFsReadToStringGeAsResult(alfa, bravo))

	require.NoError(t, AssertFsReadToStringEqExprAsResult(alfa, "alfa\n"))
	require.Error(t, AssertFsReadToStringEqExprAsResult(alfa, "alfa"))
	require.NoError(t, AssertFsReadToStringNeExprAsResult(alfa, "alfa"))
	require.NoError(t, AssertFsReadToStringContainsAsResult(alfa, "lf"))
	require.Error(t, AssertFsReadToStringContainsAsResult(alfa, "zz"))
	require.NoError(t, AssertFsReadToStringIsMatchAsResult(bravo, regexp.MustCompile(`^b\w+\n$`)))
	require.Error(t, AssertFsReadToStringIsMatchAsResult(alfa, regexp.MustCompile(`^b`)))

	err := AssertFsReadToStringEqAsResult(alfa, bravo)
	require.Contains(t, err.Error(), "\n      left path: `\""+alfa+"\"`,\n")
	require.Contains(t, err.Error(), "\n  left contents: `\"alfa\\n\"`,\n")
	require.Contains(t, err.Error(), "\n           diff:\n    --- left\n    +++ right\n")
	require.Contains(t, err.Error(), "\n    -alfa\n    +bravo")
}

func TestFsReadToStringMissingFile(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"alfa.txt": "alfa"})
	alfa := filepath.Join(dir, "alfa.txt")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name  string
		err   error
		label string
	}{
		{"left", AssertFsReadToStringEqAsResult(missing, alfa), "left read error"},
		{"right", AssertFsReadToStringEqAsResult(alfa, missing), "right read error"},
		{"expr", AssertFsReadToStringEqExprAsResult(missing, ""), "read error"},
		{"contains", AssertFsReadToStringContainsAsResult(missing, ""), "read error"},
		{"match", AssertFsReadToStringIsMatchAsResult(missing, regexp.MustCompile(`.`)), "read error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *Failure
			require.True(t, errors.As(tt.err, &f))
			require.ErrorIs(t, f.Err, fs.ErrNotExist)
			require.Equal(t, tt.label, f.Fields[len(f.Fields)-1].Label)
			require.Contains(t, f.Err.Error(), "read "+missing)
		})
	}

	ok, err := AssureFsReadToStringEqExpr(missing, "")
	require.False(t, ok)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIoReadToString(t *testing.T) {
	t.Parallel()

	r := strings.NewReader

	require.NoError(t, AssertIoReadToStringEqAsResult(r("alfa"), r("alfa")))
	require.Error(t, AssertIoReadToStringEqAsResult(r("alfa"), r("bravo")))
	require.NoError(t, AssertIoReadToStringNeAsResult(r("alfa"), r("bravo")))
	require.NoError(t, AssertIoReadToStringLtAsResult(r("alfa"), r("bravo")))
	require.NoError(t, AssertIoReadToStringLeAsResult(r("alfa"), r("alfa")))
	require.NoError(t, AssertIoReadToStringGtAsResult(r("bravo"), r("alfa")))
	require.NoError(t, AssertIoReadToStringGeAsResult(r("bravo"), r("bravo")))
	require.Error(t, AssertIoReadToStringGtAsResult(r("alfa"), r("alfa")))

	require.NoError(t, AssertIoReadToStringEqExprAsResult(r("alfa"), "alfa"))
	require.NoError(t, AssertIoReadToStringNeExprAsResult(r("alfa"), "bravo"))
	require.NoError(t, AssertIoReadToStringContainsAsResult(r("alfa"), "lf"))
	require.NoError(t, AssertIoReadToStringIsMatchAsResult(r("alfa"), regexp.MustCompile(`^a`)))
	require.Error(t, AssertIoReadToStringIsMatchAsResult(r("alfa"), regexp.MustCompile(`^b`)))

	require.EqualError(t, AssertIoReadToStringEqExprAsResult(r("alfa"), "bravo"),
		"assertion failed: `AssertIoReadToStringEqExpr(r, x)`\n"+
			" contents: `\"alfa\"`,\n"+
			"        x: `\"bravo\"`")
	require.EqualError(t, AssertIoReadToStringContainsAsResult(r("alfa"), "zz"),
		"assertion failed: `AssertIoReadToStringContains(r, containee)`\n"+
			"  contents: `\"alfa\"`,\n"+
			" containee: `\"zz\"`")
}

func TestIoReadToStringReadError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")

	err := AssertIoReadToStringEqAsResult(strings.NewReader("alfa"), iotest.ErrReader(cause))
	var f *Failure
	require.True(t, errors.As(err, &f))
	require.ErrorIs(t, f.Err, cause)
	require.EqualError(t, err, "assertion failed: `AssertIoReadToStringEq(a, b)`\n"+
		"    left contents: `\"alfa\"`,\n"+
		" right read error: `\"read: connection reset\"`")

	ok, aerr := AssureIoReadToStringContains(iotest.ErrReader(cause), "x")
	require.False(t, ok)
	require.ErrorIs(t, aerr, cause)

	require.Panics(t, func() { AssertIoReadToStringEqExpr(iotest.ErrReader(cause), "") })
}
