package assertly

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is a TestingT that keeps what was reported.
type recorder struct {
	helpers int
	errors  []string
	failed  bool
}

func (r *recorder) Helper() { r.helpers++ }

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() { r.failed = true }

func TestCheck(t *testing.T) {
	t.Parallel()

	var r recorder
	require.True(t, Check(&r, AssertEqAsResult(1, 1)))
	require.Empty(t, r.errors)

	require.False(t, Check(&r, AssertEqAsResult(1, 2)))
	require.Equal(t, []string{AssertEqAsResult(1, 2).Error()}, r.errors)
	require.False(t, r.failed)
	require.Positive(t, r.helpers)
}

func TestRequire(t *testing.T) {
	t.Parallel()

	var r recorder
	Require(&r, nil)
	require.False(t, r.failed)

	Require(&r, AssertContainsAsResult("alfa", "z"))
	require.True(t, r.failed)
	require.Len(t, r.errors, 1)
	require.Contains(t, r.errors[0], "AssertContains(container, containee)")
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	var r recorder
	require.True(t, CheckAll(&r, nil, AssertLtAsResult(1, 2)))

	ok := CheckAll(&r,
		AssertLtAsResult(2, 1),
		nil,
		AssertNotEmptyAsResult(""),
	)
	require.False(t, ok)
	require.Len(t, r.errors, 2)
	require.False(t, r.failed)
}

func TestCheckWithTestingT(t *testing.T) {
	t.Parallel()

	Check(t, AssertInRangeAsResult(5, 1, 10))
	Require(t, AssertOkAsResult(nil))
}
