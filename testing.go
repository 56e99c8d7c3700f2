package assertly

// TestingT is the subset of testing.TB used by Check and Require.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Check reports err on t and returns whether it was nil. It pairs with the
// AsResult variants, which keeps the failure message intact in the test log
// instead of a panic trace:
//
//	func TestItems(t *testing.T) {
//	    items := load()
//	    assertly.Check(t, assertly.AssertLenEqExprAsResult(items, 3))
//	    assertly.Check(t, assertly.AssertContainsElemAsResult(items, "apple"))
//	}
func Check(t TestingT, err error) bool {
	if err == nil {
		return true
	}
	t.Helper()
	t.Errorf("%v", err)
	return false
}

// Require is Check followed by t.FailNow when err is not nil.
func Require(t TestingT, err error) {
	if err == nil {
		return
	}
	t.Helper()
	t.Errorf("%v", err)
	t.FailNow()
}

// CheckAll runs Check on every err and returns whether all of them were nil.
// Every failure is reported, not only the first.
func CheckAll(t TestingT, errs ...error) bool {
	t.Helper()
	ok := true
	for _, err := range errs {
		if !Check(t, err) {
			ok = false
		}
	}
	return ok
}
