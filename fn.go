package assertly

import "cmp"

func fnAsResult[I, O any](call string, fn func(I) O, left, right I, holds func(a, b O) bool) error {
	lo, ro := fn(left), fn(right)
	if holds(lo, ro) {
		return nil
	}
	return failure(call, FuncPair{
		Func:        funcName(fn),
		LeftInput:   left,
		RightInput:  right,
		LeftOutput:  lo,
		RightOutput: ro,
	}.Fields()...)
}

// AssertFnEqAsResult returns nil when fn(left) == fn(right), and a *Failure
// naming fn, both inputs and both outputs otherwise.
//
//	assertly.AssertFnEqAsResult(strings.ToLower, "A", "a") // nil
func AssertFnEqAsResult[I any, O comparable](fn func(I) O, left, right I) error {
	return fnAsResult("AssertFnEq(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareEqual(opEq, a, b)
	})
}

// AssertFnEq panics with a *Failure unless fn(left) == fn(right).
func AssertFnEq[I any, O comparable](fn func(I) O, left, right I) {
	must(AssertFnEqAsResult(fn, left, right))
}

// DebugAssertFnEq is AssertFnEq unless built with the assertly_nodebug tag.
func DebugAssertFnEq[I any, O comparable](fn func(I) O, left, right I) {
	if debugAssertions {
		AssertFnEq(fn, left, right)
	}
}

// AssureFnEq reports whether fn(left) == fn(right).
func AssureFnEq[I any, O comparable](fn func(I) O, left, right I) (bool, error) {
	return assure(AssertFnEqAsResult(fn, left, right))
}

// AssertFnNeAsResult returns nil when fn(left) != fn(right), and a *Failure
// otherwise.
func AssertFnNeAsResult[I any, O comparable](fn func(I) O, left, right I) error {
	return fnAsResult("AssertFnNe(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareEqual(opNe, a, b)
	})
}

// AssertFnNe panics with a *Failure unless fn(left) != fn(right).
func AssertFnNe[I any, O comparable](fn func(I) O, left, right I) {
	must(AssertFnNeAsResult(fn, left, right))
}

// DebugAssertFnNe is AssertFnNe unless built with the assertly_nodebug tag.
func DebugAssertFnNe[I any, O comparable](fn func(I) O, left, right I) {
	if debugAssertions {
		AssertFnNe(fn, left, right)
	}
}

// AssureFnNe reports whether fn(left) != fn(right).
func AssureFnNe[I any, O comparable](fn func(I) O, left, right I) (bool, error) {
	return assure(AssertFnNeAsResult(fn, left, right))
}

// AssertFnLtAsResult returns nil when fn(left) < fn(right), and a *Failure
// otherwise.
func AssertFnLtAsResult[I any, O cmp.Ordered](fn func(I) O, left, right I) error {
	return fnAsResult("AssertFnLt(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opLt, a, b)
	})
}

// AssertFnLt panics with a *Failure unless fn(left) < fn(right).
func AssertFnLt[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	must(AssertFnLtAsResult(fn, left, right))
}

// DebugAssertFnLt is AssertFnLt unless built with the assertly_nodebug tag.
func DebugAssertFnLt[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	if debugAssertions {
		AssertFnLt(fn, left, right)
	}
}

// AssureFnLt reports whether fn(left) < fn(right).
func AssureFnLt[I any, O cmp.Ordered](fn func(I) O, left, right I) (bool, error) {
	return assure(AssertFnLtAsResult(fn, left, right))
}

// AssertFnLeAsResult returns nil when fn(left) <= fn(right), and a *Failure
// otherwise.
func AssertFnLeAsResult[I any, O cmp.Ordered](fn func(I) O, left, right I) error {
	return fnAsResult("AssertFnLe(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opLe, a, b)
	})
}

// AssertFnLe panics with a *Failure unless fn(left) <= fn(right).
func AssertFnLe[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	must(AssertFnLeAsResult(fn, left, right))
}

// DebugAssertFnLe is AssertFnLe unless built with the assertly_nodebug tag.
func DebugAssertFnLe[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	if debugAssertions {
		AssertFnLe(fn, left, right)
	}
}

// AssureFnLe reports whether fn(left) <= fn(right).
func AssureFnLe[I any, O cmp.Ordered](fn func(I) O, left, right I) (bool, error) {
	return assure(AssertFnLeAsResult(fn, left, right))
}

// AssertFnGtAsResult returns nil when fn(left) > fn(right), and a *Failure
// otherwise.
func AssertFnGtAsResult[I any, O cmp.Ordered](fn func(I) O, left, right I) error {
	return fnAsResult("AssertFnGt(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opGt, a, b)
	})
}

// AssertFnGt panics with a *Failure unless fn(left) > fn(right).
func AssertFnGt[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	must(AssertFnGtAsResult(fn, left, right))
}

// DebugAssertFnGt is AssertFnGt unless built with the assertly_nodebug tag.
func DebugAssertFnGt[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	if debugAssertions {
		AssertFnGt(fn, left, right)
	}
}

// AssureFnGt reports whether fn(left) > fn(right).
func AssureFnGt[I any, O cmp.Ordered](fn func(I) O, left, right I) (bool, error) {
	return assure(AssertFnGtAsResult(fn, left, right))
}

// AssertFnGeAsResult returns nil when fn(left) >= fn(right), and a *Failure
// otherwise.
func AssertFnGeAsResult[I any, O cmp.Ordered](fn func(I) O, left, right I) error {
	return fnAsResult("AssertFnGe(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opGe, a, b)
	})
}

// AssertFnGe panics with a *Failure unless fn(left) >= fn(right).
func AssertFnGe[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	must(AssertFnGeAsResult(fn, left, right))
}

// DebugAssertFnGe is AssertFnGe unless built with the assertly_nodebug tag.
func DebugAssertFnGe[I any, O cmp.Ordered](fn func(I) O, left, right I) {
	if debugAssertions {
		AssertFnGe(fn, left, right)
	}
}

// AssureFnGe reports whether fn(left) >= fn(right).
func AssureFnGe[I any, O cmp.Ordered](fn func(I) O, left, right I) (bool, error) {
	return assure(AssertFnGeAsResult(fn, left, right))
}
