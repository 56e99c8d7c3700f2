package assertly

import "cmp"

// fnOkAsResult fails when either call returns an error, listing both errors
// after the usual function fields.
func fnOkAsResult[I, O any](call string, fn func(I) (O, error), left, right I, holds func(a, b O) bool) error {
	lo, lerr := fn(left)
	ro, rerr := fn(right)
	p := FuncPair{
		Func:        funcName(fn),
		LeftInput:   left,
		RightInput:  right,
		LeftOutput:  lo,
		RightOutput: ro,
	}
	if lerr != nil || rerr != nil {
		fields := append(p.Fields(),
			Field{Label: "left error", Value: lerr},
			Field{Label: "right error", Value: rerr},
		)
		return failure(call, fields...)
	}
	if holds(lo, ro) {
		return nil
	}
	return failure(call, p.Fields()...)
}

// AssertFnOkEqAsResult returns nil when fn(left) and fn(right) both succeed and
// their values are equal. An error from either call is a failure.
func AssertFnOkEqAsResult[I any, O comparable](fn func(I) (O, error), left, right I) error {
	return fnOkAsResult("AssertFnOkEq(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareEqual(opEq, a, b)
	})
}

// AssertFnOkEq panics with a *Failure unless fn succeeds on both inputs and
// fn(left) == fn(right).
func AssertFnOkEq[I any, O comparable](fn func(I) (O, error), left, right I) {
	must(AssertFnOkEqAsResult(fn, left, right))
}

// DebugAssertFnOkEq is AssertFnOkEq unless built with the assertly_nodebug tag.
func DebugAssertFnOkEq[I any, O comparable](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnOkEq(fn, left, right)
	}
}

// AssureFnOkEq reports whether fn succeeds on both inputs and fn(left) ==
// fn(right).
func AssureFnOkEq[I any, O comparable](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnOkEqAsResult(fn, left, right))
}

// AssertFnOkNeAsResult returns nil when fn succeeds on both inputs and fn(left)
// != fn(right), and a *Failure otherwise.
func AssertFnOkNeAsResult[I any, O comparable](fn func(I) (O, error), left, right I) error {
	return fnOkAsResult("AssertFnOkNe(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareEqual(opNe, a, b)
	})
}

// AssertFnOkNe panics with a *Failure unless fn succeeds on both inputs and
// fn(left) != fn(right).
func AssertFnOkNe[I any, O comparable](fn func(I) (O, error), left, right I) {
	must(AssertFnOkNeAsResult(fn, left, right))
}

// DebugAssertFnOkNe is AssertFnOkNe unless built with the assertly_nodebug tag.
func DebugAssertFnOkNe[I any, O comparable](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnOkNe(fn, left, right)
	}
}

// AssureFnOkNe reports whether fn succeeds on both inputs and fn(left) !=
// fn(right).
func AssureFnOkNe[I any, O comparable](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnOkNeAsResult(fn, left, right))
}

// AssertFnOkLtAsResult returns nil when fn succeeds on both inputs and fn(left)
// < fn(right), and a *Failure otherwise.
func AssertFnOkLtAsResult[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) error {
	return fnOkAsResult("AssertFnOkLt(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opLt, a, b)
	})
}

// AssertFnOkLt panics with a *Failure unless fn succeeds on both inputs and
// fn(left) < fn(right).
func AssertFnOkLt[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	must(AssertFnOkLtAsResult(fn, left, right))
}

// DebugAssertFnOkLt is AssertFnOkLt unless built with the assertly_nodebug tag.
func DebugAssertFnOkLt[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnOkLt(fn, left, right)
	}
}

// AssureFnOkLt reports whether fn succeeds on both inputs and fn(left) <
// fn(right).
func AssureFnOkLt[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnOkLtAsResult(fn, left, right))
}

// AssertFnOkLeAsResult returns nil when fn succeeds on both inputs and fn(left)
// <= fn(right), and a *Failure otherwise.
func AssertFnOkLeAsResult[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) error {
	return fnOkAsResult("AssertFnOkLe(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opLe, a, b)
	})
}

// AssertFnOkLe panics with a *Failure unless fn succeeds on both inputs and
// fn(left) <= fn(right).
func AssertFnOkLe[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	must(AssertFnOkLeAsResult(fn, left, right))
}

// DebugAssertFnOkLe is AssertFnOkLe unless built with the assertly_nodebug tag.
func DebugAssertFnOkLe[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnOkLe(fn, left, right)
	}
}

// AssureFnOkLe reports whether fn succeeds on both inputs and fn(left) <=
// fn(right).
func AssureFnOkLe[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnOkLeAsResult(fn, left, right))
}

// AssertFnOkGtAsResult returns nil when fn succeeds on both inputs and fn(left)
// > fn(right), and a *Failure otherwise.
func AssertFnOkGtAsResult[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) error {
	return fnOkAsResult("AssertFnOkGt(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opGt, a, b)
	})
}

// AssertFnOkGt panics with a *Failure unless fn succeeds on both inputs and
// fn(left) > fn(right).
func AssertFnOkGt[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	must(AssertFnOkGtAsResult(fn, left, right))
}

// DebugAssertFnOkGt is AssertFnOkGt unless built with the assertly_nodebug tag.
func DebugAssertFnOkGt[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnOkGt(fn, left, right)
	}
}

// AssureFnOkGt reports whether fn succeeds on both inputs and fn(left) >
// fn(right).
func AssureFnOkGt[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnOkGtAsResult(fn, left, right))
}

// AssertFnOkGeAsResult returns nil when fn succeeds on both inputs and fn(left)
// >= fn(right), and a *Failure otherwise.
func AssertFnOkGeAsResult[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) error {
	return fnOkAsResult("AssertFnOkGe(fn, left, right)", fn, left, right, func(a, b O) bool {
		return compareOrdered(opGe, a, b)
	})
}

// AssertFnOkGe panics with a *Failure unless fn succeeds on both inputs and
// fn(left) >= fn(right).
func AssertFnOkGe[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	must(AssertFnOkGeAsResult(fn, left, right))
}

// DebugAssertFnOkGe is AssertFnOkGe unless built with the assertly_nodebug tag.
func DebugAssertFnOkGe[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnOkGe(fn, left, right)
	}
}

// AssureFnOkGe reports whether fn succeeds on both inputs and fn(left) >=
// fn(right).
func AssureFnOkGe[I any, O cmp.Ordered](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnOkGeAsResult(fn, left, right))
}
