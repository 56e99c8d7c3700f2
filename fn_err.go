package assertly

// fnErrAsResult compares the messages of the errors fn returns for left and
// right. A nil error from either call is a failure.
func fnErrAsResult[I, O any](call string, o op, fn func(I) (O, error), left, right I) error {
	_, lerr := fn(left)
	_, rerr := fn(right)
	p := FuncPair{
		Func:        funcName(fn),
		LeftInput:   left,
		RightInput:  right,
		LeftOutput:  lerr,
		RightOutput: rerr,
	}
	if lerr == nil || rerr == nil {
		return failure(call, p.Fields()...)
	}
	if compareOrdered(o, lerr.Error(), rerr.Error()) {
		return nil
	}
	return failure(call, p.Fields()...)
}

// AssertFnErrEqAsResult returns nil when fn fails on both inputs and the error
// messages compare ==, and a *Failure otherwise.
func AssertFnErrEqAsResult[I, O any](fn func(I) (O, error), left, right I) error {
	return fnErrAsResult("AssertFnErrEq(fn, left, right)", opEq, fn, left, right)
}

// AssertFnErrEq panics with a *Failure unless fn fails on both inputs and the
// error messages compare ==.
func AssertFnErrEq[I, O any](fn func(I) (O, error), left, right I) {
	must(AssertFnErrEqAsResult(fn, left, right))
}

// DebugAssertFnErrEq is AssertFnErrEq unless built with the assertly_nodebug
// tag.
func DebugAssertFnErrEq[I, O any](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnErrEq(fn, left, right)
	}
}

// AssureFnErrEq reports whether fn fails on both inputs and the error messages
// compare ==.
func AssureFnErrEq[I, O any](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnErrEqAsResult(fn, left, right))
}

// AssertFnErrNeAsResult returns nil when fn fails on both inputs and the error
// messages compare !=, and a *Failure otherwise.
func AssertFnErrNeAsResult[I, O any](fn func(I) (O, error), left, right I) error {
	return fnErrAsResult("AssertFnErrNe(fn, left, right)", opNe, fn, left, right)
}

// AssertFnErrNe panics with a *Failure unless fn fails on both inputs and the
// error messages compare !=.
func AssertFnErrNe[I, O any](fn func(I) (O, error), left, right I) {
	must(AssertFnErrNeAsResult(fn, left, right))
}

// DebugAssertFnErrNe is AssertFnErrNe unless built with the assertly_nodebug
// tag.
func DebugAssertFnErrNe[I, O any](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnErrNe(fn, left, right)
	}
}

// AssureFnErrNe reports whether fn fails on both inputs and the error messages
// compare !=.
func AssureFnErrNe[I, O any](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnErrNeAsResult(fn, left, right))
}

// AssertFnErrLtAsResult returns nil when fn fails on both inputs and the error
// messages compare <, and a *Failure otherwise.
func AssertFnErrLtAsResult[I, O any](fn func(I) (O, error), left, right I) error {
	return fnErrAsResult("AssertFnErrLt(fn, left, right)", opLt, fn, left, right)
}

// AssertFnErrLt panics with a *Failure unless fn fails on both inputs and the
// error messages compare <.
func AssertFnErrLt[I, O any](fn func(I) (O, error), left, right I) {
	must(AssertFnErrLtAsResult(fn, left, right))
}

// DebugAssertFnErrLt is AssertFnErrLt unless built with the assertly_nodebug
// tag.
func DebugAssertFnErrLt[I, O any](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnErrLt(fn, left, right)
	}
}

// AssureFnErrLt reports whether fn fails on both inputs and the error messages
// compare <.
func AssureFnErrLt[I, O any](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnErrLtAsResult(fn, left, right))
}

// AssertFnErrLeAsResult returns nil when fn fails on both inputs and the error
// messages compare <=, and a *Failure otherwise.
func AssertFnErrLeAsResult[I, O any](fn func(I) (O, error), left, right I) error {
	return fnErrAsResult("AssertFnErrLe(fn, left, right)", opLe, fn, left, right)
}

// AssertFnErrLe panics with a *Failure unless fn fails on both inputs and the
// error messages compare <=.
func AssertFnErrLe[I, O any](fn func(I) (O, error), left, right I) {
	must(AssertFnErrLeAsResult(fn, left, right))
}

// DebugAssertFnErrLe is AssertFnErrLe unless built with the assertly_nodebug
// tag.
func DebugAssertFnErrLe[I, O any](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnErrLe(fn, left, right)
	}
}

// AssureFnErrLe reports whether fn fails on both inputs and the error messages
// compare <=.
func AssureFnErrLe[I, O any](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnErrLeAsResult(fn, left, right))
}

// AssertFnErrGtAsResult returns nil when fn fails on both inputs and the error
// messages compare >, and a *Failure otherwise.
func AssertFnErrGtAsResult[I, O any](fn func(I) (O, error), left, right I) error {
	return fnErrAsResult("AssertFnErrGt(fn, left, right)", opGt, fn, left, right)
}

// AssertFnErrGt panics with a *Failure unless fn fails on both inputs and the
// error messages compare >.
func AssertFnErrGt[I, O any](fn func(I) (O, error), left, right I) {
	must(AssertFnErrGtAsResult(fn, left, right))
}

// DebugAssertFnErrGt is AssertFnErrGt unless built with the assertly_nodebug
// tag.
func DebugAssertFnErrGt[I, O any](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnErrGt(fn, left, right)
	}
}

// AssureFnErrGt reports whether fn fails on both inputs and the error messages
// compare >.
func AssureFnErrGt[I, O any](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnErrGtAsResult(fn, left, right))
}

// AssertFnErrGeAsResult returns nil when fn fails on both inputs and the error
// messages compare >=, and a *Failure otherwise.
func AssertFnErrGeAsResult[I, O any](fn func(I) (O, error), left, right I) error {
	return fnErrAsResult("AssertFnErrGe(fn, left, right)", opGe, fn, left, right)
}

// AssertFnErrGe panics with a *Failure unless fn fails on both inputs and the
// error messages compare >=.
func AssertFnErrGe[I, O any](fn func(I) (O, error), left, right I) {
	must(AssertFnErrGeAsResult(fn, left, right))
}

// DebugAssertFnErrGe is AssertFnErrGe unless built with the assertly_nodebug
// tag.
func DebugAssertFnErrGe[I, O any](fn func(I) (O, error), left, right I) {
	if debugAssertions {
		AssertFnErrGe(fn, left, right)
	}
}

// AssureFnErrGe reports whether fn fails on both inputs and the error messages
// compare >=.
func AssureFnErrGe[I, O any](fn func(I) (O, error), left, right I) (bool, error) {
	return assure(AssertFnErrGeAsResult(fn, left, right))
}
