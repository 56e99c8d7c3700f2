package assertly

func emptyAsResult(call string, want bool, value any) error {
	n, err := lengthOf(value)
	if err != nil {
		return broken(call, err, "error", Field{Label: "value", Value: value})
	}
	if (n == 0) == want {
		return nil
	}
	return failure(call,
		Field{Label: "value", Value: value},
		Field{Label: "len", Value: n},
	)
}

func lenAsResult(call string, o op, a, b any) error {
	an, err := lengthOf(a)
	if err != nil {
		return broken(call, err, "a error", Field{Label: "a", Value: a})
	}
	bn, err := lengthOf(b)
	if err != nil {
		return broken(call, err, "b error", Field{Label: "b", Value: b})
	}
	if compareOrdered(o, an, bn) {
		return nil
	}
	return failure(call,
		Field{Label: "a", Value: a},
		Field{Label: "a len", Value: an},
		Field{Label: "b", Value: b},
		Field{Label: "b len", Value: bn},
	)
}

func lenExprAsResult(call string, o op, a any, x int) error {
	an, err := lengthOf(a)
	if err != nil {
		return broken(call, err, "a error", Field{Label: "a", Value: a})
	}
	if compareOrdered(o, an, x) {
		return nil
	}
	return failure(call,
		Field{Label: "a", Value: a},
		Field{Label: "a len", Value: an},
		Field{Label: "x", Value: x},
	)
}

// AssertIsEmptyAsResult returns nil when len(value) == 0.
//
// value must be a string, slice, array, map or channel; anything else yields
// a *Failure whose Err is set. The same holds for every Len family function.
func AssertIsEmptyAsResult(value any) error {
	return emptyAsResult("AssertIsEmpty(value)", true, value)
}

// AssertIsEmpty panics with a *Failure unless len(value) == 0.
func AssertIsEmpty(value any) {
	must(AssertIsEmptyAsResult(value))
}

// DebugAssertIsEmpty is AssertIsEmpty unless built with the assertly_nodebug
// tag.
func DebugAssertIsEmpty(value any) {
	if debugAssertions {
		AssertIsEmpty(value)
	}
}

// AssureIsEmpty reports whether len(value) == 0.
func AssureIsEmpty(value any) (bool, error) {
	return assure(AssertIsEmptyAsResult(value))
}

// AssertNotEmptyAsResult returns nil when len(value) > 0, and a *Failure
// otherwise.
func AssertNotEmptyAsResult(value any) error {
	return emptyAsResult("AssertNotEmpty(value)", false, value)
}

// AssertNotEmpty panics with a *Failure unless len(value) > 0.
func AssertNotEmpty(value any) {
	must(AssertNotEmptyAsResult(value))
}

// DebugAssertNotEmpty is AssertNotEmpty unless built with the assertly_nodebug
// tag.
func DebugAssertNotEmpty(value any) {
	if debugAssertions {
		AssertNotEmpty(value)
	}
}

// AssureNotEmpty reports whether len(value) > 0.
func AssureNotEmpty(value any) (bool, error) {
	return assure(AssertNotEmptyAsResult(value))
}

// AssertLenEqAsResult returns nil when len(a) == len(b), and a *Failure
// otherwise.
func AssertLenEqAsResult(a, b any) error {
	return lenAsResult("AssertLenEq(a, b)", opEq, a, b)
}

// AssertLenEq panics with a *Failure unless len(a) == len(b).
func AssertLenEq(a, b any) {
	must(AssertLenEqAsResult(a, b))
}

// DebugAssertLenEq is AssertLenEq unless built with the assertly_nodebug tag.
func DebugAssertLenEq(a, b any) {
	if debugAssertions {
		AssertLenEq(a, b)
	}
}

// AssureLenEq reports whether len(a) == len(b).
func AssureLenEq(a, b any) (bool, error) {
	return assure(AssertLenEqAsResult(a, b))
}

// AssertLenNeAsResult returns nil when len(a) != len(b), and a *Failure
// otherwise.
func AssertLenNeAsResult(a, b any) error {
	return lenAsResult("AssertLenNe(a, b)", opNe, a, b)
}

// AssertLenNe panics with a *Failure unless len(a) != len(b).
func AssertLenNe(a, b any) {
	must(AssertLenNeAsResult(a, b))
}

// DebugAssertLenNe is AssertLenNe unless built with the assertly_nodebug tag.
func DebugAssertLenNe(a, b any) {
	if debugAssertions {
		AssertLenNe(a, b)
	}
}

// AssureLenNe reports whether len(a) != len(b).
func AssureLenNe(a, b any) (bool, error) {
	return assure(AssertLenNeAsResult(a, b))
}

// AssertLenLtAsResult returns nil when len(a) < len(b), and a *Failure
// otherwise.
func AssertLenLtAsResult(a, b any) error {
	return lenAsResult("AssertLenLt(a, b)", opLt, a, b)
}

// AssertLenLt panics with a *Failure unless len(a) < len(b).
func AssertLenLt(a, b any) {
	must(AssertLenLtAsResult(a, b))
}

// DebugAssertLenLt is AssertLenLt unless built with the assertly_nodebug tag.
func DebugAssertLenLt(a, b any) {
	if debugAssertions {
		AssertLenLt(a, b)
	}
}

// AssureLenLt reports whether len(a) < len(b).
func AssureLenLt(a, b any) (bool, error) {
	return assure(AssertLenLtAsResult(a, b))
}

// AssertLenLeAsResult returns nil when len(a) <= len(b), and a *Failure
// otherwise.
func AssertLenLeAsResult(a, b any) error {
	return lenAsResult("AssertLenLe(a, b)", opLe, a, b)
}

// AssertLenLe panics with a *Failure unless len(a) <= len(b).
func AssertLenLe(a, b any) {
	must(AssertLenLeAsResult(a, b))
}

// DebugAssertLenLe is AssertLenLe unless built with the assertly_nodebug tag.
func DebugAssertLenLe(a, b any) {
	if debugAssertions {
		AssertLenLe(a, b)
	}
}

// AssureLenLe reports whether len(a) <= len(b).
func AssureLenLe(a, b any) (bool, error) {
	return assure(AssertLenLeAsResult(a, b))
}

// AssertLenGtAsResult returns nil when len(a) > len(b), and a *Failure
// otherwise.
func AssertLenGtAsResult(a, b any) error {
	return lenAsResult("AssertLenGt(a, b)", opGt, a, b)
}

// AssertLenGt panics with a *Failure unless len(a) > len(b).
func AssertLenGt(a, b any) {
	must(AssertLenGtAsResult(a, b))
}

// DebugAssertLenGt is AssertLenGt unless built with the assertly_nodebug tag.
func DebugAssertLenGt(a, b any) {
	if debugAssertions {
		AssertLenGt(a, b)
	}
}

// AssureLenGt reports whether len(a) > len(b).
func AssureLenGt(a, b any) (bool, error) {
	return assure(AssertLenGtAsResult(a, b))
}

// AssertLenGeAsResult returns nil when len(a) >= len(b), and a *Failure
// otherwise.
func AssertLenGeAsResult(a, b any) error {
	return lenAsResult("AssertLenGe(a, b)", opGe, a, b)
}

// AssertLenGe panics with a *Failure unless len(a) >= len(b).
func AssertLenGe(a, b any) {
	must(AssertLenGeAsResult(a, b))
}

// DebugAssertLenGe is AssertLenGe unless built with the assertly_nodebug tag.
func DebugAssertLenGe(a, b any) {
	if debugAssertions {
		AssertLenGe(a, b)
	}
}

// AssureLenGe reports whether len(a) >= len(b).
func AssureLenGe(a, b any) (bool, error) {
	return assure(AssertLenGeAsResult(a, b))
}

// AssertLenEqExprAsResult returns nil when len(a) == x, and a *Failure
// otherwise.
func AssertLenEqExprAsResult(a any, x int) error {
	return lenExprAsResult("AssertLenEqExpr(a, x)", opEq, a, x)
}

// AssertLenEqExpr panics with a *Failure unless len(a) == x.
func AssertLenEqExpr(a any, x int) {
	must(AssertLenEqExprAsResult(a, x))
}

// DebugAssertLenEqExpr is AssertLenEqExpr unless built with the
// assertly_nodebug tag.
func DebugAssertLenEqExpr(a any, x int) {
	if debugAssertions {
		AssertLenEqExpr(a, x)
	}
}

// AssureLenEqExpr reports whether len(a) == x.
func AssureLenEqExpr(a any, x int) (bool, error) {
	return assure(AssertLenEqExprAsResult(a, x))
}

// AssertLenNeExprAsResult returns nil when len(a) != x, and a *Failure
// otherwise.
func AssertLenNeExprAsResult(a any, x int) error {
	return lenExprAsResult("AssertLenNeExpr(a, x)", opNe, a, x)
}

// AssertLenNeExpr panics with a *Failure unless len(a) != x.
func AssertLenNeExpr(a any, x int) {
	must(AssertLenNeExprAsResult(a, x))
}

// DebugAssertLenNeExpr is AssertLenNeExpr unless built with the
// assertly_nodebug tag.
func DebugAssertLenNeExpr(a any, x int) {
	if debugAssertions {
		AssertLenNeExpr(a, x)
	}
}

// AssureLenNeExpr reports whether len(a) != x.
func AssureLenNeExpr(a any, x int) (bool, error) {
	return assure(AssertLenNeExprAsResult(a, x))
}

// AssertLenLtExprAsResult returns nil when len(a) < x, and a *Failure
// otherwise.
func AssertLenLtExprAsResult(a any, x int) error {
	return lenExprAsResult("AssertLenLtExpr(a, x)", opLt, a, x)
}

// AssertLenLtExpr panics with a *Failure unless len(a) < x.
func AssertLenLtExpr(a any, x int) {
	must(AssertLenLtExprAsResult(a, x))
}

// DebugAssertLenLtExpr is AssertLenLtExpr unless built with the
// assertly_nodebug tag.
func DebugAssertLenLtExpr(a any, x int) {
	if debugAssertions {
		AssertLenLtExpr(a, x)
	}
}

// AssureLenLtExpr reports whether len(a) < x.
func AssureLenLtExpr(a any, x int) (bool, error) {
	return assure(AssertLenLtExprAsResult(a, x))
}

// AssertLenLeExprAsResult returns nil when len(a) <= x, and a *Failure
// otherwise.
func AssertLenLeExprAsResult(a any, x int) error {
	return lenExprAsResult("AssertLenLeExpr(a, x)", opLe, a, x)
}

// AssertLenLeExpr panics with a *Failure unless len(a) <= x.
func AssertLenLeExpr(a any, x int) {
	must(AssertLenLeExprAsResult(a, x))
}

// DebugAssertLenLeExpr is AssertLenLeExpr unless built with the
// assertly_nodebug tag.
func DebugAssertLenLeExpr(a any, x int) {
	if debugAssertions {
		AssertLenLeExpr(a, x)
	}
}

// AssureLenLeExpr reports whether len(a) <= x.
func AssureLenLeExpr(a any, x int) (bool, error) {
	return assure(AssertLenLeExprAsResult(a, x))
}

// AssertLenGtExprAsResult returns nil when len(a) > x, and a *Failure
// otherwise.
func AssertLenGtExprAsResult(a any, x int) error {
	return lenExprAsResult("AssertLenGtExpr(a, x)", opGt, a, x)
}

// AssertLenGtExpr panics with a *Failure unless len(a) > x.
func AssertLenGtExpr(a any, x int) {
	must(AssertLenGtExprAsResult(a, x))
}

// DebugAssertLenGtExpr is AssertLenGtExpr unless built with the
// assertly_nodebug tag.
func DebugAssertLenGtExpr(a any, x int) {
	if debugAssertions {
		AssertLenGtExpr(a, x)
	}
}

// AssureLenGtExpr reports whether len(a) > x.
func AssureLenGtExpr(a any, x int) (bool, error) {
	return assure(AssertLenGtExprAsResult(a, x))
}

// AssertLenGeExprAsResult returns nil when len(a) >= x, and a *Failure
// otherwise.
func AssertLenGeExprAsResult(a any, x int) error {
	return lenExprAsResult("AssertLenGeExpr(a, x)", opGe, a, x)
}

// AssertLenGeExpr panics with a *Failure unless len(a) >= x.
func AssertLenGeExpr(a any, x int) {
	must(AssertLenGeExprAsResult(a, x))
}

// DebugAssertLenGeExpr is AssertLenGeExpr unless built with the
// assertly_nodebug tag.
func DebugAssertLenGeExpr(a any, x int) {
	if debugAssertions {
		AssertLenGeExpr(a, x)
	}
}

// AssureLenGeExpr reports whether len(a) >= x.
func AssureLenGeExpr(a any, x int) (bool, error) {
	return assure(AssertLenGeExprAsResult(a, x))
}
