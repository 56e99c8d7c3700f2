package assertly

func absDiffAsResult[T Number](call string, o op, a, b, x T) error {
	d := absDiff(a, b)
	if d.holds(o, x) {
		return nil
	}
	return failure(call,
		Field{Label: "a", Value: a},
		Field{Label: "b", Value: b},
		Field{Label: "x", Value: x},
		Field{Label: "|a-b|", Value: d},
	)
}

// AssertAbsDiffEqAsResult returns nil when |a-b| == x.
func AssertAbsDiffEqAsResult[T Number](a, b, x T) error {
	return absDiffAsResult("AssertAbsDiffEq(a, b, x)", opEq, a, b, x)
}

// AssertAbsDiffEq panics with a *Failure unless |a-b| == x.
func AssertAbsDiffEq[T Number](a, b, x T) {
	must(AssertAbsDiffEqAsResult(a, b, x))
}

// DebugAssertAbsDiffEq is AssertAbsDiffEq unless built with the
// assertly_nodebug tag.
func DebugAssertAbsDiffEq[T Number](a, b, x T) {
	if debugAssertions {
		AssertAbsDiffEq(a, b, x)
	}
}

// AssureAbsDiffEq reports whether |a-b| == x.
func AssureAbsDiffEq[T Number](a, b, x T) (bool, error) {
	return assure(AssertAbsDiffEqAsResult(a, b, x))
}

// AssertAbsDiffNeAsResult returns nil when |a-b| != x.
func AssertAbsDiffNeAsResult[T Number](a, b, x T) error {
	return absDiffAsResult("AssertAbsDiffNe(a, b, x)", opNe, a, b, x)
}

// AssertAbsDiffNe panics with a *Failure unless |a-b| != x.
func AssertAbsDiffNe[T Number](a, b, x T) {
	must(AssertAbsDiffNeAsResult(a, b, x))
}

// DebugAssertAbsDiffNe is AssertAbsDiffNe unless built with the
// assertly_nodebug tag.
func DebugAssertAbsDiffNe[T Number](a, b, x T) {
	if debugAssertions {
		AssertAbsDiffNe(a, b, x)
	}
}

// AssureAbsDiffNe reports whether |a-b| != x.
func AssureAbsDiffNe[T Number](a, b, x T) (bool, error) {
	return assure(AssertAbsDiffNeAsResult(a, b, x))
}

// AssertAbsDiffLtAsResult returns nil when |a-b| < x.
func AssertAbsDiffLtAsResult[T Number](a, b, x T) error {
	return absDiffAsResult("AssertAbsDiffLt(a, b, x)", opLt, a, b, x)
}

// AssertAbsDiffLt panics with a *Failure unless |a-b| < x.
func AssertAbsDiffLt[T Number](a, b, x T) {
	must(AssertAbsDiffLtAsResult(a, b, x))
}

// DebugAssertAbsDiffLt is AssertAbsDiffLt unless built with the
// assertly_nodebug tag.
func DebugAssertAbsDiffLt[T Number](a, b, x T) {
	if debugAssertions {
		AssertAbsDiffLt(a, b, x)
	}
}

// AssureAbsDiffLt reports whether |a-b| < x.
func AssureAbsDiffLt[T Number](a, b, x T) (bool, error) {
	return assure(AssertAbsDiffLtAsResult(a, b, x))
}

// AssertAbsDiffLeAsResult returns nil when |a-b| <= x.
func AssertAbsDiffLeAsResult[T Number](a, b, x T) error {
	return absDiffAsResult("AssertAbsDiffLe(a, b, x)", opLe, a, b, x)
}

// AssertAbsDiffLe panics with a *Failure unless |a-b| <= x.
func AssertAbsDiffLe[T Number](a, b, x T) {
	must(AssertAbsDiffLeAsResult(a, b, x))
}

// DebugAssertAbsDiffLe is AssertAbsDiffLe unless built with the
// assertly_nodebug tag.
func DebugAssertAbsDiffLe[T Number](a, b, x T) {
	if debugAssertions {
		AssertAbsDiffLe(a, b, x)
	}
}

// AssureAbsDiffLe reports whether |a-b| <= x.
func AssureAbsDiffLe[T Number](a, b, x T) (bool, error) {
	return assure(AssertAbsDiffLeAsResult(a, b, x))
}

// AssertAbsDiffGtAsResult returns nil when |a-b| > x.
func AssertAbsDiffGtAsResult[T Number](a, b, x T) error {
	return absDiffAsResult("AssertAbsDiffGt(a, b, x)", opGt, a, b, x)
}

// AssertAbsDiffGt panics with a *Failure unless |a-b| > x.
func AssertAbsDiffGt[T Number](a, b, x T) {
	must(AssertAbsDiffGtAsResult(a, b, x))
}

// DebugAssertAbsDiffGt is AssertAbsDiffGt unless built with the
// assertly_nodebug tag.
func DebugAssertAbsDiffGt[T Number](a, b, x T) {
	if debugAssertions {
		AssertAbsDiffGt(a, b, x)
	}
}

// AssureAbsDiffGt reports whether |a-b| > x.
func AssureAbsDiffGt[T Number](a, b, x T) (bool, error) {
	return assure(AssertAbsDiffGtAsResult(a, b, x))
}

// AssertAbsDiffGeAsResult returns nil when |a-b| >= x.
func AssertAbsDiffGeAsResult[T Number](a, b, x T) error {
	return absDiffAsResult("AssertAbsDiffGe(a, b, x)", opGe, a, b, x)
}

// AssertAbsDiffGe panics with a *Failure unless |a-b| >= x.
func AssertAbsDiffGe[T Number](a, b, x T) {
	must(AssertAbsDiffGeAsResult(a, b, x))
}

// DebugAssertAbsDiffGe is AssertAbsDiffGe unless built with the
// assertly_nodebug tag.
func DebugAssertAbsDiffGe[T Number](a, b, x T) {
	if debugAssertions {
		AssertAbsDiffGe(a, b, x)
	}
}

// AssureAbsDiffGe reports whether |a-b| >= x.
func AssureAbsDiffGe[T Number](a, b, x T) (bool, error) {
	return assure(AssertAbsDiffGeAsResult(a, b, x))
}
