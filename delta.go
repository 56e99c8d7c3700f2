package assertly

// AssertInDeltaAsResult returns nil when |a-b| <= delta.
//
//	assertly.AssertInDeltaAsResult(10, 11, 1) // nil
//	assertly.AssertInDeltaAsResult(10, 12, 1) // *Failure
func AssertInDeltaAsResult[T Number](a, b, delta T) error {
	d := absDiff(a, b)
	if d.holds(opLe, delta) {
		return nil
	}
	return failure("AssertInDelta(a, b, delta)",
		Field{Label: "a", Value: a},
		Field{Label: "b", Value: b},
		Field{Label: "delta", Value: delta},
		Field{Label: "|a-b|", Value: d},
	)
}

// AssertInDelta panics with a *Failure unless |a-b| <= delta.
func AssertInDelta[T Number](a, b, delta T) {
	must(AssertInDeltaAsResult(a, b, delta))
}

// DebugAssertInDelta is AssertInDelta unless built with the assertly_nodebug
// tag.
func DebugAssertInDelta[T Number](a, b, delta T) {
	if debugAssertions {
		AssertInDelta(a, b, delta)
	}
}

// AssureInDelta reports whether |a-b| <= delta.
func AssureInDelta[T Number](a, b, delta T) (bool, error) {
	return assure(AssertInDeltaAsResult(a, b, delta))
}

// AssertInEpsilonAsResult returns nil when |a-b| <= epsilon * min(|a|, |b|),
// that is when a and b differ by at most the relative error epsilon.
func AssertInEpsilonAsResult[T Number](a, b, epsilon T) error {
	d := absDiff(a, b)
	bound := mulQuantity(exact(epsilon), minQuantity(abs(a), abs(b)))
	if compareQuantity(opLe, d, bound) {
		return nil
	}
	return failure("AssertInEpsilon(a, b, epsilon)",
		Field{Label: "a", Value: a},
		Field{Label: "b", Value: b},
		Field{Label: "epsilon", Value: epsilon},
		Field{Label: "|a-b|", Value: d},
		Field{Label: "epsilon * min(|a|, |b|)", Value: bound},
	)
}

// AssertInEpsilon panics with a *Failure unless
// |a-b| <= epsilon * min(|a|, |b|).
func AssertInEpsilon[T Number](a, b, epsilon T) {
	must(AssertInEpsilonAsResult(a, b, epsilon))
}

// DebugAssertInEpsilon is AssertInEpsilon unless built with the
// assertly_nodebug tag.
func DebugAssertInEpsilon[T Number](a, b, epsilon T) {
	if debugAssertions {
		AssertInEpsilon(a, b, epsilon)
	}
}

// AssureInEpsilon reports whether |a-b| <= epsilon * min(|a|, |b|).
func AssureInEpsilon[T Number](a, b, epsilon T) (bool, error) {
	return assure(AssertInEpsilonAsResult(a, b, epsilon))
}
