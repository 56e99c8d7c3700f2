package assertly

import "golang.org/x/exp/constraints"

// ApproxThreshold is the largest |a-b| for which two floats are considered
// approximately equal.
const ApproxThreshold = 1e-6

func approxFields[T constraints.Float](a, b T) []Field {
	return []Field{
		{Label: "a", Value: a},
		{Label: "b", Value: b},
		{Label: "|a-b|", Value: absDiff(a, b)},
		{Label: "approx", Value: ApproxThreshold},
	}
}

// AssertApproxEqAsResult returns nil when |a-b| <= ApproxThreshold.
func AssertApproxEqAsResult[T constraints.Float](a, b T) error {
	if absDiff(a, b).holds(opLe, T(ApproxThreshold)) {
		return nil
	}
	return failure("AssertApproxEq(a, b)", approxFields(a, b)...)
}

// AssertApproxEq panics with a *Failure unless |a-b| <= ApproxThreshold.
func AssertApproxEq[T constraints.Float](a, b T) {
	must(AssertApproxEqAsResult(a, b))
}

// DebugAssertApproxEq is AssertApproxEq unless built with the
// assertly_nodebug tag.
func DebugAssertApproxEq[T constraints.Float](a, b T) {
	if debugAssertions {
		AssertApproxEq(a, b)
	}
}

// AssureApproxEq reports whether |a-b| <= ApproxThreshold.
func AssureApproxEq[T constraints.Float](a, b T) (bool, error) {
	return assure(AssertApproxEqAsResult(a, b))
}

// AssertApproxNeAsResult returns nil when |a-b| > ApproxThreshold.
func AssertApproxNeAsResult[T constraints.Float](a, b T) error {
	if absDiff(a, b).holds(opGt, T(ApproxThreshold)) {
		return nil
	}
	return failure("AssertApproxNe(a, b)", approxFields(a, b)...)
}

// AssertApproxNe panics with a *Failure unless |a-b| > ApproxThreshold.
func AssertApproxNe[T constraints.Float](a, b T) {
	must(AssertApproxNeAsResult(a, b))
}

// DebugAssertApproxNe is AssertApproxNe unless built with the
// assertly_nodebug tag.
func DebugAssertApproxNe[T constraints.Float](a, b T) {
	if debugAssertions {
		AssertApproxNe(a, b)
	}
}

// AssureApproxNe reports whether |a-b| > ApproxThreshold.
func AssureApproxNe[T constraints.Float](a, b T) (bool, error) {
	return assure(AssertApproxNeAsResult(a, b))
}
