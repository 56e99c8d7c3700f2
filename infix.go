package assertly

import "cmp"

func infixAsResult[T cmp.Ordered](call string, o op, left, right T) error {
	if compareOrdered(o, left, right) {
		return nil
	}
	return pairFailure(call, left, right)
}

func pairFailure(call string, left, right any) error {
	fields := Pair{Left: left, Right: right}.Fields()
	fields = append(fields, stringDiffFields(left, right)...)
	return failure(call, fields...)
}

// AssertEqAsResult returns nil when left == right, and a *Failure otherwise.
//
// When both values are strings spanning several lines, the failure carries a
// unified diff of the two.
func AssertEqAsResult[T comparable](left, right T) error {
	if left == right {
		return nil
	}
	return pairFailure("AssertEq(left, right)", left, right)
}

// AssertEq panics with a *Failure unless left == right.
//
//	assertly.AssertEq(1, 1) // ok
//	assertly.AssertEq(1, 2) // panics:
//	// assertion failed: `AssertEq(left, right)`
//	//   left: `1`,
//	//  right: `2`
func AssertEq[T comparable](left, right T) {
	must(AssertEqAsResult(left, right))
}

// DebugAssertEq is AssertEq unless built with the assertly_nodebug tag.
func DebugAssertEq[T comparable](left, right T) {
	if debugAssertions {
		AssertEq(left, right)
	}
}

// AssureEq reports whether left == right.
func AssureEq[T comparable](left, right T) (bool, error) {
	return assure(AssertEqAsResult(left, right))
}

// AssertNeAsResult returns nil when left != right, and a *Failure otherwise.
func AssertNeAsResult[T comparable](left, right T) error {
	if left != right {
		return nil
	}
	return failure("AssertNe(left, right)", Pair{Left: left, Right: right}.Fields()...)
}

// AssertNe panics with a *Failure unless left != right.
func AssertNe[T comparable](left, right T) {
	must(AssertNeAsResult(left, right))
}

// DebugAssertNe is AssertNe unless built with the assertly_nodebug tag.
func DebugAssertNe[T comparable](left, right T) {
	if debugAssertions {
		AssertNe(left, right)
	}
}

// AssureNe reports whether left != right.
func AssureNe[T comparable](left, right T) (bool, error) {
	return assure(AssertNeAsResult(left, right))
}

// AssertLtAsResult returns nil when left < right, and a *Failure otherwise.
func AssertLtAsResult[T cmp.Ordered](left, right T) error {
	return infixAsResult("AssertLt(left, right)", opLt, left, right)
}

// AssertLt panics with a *Failure unless left < right.
func AssertLt[T cmp.Ordered](left, right T) {
	must(AssertLtAsResult(left, right))
}

// DebugAssertLt is AssertLt unless built with the assertly_nodebug tag.
func DebugAssertLt[T cmp.Ordered](left, right T) {
	if debugAssertions {
		AssertLt(left, right)
	}
}

// AssureLt reports whether left < right.
func AssureLt[T cmp.Ordered](left, right T) (bool, error) {
	return assure(AssertLtAsResult(left, right))
}

// AssertLeAsResult returns nil when left <= right, and a *Failure otherwise.
func AssertLeAsResult[T cmp.Ordered](left, right T) error {
	return infixAsResult("AssertLe(left, right)", opLe, left, right)
}

// AssertLe panics with a *Failure unless left <= right.
func AssertLe[T cmp.Ordered](left, right T) {
	must(AssertLeAsResult(left, right))
}

// DebugAssertLe is AssertLe unless built with the assertly_nodebug tag.
func DebugAssertLe[T cmp.Ordered](left, right T) {
	if debugAssertions {
		AssertLe(left, right)
	}
}

// AssureLe reports whether left <= right.
func AssureLe[T cmp.Ordered](left, right T) (bool, error) {
	return assure(AssertLeAsResult(left, right))
}

// AssertGtAsResult returns nil when left > right, and a *Failure otherwise.
func AssertGtAsResult[T cmp.Ordered](left, right T) error {
	return infixAsResult("AssertGt(left, right)", opGt, left, right)
}

// AssertGt panics with a *Failure unless left > right.
func AssertGt[T cmp.Ordered](left, right T) {
	must(AssertGtAsResult(left, right))
}

// DebugAssertGt is AssertGt unless built with the assertly_nodebug tag.
func DebugAssertGt[T cmp.Ordered](left, right T) {
	if debugAssertions {
		AssertGt(left, right)
	}
}

// AssureGt reports whether left > right.
func AssureGt[T cmp.Ordered](left, right T) (bool, error) {
	return assure(AssertGtAsResult(left, right))
}

// AssertGeAsResult returns nil when left >= right, and a *Failure otherwise.
func AssertGeAsResult[T cmp.Ordered](left, right T) error {
	return infixAsResult("AssertGe(left, right)", opGe, left, right)
}

// AssertGe panics with a *Failure unless left >= right.
func AssertGe[T cmp.Ordered](left, right T) {
	must(AssertGeAsResult(left, right))
}

// DebugAssertGe is AssertGe unless built with the assertly_nodebug tag.
func DebugAssertGe[T cmp.Ordered](left, right T) {
	if debugAssertions {
		AssertGe(left, right)
	}
}

// AssureGe reports whether left >= right.
func AssureGe[T cmp.Ordered](left, right T) (bool, error) {
	return assure(AssertGeAsResult(left, right))
}
