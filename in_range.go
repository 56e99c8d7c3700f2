package assertly

import "cmp"

func rangeFields[T cmp.Ordered](a, lo, hi T) []Field {
	return []Field{
		{Label: "a", Value: a},
		{Label: "lo", Value: lo},
		{Label: "hi", Value: hi},
	}
}

// AssertInRangeAsResult returns nil when lo <= a <= hi.
func AssertInRangeAsResult[T cmp.Ordered](a, lo, hi T) error {
	if lo <= a && a <= hi {
		return nil
	}
	return failure("AssertInRange(a, lo, hi)", rangeFields(a, lo, hi)...)
}

// AssertInRange panics with a *Failure unless lo <= a <= hi.
func AssertInRange[T cmp.Ordered](a, lo, hi T) {
	must(AssertInRangeAsResult(a, lo, hi))
}

// DebugAssertInRange is AssertInRange unless built with the assertly_nodebug
// tag.
func DebugAssertInRange[T cmp.Ordered](a, lo, hi T) {
	if debugAssertions {
		AssertInRange(a, lo, hi)
	}
}

// AssureInRange reports whether lo <= a <= hi.
func AssureInRange[T cmp.Ordered](a, lo, hi T) (bool, error) {
	return assure(AssertInRangeAsResult(a, lo, hi))
}

// AssertNotInRangeAsResult returns nil when a < lo or a > hi.
func AssertNotInRangeAsResult[T cmp.Ordered](a, lo, hi T) error {
	if a < lo || a > hi {
		return nil
	}
	return failure("AssertNotInRange(a, lo, hi)", rangeFields(a, lo, hi)...)
}

// AssertNotInRange panics with a *Failure when lo <= a <= hi.
func AssertNotInRange[T cmp.Ordered](a, lo, hi T) {
	must(AssertNotInRangeAsResult(a, lo, hi))
}

// DebugAssertNotInRange is AssertNotInRange unless built with the
// assertly_nodebug tag.
func DebugAssertNotInRange[T cmp.Ordered](a, lo, hi T) {
	if debugAssertions {
		AssertNotInRange(a, lo, hi)
	}
}

// AssureNotInRange reports whether a lies outside [lo, hi].
func AssureNotInRange[T cmp.Ordered](a, lo, hi T) (bool, error) {
	return assure(AssertNotInRangeAsResult(a, lo, hi))
}
