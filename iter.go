package assertly

import (
	"cmp"
	"iter"
	"slices"
)

func iterFields[T any](a, b []T) []Field {
	return []Field{
		{Label: "a", Value: a},
		{Label: "b", Value: b},
	}
}

func iterEqualAsResult[T comparable](call string, o op, a, b iter.Seq[T]) error {
	as, bs := slices.Collect(a), slices.Collect(b)
	if slices.Equal(as, bs) == (o == opEq) {
		return nil
	}
	return failure(call, iterFields(as, bs)...)
}

// iterOrderedAsResult compares the collected sequences lexicographically, the
// way slices.Compare does.
func iterOrderedAsResult[T cmp.Ordered](call string, o op, a, b iter.Seq[T]) error {
	as, bs := slices.Collect(a), slices.Collect(b)
	if compareOrdered(o, slices.Compare(as, bs), 0) {
		return nil
	}
	return failure(call, iterFields(as, bs)...)
}

// AssertIterEqAsResult returns nil when the sequence a == the sequence b, and a
// *Failure otherwise.
func AssertIterEqAsResult[T comparable](a, b iter.Seq[T]) error {
	return iterEqualAsResult("AssertIterEq(a, b)", opEq, a, b)
}

// AssertIterEq panics with a *Failure unless the sequence a == the sequence b.
func AssertIterEq[T comparable](a, b iter.Seq[T]) {
	must(AssertIterEqAsResult(a, b))
}

// DebugAssertIterEq is AssertIterEq unless built with the assertly_nodebug tag.
func DebugAssertIterEq[T comparable](a, b iter.Seq[T]) {
	if debugAssertions {
		AssertIterEq(a, b)
	}
}

// AssureIterEq reports whether the sequence a == the sequence b.
func AssureIterEq[T comparable](a, b iter.Seq[T]) (bool, error) {
	return assure(AssertIterEqAsResult(a, b))
}

// AssertIterNeAsResult returns nil when the sequence a != the sequence b, and a
// *Failure otherwise.
func AssertIterNeAsResult[T comparable](a, b iter.Seq[T]) error {
	return iterEqualAsResult("AssertIterNe(a, b)", opNe, a, b)
}

// AssertIterNe panics with a *Failure unless the sequence a != the sequence b.
func AssertIterNe[T comparable](a, b iter.Seq[T]) {
	must(AssertIterNeAsResult(a, b))
}

// DebugAssertIterNe is AssertIterNe unless built with the assertly_nodebug tag.
func DebugAssertIterNe[T comparable](a, b iter.Seq[T]) {
	if debugAssertions {
		AssertIterNe(a, b)
	}
}

// AssureIterNe reports whether the sequence a != the sequence b.
func AssureIterNe[T comparable](a, b iter.Seq[T]) (bool, error) {
	return assure(AssertIterNeAsResult(a, b))
}

// AssertIterLtAsResult returns nil when the sequence a < the sequence b, and a
// *Failure otherwise.
func AssertIterLtAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return iterOrderedAsResult("AssertIterLt(a, b)", opLt, a, b)
}

// AssertIterLt panics with a *Failure unless the sequence a < the sequence b.
func AssertIterLt[T cmp.Ordered](a, b iter.Seq[T]) {
	must(AssertIterLtAsResult(a, b))
}

// DebugAssertIterLt is AssertIterLt unless built with the assertly_nodebug tag.
func DebugAssertIterLt[T cmp.Ordered](a, b iter.Seq[T]) {
	if debugAssertions {
		AssertIterLt(a, b)
	}
}

// AssureIterLt reports whether the sequence a < the sequence b.
func AssureIterLt[T cmp.Ordered](a, b iter.Seq[T]) (bool, error) {
	return assure(AssertIterLtAsResult(a, b))
}

// AssertIterLeAsResult returns nil when the sequence a <= the sequence b, and a
// *Failure otherwise.
func AssertIterLeAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return iterOrderedAsResult("AssertIterLe(a, b)", opLe, a, b)
}

// AssertIterLe panics with a *Failure unless the sequence a <= the sequence b.
func AssertIterLe[T cmp.Ordered](a, b iter.Seq[T]) {
	must(AssertIterLeAsResult(a, b))
}

// DebugAssertIterLe is AssertIterLe unless built with the assertly_nodebug tag.
func DebugAssertIterLe[T cmp.Ordered](a, b iter.Seq[T]) {
	if debugAssertions {
		AssertIterLe(a, b)
	}
}

// AssureIterLe reports whether the sequence a <= the sequence b.
func AssureIterLe[T cmp.Ordered](a, b iter.Seq[T]) (bool, error) {
	return assure(AssertIterLeAsResult(a, b))
}

// AssertIterGtAsResult returns nil when the sequence a > the sequence b, and a
// *Failure otherwise.
func AssertIterGtAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return iterOrderedAsResult("AssertIterGt(a, b)", opGt, a, b)
}

// AssertIterGt panics with a *Failure unless the sequence a > the sequence b.
func AssertIterGt[T cmp.Ordered](a, b iter.Seq[T]) {
	must(AssertIterGtAsResult(a, b))
}

// DebugAssertIterGt is AssertIterGt unless built with the assertly_nodebug tag.
func DebugAssertIterGt[T cmp.Ordered](a, b iter.Seq[T]) {
	if debugAssertions {
		AssertIterGt(a, b)
	}
}

// AssureIterGt reports whether the sequence a > the sequence b.
func AssureIterGt[T cmp.Ordered](a, b iter.Seq[T]) (bool, error) {
	return assure(AssertIterGtAsResult(a, b))
}

// AssertIterGeAsResult returns nil when the sequence a >= the sequence b, and a
// *Failure otherwise.
func AssertIterGeAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return iterOrderedAsResult("AssertIterGe(a, b)", opGe, a, b)
}

// AssertIterGe panics with a *Failure unless the sequence a >= the sequence b.
func AssertIterGe[T cmp.Ordered](a, b iter.Seq[T]) {
	must(AssertIterGeAsResult(a, b))
}

// DebugAssertIterGe is AssertIterGe unless built with the assertly_nodebug tag.
func DebugAssertIterGe[T cmp.Ordered](a, b iter.Seq[T]) {
	if debugAssertions {
		AssertIterGe(a, b)
	}
}

// AssureIterGe reports whether the sequence a >= the sequence b.
func AssureIterGe[T cmp.Ordered](a, b iter.Seq[T]) (bool, error) {
	return assure(AssertIterGeAsResult(a, b))
}
