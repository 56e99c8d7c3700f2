package assertly

import "maps"

// bag counts how many times each item occurs.
type bag[T comparable] map[T]int

func newBag[T comparable](items []T) bag[T] {
	b := make(bag[T], len(items))
	for _, item := range items {
		b[item]++
	}
	return b
}

// subbagOf reports whether every item occurs in other at least as many times
// as it occurs in b.
func (b bag[T]) subbagOf(other bag[T]) bool {
	for item, n := range b {
		if other[item] < n {
			return false
		}
	}
	return true
}

func bagAsResult[T comparable](call string, a, b []T, holds func(a, b bag[T]) bool) error {
	ab, bb := newBag(a), newBag(b)
	if holds(ab, bb) {
		return nil
	}
	return failure(call,
		Field{Label: "a", Value: map[T]int(ab)},
		Field{Label: "b", Value: map[T]int(bb)},
	)
}

// AssertBagEqAsResult returns nil when a and b hold the same items with the
// same multiplicities, and a *Failure otherwise.
func AssertBagEqAsResult[T comparable](a, b []T) error {
	return bagAsResult("AssertBagEq(a, b)", a, b, func(a, b bag[T]) bool { return maps.Equal(a, b) })
}

// AssertBagEq panics with a *Failure unless a and b hold the same items with
// the same multiplicities.
func AssertBagEq[T comparable](a, b []T) {
	must(AssertBagEqAsResult(a, b))
}

// DebugAssertBagEq is AssertBagEq unless built with the assertly_nodebug tag.
func DebugAssertBagEq[T comparable](a, b []T) {
	if debugAssertions {
		AssertBagEq(a, b)
	}
}

// AssureBagEq reports whether a and b hold the same items with the same
// multiplicities.
func AssureBagEq[T comparable](a, b []T) (bool, error) {
	return assure(AssertBagEqAsResult(a, b))
}

// AssertBagNeAsResult returns nil when a and b differ in some item or
// multiplicity, and a *Failure otherwise.
func AssertBagNeAsResult[T comparable](a, b []T) error {
	return bagAsResult("AssertBagNe(a, b)", a, b, func(a, b bag[T]) bool { return !maps.Equal(a, b) })
}

// AssertBagNe panics with a *Failure unless a and b differ in some item or
// multiplicity.
func AssertBagNe[T comparable](a, b []T) {
	must(AssertBagNeAsResult(a, b))
}

// DebugAssertBagNe is AssertBagNe unless built with the assertly_nodebug tag.
func DebugAssertBagNe[T comparable](a, b []T) {
	if debugAssertions {
		AssertBagNe(a, b)
	}
}

// AssureBagNe reports whether a and b differ in some item or multiplicity.
func AssureBagNe[T comparable](a, b []T) (bool, error) {
	return assure(AssertBagNeAsResult(a, b))
}

// AssertBagSubbagAsResult returns nil when a is a subbag of b, and a *Failure
// otherwise.
func AssertBagSubbagAsResult[T comparable](a, b []T) error {
	return bagAsResult("AssertBagSubbag(a, b)", a, b, bag[T].subbagOf)
}

// AssertBagSubbag panics with a *Failure unless a is a subbag of b.
func AssertBagSubbag[T comparable](a, b []T) {
	must(AssertBagSubbagAsResult(a, b))
}

// DebugAssertBagSubbag is AssertBagSubbag unless built with the
// assertly_nodebug tag.
func DebugAssertBagSubbag[T comparable](a, b []T) {
	if debugAssertions {
		AssertBagSubbag(a, b)
	}
}

// AssureBagSubbag reports whether a is a subbag of b.
func AssureBagSubbag[T comparable](a, b []T) (bool, error) {
	return assure(AssertBagSubbagAsResult(a, b))
}

// AssertBagSuperbagAsResult returns nil when a is a superbag of b, and a
// *Failure otherwise.
func AssertBagSuperbagAsResult[T comparable](a, b []T) error {
	return bagAsResult("AssertBagSuperbag(a, b)", a, b, func(a, b bag[T]) bool { return b.subbagOf(a) })
}

// AssertBagSuperbag panics with a *Failure unless a is a superbag of b.
func AssertBagSuperbag[T comparable](a, b []T) {
	must(AssertBagSuperbagAsResult(a, b))
}

// DebugAssertBagSuperbag is AssertBagSuperbag unless built with the
// assertly_nodebug tag.
func DebugAssertBagSuperbag[T comparable](a, b []T) {
	if debugAssertions {
		AssertBagSuperbag(a, b)
	}
}

// AssureBagSuperbag reports whether a is a superbag of b.
func AssureBagSuperbag[T comparable](a, b []T) (bool, error) {
	return assure(AssertBagSuperbagAsResult(a, b))
}
