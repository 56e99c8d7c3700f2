package assertly

import "github.com/google/go-cmp/cmp"

// AssertDeepEqAsResult returns nil when cmp.Equal(left, right, opts...) holds,
// and a *Failure carrying the cmp.Diff of the two values otherwise.
//
// Unlike AssertEq it accepts values that are not comparable with ==, such as
// slices, maps and structs holding them.
func AssertDeepEqAsResult(left, right any, opts ...cmp.Option) error {
	if cmp.Equal(left, right, opts...) {
		return nil
	}
	fields := Pair{Left: left, Right: right}.Fields()
	fields = append(fields, cmpDiffFields(left, right, opts...)...)
	return failure("AssertDeepEq(left, right)", fields...)
}

// AssertDeepEq panics with a *Failure unless left and right are deeply equal.
func AssertDeepEq(left, right any, opts ...cmp.Option) {
	must(AssertDeepEqAsResult(left, right, opts...))
}

// DebugAssertDeepEq is AssertDeepEq unless built with the assertly_nodebug tag.
func DebugAssertDeepEq(left, right any, opts ...cmp.Option) {
	if debugAssertions {
		AssertDeepEq(left, right, opts...)
	}
}

// AssureDeepEq reports whether left and right are deeply equal.
func AssureDeepEq(left, right any, opts ...cmp.Option) (bool, error) {
	return assure(AssertDeepEqAsResult(left, right, opts...))
}

// AssertDeepNeAsResult returns nil unless left and right are deeply equal.
func AssertDeepNeAsResult(left, right any, opts ...cmp.Option) error {
	if !cmp.Equal(left, right, opts...) {
		return nil
	}
	return failure("AssertDeepNe(left, right)", Pair{Left: left, Right: right}.Fields()...)
}

// AssertDeepNe panics with a *Failure when left and right are deeply equal.
func AssertDeepNe(left, right any, opts ...cmp.Option) {
	must(AssertDeepNeAsResult(left, right, opts...))
}

// DebugAssertDeepNe is AssertDeepNe unless built with the assertly_nodebug tag.
func DebugAssertDeepNe(left, right any, opts ...cmp.Option) {
	if debugAssertions {
		AssertDeepNe(left, right, opts...)
	}
}

// AssureDeepNe reports whether left and right differ.
func AssureDeepNe(left, right any, opts ...cmp.Option) (bool, error) {
	return assure(AssertDeepNeAsResult(left, right, opts...))
}
