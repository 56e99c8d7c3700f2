package assertly

// AssertNilAsResult returns nil when value is nil: an untyped nil, or a nil
// pointer, map, slice, channel, function or interface. Values of other kinds
// are never nil.
func AssertNilAsResult(value any) error {
	if isNil(value) {
		return nil
	}
	return failure("AssertNil(value)", Field{Label: "value", Value: value})
}

// AssertNil panics with a *Failure unless value is nil.
func AssertNil(value any) {
	must(AssertNilAsResult(value))
}

// DebugAssertNil is AssertNil unless built with the assertly_nodebug tag.
func DebugAssertNil(value any) {
	if debugAssertions {
		AssertNil(value)
	}
}

// AssureNil reports whether value is nil.
func AssureNil(value any) (bool, error) {
	return assure(AssertNilAsResult(value))
}

// AssertNotNilAsResult returns nil when value is not nil, and a *Failure
// otherwise.
func AssertNotNilAsResult(value any) error {
	if !isNil(value) {
		return nil
	}
	return failure("AssertNotNil(value)", Field{Label: "value", Value: value})
}

// AssertNotNil panics with a *Failure unless value is not nil.
func AssertNotNil(value any) {
	must(AssertNotNilAsResult(value))
}

// DebugAssertNotNil is AssertNotNil unless built with the assertly_nodebug tag.
func DebugAssertNotNil(value any) {
	if debugAssertions {
		AssertNotNil(value)
	}
}

// AssureNotNil reports whether value is not nil.
func AssureNotNil(value any) (bool, error) {
	return assure(AssertNotNilAsResult(value))
}
