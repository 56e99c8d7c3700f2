package assertly

import "strings"

func wholePartFields(whole, part string) []Field {
	return []Field{
		{Label: "whole", Value: whole},
		{Label: "part", Value: part},
	}
}

// AssertStartsWithAsResult returns nil when whole starts with part, and a
// *Failure otherwise.
func AssertStartsWithAsResult(whole, part string) error {
	if strings.HasPrefix(whole, part) {
		return nil
	}
	return failure("AssertStartsWith(whole, part)", wholePartFields(whole, part)...)
}

// AssertStartsWith panics with a *Failure unless whole starts with part.
func AssertStartsWith(whole, part string) {
	must(AssertStartsWithAsResult(whole, part))
}

// DebugAssertStartsWith is AssertStartsWith unless built with the
// assertly_nodebug tag.
func DebugAssertStartsWith(whole, part string) {
	if debugAssertions {
		AssertStartsWith(whole, part)
	}
}

// AssureStartsWith reports whether whole starts with part.
func AssureStartsWith(whole, part string) (bool, error) {
	return assure(AssertStartsWithAsResult(whole, part))
}

// AssertNotStartsWithAsResult returns nil when whole does not start with part,
// and a *Failure otherwise.
func AssertNotStartsWithAsResult(whole, part string) error {
	if !strings.HasPrefix(whole, part) {
		return nil
	}
	return failure("AssertNotStartsWith(whole, part)", wholePartFields(whole, part)...)
}

// AssertNotStartsWith panics with a *Failure unless whole does not start with
// part.
func AssertNotStartsWith(whole, part string) {
	must(AssertNotStartsWithAsResult(whole, part))
}

// DebugAssertNotStartsWith is AssertNotStartsWith unless built with the
// assertly_nodebug tag.
func DebugAssertNotStartsWith(whole, part string) {
	if debugAssertions {
		AssertNotStartsWith(whole, part)
	}
}

// AssureNotStartsWith reports whether whole does not start with part.
func AssureNotStartsWith(whole, part string) (bool, error) {
	return assure(AssertNotStartsWithAsResult(whole, part))
}

// AssertEndsWithAsResult returns nil when whole ends with part, and a *Failure
// otherwise.
func AssertEndsWithAsResult(whole, part string) error {
	if strings.HasSuffix(whole, part) {
		return nil
	}
	return failure("AssertEndsWith(whole, part)", wholePartFields(whole, part)...)
}

// AssertEndsWith panics with a *Failure unless whole ends with part.
func AssertEndsWith(whole, part string) {
	must(AssertEndsWithAsResult(whole, part))
}

// DebugAssertEndsWith is AssertEndsWith unless built with the assertly_nodebug
// tag.
func DebugAssertEndsWith(whole, part string) {
	if debugAssertions {
		AssertEndsWith(whole, part)
	}
}

// AssureEndsWith reports whether whole ends with part.
func AssureEndsWith(whole, part string) (bool, error) {
	return assure(AssertEndsWithAsResult(whole, part))
}

// AssertNotEndsWithAsResult returns nil when whole does not end with part, and
// a *Failure otherwise.
func AssertNotEndsWithAsResult(whole, part string) error {
	if !strings.HasSuffix(whole, part) {
		return nil
	}
	return failure("AssertNotEndsWith(whole, part)", wholePartFields(whole, part)...)
}

// AssertNotEndsWith panics with a *Failure unless whole does not end with part.
func AssertNotEndsWith(whole, part string) {
	must(AssertNotEndsWithAsResult(whole, part))
}

// DebugAssertNotEndsWith is AssertNotEndsWith unless built with the
// assertly_nodebug tag.
func DebugAssertNotEndsWith(whole, part string) {
	if debugAssertions {
		AssertNotEndsWith(whole, part)
	}
}

// AssureNotEndsWith reports whether whole does not end with part.
func AssureNotEndsWith(whole, part string) (bool, error) {
	return assure(AssertNotEndsWithAsResult(whole, part))
}
