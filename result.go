package assertly

import (
	"strings"

	"github.com/pkg/errors"
)

// AssertOkAsResult returns nil when err is nil, and a *Failure otherwise.
func AssertOkAsResult(err error) error {
	if err == nil {
		return nil
	}
	return failure("AssertOk(err)", Field{Label: "err", Value: err})
}

// AssertOk panics with a *Failure unless err is nil.
func AssertOk(err error) {
	must(AssertOkAsResult(err))
}

// DebugAssertOk is AssertOk unless built with the assertly_nodebug tag.
func DebugAssertOk(err error) {
	if debugAssertions {
		AssertOk(err)
	}
}

// AssureOk reports whether err is nil.
func AssureOk(err error) (bool, error) {
	return assure(AssertOkAsResult(err))
}

// AssertErrAsResult returns nil when err is non-nil, and a *Failure otherwise.
func AssertErrAsResult(err error) error {
	if err != nil {
		return nil
	}
	return failure("AssertErr(err)", Field{Label: "err", Value: err})
}

// AssertErr panics with a *Failure unless err is non-nil.
func AssertErr(err error) {
	must(AssertErrAsResult(err))
}

// DebugAssertErr is AssertErr unless built with the assertly_nodebug tag.
func DebugAssertErr(err error) {
	if debugAssertions {
		AssertErr(err)
	}
}

// AssureErr reports whether err is non-nil.
func AssureErr(err error) (bool, error) {
	return assure(AssertErrAsResult(err))
}

// AssertErrIsAsResult returns nil when err matches target as reported by
// errors.Is, following Unwrap chains.
func AssertErrIsAsResult(err, target error) error {
	if errors.Is(err, target) {
		return nil
	}
	return failure("AssertErrIs(err, target)",
		Field{Label: "err", Value: err},
		Field{Label: "target", Value: target},
	)
}

// AssertErrIs panics with a *Failure unless errors.Is(err, target).
func AssertErrIs(err, target error) {
	must(AssertErrIsAsResult(err, target))
}

// DebugAssertErrIs is AssertErrIs unless built with the assertly_nodebug tag.
func DebugAssertErrIs(err, target error) {
	if debugAssertions {
		AssertErrIs(err, target)
	}
}

// AssureErrIs reports whether errors.Is(err, target).
func AssureErrIs(err, target error) (bool, error) {
	return assure(AssertErrIsAsResult(err, target))
}

// AssertErrContainsAsResult returns nil when err is not nil and its message
// contains containee, and a *Failure otherwise.
func AssertErrContainsAsResult(err error, containee string) error {
	if err != nil && strings.Contains(err.Error(), containee) {
		return nil
	}
	return failure("AssertErrContains(err, containee)",
		Field{Label: "err", Value: err},
		Field{Label: "containee", Value: containee},
	)
}

// AssertErrContains panics with a *Failure unless err is not nil and its
// message contains containee.
func AssertErrContains(err error, containee string) {
	must(AssertErrContainsAsResult(err, containee))
}

// DebugAssertErrContains is AssertErrContains unless built with the
// assertly_nodebug tag.
func DebugAssertErrContains(err error, containee string) {
	if debugAssertions {
		AssertErrContains(err, containee)
	}
}

// AssureErrContains reports whether err is not nil and its message contains
// containee.
func AssureErrContains(err error, containee string) (bool, error) {
	return assure(AssertErrContainsAsResult(err, containee))
}
