package assertly

import (
	"github.com/bmatcuk/doublestar"
	"github.com/pkg/errors"
)

func globAsResult(call string, want bool, pattern, name string) error {
	fields := []Field{
		{Label: "pattern", Value: pattern},
		{Label: "name", Value: name},
	}
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		return broken(call, errors.Wrapf(err, "glob %q", pattern), "error", fields...)
	}
	if matched == want {
		return nil
	}
	return failure(call, fields...)
}

// AssertGlobMatchAsResult returns nil when the glob pattern matches name.
//
// Patterns follow doublestar syntax: "*" matches within one path segment,
// "**" across segments, and "{a,b}" alternatives are supported. A malformed
// pattern yields a *Failure whose Err is set.
func AssertGlobMatchAsResult(pattern, name string) error {
	return globAsResult("AssertGlobMatch(pattern, name)", true, pattern, name)
}

// AssertGlobMatch panics with a *Failure unless the glob pattern matches name.
func AssertGlobMatch(pattern, name string) {
	must(AssertGlobMatchAsResult(pattern, name))
}

// DebugAssertGlobMatch is AssertGlobMatch unless built with the
// assertly_nodebug tag.
func DebugAssertGlobMatch(pattern, name string) {
	if debugAssertions {
		AssertGlobMatch(pattern, name)
	}
}

// AssureGlobMatch reports whether the glob pattern matches name.
func AssureGlobMatch(pattern, name string) (bool, error) {
	return assure(AssertGlobMatchAsResult(pattern, name))
}

// AssertNotGlobMatchAsResult returns nil when the glob pattern does not match
// name, and a *Failure otherwise.
func AssertNotGlobMatchAsResult(pattern, name string) error {
	return globAsResult("AssertNotGlobMatch(pattern, name)", false, pattern, name)
}

// AssertNotGlobMatch panics with a *Failure unless the glob pattern does not
// match name.
func AssertNotGlobMatch(pattern, name string) {
	must(AssertNotGlobMatchAsResult(pattern, name))
}

// DebugAssertNotGlobMatch is AssertNotGlobMatch unless built with the
// assertly_nodebug tag.
func DebugAssertNotGlobMatch(pattern, name string) {
	if debugAssertions {
		AssertNotGlobMatch(pattern, name)
	}
}

// AssureNotGlobMatch reports whether the glob pattern does not match name.
func AssureNotGlobMatch(pattern, name string) (bool, error) {
	return assure(AssertNotGlobMatchAsResult(pattern, name))
}
