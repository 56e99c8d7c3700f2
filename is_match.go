package assertly

import "regexp"

func matchFields(matcher *regexp.Regexp, matchee string) []Field {
	return []Field{
		{Label: "matcher", Value: matcher.String()},
		{Label: "matchee", Value: matchee},
	}
}

// AssertIsMatchAsResult returns nil when the regular expression matcher
// matches matchee anywhere; anchor the expression to match the whole string.
func AssertIsMatchAsResult(matcher *regexp.Regexp, matchee string) error {
	if matcher.MatchString(matchee) {
		return nil
	}
	return failure("AssertIsMatch(matcher, matchee)", matchFields(matcher, matchee)...)
}

// AssertIsMatch panics with a *Failure unless matcher matches matchee.
func AssertIsMatch(matcher *regexp.Regexp, matchee string) {
	must(AssertIsMatchAsResult(matcher, matchee))
}

// DebugAssertIsMatch is AssertIsMatch unless built with the assertly_nodebug
// tag.
func DebugAssertIsMatch(matcher *regexp.Regexp, matchee string) {
	if debugAssertions {
		AssertIsMatch(matcher, matchee)
	}
}

// AssureIsMatch reports whether matcher matches matchee.
func AssureIsMatch(matcher *regexp.Regexp, matchee string) (bool, error) {
	return assure(AssertIsMatchAsResult(matcher, matchee))
}

// AssertNotMatchAsResult returns nil when matcher does not match matchee, and a
// *Failure otherwise.
func AssertNotMatchAsResult(matcher *regexp.Regexp, matchee string) error {
	if !matcher.MatchString(matchee) {
		return nil
	}
	return failure("AssertNotMatch(matcher, matchee)", matchFields(matcher, matchee)...)
}

// AssertNotMatch panics with a *Failure unless matcher does not match matchee.
func AssertNotMatch(matcher *regexp.Regexp, matchee string) {
	must(AssertNotMatchAsResult(matcher, matchee))
}

// DebugAssertNotMatch is AssertNotMatch unless built with the assertly_nodebug
// tag.
func DebugAssertNotMatch(matcher *regexp.Regexp, matchee string) {
	if debugAssertions {
		AssertNotMatch(matcher, matchee)
	}
}

// AssureNotMatch reports whether matcher does not match matchee.
func AssureNotMatch(matcher *regexp.Regexp, matchee string) (bool, error) {
	return assure(AssertNotMatchAsResult(matcher, matchee))
}
