package assertly

import (
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read")
	}
	return string(b), nil
}

func ioReadPairAsResult(call string, o op, a, b io.Reader) error {
	as, err := readAll(a)
	if err != nil {
		return broken(call, err, "left read error")
	}
	bs, err := readAll(b)
	if err != nil {
		return broken(call, err, "right read error", Field{Label: "left contents", Value: as})
	}
	if compareOrdered(o, as, bs) {
		return nil
	}
	fields := ReaderPair{LeftContents: as, RightContents: bs}.Fields()
	return failure(call, append(fields, diffFields(as, bs)...)...)
}

func ioReadExprAsResult(call string, o op, r io.Reader, x string) error {
	contents, err := readAll(r)
	if err != nil {
		return broken(call, err, "read error")
	}
	if compareOrdered(o, contents, x) {
		return nil
	}
	fields := []Field{
		{Label: "contents", Value: contents},
		{Label: "x", Value: x},
	}
	return failure(call, append(fields, diffFields(contents, x)...)...)
}

// AssertIoReadToStringEqAsResult reads a and b to EOF and returns nil when
// their contents are equal. A read error yields a *Failure whose Err is set.
func AssertIoReadToStringEqAsResult(a, b io.Reader) error {
	return ioReadPairAsResult("AssertIoReadToStringEq(a, b)", opEq, a, b)
}

// AssertIoReadToStringEq panics with a *Failure unless the contents of a == the
// contents of b.
func AssertIoReadToStringEq(a, b io.Reader) {
	must(AssertIoReadToStringEqAsResult(a, b))
}

// DebugAssertIoReadToStringEq is AssertIoReadToStringEq unless built with the
// assertly_nodebug tag.
func DebugAssertIoReadToStringEq(a, b io.Reader) {
	if debugAssertions {
		AssertIoReadToStringEq(a, b)
	}
}

// AssureIoReadToStringEq reports whether the contents of a == the contents of
// b.
func AssureIoReadToStringEq(a, b io.Reader) (bool, error) {
	return assure(AssertIoReadToStringEqAsResult(a, b))
}

// AssertIoReadToStringNeAsResult returns nil when the contents of a != the
// contents of b, and a *Failure otherwise.
func AssertIoReadToStringNeAsResult(a, b io.Reader) error {
	return ioReadPairAsResult("AssertIoReadToStringNe(a, b)", opNe, a, b)
}

// AssertIoReadToStringNe panics with a *Failure unless the contents of a != the
// contents of b.
func AssertIoReadToStringNe(a, b io.Reader) {
	must(AssertIoReadToStringNeAsResult(a, b))
}

// DebugAssertIoReadToStringNe is AssertIoReadToStringNe unless built with the
// assertly_nodebug tag.
func DebugAssertIoReadToStringNe(a, b io.Reader) {
	if debugAssertions {
		AssertIoReadToStringNe(a, b)
	}
}

// AssureIoReadToStringNe reports whether the contents of a != the contents of
// b.
func AssureIoReadToStringNe(a, b io.Reader) (bool, error) {
	return assure(AssertIoReadToStringNeAsResult(a, b))
}

// AssertIoReadToStringLtAsResult returns nil when the contents of a < the
// contents of b, and a *Failure otherwise.
func AssertIoReadToStringLtAsResult(a, b io.Reader) error {
	return ioReadPairAsResult("AssertIoReadToStringLt(a, b)", opLt, a, b)
}

// AssertIoReadToStringLt panics with a *Failure unless the contents of a < the
// contents of b.
func AssertIoReadToStringLt(a, b io.Reader) {
	must(AssertIoReadToStringLtAsResult(a, b))
}

// DebugAssertIoReadToStringLt is AssertIoReadToStringLt unless built with the
// assertly_nodebug tag.
func DebugAssertIoReadToStringLt(a, b io.Reader) {
	if debugAssertions {
		AssertIoReadToStringLt(a, b)
	}
}

// AssureIoReadToStringLt reports whether the contents of a < the contents of b.
func AssureIoReadToStringLt(a, b io.Reader) (bool, error) {
	return assure(AssertIoReadToStringLtAsResult(a, b))
}

// AssertIoReadToStringLeAsResult returns nil when the contents of a <= the
// contents of b, and a *Failure otherwise.
func AssertIoReadToStringLeAsResult(a, b io.Reader) error {
	return ioReadPairAsResult("AssertIoReadToStringLe(a, b)", opLe, a, b)
}

// AssertIoReadToStringLe panics with a *Failure unless the contents of a <= the
// contents of b.
func AssertIoReadToStringLe(a, b io.Reader) {
	must(AssertIoReadToStringLeAsResult(a, b))
}

// DebugAssertIoReadToStringLe is AssertIoReadToStringLe unless built with the
// assertly_nodebug tag.
func DebugAssertIoReadToStringLe(a, b io.Reader) {
	if debugAssertions {
		AssertIoReadToStringLe(a, b)
	}
}

// AssureIoReadToStringLe reports whether the contents of a <= the contents of
// b.
func AssureIoReadToStringLe(a, b io.Reader) (bool, error) {
	return assure(AssertIoReadToStringLeAsResult(a, b))
}

// AssertIoReadToStringGtAsResult returns nil when the contents of a > the
// contents of b, and a *Failure otherwise.
func AssertIoReadToStringGtAsResult(a, b io.Reader) error {
	return ioReadPairAsResult("AssertIoReadToStringGt(a, b)", opGt, a, b)
}

// AssertIoReadToStringGt panics with a *Failure unless the contents of a > the
// contents of b.
func AssertIoReadToStringGt(a, b io.Reader) {
	must(AssertIoReadToStringGtAsResult(a, b))
}

// DebugAssertIoReadToStringGt is AssertIoReadToStringGt unless built with the
// assertly_nodebug tag.
func DebugAssertIoReadToStringGt(a, b io.Reader) {
	if debugAssertions {
		AssertIoReadToStringGt(a, b)
	}
}

// AssureIoReadToStringGt reports whether the contents of a > the contents of b.
func AssureIoReadToStringGt(a, b io.Reader) (bool, error) {
	return assure(AssertIoReadToStringGtAsResult(a, b))
}

// AssertIoReadToStringGeAsResult returns nil when the contents of a >= the
// contents of b, and a *Failure otherwise.
func AssertIoReadToStringGeAsResult(a, b io.Reader) error {
	return ioReadPairAsResult("AssertIoReadToStringGe(a, b)", opGe, a, b)
}

// AssertIoReadToStringGe panics with a *Failure unless the contents of a >= the
// contents of b.
func AssertIoReadToStringGe(a, b io.Reader) {
	must(AssertIoReadToStringGeAsResult(a, b))
}

// DebugAssertIoReadToStringGe is AssertIoReadToStringGe unless built with the
// assertly_nodebug tag.
func DebugAssertIoReadToStringGe(a, b io.Reader) {
	if debugAssertions {
		AssertIoReadToStringGe(a, b)
	}
}

// AssureIoReadToStringGe reports whether the contents of a >= the contents of
// b.
func AssureIoReadToStringGe(a, b io.Reader) (bool, error) {
	return assure(AssertIoReadToStringGeAsResult(a, b))
}

// AssertIoReadToStringEqExprAsResult returns nil when the contents of r == x,
// and a *Failure otherwise.
func AssertIoReadToStringEqExprAsResult(r io.Reader, x string) error {
	return ioReadExprAsResult("AssertIoReadToStringEqExpr(r, x)", opEq, r, x)
}

// AssertIoReadToStringEqExpr panics with a *Failure unless the contents of r ==
// x.
func AssertIoReadToStringEqExpr(r io.Reader, x string) {
	must(AssertIoReadToStringEqExprAsResult(r, x))
}

// DebugAssertIoReadToStringEqExpr is AssertIoReadToStringEqExpr unless built
// with the assertly_nodebug tag.
func DebugAssertIoReadToStringEqExpr(r io.Reader, x string) {
	if debugAssertions {
		AssertIoReadToStringEqExpr(r, x)
	}
}

// AssureIoReadToStringEqExpr reports whether the contents of r == x.
func AssureIoReadToStringEqExpr(r io.Reader, x string) (bool, error) {
	return assure(AssertIoReadToStringEqExprAsResult(r, x))
}

// AssertIoReadToStringNeExprAsResult returns nil when the contents of r != x,
// and a *Failure otherwise.
func AssertIoReadToStringNeExprAsResult(r io.Reader, x string) error {
	return ioReadExprAsResult("AssertIoReadToStringNeExpr(r, x)", opNe, r, x)
}

// AssertIoReadToStringNeExpr panics with a *Failure unless the contents of r !=
// x.
func AssertIoReadToStringNeExpr(r io.Reader, x string) {
	must(AssertIoReadToStringNeExprAsResult(r, x))
}

// DebugAssertIoReadToStringNeExpr is AssertIoReadToStringNeExpr unless built
// with the assertly_nodebug tag.
func DebugAssertIoReadToStringNeExpr(r io.Reader, x string) {
	if debugAssertions {
		AssertIoReadToStringNeExpr(r, x)
	}
}

// AssureIoReadToStringNeExpr reports whether the contents of r != x.
func AssureIoReadToStringNeExpr(r io.Reader, x string) (bool, error) {
	return assure(AssertIoReadToStringNeExprAsResult(r, x))
}

// AssertIoReadToStringContainsAsResult returns nil when the contents of r
// contain containee, and a *Failure otherwise.
func AssertIoReadToStringContainsAsResult(r io.Reader, containee string) error {
	const call = "AssertIoReadToStringContains(r, containee)"
	contents, err := readAll(r)
	if err != nil {
		return broken(call, err, "read error")
	}
	if strings.Contains(contents, containee) {
		return nil
	}
	return failure(call,
		Field{Label: "contents", Value: contents},
		Field{Label: "containee", Value: containee},
	)
}

// AssertIoReadToStringContains panics with a *Failure unless the contents of r
// contain containee.
func AssertIoReadToStringContains(r io.Reader, containee string) {
	must(AssertIoReadToStringContainsAsResult(r, containee))
}

// DebugAssertIoReadToStringContains is AssertIoReadToStringContains unless
// built with the assertly_nodebug tag.
func DebugAssertIoReadToStringContains(r io.Reader, containee string) {
	if debugAssertions {
		AssertIoReadToStringContains(r, containee)
	}
}

// AssureIoReadToStringContains reports whether the contents of r contain
// containee.
func AssureIoReadToStringContains(r io.Reader, containee string) (bool, error) {
	return assure(AssertIoReadToStringContainsAsResult(r, containee))
}

// AssertIoReadToStringIsMatchAsResult returns nil when matcher matches the
// contents of r, and a *Failure otherwise.
func AssertIoReadToStringIsMatchAsResult(r io.Reader, matcher *regexp.Regexp) error {
	const call = "AssertIoReadToStringIsMatch(r, matcher)"
	contents, err := readAll(r)
	if err != nil {
		return broken(call, err, "read error")
	}
	if matcher.MatchString(contents) {
		return nil
	}
	return failure(call,
		Field{Label: "contents", Value: contents},
		Field{Label: "matcher", Value: matcher.String()},
	)
}

// AssertIoReadToStringIsMatch panics with a *Failure unless matcher matches the
// contents of r.
func AssertIoReadToStringIsMatch(r io.Reader, matcher *regexp.Regexp) {
	must(AssertIoReadToStringIsMatchAsResult(r, matcher))
}

// DebugAssertIoReadToStringIsMatch is AssertIoReadToStringIsMatch unless built
// with the assertly_nodebug tag.
func DebugAssertIoReadToStringIsMatch(r io.Reader, matcher *regexp.Regexp) {
	if debugAssertions {
		AssertIoReadToStringIsMatch(r, matcher)
	}
}

// AssureIoReadToStringIsMatch reports whether matcher matches the contents of
// r.
func AssureIoReadToStringIsMatch(r io.Reader, matcher *regexp.Regexp) (bool, error) {
	return assure(AssertIoReadToStringIsMatchAsResult(r, matcher))
}
