package assertly

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(b), nil
}

func fsReadPairAsResult(call string, o op, aPath, bPath string) error {
	a, err := readFile(aPath)
	if err != nil {
		return broken(call, err, "left read error", Field{Label: "left path", Value: aPath})
	}
	b, err := readFile(bPath)
	if err != nil {
		return broken(call, err, "right read error", Field{Label: "right path", Value: bPath})
	}
	if compareOrdered(o, a, b) {
		return nil
	}
	fields := FilePair{
		LeftPath:      aPath,
		LeftContents:  a,
		RightPath:     bPath,
		RightContents: b,
	}.Fields()
	return failure(call, append(fields, diffFields(a, b)...)...)
}

func fsReadExprAsResult(call string, o op, path, x string) error {
	contents, err := readFile(path)
	if err != nil {
		return broken(call, err, "read error", Field{Label: "path", Value: path})
	}
	if compareOrdered(o, contents, x) {
		return nil
	}
	fields := []Field{
		{Label: "path", Value: path},
		{Label: "contents", Value: contents},
		{Label: "x", Value: x},
	}
	return failure(call, append(fields, diffFields(contents, x)...)...)
}

// AssertFsReadToStringEqAsResult returns nil when the files at aPath and bPath
// hold the same contents. A file that cannot be read yields a *Failure whose
// Err is set; multi-line contents that differ come with a unified diff.
func AssertFsReadToStringEqAsResult(aPath, bPath string) error {
	return fsReadPairAsResult("AssertFsReadToStringEq(aPath, bPath)", opEq, aPath, bPath)
}

// AssertFsReadToStringEq panics with a *Failure unless the contents of aPath ==
// the contents of bPath.
func AssertFsReadToStringEq(aPath, bPath string) {
	must(AssertFsReadToStringEqAsResult(aPath, bPath))
}

// DebugAssertFsReadToStringEq is AssertFsReadToStringEq unless built with the
// assertly_nodebug tag.
func DebugAssertFsReadToStringEq(aPath, bPath string) {
	if debugAssertions {
		AssertFsReadToStringEq(aPath, bPath)
	}
}

// AssureFsReadToStringEq reports whether the contents of aPath == the contents
// of bPath.
func AssureFsReadToStringEq(aPath, bPath string) (bool, error) {
	return assure(AssertFsReadToStringEqAsResult(aPath, bPath))
}

// AssertFsReadToStringNeAsResult returns nil when the contents of aPath != the
// contents of bPath, and a *Failure otherwise.
func AssertFsReadToStringNeAsResult(aPath, bPath string) error {
	return fsReadPairAsResult("AssertFsReadToStringNe(aPath, bPath)", opNe, aPath, bPath)
}

// AssertFsReadToStringNe panics with a *Failure unless the contents of aPath !=
// the contents of bPath.
func AssertFsReadToStringNe(aPath, bPath string) {
	must(AssertFsReadToStringNeAsResult(aPath, bPath))
}

// DebugAssertFsReadToStringNe is AssertFsReadToStringNe unless built with the
// assertly_nodebug tag.
func DebugAssertFsReadToStringNe(aPath, bPath string) {
	if debugAssertions {
		AssertFsReadToStringNe(aPath, bPath)
	}
}

// AssureFsReadToStringNe reports whether the contents of aPath != the contents
// of bPath.
func AssureFsReadToStringNe(aPath, bPath string) (bool, error) {
	return assure(AssertFsReadToStringNeAsResult(aPath, bPath))
}

// AssertFsReadToStringLtAsResult returns nil when the contents of aPath < the
// contents of bPath, and a *Failure otherwise.
func AssertFsReadToStringLtAsResult(aPath, bPath string) error {
	return fsReadPairAsResult("AssertFsReadToStringLt(aPath, bPath)", opLt, aPath, bPath)
}

// AssertFsReadToStringLt panics with a *Failure unless the contents of aPath <
// the contents of bPath.
func AssertFsReadToStringLt(aPath, bPath string) {
	must(AssertFsReadToStringLtAsResult(aPath, bPath))
}

// DebugAssertFsReadToStringLt is AssertFsReadToStringLt unless built with the
// assertly_nodebug tag.
func DebugAssertFsReadToStringLt(aPath, bPath string) {
	if debugAssertions {
		AssertFsReadToStringLt(aPath, bPath)
	}
}

// AssureFsReadToStringLt reports whether the contents of aPath < the contents
// of bPath.
func AssureFsReadToStringLt(aPath, bPath string) (bool, error) {
	return assure(AssertFsReadToStringLtAsResult(aPath, bPath))
}

// AssertFsReadToStringLeAsResult returns nil when the contents of aPath <= the
// contents of bPath, and a *Failure otherwise.
func AssertFsReadToStringLeAsResult(aPath, bPath string) error {
	return fsReadPairAsResult("AssertFsReadToStringLe(aPath, bPath)", opLe, aPath, bPath)
}

// AssertFsReadToStringLe panics with a *Failure unless the contents of aPath <=
// the contents of bPath.
func AssertFsReadToStringLe(aPath, bPath string) {
	must(AssertFsReadToStringLeAsResult(aPath, bPath))
}

// DebugAssertFsReadToStringLe is AssertFsReadToStringLe unless built with the
// assertly_nodebug tag.
func DebugAssertFsReadToStringLe(aPath, bPath string) {
	if debugAssertions {
		AssertFsReadToStringLe(aPath, bPath)
	}
}

// AssureFsReadToStringLe reports whether the contents of aPath <= the contents
// of bPath.
func AssureFsReadToStringLe(aPath, bPath string) (bool, error) {
	return assure(AssertFsReadToStringLeAsResult(aPath, bPath))
}

// AssertFsReadToStringGtAsResult returns nil when the contents of aPath > the
// contents of bPath, and a *Failure otherwise.
func AssertFsReadToStringGtAsResult(aPath, bPath string) error {
	return fsReadPairAsResult("AssertFsReadToStringGt(aPath, bPath)", opGt, aPath, bPath)
}

// AssertFsReadToStringGt panics with a *Failure unless the contents of aPath >
// the contents of bPath.
func AssertFsReadToStringGt(aPath, bPath string) {
	must(AssertFsReadToStringGtAsResult(aPath, bPath))
}

// DebugAssertFsReadToStringGt is AssertFsReadToStringGt unless built with the
// assertly_nodebug tag.
func DebugAssertFsReadToStringGt(aPath, bPath string) {
	if debugAssertions {
		AssertFsReadToStringGt(aPath, bPath)
	}
}

// AssureFsReadToStringGt reports whether the contents of aPath > the contents
// of bPath.
func AssureFsReadToStringGt(aPath, bPath string) (bool, error) {
	return assure(AssertFsReadToStringGtAsResult(aPath, bPath))
}

// AssertFsReadToStringGeAsResult returns nil when the contents of aPath >= the
// contents of bPath, and a *Failure otherwise.
func AssertFsReadToStringGeAsResult(aPath, bPath string) error {
	return fsReadPairAsResult("AssertFsReadToStringGe(aPath, bPath)", opGe, aPath, bPath)
}

// AssertFsReadToStringGe panics with a *Failure unless the contents of aPath >=
// the contents of bPath.
func AssertFsReadToStringGe(aPath, bPath string) {
	must(AssertFsReadToStringGeAsResult(aPath, bPath))
}

// DebugAssertFsReadToStringGe is AssertFsReadToStringGe unless built with the
// assertly_nodebug tag.
func DebugAssertFsReadToStringGe(aPath, bPath string) {
	if debugAssertions {
		AssertFsReadToStringGe(aPath, bPath)
	}
}

// AssureFsReadToStringGe reports whether the contents of aPath >= the contents
// of bPath.
func AssureFsReadToStringGe(aPath, bPath string) (bool, error) {
	return assure(AssertFsReadToStringGeAsResult(aPath, bPath))
}

// AssertFsReadToStringEqExprAsResult returns nil when the contents of path ==
// x, and a *Failure otherwise.
func AssertFsReadToStringEqExprAsResult(path, x string) error {
	return fsReadExprAsResult("AssertFsReadToStringEqExpr(path, x)", opEq, path, x)
}

// AssertFsReadToStringEqExpr panics with a *Failure unless the contents of path
// == x.
func AssertFsReadToStringEqExpr(path, x string) {
	must(AssertFsReadToStringEqExprAsResult(path, x))
}

// DebugAssertFsReadToStringEqExpr is AssertFsReadToStringEqExpr unless built
// with the assertly_nodebug tag.
func DebugAssertFsReadToStringEqExpr(path, x string) {
	if debugAssertions {
		AssertFsReadToStringEqExpr(path, x)
	}
}

// AssureFsReadToStringEqExpr reports whether the contents of path == x.
func AssureFsReadToStringEqExpr(path, x string) (bool, error) {
	return assure(AssertFsReadToStringEqExprAsResult(path, x))
}

// AssertFsReadToStringNeExprAsResult returns nil when the contents of path !=
// x, and a *Failure otherwise.
func AssertFsReadToStringNeExprAsResult(path, x string) error {
	return fsReadExprAsResult("AssertFsReadToStringNeExpr(path, x)", opNe, path, x)
}

// AssertFsReadToStringNeExpr panics with a *Failure unless the contents of path
// != x.
func AssertFsReadToStringNeExpr(path, x string) {
	must(AssertFsReadToStringNeExprAsResult(path, x))
}

// DebugAssertFsReadToStringNeExpr is AssertFsReadToStringNeExpr unless built
// with the assertly_nodebug tag.
func DebugAssertFsReadToStringNeExpr(path, x string) {
	if debugAssertions {
		AssertFsReadToStringNeExpr(path, x)
	}
}

// AssureFsReadToStringNeExpr reports whether the contents of path != x.
func AssureFsReadToStringNeExpr(path, x string) (bool, error) {
	return assure(AssertFsReadToStringNeExprAsResult(path, x))
}

// AssertFsReadToStringContainsAsResult returns nil when the contents of path
// contain containee, and a *Failure otherwise.
func AssertFsReadToStringContainsAsResult(path, containee string) error {
	const call = "AssertFsReadToStringContains(path, containee)"
	contents, err := readFile(path)
	if err != nil {
		return broken(call, err, "read error", Field{Label: "path", Value: path})
	}
	if strings.Contains(contents, containee) {
		return nil
	}
	return failure(call,
		Field{Label: "path", Value: path},
		Field{Label: "contents", Value: contents},
		Field{Label: "containee", Value: containee},
	)
}

// AssertFsReadToStringContains panics with a *Failure unless the contents of
// path contain containee.
func AssertFsReadToStringContains(path, containee string) {
	must(AssertFsReadToStringContainsAsResult(path, containee))
}

// DebugAssertFsReadToStringContains is AssertFsReadToStringContains unless
// built with the assertly_nodebug tag.
func DebugAssertFsReadToStringContains(path, containee string) {
	if debugAssertions {
		AssertFsReadToStringContains(path, containee)
	}
}

// AssureFsReadToStringContains reports whether the contents of path contain
// containee.
func AssureFsReadToStringContains(path, containee string) (bool, error) {
	return assure(AssertFsReadToStringContainsAsResult(path, containee))
}

// AssertFsReadToStringIsMatchAsResult returns nil when matcher matches the
// contents of path, and a *Failure otherwise.
func AssertFsReadToStringIsMatchAsResult(path string, matcher *regexp.Regexp) error {
	const call = "AssertFsReadToStringIsMatch(path, matcher)"
	contents, err := readFile(path)
	if err != nil {
		return broken(call, err, "read error", Field{Label: "path", Value: path})
	}
	if matcher.MatchString(contents) {
		return nil
	}
	return failure(call,
		Field{Label: "path", Value: path},
		Field{Label: "contents", Value: contents},
		Field{Label: "matcher", Value: matcher.String()},
	)
}

// AssertFsReadToStringIsMatch panics with a *Failure unless matcher matches the
// contents of path.
func AssertFsReadToStringIsMatch(path string, matcher *regexp.Regexp) {
	must(AssertFsReadToStringIsMatchAsResult(path, matcher))
}

// DebugAssertFsReadToStringIsMatch is AssertFsReadToStringIsMatch unless built
// with the assertly_nodebug tag.
func DebugAssertFsReadToStringIsMatch(path string, matcher *regexp.Regexp) {
	if debugAssertions {
		AssertFsReadToStringIsMatch(path, matcher)
	}
}

// AssureFsReadToStringIsMatch reports whether matcher matches the contents of
// path.
func AssureFsReadToStringIsMatch(path string, matcher *regexp.Regexp) (bool, error) {
	return assure(AssertFsReadToStringIsMatchAsResult(path, matcher))
}
