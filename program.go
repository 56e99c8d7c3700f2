package assertly

import (
	"os/exec"
	"regexp"
)

// AssertProgramArgsStdoutEqAsResult runs aProgram with aArgs and bProgram
// with bArgs and returns nil when both wrote the same standard output. It is
// AssertCommandStdoutEqAsResult for commands built with exec.Command.
func AssertProgramArgsStdoutEqAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStdoutEq(aProgram, aArgs, bProgram, bArgs)", stdout, opEq,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStdoutEq panics with a *Failure unless the stdout of
// aProgram == the stdout of bProgram.
func AssertProgramArgsStdoutEq(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStdoutEqAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStdoutEq is AssertProgramArgsStdoutEq unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutEq(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStdoutEq(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStdoutEq reports whether the stdout of aProgram == the
// stdout of bProgram.
func AssureProgramArgsStdoutEq(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStdoutEqAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStdoutNeAsResult returns nil when the stdout of aProgram !=
// the stdout of bProgram, and a *Failure otherwise.
func AssertProgramArgsStdoutNeAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStdoutNe(aProgram, aArgs, bProgram, bArgs)", stdout, opNe,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStdoutNe panics with a *Failure unless the stdout of
// aProgram != the stdout of bProgram.
func AssertProgramArgsStdoutNe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStdoutNeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStdoutNe is AssertProgramArgsStdoutNe unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutNe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStdoutNe(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStdoutNe reports whether the stdout of aProgram != the
// stdout of bProgram.
func AssureProgramArgsStdoutNe(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStdoutNeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStdoutLtAsResult returns nil when the stdout of aProgram <
// the stdout of bProgram, and a *Failure otherwise.
func AssertProgramArgsStdoutLtAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStdoutLt(aProgram, aArgs, bProgram, bArgs)", stdout, opLt,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStdoutLt panics with a *Failure unless the stdout of
// aProgram < the stdout of bProgram.
func AssertProgramArgsStdoutLt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStdoutLtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStdoutLt is AssertProgramArgsStdoutLt unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutLt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStdoutLt(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStdoutLt reports whether the stdout of aProgram < the stdout
// of bProgram.
func AssureProgramArgsStdoutLt(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStdoutLtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStdoutLeAsResult returns nil when the stdout of aProgram <=
// the stdout of bProgram, and a *Failure otherwise.
func AssertProgramArgsStdoutLeAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStdoutLe(aProgram, aArgs, bProgram, bArgs)", stdout, opLe,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStdoutLe panics with a *Failure unless the stdout of
// aProgram <= the stdout of bProgram.
func AssertProgramArgsStdoutLe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStdoutLeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStdoutLe is AssertProgramArgsStdoutLe unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutLe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStdoutLe(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStdoutLe reports whether the stdout of aProgram <= the
// stdout of bProgram.
func AssureProgramArgsStdoutLe(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStdoutLeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStdoutGtAsResult returns nil when the stdout of aProgram >
// the stdout of bProgram, and a *Failure otherwise.
func AssertProgramArgsStdoutGtAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStdoutGt(aProgram, aArgs, bProgram, bArgs)", stdout, opGt,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStdoutGt panics with a *Failure unless the stdout of
// aProgram > the stdout of bProgram.
func AssertProgramArgsStdoutGt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStdoutGtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStdoutGt is AssertProgramArgsStdoutGt unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutGt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStdoutGt(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStdoutGt reports whether the stdout of aProgram > the stdout
// of bProgram.
func AssureProgramArgsStdoutGt(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStdoutGtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStdoutGeAsResult returns nil when the stdout of aProgram >=
// the stdout of bProgram, and a *Failure otherwise.
func AssertProgramArgsStdoutGeAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStdoutGe(aProgram, aArgs, bProgram, bArgs)", stdout, opGe,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStdoutGe panics with a *Failure unless the stdout of
// aProgram >= the stdout of bProgram.
func AssertProgramArgsStdoutGe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStdoutGeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStdoutGe is AssertProgramArgsStdoutGe unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutGe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStdoutGe(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStdoutGe reports whether the stdout of aProgram >= the
// stdout of bProgram.
func AssureProgramArgsStdoutGe(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStdoutGeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStdoutEqExprAsResult returns nil when the stdout of program
// == x, and a *Failure otherwise.
func AssertProgramArgsStdoutEqExprAsResult(program string, args []string, x string) error {
	return commandExprAsResult("AssertProgramArgsStdoutEqExpr(program, args, x)", stdout, opEq,
		exec.Command(program, args...), x)
}

// AssertProgramArgsStdoutEqExpr panics with a *Failure unless the stdout of
// program == x.
func AssertProgramArgsStdoutEqExpr(program string, args []string, x string) {
	must(AssertProgramArgsStdoutEqExprAsResult(program, args, x))
}

// DebugAssertProgramArgsStdoutEqExpr is AssertProgramArgsStdoutEqExpr unless
// built with the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutEqExpr(program string, args []string, x string) {
	if debugAssertions {
		AssertProgramArgsStdoutEqExpr(program, args, x)
	}
}

// AssureProgramArgsStdoutEqExpr reports whether the stdout of program == x.
func AssureProgramArgsStdoutEqExpr(program string, args []string, x string) (bool, error) {
	return assure(AssertProgramArgsStdoutEqExprAsResult(program, args, x))
}

// AssertProgramArgsStdoutNeExprAsResult returns nil when the stdout of program
// != x, and a *Failure otherwise.
func AssertProgramArgsStdoutNeExprAsResult(program string, args []string, x string) error {
	return commandExprAsResult("AssertProgramArgsStdoutNeExpr(program, args, x)", stdout, opNe,
		exec.Command(program, args...), x)
}

// AssertProgramArgsStdoutNeExpr panics with a *Failure unless the stdout of
// program != x.
func AssertProgramArgsStdoutNeExpr(program string, args []string, x string) {
	must(AssertProgramArgsStdoutNeExprAsResult(program, args, x))
}

// DebugAssertProgramArgsStdoutNeExpr is AssertProgramArgsStdoutNeExpr unless
// built with the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutNeExpr(program string, args []string, x string) {
	if debugAssertions {
		AssertProgramArgsStdoutNeExpr(program, args, x)
	}
}

// AssureProgramArgsStdoutNeExpr reports whether the stdout of program != x.
func AssureProgramArgsStdoutNeExpr(program string, args []string, x string) (bool, error) {
	return assure(AssertProgramArgsStdoutNeExprAsResult(program, args, x))
}

// AssertProgramArgsStdoutContainsAsResult returns nil when the stdout of
// program contains containee, and a *Failure otherwise.
func AssertProgramArgsStdoutContainsAsResult(program string, args []string, containee string) error {
	return commandContainsAsResult("AssertProgramArgsStdoutContains(program, args, containee)", stdout,
		exec.Command(program, args...), containee)
}

// AssertProgramArgsStdoutContains panics with a *Failure unless the stdout of
// program contains containee.
func AssertProgramArgsStdoutContains(program string, args []string, containee string) {
	must(AssertProgramArgsStdoutContainsAsResult(program, args, containee))
}

// DebugAssertProgramArgsStdoutContains is AssertProgramArgsStdoutContains
// unless built with the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutContains(program string, args []string, containee string) {
	if debugAssertions {
		AssertProgramArgsStdoutContains(program, args, containee)
	}
}

// AssureProgramArgsStdoutContains reports whether the stdout of program
// contains containee.
func AssureProgramArgsStdoutContains(program string, args []string, containee string) (bool, error) {
	return assure(AssertProgramArgsStdoutContainsAsResult(program, args, containee))
}

// AssertProgramArgsStdoutIsMatchAsResult returns nil when matcher matches the
// stdout of program, and a *Failure otherwise.
func AssertProgramArgsStdoutIsMatchAsResult(program string, args []string, matcher *regexp.Regexp) error {
	return commandIsMatchAsResult("AssertProgramArgsStdoutIsMatch(program, args, matcher)", stdout,
		exec.Command(program, args...), matcher)
}

// AssertProgramArgsStdoutIsMatch panics with a *Failure unless matcher matches
// the stdout of program.
func AssertProgramArgsStdoutIsMatch(program string, args []string, matcher *regexp.Regexp) {
	must(AssertProgramArgsStdoutIsMatchAsResult(program, args, matcher))
}

// DebugAssertProgramArgsStdoutIsMatch is AssertProgramArgsStdoutIsMatch unless
// built with the assertly_nodebug tag.
func DebugAssertProgramArgsStdoutIsMatch(program string, args []string, matcher *regexp.Regexp) {
	if debugAssertions {
		AssertProgramArgsStdoutIsMatch(program, args, matcher)
	}
}

// AssureProgramArgsStdoutIsMatch reports whether matcher matches the stdout of
// program.
func AssureProgramArgsStdoutIsMatch(program string, args []string, matcher *regexp.Regexp) (bool, error) {
	return assure(AssertProgramArgsStdoutIsMatchAsResult(program, args, matcher))
}

// AssertProgramArgsStderrEqAsResult returns nil when the stderr of aProgram ==
// the stderr of bProgram, and a *Failure otherwise.
func AssertProgramArgsStderrEqAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStderrEq(aProgram, aArgs, bProgram, bArgs)", stderr, opEq,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStderrEq panics with a *Failure unless the stderr of
// aProgram == the stderr of bProgram.
func AssertProgramArgsStderrEq(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStderrEqAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStderrEq is AssertProgramArgsStderrEq unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStderrEq(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStderrEq(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStderrEq reports whether the stderr of aProgram == the
// stderr of bProgram.
func AssureProgramArgsStderrEq(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStderrEqAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStderrNeAsResult returns nil when the stderr of aProgram !=
// the stderr of bProgram, and a *Failure otherwise.
func AssertProgramArgsStderrNeAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStderrNe(aProgram, aArgs, bProgram, bArgs)", stderr, opNe,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStderrNe panics with a *Failure unless the stderr of
// aProgram != the stderr of bProgram.
func AssertProgramArgsStderrNe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStderrNeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStderrNe is AssertProgramArgsStderrNe unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStderrNe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStderrNe(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStderrNe reports whether the stderr of aProgram != the
// stderr of bProgram.
func AssureProgramArgsStderrNe(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStderrNeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStderrLtAsResult returns nil when the stderr of aProgram <
// the stderr of bProgram, and a *Failure otherwise.
func AssertProgramArgsStderrLtAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStderrLt(aProgram, aArgs, bProgram, bArgs)", stderr, opLt,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStderrLt panics with a *Failure unless the stderr of
// aProgram < the stderr of bProgram.
func AssertProgramArgsStderrLt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStderrLtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStderrLt is AssertProgramArgsStderrLt unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStderrLt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStderrLt(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStderrLt reports whether the stderr of aProgram < the stderr
// of bProgram.
func AssureProgramArgsStderrLt(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStderrLtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStderrLeAsResult returns nil when the stderr of aProgram <=
// the stderr of bProgram, and a *Failure otherwise.
func AssertProgramArgsStderrLeAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStderrLe(aProgram, aArgs, bProgram, bArgs)", stderr, opLe,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStderrLe panics with a *Failure unless the stderr of
// aProgram <= the stderr of bProgram.
func AssertProgramArgsStderrLe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStderrLeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStderrLe is AssertProgramArgsStderrLe unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStderrLe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStderrLe(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStderrLe reports whether the stderr of aProgram <= the
// stderr of bProgram.
func AssureProgramArgsStderrLe(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStderrLeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStderrGtAsResult returns nil when the stderr of aProgram >
// the stderr of bProgram, and a *Failure otherwise.
func AssertProgramArgsStderrGtAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStderrGt(aProgram, aArgs, bProgram, bArgs)", stderr, opGt,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStderrGt panics with a *Failure unless the stderr of
// aProgram > the stderr of bProgram.
func AssertProgramArgsStderrGt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStderrGtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStderrGt is AssertProgramArgsStderrGt unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStderrGt(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStderrGt(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStderrGt reports whether the stderr of aProgram > the stderr
// of bProgram.
func AssureProgramArgsStderrGt(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStderrGtAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStderrGeAsResult returns nil when the stderr of aProgram >=
// the stderr of bProgram, and a *Failure otherwise.
func AssertProgramArgsStderrGeAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) error {
	return commandPairAsResult("AssertProgramArgsStderrGe(aProgram, aArgs, bProgram, bArgs)", stderr, opGe,
		exec.Command(aProgram, aArgs...), exec.Command(bProgram, bArgs...))
}

// AssertProgramArgsStderrGe panics with a *Failure unless the stderr of
// aProgram >= the stderr of bProgram.
func AssertProgramArgsStderrGe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	must(AssertProgramArgsStderrGeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// DebugAssertProgramArgsStderrGe is AssertProgramArgsStderrGe unless built with
// the assertly_nodebug tag.
func DebugAssertProgramArgsStderrGe(aProgram string, aArgs []string, bProgram string, bArgs []string) {
	if debugAssertions {
		AssertProgramArgsStderrGe(aProgram, aArgs, bProgram, bArgs)
	}
}

// AssureProgramArgsStderrGe reports whether the stderr of aProgram >= the
// stderr of bProgram.
func AssureProgramArgsStderrGe(aProgram string, aArgs []string, bProgram string, bArgs []string) (bool, error) {
	return assure(AssertProgramArgsStderrGeAsResult(aProgram, aArgs, bProgram, bArgs))
}

// AssertProgramArgsStderrEqExprAsResult returns nil when the stderr of program
// == x, and a *Failure otherwise.
func AssertProgramArgsStderrEqExprAsResult(program string, args []string, x string) error {
	return commandExprAsResult("AssertProgramArgsStderrEqExpr(program, args, x)", stderr, opEq,
		exec.Command(program, args...), x)
}

// AssertProgramArgsStderrEqExpr panics with a *Failure unless the stderr of
// program == x.
func AssertProgramArgsStderrEqExpr(program string, args []string, x string) {
	must(AssertProgramArgsStderrEqExprAsResult(program, args, x))
}

// DebugAssertProgramArgsStderrEqExpr is AssertProgramArgsStderrEqExpr unless
// built with the assertly_nodebug tag.
func DebugAssertProgramArgsStderrEqExpr(program string, args []string, x string) {
	if debugAssertions {
		AssertProgramArgsStderrEqExpr(program, args, x)
	}
}

// AssureProgramArgsStderrEqExpr reports whether the stderr of program == x.
func AssureProgramArgsStderrEqExpr(program string, args []string, x string) (bool, error) {
	return assure(AssertProgramArgsStderrEqExprAsResult(program, args, x))
}

// AssertProgramArgsStderrNeExprAsResult returns nil when the stderr of program
// != x, and a *Failure otherwise.
func AssertProgramArgsStderrNeExprAsResult(program string, args []string, x string) error {
	return commandExprAsResult("AssertProgramArgsStderrNeExpr(program, args, x)", stderr, opNe,
		exec.Command(program, args...), x)
}

// AssertProgramArgsStderrNeExpr panics with a *Failure unless the stderr of
// program != x.
func AssertProgramArgsStderrNeExpr(program string, args []string, x string) {
	must(AssertProgramArgsStderrNeExprAsResult(program, args, x))
}

// DebugAssertProgramArgsStderrNeExpr is AssertProgramArgsStderrNeExpr unless
// built with the assertly_nodebug tag.
func DebugAssertProgramArgsStderrNeExpr(program string, args []string, x string) {
	if debugAssertions {
		AssertProgramArgsStderrNeExpr(program, args, x)
	}
}

// AssureProgramArgsStderrNeExpr reports whether the stderr of program != x.
func AssureProgramArgsStderrNeExpr(program string, args []string, x string) (bool, error) {
	return assure(AssertProgramArgsStderrNeExprAsResult(program, args, x))
}

// AssertProgramArgsStderrContainsAsResult returns nil when the stderr of
// program contains containee, and a *Failure otherwise.
func AssertProgramArgsStderrContainsAsResult(program string, args []string, containee string) error {
	return commandContainsAsResult("AssertProgramArgsStderrContains(program, args, containee)", stderr,
		exec.Command(program, args...), containee)
}

// AssertProgramArgsStderrContains panics with a *Failure unless the stderr of
// program contains containee.
func AssertProgramArgsStderrContains(program string, args []string, containee string) {
	must(AssertProgramArgsStderrContainsAsResult(program, args, containee))
}

// DebugAssertProgramArgsStderrContains is AssertProgramArgsStderrContains
// unless built with the assertly_nodebug tag.
func DebugAssertProgramArgsStderrContains(program string, args []string, containee string) {
	if debugAssertions {
		AssertProgramArgsStderrContains(program, args, containee)
	}
}

// AssureProgramArgsStderrContains reports whether the stderr of program
// contains containee.
func AssureProgramArgsStderrContains(program string, args []string, containee string) (bool, error) {
	return assure(AssertProgramArgsStderrContainsAsResult(program, args, containee))
}

// AssertProgramArgsStderrIsMatchAsResult returns nil when matcher matches the
// stderr of program, and a *Failure otherwise.
func AssertProgramArgsStderrIsMatchAsResult(program string, args []string, matcher *regexp.Regexp) error {
	return commandIsMatchAsResult("AssertProgramArgsStderrIsMatch(program, args, matcher)", stderr,
		exec.Command(program, args...), matcher)
}

// AssertProgramArgsStderrIsMatch panics with a *Failure unless matcher matches
// the stderr of program.
func AssertProgramArgsStderrIsMatch(program string, args []string, matcher *regexp.Regexp) {
	must(AssertProgramArgsStderrIsMatchAsResult(program, args, matcher))
}

// DebugAssertProgramArgsStderrIsMatch is AssertProgramArgsStderrIsMatch unless
// built with the assertly_nodebug tag.
func DebugAssertProgramArgsStderrIsMatch(program string, args []string, matcher *regexp.Regexp) {
	if debugAssertions {
		AssertProgramArgsStderrIsMatch(program, args, matcher)
	}
}

// AssureProgramArgsStderrIsMatch reports whether matcher matches the stderr of
// program.
func AssureProgramArgsStderrIsMatch(program string, args []string, matcher *regexp.Regexp) (bool, error) {
	return assure(AssertProgramArgsStderrIsMatchAsResult(program, args, matcher))
}
