package assertly

import (
	"bytes"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	stdout = "stdout"
	stderr = "stderr"
)

// commandOutput is what a finished command left behind.
type commandOutput struct {
	program  string
	args     []string
	stdout   string
	stderr   string
	exitCode int
}

func (c commandOutput) stream(name string) string {
	if name == stderr {
		return c.stderr
	}
	return c.stdout
}

func (c commandOutput) fields() []Field {
	return []Field{
		{Label: "program", Value: c.program},
		{Label: "args", Value: argsValue(c.args)},
	}
}

// runCommand runs cmd to completion, capturing both output streams. Writers
// already set on cmd.Stdout or cmd.Stderr still receive the output. Exiting
// with a non-zero status is not an error; failing to start, or any other run
// error, is.
func runCommand(cmd *exec.Cmd) (commandOutput, error) {
	out := commandOutput{program: programName(cmd)}
	if len(cmd.Args) > 1 {
		out.args = cmd.Args[1:]
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(cmd.Stdout, &stdoutBuf)
	cmd.Stderr = tee(cmd.Stderr, &stderrBuf)
	err := cmd.Run()
	out.stdout, out.stderr = stdoutBuf.String(), stderrBuf.String()
	if cmd.ProcessState != nil {
		out.exitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return out, errors.Wrapf(err, "run %s", out.program)
	}
	return out, nil
}

// programName is the program as the caller named it, not the path LookPath
// resolved it to.
func programName(cmd *exec.Cmd) string {
	if len(cmd.Args) > 0 {
		return cmd.Args[0]
	}
	return cmd.Path
}

func tee(w io.Writer, buf *bytes.Buffer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}

func commandPairAsResult(call, stream string, o op, a, b *exec.Cmd) error {
	ao, err := runCommand(a)
	if err != nil {
		return broken(call, err, "left run error", Field{Label: "left program", Value: ao.program})
	}
	bo, err := runCommand(b)
	if err != nil {
		return broken(call, err, "right run error", Field{Label: "right program", Value: bo.program})
	}
	as, bs := ao.stream(stream), bo.stream(stream)
	if compareOrdered(o, as, bs) {
		return nil
	}
	fields := CommandPair{
		Stream:       stream,
		LeftProgram:  ao.program,
		LeftArgs:     ao.args,
		LeftOutput:   as,
		RightProgram: bo.program,
		RightArgs:    bo.args,
		RightOutput:  bs,
	}.Fields()
	return failure(call, append(fields, diffFields(as, bs)...)...)
}

func commandExprAsResult(call, stream string, o op, cmd *exec.Cmd, x string) error {
	out, err := runCommand(cmd)
	if err != nil {
		return broken(call, err, "run error", out.fields()...)
	}
	got := out.stream(stream)
	if compareOrdered(o, got, x) {
		return nil
	}
	fields := append(out.fields(),
		Field{Label: stream, Value: got},
		Field{Label: "x", Value: x},
	)
	return failure(call, append(fields, diffFields(got, x)...)...)
}

func commandContainsAsResult(call, stream string, cmd *exec.Cmd, containee string) error {
	out, err := runCommand(cmd)
	if err != nil {
		return broken(call, err, "run error", out.fields()...)
	}
	got := out.stream(stream)
	if strings.Contains(got, containee) {
		return nil
	}
	return failure(call, append(out.fields(),
		Field{Label: stream, Value: got},
		Field{Label: "containee", Value: containee},
	)...)
}

func commandIsMatchAsResult(call, stream string, cmd *exec.Cmd, matcher *regexp.Regexp) error {
	out, err := runCommand(cmd)
	if err != nil {
		return broken(call, err, "run error", out.fields()...)
	}
	got := out.stream(stream)
	if matcher.MatchString(got) {
		return nil
	}
	return failure(call, append(out.fields(),
		Field{Label: stream, Value: got},
		Field{Label: "matcher", Value: matcher.String()},
	)...)
}

// AssertCommandStdoutEqAsResult runs a and b and returns nil when they wrote
// the same standard output.
//
// Both commands are run with their Stdout and Stderr replaced by buffers; an
// exec.Cmd cannot be run twice. A command that exits with a non-zero status
// is still compared, one that cannot be started yields a *Failure whose Err
// is set.
func AssertCommandStdoutEqAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStdoutEq(a, b)", stdout, opEq, a, b)
}

// AssertCommandStdoutEq panics with a *Failure unless the stdout of a == the
// stdout of b.
func AssertCommandStdoutEq(a, b *exec.Cmd) {
	must(AssertCommandStdoutEqAsResult(a, b))
}

// DebugAssertCommandStdoutEq is AssertCommandStdoutEq unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStdoutEq(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStdoutEq(a, b)
	}
}

// AssureCommandStdoutEq reports whether the stdout of a == the stdout of b.
func AssureCommandStdoutEq(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStdoutEqAsResult(a, b))
}

// AssertCommandStdoutNeAsResult returns nil when the stdout of a != the stdout
// of b, and a *Failure otherwise.
func AssertCommandStdoutNeAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStdoutNe(a, b)", stdout, opNe, a, b)
}

// AssertCommandStdoutNe panics with a *Failure unless the stdout of a != the
// stdout of b.
func AssertCommandStdoutNe(a, b *exec.Cmd) {
	must(AssertCommandStdoutNeAsResult(a, b))
}

// DebugAssertCommandStdoutNe is AssertCommandStdoutNe unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStdoutNe(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStdoutNe(a, b)
	}
}

// AssureCommandStdoutNe reports whether the stdout of a != the stdout of b.
func AssureCommandStdoutNe(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStdoutNeAsResult(a, b))
}

// AssertCommandStdoutLtAsResult returns nil when the stdout of a < the stdout
// of b, and a *Failure otherwise.
func AssertCommandStdoutLtAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStdoutLt(a, b)", stdout, opLt, a, b)
}

// AssertCommandStdoutLt panics with a *Failure unless the stdout of a < the
// stdout of b.
func AssertCommandStdoutLt(a, b *exec.Cmd) {
	must(AssertCommandStdoutLtAsResult(a, b))
}

// DebugAssertCommandStdoutLt is AssertCommandStdoutLt unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStdoutLt(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStdoutLt(a, b)
	}
}

// AssureCommandStdoutLt reports whether the stdout of a < the stdout of b.
func AssureCommandStdoutLt(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStdoutLtAsResult(a, b))
}

// AssertCommandStdoutLeAsResult returns nil when the stdout of a <= the stdout
// of b, and a *Failure otherwise.
func AssertCommandStdoutLeAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStdoutLe(a, b)", stdout, opLe, a, b)
}

// AssertCommandStdoutLe panics with a *Failure unless the stdout of a <= the
// stdout of b.
func AssertCommandStdoutLe(a, b *exec.Cmd) {
	must(AssertCommandStdoutLeAsResult(a, b))
}

// DebugAssertCommandStdoutLe is AssertCommandStdoutLe unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStdoutLe(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStdoutLe(a, b)
	}
}

// AssureCommandStdoutLe reports whether the stdout of a <= the stdout of b.
func AssureCommandStdoutLe(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStdoutLeAsResult(a, b))
}

// AssertCommandStdoutGtAsResult returns nil when the stdout of a > the stdout
// of b, and a *Failure otherwise.
func AssertCommandStdoutGtAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStdoutGt(a, b)", stdout, opGt, a, b)
}

// AssertCommandStdoutGt panics with a *Failure unless the stdout of a > the
// stdout of b.
func AssertCommandStdoutGt(a, b *exec.Cmd) {
	must(AssertCommandStdoutGtAsResult(a, b))
}

// DebugAssertCommandStdoutGt is AssertCommandStdoutGt unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStdoutGt(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStdoutGt(a, b)
	}
}

// AssureCommandStdoutGt reports whether the stdout of a > the stdout of b.
func AssureCommandStdoutGt(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStdoutGtAsResult(a, b))
}

// AssertCommandStdoutGeAsResult returns nil when the stdout of a >= the stdout
// of b, and a *Failure otherwise.
func AssertCommandStdoutGeAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStdoutGe(a, b)", stdout, opGe, a, b)
}

// AssertCommandStdoutGe panics with a *Failure unless the stdout of a >= the
// stdout of b.
func AssertCommandStdoutGe(a, b *exec.Cmd) {
	must(AssertCommandStdoutGeAsResult(a, b))
}

// DebugAssertCommandStdoutGe is AssertCommandStdoutGe unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStdoutGe(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStdoutGe(a, b)
	}
}

// AssureCommandStdoutGe reports whether the stdout of a >= the stdout of b.
func AssureCommandStdoutGe(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStdoutGeAsResult(a, b))
}

// AssertCommandStdoutEqExprAsResult returns nil when the stdout of cmd == x,
// and a *Failure otherwise.
func AssertCommandStdoutEqExprAsResult(cmd *exec.Cmd, x string) error {
	return commandExprAsResult("AssertCommandStdoutEqExpr(cmd, x)", stdout, opEq, cmd, x)
}

// AssertCommandStdoutEqExpr panics with a *Failure unless the stdout of cmd ==
// x.
func AssertCommandStdoutEqExpr(cmd *exec.Cmd, x string) {
	must(AssertCommandStdoutEqExprAsResult(cmd, x))
}

// DebugAssertCommandStdoutEqExpr is AssertCommandStdoutEqExpr unless built with
// the assertly_nodebug tag.
func DebugAssertCommandStdoutEqExpr(cmd *exec.Cmd, x string) {
	if debugAssertions {
		AssertCommandStdoutEqExpr(cmd, x)
	}
}

// AssureCommandStdoutEqExpr reports whether the stdout of cmd == x.
func AssureCommandStdoutEqExpr(cmd *exec.Cmd, x string) (bool, error) {
	return assure(AssertCommandStdoutEqExprAsResult(cmd, x))
}

// AssertCommandStdoutNeExprAsResult returns nil when the stdout of cmd != x,
// and a *Failure otherwise.
func AssertCommandStdoutNeExprAsResult(cmd *exec.Cmd, x string) error {
	return commandExprAsResult("AssertCommandStdoutNeExpr(cmd, x)", stdout, opNe, cmd, x)
}

// AssertCommandStdoutNeExpr panics with a *Failure unless the stdout of cmd !=
// x.
func AssertCommandStdoutNeExpr(cmd *exec.Cmd, x string) {
	must(AssertCommandStdoutNeExprAsResult(cmd, x))
}

// DebugAssertCommandStdoutNeExpr is AssertCommandStdoutNeExpr unless built with
// the assertly_nodebug tag.
func DebugAssertCommandStdoutNeExpr(cmd *exec.Cmd, x string) {
	if debugAssertions {
		AssertCommandStdoutNeExpr(cmd, x)
	}
}

// AssureCommandStdoutNeExpr reports whether the stdout of cmd != x.
func AssureCommandStdoutNeExpr(cmd *exec.Cmd, x string) (bool, error) {
	return assure(AssertCommandStdoutNeExprAsResult(cmd, x))
}

// AssertCommandStdoutContainsAsResult returns nil when the stdout of cmd
// contains containee, and a *Failure otherwise.
func AssertCommandStdoutContainsAsResult(cmd *exec.Cmd, containee string) error {
	return commandContainsAsResult("AssertCommandStdoutContains(cmd, containee)", stdout, cmd, containee)
}

// AssertCommandStdoutContains panics with a *Failure unless the stdout of cmd
// contains containee.
func AssertCommandStdoutContains(cmd *exec.Cmd, containee string) {
	must(AssertCommandStdoutContainsAsResult(cmd, containee))
}

// DebugAssertCommandStdoutContains is AssertCommandStdoutContains unless built
// with the assertly_nodebug tag.
func DebugAssertCommandStdoutContains(cmd *exec.Cmd, containee string) {
	if debugAssertions {
		AssertCommandStdoutContains(cmd, containee)
	}
}

// AssureCommandStdoutContains reports whether the stdout of cmd contains
// containee.
func AssureCommandStdoutContains(cmd *exec.Cmd, containee string) (bool, error) {
	return assure(AssertCommandStdoutContainsAsResult(cmd, containee))
}

// AssertCommandStdoutIsMatchAsResult returns nil when matcher matches the
// stdout of cmd, and a *Failure otherwise.
func AssertCommandStdoutIsMatchAsResult(cmd *exec.Cmd, matcher *regexp.Regexp) error {
	return commandIsMatchAsResult("AssertCommandStdoutIsMatch(cmd, matcher)", stdout, cmd, matcher)
}

// AssertCommandStdoutIsMatch panics with a *Failure unless matcher matches the
// stdout of cmd.
func AssertCommandStdoutIsMatch(cmd *exec.Cmd, matcher *regexp.Regexp) {
	must(AssertCommandStdoutIsMatchAsResult(cmd, matcher))
}

// DebugAssertCommandStdoutIsMatch is AssertCommandStdoutIsMatch unless built
// with the assertly_nodebug tag.
func DebugAssertCommandStdoutIsMatch(cmd *exec.Cmd, matcher *regexp.Regexp) {
	if debugAssertions {
		AssertCommandStdoutIsMatch(cmd, matcher)
	}
}

// AssureCommandStdoutIsMatch reports whether matcher matches the stdout of cmd.
func AssureCommandStdoutIsMatch(cmd *exec.Cmd, matcher *regexp.Regexp) (bool, error) {
	return assure(AssertCommandStdoutIsMatchAsResult(cmd, matcher))
}

// AssertCommandStderrEqAsResult returns nil when the stderr of a == the stderr
// of b, and a *Failure otherwise.
func AssertCommandStderrEqAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStderrEq(a, b)", stderr, opEq, a, b)
}

// AssertCommandStderrEq panics with a *Failure unless the stderr of a == the
// stderr of b.
func AssertCommandStderrEq(a, b *exec.Cmd) {
	must(AssertCommandStderrEqAsResult(a, b))
}

// DebugAssertCommandStderrEq is AssertCommandStderrEq unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStderrEq(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStderrEq(a, b)
	}
}

// AssureCommandStderrEq reports whether the stderr of a == the stderr of b.
func AssureCommandStderrEq(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStderrEqAsResult(a, b))
}

// AssertCommandStderrNeAsResult returns nil when the stderr of a != the stderr
// of b, and a *Failure otherwise.
func AssertCommandStderrNeAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStderrNe(a, b)", stderr, opNe, a, b)
}

// AssertCommandStderrNe panics with a *Failure unless the stderr of a != the
// stderr of b.
func AssertCommandStderrNe(a, b *exec.Cmd) {
	must(AssertCommandStderrNeAsResult(a, b))
}

// DebugAssertCommandStderrNe is AssertCommandStderrNe unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStderrNe(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStderrNe(a, b)
	}
}

// AssureCommandStderrNe reports whether the stderr of a != the stderr of b.
func AssureCommandStderrNe(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStderrNeAsResult(a, b))
}

// AssertCommandStderrLtAsResult returns nil when the stderr of a < the stderr
// of b, and a *Failure otherwise.
func AssertCommandStderrLtAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStderrLt(a, b)", stderr, opLt, a, b)
}

// AssertCommandStderrLt panics with a *Failure unless the stderr of a < the
// stderr of b.
func AssertCommandStderrLt(a, b *exec.Cmd) {
	must(AssertCommandStderrLtAsResult(a, b))
}

// DebugAssertCommandStderrLt is AssertCommandStderrLt unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStderrLt(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStderrLt(a, b)
	}
}

// AssureCommandStderrLt reports whether the stderr of a < the stderr of b.
func AssureCommandStderrLt(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStderrLtAsResult(a, b))
}

// AssertCommandStderrLeAsResult returns nil when the stderr of a <= the stderr
// of b, and a *Failure otherwise.
func AssertCommandStderrLeAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStderrLe(a, b)", stderr, opLe, a, b)
}

// AssertCommandStderrLe panics with a *Failure unless the stderr of a <= the
// stderr of b.
func AssertCommandStderrLe(a, b *exec.Cmd) {
	must(AssertCommandStderrLeAsResult(a, b))
}

// DebugAssertCommandStderrLe is AssertCommandStderrLe unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStderrLe(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStderrLe(a, b)
	}
}

// AssureCommandStderrLe reports whether the stderr of a <= the stderr of b.
func AssureCommandStderrLe(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStderrLeAsResult(a, b))
}

// AssertCommandStderrGtAsResult returns nil when the stderr of a > the stderr
// of b, and a *Failure otherwise.
func AssertCommandStderrGtAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStderrGt(a, b)", stderr, opGt, a, b)
}

// AssertCommandStderrGt panics with a *Failure unless the stderr of a > the
// stderr of b.
func AssertCommandStderrGt(a, b *exec.Cmd) {
	must(AssertCommandStderrGtAsResult(a, b))
}

// DebugAssertCommandStderrGt is AssertCommandStderrGt unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStderrGt(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStderrGt(a, b)
	}
}

// AssureCommandStderrGt reports whether the stderr of a > the stderr of b.
func AssureCommandStderrGt(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStderrGtAsResult(a, b))
}

// AssertCommandStderrGeAsResult returns nil when the stderr of a >= the stderr
// of b, and a *Failure otherwise.
func AssertCommandStderrGeAsResult(a, b *exec.Cmd) error {
	return commandPairAsResult("AssertCommandStderrGe(a, b)", stderr, opGe, a, b)
}

// AssertCommandStderrGe panics with a *Failure unless the stderr of a >= the
// stderr of b.
func AssertCommandStderrGe(a, b *exec.Cmd) {
	must(AssertCommandStderrGeAsResult(a, b))
}

// DebugAssertCommandStderrGe is AssertCommandStderrGe unless built with the
// assertly_nodebug tag.
func DebugAssertCommandStderrGe(a, b *exec.Cmd) {
	if debugAssertions {
		AssertCommandStderrGe(a, b)
	}
}

// AssureCommandStderrGe reports whether the stderr of a >= the stderr of b.
func AssureCommandStderrGe(a, b *exec.Cmd) (bool, error) {
	return assure(AssertCommandStderrGeAsResult(a, b))
}

// AssertCommandStderrEqExprAsResult returns nil when the stderr of cmd == x,
// and a *Failure otherwise.
func AssertCommandStderrEqExprAsResult(cmd *exec.Cmd, x string) error {
	return commandExprAsResult("AssertCommandStderrEqExpr(cmd, x)", stderr, opEq, cmd, x)
}

// AssertCommandStderrEqExpr panics with a *Failure unless the stderr of cmd ==
// x.
func AssertCommandStderrEqExpr(cmd *exec.Cmd, x string) {
	must(AssertCommandStderrEqExprAsResult(cmd, x))
}

// DebugAssertCommandStderrEqExpr is AssertCommandStderrEqExpr unless built with
// the assertly_nodebug tag.
func DebugAssertCommandStderrEqExpr(cmd *exec.Cmd, x string) {
	if debugAssertions {
		AssertCommandStderrEqExpr(cmd, x)
	}
}

// AssureCommandStderrEqExpr reports whether the stderr of cmd == x.
func AssureCommandStderrEqExpr(cmd *exec.Cmd, x string) (bool, error) {
	return assure(AssertCommandStderrEqExprAsResult(cmd, x))
}

// AssertCommandStderrNeExprAsResult returns nil when the stderr of cmd != x,
// and a *Failure otherwise.
func AssertCommandStderrNeExprAsResult(cmd *exec.Cmd, x string) error {
	return commandExprAsResult("AssertCommandStderrNeExpr(cmd, x)", stderr, opNe, cmd, x)
}

// AssertCommandStderrNeExpr panics with a *Failure unless the stderr of cmd !=
// x.
func AssertCommandStderrNeExpr(cmd *exec.Cmd, x string) {
	must(AssertCommandStderrNeExprAsResult(cmd, x))
}

// DebugAssertCommandStderrNeExpr is AssertCommandStderrNeExpr unless built with
// the assertly_nodebug tag.
func DebugAssertCommandStderrNeExpr(cmd *exec.Cmd, x string) {
	if debugAssertions {
		AssertCommandStderrNeExpr(cmd, x)
	}
}

// AssureCommandStderrNeExpr reports whether the stderr of cmd != x.
func AssureCommandStderrNeExpr(cmd *exec.Cmd, x string) (bool, error) {
	return assure(AssertCommandStderrNeExprAsResult(cmd, x))
}

// AssertCommandStderrContainsAsResult returns nil when the stderr of cmd
// contains containee, and a *Failure otherwise.
func AssertCommandStderrContainsAsResult(cmd *exec.Cmd, containee string) error {
	return commandContainsAsResult("AssertCommandStderrContains(cmd, containee)", stderr, cmd, containee)
}

// AssertCommandStderrContains panics with a *Failure unless the stderr of cmd
// contains containee.
func AssertCommandStderrContains(cmd *exec.Cmd, containee string) {
	must(AssertCommandStderrContainsAsResult(cmd, containee))
}

// DebugAssertCommandStderrContains is AssertCommandStderrContains unless built
// with the assertly_nodebug tag.
func DebugAssertCommandStderrContains(cmd *exec.Cmd, containee string) {
	if debugAssertions {
		AssertCommandStderrContains(cmd, containee)
	}
}

// AssureCommandStderrContains reports whether the stderr of cmd contains
// containee.
func AssureCommandStderrContains(cmd *exec.Cmd, containee string) (bool, error) {
	return assure(AssertCommandStderrContainsAsResult(cmd, containee))
}

// AssertCommandStderrIsMatchAsResult returns nil when matcher matches the
// stderr of cmd, and a *Failure otherwise.
func AssertCommandStderrIsMatchAsResult(cmd *exec.Cmd, matcher *regexp.Regexp) error {
	return commandIsMatchAsResult("AssertCommandStderrIsMatch(cmd, matcher)", stderr, cmd, matcher)
}

// AssertCommandStderrIsMatch panics with a *Failure unless matcher matches the
// stderr of cmd.
func AssertCommandStderrIsMatch(cmd *exec.Cmd, matcher *regexp.Regexp) {
	must(AssertCommandStderrIsMatchAsResult(cmd, matcher))
}

// DebugAssertCommandStderrIsMatch is AssertCommandStderrIsMatch unless built
// with the assertly_nodebug tag.
func DebugAssertCommandStderrIsMatch(cmd *exec.Cmd, matcher *regexp.Regexp) {
	if debugAssertions {
		AssertCommandStderrIsMatch(cmd, matcher)
	}
}

// AssureCommandStderrIsMatch reports whether matcher matches the stderr of cmd.
func AssureCommandStderrIsMatch(cmd *exec.Cmd, matcher *regexp.Regexp) (bool, error) {
	return assure(AssertCommandStderrIsMatchAsResult(cmd, matcher))
}
