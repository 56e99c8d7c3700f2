package assertly

import "os/exec"

func statusAsResult(call string, cmd *exec.Cmd, holds func(code int) bool, extra ...Field) error {
	out, err := runCommand(cmd)
	if err != nil {
		return broken(call, err, "run error", out.fields()...)
	}
	if holds(out.exitCode) {
		return nil
	}
	fields := append(out.fields(), Field{Label: "exit code", Value: out.exitCode})
	return failure(call, append(fields, extra...)...)
}

// AssertStatusSuccessAsResult returns nil when cmd runs and exits with status
// 0, and a *Failure otherwise.
func AssertStatusSuccessAsResult(cmd *exec.Cmd) error {
	return statusAsResult("AssertStatusSuccess(cmd)", cmd, func(code int) bool { return code == 0 })
}

// AssertStatusSuccess panics with a *Failure unless cmd runs and exits with
// status 0.
func AssertStatusSuccess(cmd *exec.Cmd) {
	must(AssertStatusSuccessAsResult(cmd))
}

// DebugAssertStatusSuccess is AssertStatusSuccess unless built with the
// assertly_nodebug tag.
func DebugAssertStatusSuccess(cmd *exec.Cmd) {
	if debugAssertions {
		AssertStatusSuccess(cmd)
	}
}

// AssureStatusSuccess reports whether cmd runs and exits with status 0.
func AssureStatusSuccess(cmd *exec.Cmd) (bool, error) {
	return assure(AssertStatusSuccessAsResult(cmd))
}

// AssertStatusFailureAsResult returns nil when cmd runs and exits with a
// non-zero status, and a *Failure otherwise.
func AssertStatusFailureAsResult(cmd *exec.Cmd) error {
	return statusAsResult("AssertStatusFailure(cmd)", cmd, func(code int) bool { return code != 0 })
}

// AssertStatusFailure panics with a *Failure unless cmd runs and exits with a
// non-zero status.
func AssertStatusFailure(cmd *exec.Cmd) {
	must(AssertStatusFailureAsResult(cmd))
}

// DebugAssertStatusFailure is AssertStatusFailure unless built with the
// assertly_nodebug tag.
func DebugAssertStatusFailure(cmd *exec.Cmd) {
	if debugAssertions {
		AssertStatusFailure(cmd)
	}
}

// AssureStatusFailure reports whether cmd runs and exits with a non-zero
// status.
func AssureStatusFailure(cmd *exec.Cmd) (bool, error) {
	return assure(AssertStatusFailureAsResult(cmd))
}

// AssertStatusCodeEqAsResult returns nil when cmd runs and exits with status
// code, and a *Failure otherwise.
func AssertStatusCodeEqAsResult(cmd *exec.Cmd, code int) error {
	return statusAsResult("AssertStatusCodeEq(cmd, code)", cmd, func(got int) bool { return got == code },
		Field{Label: "code", Value: code})
}

// AssertStatusCodeEq panics with a *Failure unless cmd runs and exits with
// status code.
func AssertStatusCodeEq(cmd *exec.Cmd, code int) {
	must(AssertStatusCodeEqAsResult(cmd, code))
}

// DebugAssertStatusCodeEq is AssertStatusCodeEq unless built with the
// assertly_nodebug tag.
func DebugAssertStatusCodeEq(cmd *exec.Cmd, code int) {
	if debugAssertions {
		AssertStatusCodeEq(cmd, code)
	}
}

// AssureStatusCodeEq reports whether cmd runs and exits with status code.
func AssureStatusCodeEq(cmd *exec.Cmd, code int) (bool, error) {
	return assure(AssertStatusCodeEqAsResult(cmd, code))
}
