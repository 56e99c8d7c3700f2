package assertly

import (
	"io/fs"
	"os/exec"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	t.Parallel()

	out, err := runCommand(helperCommand(t, "out:alfa", "err:bravo", "exit:3"))
	require.NoError(t, err)
	require.Equal(t, "alfa", out.stdout)
	require.Equal(t, "bravo", out.stderr)
	require.Equal(t, 3, out.exitCode)
	require.Equal(t, []string{helperArg, "out:alfa", "err:bravo", "exit:3"}, out.args)
	require.Equal(t, "alfa", out.stream(stdout))
	require.Equal(t, "bravo", out.stream(stderr))
}

func TestRunCommand_ProgramAsNamed(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not on PATH")
	}
	err := AssertCommandStdoutEqExprAsResult(exec.Command("sh", "-c", "printf alfa"), "bravo")
	require.EqualError(t, err, "assertion failed: `AssertCommandStdoutEqExpr(cmd, x)`\n"+
		" program: `\"sh\"`,\n"+
		"    args: `[\"-c\" \"printf alfa\"]`,\n"+
		"  stdout: `\"alfa\"`,\n"+
		"       x: `\"bravo\"`")

	require.Equal(t, "/bin/true", programName(&exec.Cmd{Path: "/bin/true"}))
}

func TestRunCommand_KeepsCallerWriters(t *testing.T) {
	t.Parallel()

	var stdoutBuf, stderrBuf strings.Builder
	cmd := helperCommand(t, "out:alfa", "err:bravo")
	cmd.Stdout, cmd.Stderr = &stdoutBuf, &stderrBuf

	require.NoError(t, AssertCommandStdoutEqExprAsResult(cmd, "alfa"))
	require.Equal(t, "alfa", stdoutBuf.String())
	require.Equal(t, "bravo", stderrBuf.String())
}

func TestCommandStdout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func() error
		pass bool
	}{
		{"eq", func() error {
			return AssertCommandStdoutEqAsResult(helperCommand(t, "out:alfa"), helperCommand(t, "out:alfa"))
		}, true},
		{"eq fail", func() error {
			return AssertCommandStdoutEqAsResult(helperCommand(t, "out:alfa"), helperCommand(t, "out:bravo"))
		}, false},
		{"eq ignores stderr", func() error {
			return AssertCommandStdoutEqAsResult(helperCommand(t, "out:alfa", "err:x"), helperCommand(t, "out:alfa"))
		}, true},
		{"ne", func() error {
			return AssertCommandStdoutNeAsResult(helperCommand(t, "out:alfa"), helperCommand(t, "out:bravo"))
		}, true},
		{"lt", func() error {
			return AssertCommandStdoutLtAsResult(helperCommand(t, "out:alfa"), helperCommand(t, "out:bravo"))
		}, true},
		{"le", func() error {
			return AssertCommandStdoutLeAsResult(helperCommand(t, "out:alfa"), helperCommand(t, "out:alfa"))
		}, true},
		{"gt fail", func() error {
			return AssertCommandStdoutGtAsResult(helperCommand(t, "out:alfa"), helperCommand(t, "out:bravo"))
		}, false},
		{"ge", func() error {
			return AssertCommandStdoutGeAsResult(helperCommand(t, "out:bravo"), helperCommand(t, "out:alfa"))
		}, true},
		{"eq expr", func() error {
			return AssertCommandStdoutEqExprAsResult(helperCommand(t, "out:alfa", "exit:1"), "alfa")
		}, true},
		{"ne expr fail", func() error {
			return AssertCommandStdoutNeExprAsResult(helperCommand(t, "out:alfa"), "alfa")
		}, false},
		{"contains", func() error {
			return AssertCommandStdoutContainsAsResult(helperCommand(t, "out:alfa"), "lf")
		}, true},
		{"is match", func() error {
			return AssertCommandStdoutIsMatchAsResult(helperCommand(t, "out:alfa"), regexp.MustCompile(`^a.*a$`))
		}, true},
		{"is match fail", func() error {
			return AssertCommandStdoutIsMatchAsResult(helperCommand(t, "err:alfa"), regexp.MustCompile(`alfa`))
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.pass {
				require.NoError(t, err)
				return
			}
			var f *Failure
			require.True(t, errors.As(err, &f))
			require.NoError(t, f.Err)
		})
	}
}

func TestCommandStderr(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertCommandStderrEqAsResult(helperCommand(t, "err:alfa"), helperCommand(t, "out:x", "err:alfa")))
	require.Error(t, AssertCommandStderrEqAsResult(helperCommand(t, "err:alfa"), helperCommand(t, "out:alfa")))
	require.NoError(t, AssertCommandStderrNeAsResult(helperCommand(t, "err:alfa"), helperCommand(t)))
	require.NoError(t, AssertCommandStderrLtAsResult(helperCommand(t, "err:alfa"), helperCommand(t, "err:bravo")))
	require.NoError(t, AssertCommandStderrLeAsResult(helperCommand(t), helperCommand(t)))
	require.NoError(t, AssertCommandStderrGtAsResult(helperCommand(t, "err:b"), helperCommand(t, "err:a")))
	require.NoError(t, AssertCommandStderrGeAsResult(helperCommand(t, "err:b"), helperCommand(t, "err:b")))
	require.NoError(t, AssertCommandStderrEqExprAsResult(helperCommand(t, "err:alfa"), "alfa"))
	require.NoError(t, AssertCommandStderrNeExprAsResult(helperCommand(t, "out:alfa"), "alfa"))
	require.NoError(t, AssertCommandStderrContainsAsResult(helperCommand(t, "err:warning: low disk"), "warning"))
	require.NoError(t, AssertCommandStderrIsMatchAsResult(helperCommand(t, "err:code 42"), regexp.MustCompile(`code \d+`)))
	require.Error(t, AssertCommandStderrContainsAsResult(helperCommand(t, "out:warning"), "warning"))
}

func TestCommandMessage(t *testing.T) {
	t.Parallel()

	exe := helperProgram(t)
	err := AssertCommandStdoutEqExprAsResult(helperCommand(t, "out:alfa"), "bravo")
	require.EqualError(t, err, "assertion failed: `AssertCommandStdoutEqExpr(cmd, x)`\n"+
		" program: `\""+exe+"\"`,\n"+
		"    args: `[\"assertly-helper\" \"out:alfa\"]`,\n"+
		"  stdout: `\"alfa\"`,\n"+
		"       x: `\"bravo\"`")

	err = AssertCommandStderrEqAsResult(helperCommand(t, "err:alfa"), helperCommand(t, "err:bravo"))
	require.Contains(t, err.Error(), "\n   left stderr: `\"alfa\"`,\n")
	require.Contains(t, err.Error(), "\n  right stderr: `\"bravo\"`")
}

func TestCommand_NotStarted(t *testing.T) {
	t.Parallel()

	missing := t.TempDir() + "/missing-program"

	err := AssertCommandStdoutEqAsResult(helperCommand(t), exec.Command(missing))
	var f *Failure
	require.True(t, errors.As(err, &f))
	require.ErrorIs(t, f.Err, fs.ErrNotExist)
	require.Equal(t, "right run error", f.Fields[len(f.Fields)-1].Label)

	ok, aerr := AssureCommandStdoutContains(exec.Command(missing), "")
	require.False(t, ok)
	require.ErrorIs(t, aerr, fs.ErrNotExist)

	ok, aerr = AssureStatusSuccess(exec.Command(missing))
	require.False(t, ok)
	require.ErrorIs(t, aerr, fs.ErrNotExist)
}

func TestProgramArgs(t *testing.T) {
	t.Parallel()

	exe := helperProgram(t)
	args := func(a ...string) []string { return append([]string{helperArg}, a...) }

	require.NoError(t, AssertProgramArgsStdoutEqAsResult(exe, args("out:alfa"), exe, args("out:alfa", "err:x")))
	require.Error(t, AssertProgramArgsStdoutEqAsResult(exe, args("out:alfa"), exe, args("out:bravo")))
	require.NoError(t, AssertProgramArgsStdoutNeAsResult(exe, args("out:alfa"), exe, args("out:bravo")))
	require.NoError(t, AssertProgramArgsStdoutLtAsResult(exe, args("out:alfa"), exe, args("out:bravo")))
	require.NoError(t, AssertProgramArgsStdoutLeAsResult(exe, args(), exe, args()))
	require.NoError(t, AssertProgramArgsStdoutGtAsResult(exe, args("out:b"), exe, args("out:a")))
	require.NoError(t, AssertProgramArgsStdoutGeAsResult(exe, args("out:b"), exe, args("out:a")))
	require.NoError(t, AssertProgramArgsStdoutEqExprAsResult(exe, args("out:alfa"), "alfa"))
	require.NoError(t, AssertProgramArgsStdoutNeExprAsResult(exe, args("out:alfa"), "bravo"))
	require.NoError(t, AssertProgramArgsStdoutContainsAsResult(exe, args("out:alfa"), "lf"))
	require.NoError(t, AssertProgramArgsStdoutIsMatchAsResult(exe, args("out:alfa"), regexp.MustCompile(`^alfa$`)))

	require.NoError(t, AssertProgramArgsStderrEqAsResult(exe, args("err:alfa"), exe, args("err:alfa")))
	require.NoError(t, AssertProgramArgsStderrNeAsResult(exe, args("err:alfa"), exe, args("err:bravo")))
	require.NoError(t, AssertProgramArgsStderrLtAsResult(exe, args("err:a"), exe, args("err:b")))
	require.NoError(t, AssertProgramArgsStderrLeAsResult(exe, args("err:a"), exe, args("err:a")))
	require.NoError(t, AssertProgramArgsStderrGtAsResult(exe, args("err:b"), exe, args("err:a")))
	require.NoError(t, AssertProgramArgsStderrGeAsResult(exe, args("err:b"), exe, args("err:b")))
	require.NoError(t, AssertProgramArgsStderrEqExprAsResult(exe, args("err:alfa"), "alfa"))
	require.NoError(t, AssertProgramArgsStderrNeExprAsResult(exe, args("err:alfa"), "bravo"))
	require.NoError(t, AssertProgramArgsStderrContainsAsResult(exe, args("err:alfa"), "alf"))
	require.NoError(t, AssertProgramArgsStderrIsMatchAsResult(exe, args("err:alfa"), regexp.MustCompile(`a$`)))
	require.Error(t, AssertProgramArgsStderrIsMatchAsResult(exe, args("out:alfa"), regexp.MustCompile(`a$`)))

	err := AssertProgramArgsStdoutEqAsResult(exe, args("out:alfa"), exe, args("out:bravo"))
	require.Contains(t, err.Error(), "`AssertProgramArgsStdoutEq(aProgram, aArgs, bProgram, bArgs)`")
	require.Contains(t, err.Error(), "\n     left args: `[\"assertly-helper\" \"out:alfa\"]`,\n")
}

func TestStatus(t *testing.T) {
	t.Parallel()

	require.NoError(t, AssertStatusSuccessAsResult(helperCommand(t)))
	require.Error(t, AssertStatusSuccessAsResult(helperCommand(t, "exit:1")))
	require.NoError(t, AssertStatusFailureAsResult(helperCommand(t, "exit:2")))
	require.Error(t, AssertStatusFailureAsResult(helperCommand(t)))
	require.NoError(t, AssertStatusCodeEqAsResult(helperCommand(t, "exit:7"), 7))
	require.Error(t, AssertStatusCodeEqAsResult(helperCommand(t, "exit:7"), 8))

	exe := helperProgram(t)
	require.EqualError(t, AssertStatusCodeEqAsResult(helperCommand(t, "exit:7"), 8),
		"assertion failed: `AssertStatusCodeEq(cmd, code)`\n"+
			"   program: `\""+exe+"\"`,\n"+
			"      args: `[\"assertly-helper\" \"exit:7\"]`,\n"+
			" exit code: `7`,\n"+
			"      code: `8`")

	require.Panics(t, func() { AssertStatusSuccess(helperCommand(t, "exit:1")) })
	ok, err := AssureStatusFailure(helperCommand(t))
	require.False(t, ok)
	require.NoError(t, err)
}
