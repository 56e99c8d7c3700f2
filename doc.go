// Package assertly provides comparison assertions with uniform, descriptive
// failure messages.
//
// # Overview
//
// Every comparison is offered in four variants. For the equality comparison
// Eq they are:
//
//   - AssertEq(left, right)         - panics with a *Failure when left != right
//   - AssertEqAsResult(left, right) - returns nil or a *Failure
//   - DebugAssertEq(left, right)    - AssertEq, compiled out by the assertly_nodebug tag
//   - AssureEq(left, right)         - returns (true, nil), (false, nil) or (false, err)
//
// All four report the same message:
//
//	assertion failed: `AssertEq(left, right)`
//	  left: `1`,
//	 right: `2`
//
// # Families
//
// The comparisons are grouped in families sharing their message shape:
//
//   - Eq, Ne, Lt, Le, Gt, Ge       - two values, ordered with <, <=, ...
//   - DeepEq, DeepNe               - structural equality through go-cmp
//   - ApproxEq, ApproxNe           - floats within ApproxThreshold
//   - InDelta, InEpsilon           - absolute and relative tolerance
//   - InRange, NotInRange          - lo <= a <= hi
//   - AbsDiffEq ... AbsDiffGe      - |a-b| compared with x
//   - Nil, NotNil, Ok, Err, ErrIs, ErrContains
//   - Contains, ContainsElem, ContainsKey and their Not forms
//   - StartsWith, EndsWith and their Not forms
//   - IsMatch, NotMatch            - regular expressions
//   - GlobMatch, NotGlobMatch      - doublestar glob patterns
//   - IsEmpty, NotEmpty, LenEq ... LenGe, LenEqExpr ... LenGeExpr
//   - IterEq ... IterGe            - iter.Seq values, lexicographic order
//   - All, Any                     - predicates over slices
//   - SetEq, SetNe, SetSubset, SetSuperset, SetJoint, SetDisjoint
//   - BagEq, BagNe, BagSubbag, BagSuperbag
//   - FnEq ... FnGe, FnOkEq ... FnOkGe, FnErrEq ... FnErrGe
//   - FsReadToString...            - file contents
//   - IoReadToString...            - io.Reader contents
//   - CommandStdout..., CommandStderr...         - *exec.Cmd output
//   - ProgramArgsStdout..., ProgramArgsStderr... - program and args output
//   - StatusSuccess, StatusFailure, StatusCodeEq - exit status
//
// Names ending in Expr compare against a plain value x instead of a second
// source, e.g. AssertFsReadToStringEqExpr(path, "want").
//
// The command families run the *exec.Cmd they are given, so a Cmd can be
// passed to only one assertion. Output is captured while still reaching any
// Stdout or Stderr writer already set on the Cmd. Messages name the program
// as it was passed to exec.Command, not the path it resolved to.
//
// # Failures
//
// A *Failure holds the call text and the labeled fields of the message, so
// callers can inspect or re-render it:
//
//	err := assertly.AssertLtAsResult(3, 2)
//	var f *assertly.Failure
//	if errors.As(err, &f) {
//	    fmt.Println(f.Render(assertly.RenderOptions{Colorize: true}))
//	}
//
// Failure.Err is set when a comparison could not be performed, e.g. a file
// could not be read or a command could not be started. Assure variants
// return that error instead of false.
//
// Multi-line strings that differ are accompanied by a unified diff, and
// DeepEq failures by a cmp.Diff.
//
// # Custom assertions
//
// Message and the MsgWith helpers render the same layout for comparisons
// written outside this package:
//
//	msg := assertly.MsgWithPair("AssertSameOwner(left, right)", assertly.Pair{
//	    Left:  a.Owner,
//	    Right: b.Owner,
//	})
//
// # Testing
//
// Check and Require report AsResult errors on a testing.TB:
//
//	func TestOrder(t *testing.T) {
//	    assertly.Require(t, assertly.AssertOkAsResult(err))
//	    assertly.Check(t, assertly.AssertInRangeAsResult(order.Quantity, 1, 100))
//	}
package assertly
