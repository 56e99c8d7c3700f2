package assertly

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mgutz/ansi"
)

// failurePrefix starts every failure message.
const failurePrefix = "assertion failed:"

// Field is one labeled line of a failure message.
type Field struct {
	Label string
	Value any
}

// Block is a Field value rendered verbatim on the lines following its label,
// indented by four spaces. Diffs are carried as Blocks.
type Block string

// verbatim is rendered inside backticks without quoting.
type verbatim string

// RenderOptions controls how a Failure is rendered.
type RenderOptions struct {
	// Colorize adds ANSI color codes to the header and to diff lines.
	Colorize bool
}

// Message renders the failure message for call from the given fields.
//
// Labels are right-aligned to the widest label plus one space, values are
// wrapped in backticks and lines are separated by ",\n":
//
//	assertion failed: `AssertEq(left, right)`
//	  left: `1`,
//	 right: `2`
func Message(call string, fields ...Field) string {
	return renderMessage(call, fields, RenderOptions{})
}

func renderMessage(call string, fields []Field, opts RenderOptions) string {
	var b strings.Builder

	header := failurePrefix
	if opts.Colorize {
		header = ansi.Color(header, "red+b")
	}
	fmt.Fprintf(&b, "%s `%s`", header, call)

	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	width++

	for i, f := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", width-len(f.Label)))
		b.WriteString(f.Label)
		b.WriteString(":")

		if blk, ok := f.Value.(Block); ok {
			for _, line := range strings.Split(strings.TrimRight(string(blk), "\n"), "\n") {
				b.WriteString("\n    ")
				b.WriteString(colorDiffLine(line, opts))
			}
			continue
		}

		b.WriteString(" `")
		b.WriteString(formatValue(f.Value))
		b.WriteString("`")
	}

	return b.String()
}

func colorDiffLine(line string, opts RenderOptions) string {
	if !opts.Colorize {
		return line
	}
	switch {
	case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "):
		return ansi.Color(line, "white+b")
	case strings.HasPrefix(line, "-"):
		return ansi.Color(line, "red")
	case strings.HasPrefix(line, "+"):
		return ansi.Color(line, "green")
	case strings.HasPrefix(line, "@@ "):
		return ansi.Color(line, "cyan")
	}
	return line
}

// formatValue renders v the way it appears between backticks.
func formatValue(v any) string {
	if isNil(v) {
		return "nil"
	}

	switch v := v.(type) {
	case verbatim:
		return string(v)
	case string:
		return strconv.Quote(v)
	case []byte:
		return strconv.Quote(string(v))
	case []string:
		return fmt.Sprintf("%q", v)
	case error:
		return strconv.Quote(v.Error())
	case fmt.Stringer:
		return v.String()
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return strconv.Quote(rv.String())
	}
	return fmt.Sprintf("%v", v)
}

// Pair is the message shape of a two-value comparison.
type Pair struct {
	Left, Right any
}

// Fields returns the left and right fields.
func (p Pair) Fields() []Field {
	return []Field{
		{Label: "left", Value: p.Left},
		{Label: "right", Value: p.Right},
	}
}

// MsgWithPair renders a two-value comparison failure.
func MsgWithPair(call string, p Pair) string {
	return Message(call, p.Fields()...)
}

// FuncPair is the message shape of a comparison between the outputs of one
// function applied to two inputs.
type FuncPair struct {
	Func        string
	LeftInput   any
	RightInput  any
	LeftOutput  any
	RightOutput any
}

// Fields returns the function, input and output fields.
func (p FuncPair) Fields() []Field {
	return []Field{
		{Label: "function", Value: verbatim(p.Func)},
		{Label: "left input", Value: p.LeftInput},
		{Label: "right input", Value: p.RightInput},
		{Label: "left output", Value: p.LeftOutput},
		{Label: "right output", Value: p.RightOutput},
	}
}

// MsgWithFuncPair renders a function output comparison failure.
func MsgWithFuncPair(call string, p FuncPair) string {
	return Message(call, p.Fields()...)
}

// ReaderPair is the message shape of a comparison between the contents of
// two readers.
type ReaderPair struct {
	LeftContents  string
	RightContents string
}

// Fields returns the reader content fields.
func (p ReaderPair) Fields() []Field {
	return []Field{
		{Label: "left contents", Value: p.LeftContents},
		{Label: "right contents", Value: p.RightContents},
	}
}

// MsgWithReaderPair renders a reader contents comparison failure.
func MsgWithReaderPair(call string, p ReaderPair) string {
	return Message(call, p.Fields()...)
}

// FilePair is the message shape of a comparison between two files.
type FilePair struct {
	LeftPath      string
	LeftContents  string
	RightPath     string
	RightContents string
}

// Fields returns the path and contents fields.
func (p FilePair) Fields() []Field {
	return []Field{
		{Label: "left path", Value: p.LeftPath},
		{Label: "left contents", Value: p.LeftContents},
		{Label: "right path", Value: p.RightPath},
		{Label: "right contents", Value: p.RightContents},
	}
}

// MsgWithFilePair renders a file contents comparison failure.
func MsgWithFilePair(call string, p FilePair) string {
	return Message(call, p.Fields()...)
}

// CommandPair is the message shape of a comparison between the output of two
// commands. Stream names the compared output, "stdout" or "stderr".
type CommandPair struct {
	Stream       string
	LeftProgram  string
	LeftArgs     []string
	LeftOutput   string
	RightProgram string
	RightArgs    []string
	RightOutput  string
}

// Fields returns the program, args and output fields of both commands.
func (p CommandPair) Fields() []Field {
	return []Field{
		{Label: "left program", Value: p.LeftProgram},
		{Label: "left args", Value: argsValue(p.LeftArgs)},
		{Label: "left " + p.Stream, Value: p.LeftOutput},
		{Label: "right program", Value: p.RightProgram},
		{Label: "right args", Value: argsValue(p.RightArgs)},
		{Label: "right " + p.Stream, Value: p.RightOutput},
	}
}

// MsgWithCommandPair renders a command output comparison failure.
func MsgWithCommandPair(call string, p CommandPair) string {
	return Message(call, p.Fields()...)
}

// argsValue keeps nil and empty argument lists rendering the same.
func argsValue(args []string) []string {
	if args == nil {
		return []string{}
	}
	return args
}
