package assertly

// Failure is the error returned by the AsResult variants, and the value the
// panicking variants panic with, when a comparison does not hold.
//
// Err is set only when the comparison could not be performed at all, for
// example because a file could not be read or a command could not be
// started. A Failure with a nil Err means the values were compared and the
// comparison was false.
type Failure struct {
	Call   string
	Fields []Field
	Err    error
}

// Error renders the failure message without color.
func (f *Failure) Error() string {
	return renderMessage(f.Call, f.Fields, RenderOptions{})
}

// Unwrap returns the operational error, if any.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Render renders the failure message with the given options.
func (f *Failure) Render(opts RenderOptions) string {
	return renderMessage(f.Call, f.Fields, opts)
}

func failure(call string, fields ...Field) error {
	return &Failure{Call: call, Fields: fields}
}

// broken reports a comparison that could not be performed. err is appended
// to fields under label.
func broken(call string, err error, label string, fields ...Field) error {
	fields = append(fields, Field{Label: label, Value: err})
	return &Failure{Call: call, Fields: fields, Err: err}
}
