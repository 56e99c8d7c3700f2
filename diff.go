package assertly

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
)

// diffFields returns a "diff" field holding a unified diff of left and right
// when either of them spans several lines and they differ.
func diffFields(left, right string) []Field {
	if left == right {
		return nil
	}
	if !strings.Contains(left, "\n") && !strings.Contains(right, "\n") {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(left),
		B:        difflib.SplitLines(right),
		FromFile: "left",
		ToFile:   "right",
		Context:  3,
	})
	if err != nil || diff == "" {
		return nil
	}
	return []Field{{Label: "diff", Value: Block(diff)}}
}

// cmpDiffFields returns a "diff" field holding the cmp.Diff of left and right.
func cmpDiffFields(left, right any, opts ...cmp.Option) []Field {
	diff := cmp.Diff(left, right, opts...)
	if diff == "" {
		return nil
	}
	return []Field{{Label: "diff", Value: Block(diff)}}
}

// stringDiffFields returns diffFields when both values are plain strings.
func stringDiffFields(left, right any) []Field {
	l, ok := left.(string)
	if !ok {
		return nil
	}
	r, ok := right.(string)
	if !ok {
		return nil
	}
	return diffFields(l, r)
}
