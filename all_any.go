package assertly

import "slices"

// AssertAllAsResult returns nil when predicate holds for every item. An empty
// items slice passes.
func AssertAllAsResult[T any](items []T, predicate func(T) bool) error {
	for i, item := range items {
		if !predicate(item) {
			return failure("AssertAll(items, predicate)",
				Field{Label: "items", Value: items},
				Field{Label: "predicate", Value: verbatim(funcName(predicate))},
				Field{Label: "failing index", Value: i},
				Field{Label: "failing item", Value: item},
			)
		}
	}
	return nil
}

// AssertAll panics with a *Failure unless predicate holds for every item.
func AssertAll[T any](items []T, predicate func(T) bool) {
	must(AssertAllAsResult(items, predicate))
}

// DebugAssertAll is AssertAll unless built with the assertly_nodebug tag.
func DebugAssertAll[T any](items []T, predicate func(T) bool) {
	if debugAssertions {
		AssertAll(items, predicate)
	}
}

// AssureAll reports whether predicate holds for every item.
func AssureAll[T any](items []T, predicate func(T) bool) (bool, error) {
	return assure(AssertAllAsResult(items, predicate))
}

// AssertAnyAsResult returns nil when predicate holds for at least one item. An
// empty items slice fails.
func AssertAnyAsResult[T any](items []T, predicate func(T) bool) error {
	if slices.ContainsFunc(items, predicate) {
		return nil
	}
	return failure("AssertAny(items, predicate)",
		Field{Label: "items", Value: items},
		Field{Label: "predicate", Value: verbatim(funcName(predicate))},
	)
}

// AssertAny panics with a *Failure unless predicate holds for at least one
// item.
func AssertAny[T any](items []T, predicate func(T) bool) {
	must(AssertAnyAsResult(items, predicate))
}

// DebugAssertAny is AssertAny unless built with the assertly_nodebug tag.
func DebugAssertAny[T any](items []T, predicate func(T) bool) {
	if debugAssertions {
		AssertAny(items, predicate)
	}
}

// AssureAny reports whether predicate holds for at least one item.
func AssureAny[T any](items []T, predicate func(T) bool) (bool, error) {
	return assure(AssertAnyAsResult(items, predicate))
}
