package assertly

import (
	"slices"
	"strings"
)

func containsFields(container, containee any) []Field {
	return []Field{
		{Label: "container", Value: container},
		{Label: "containee", Value: containee},
	}
}

// AssertContainsAsResult returns nil when container contains the substring
// containee, and a *Failure otherwise.
func AssertContainsAsResult(container, containee string) error {
	if strings.Contains(container, containee) {
		return nil
	}
	return failure("AssertContains(container, containee)", containsFields(container, containee)...)
}

// AssertContains panics with a *Failure unless container contains the substring
// containee.
func AssertContains(container, containee string) {
	must(AssertContainsAsResult(container, containee))
}

// DebugAssertContains is AssertContains unless built with the assertly_nodebug
// tag.
func DebugAssertContains(container, containee string) {
	if debugAssertions {
		AssertContains(container, containee)
	}
}

// AssureContains reports whether container contains the substring containee.
func AssureContains(container, containee string) (bool, error) {
	return assure(AssertContainsAsResult(container, containee))
}

// AssertNotContainsAsResult returns nil when container does not contain the
// substring containee, and a *Failure otherwise.
func AssertNotContainsAsResult(container, containee string) error {
	if !strings.Contains(container, containee) {
		return nil
	}
	return failure("AssertNotContains(container, containee)", containsFields(container, containee)...)
}

// AssertNotContains panics with a *Failure unless container does not contain
// the substring containee.
func AssertNotContains(container, containee string) {
	must(AssertNotContainsAsResult(container, containee))
}

// DebugAssertNotContains is AssertNotContains unless built with the
// assertly_nodebug tag.
func DebugAssertNotContains(container, containee string) {
	if debugAssertions {
		AssertNotContains(container, containee)
	}
}

// AssureNotContains reports whether container does not contain the substring
// containee.
func AssureNotContains(container, containee string) (bool, error) {
	return assure(AssertNotContainsAsResult(container, containee))
}

// AssertContainsElemAsResult returns nil when containee is an element of
// container, and a *Failure otherwise.
func AssertContainsElemAsResult[T comparable](container []T, containee T) error {
	if slices.Contains(container, containee) {
		return nil
	}
	return failure("AssertContainsElem(container, containee)", containsFields(container, containee)...)
}

// AssertContainsElem panics with a *Failure unless containee is an element of
// container.
func AssertContainsElem[T comparable](container []T, containee T) {
	must(AssertContainsElemAsResult(container, containee))
}

// DebugAssertContainsElem is AssertContainsElem unless built with the
// assertly_nodebug tag.
func DebugAssertContainsElem[T comparable](container []T, containee T) {
	if debugAssertions {
		AssertContainsElem(container, containee)
	}
}

// AssureContainsElem reports whether containee is an element of container.
func AssureContainsElem[T comparable](container []T, containee T) (bool, error) {
	return assure(AssertContainsElemAsResult(container, containee))
}

// AssertNotContainsElemAsResult returns nil when containee is not an element of
// container, and a *Failure otherwise.
func AssertNotContainsElemAsResult[T comparable](container []T, containee T) error {
	if !slices.Contains(container, containee) {
		return nil
	}
	return failure("AssertNotContainsElem(container, containee)", containsFields(container, containee)...)
}

// AssertNotContainsElem panics with a *Failure unless containee is not an
// element of container.
func AssertNotContainsElem[T comparable](container []T, containee T) {
	must(AssertNotContainsElemAsResult(container, containee))
}

// DebugAssertNotContainsElem is AssertNotContainsElem unless built with the
// assertly_nodebug tag.
func DebugAssertNotContainsElem[T comparable](container []T, containee T) {
	if debugAssertions {
		AssertNotContainsElem(container, containee)
	}
}

// AssureNotContainsElem reports whether containee is not an element of
// container.
func AssureNotContainsElem[T comparable](container []T, containee T) (bool, error) {
	return assure(AssertNotContainsElemAsResult(container, containee))
}

// AssertContainsKeyAsResult returns nil when key is a key of container, and a
// *Failure otherwise.
func AssertContainsKeyAsResult[K comparable, V any](container map[K]V, key K) error {
	if _, ok := container[key]; ok {
		return nil
	}
	return failure("AssertContainsKey(container, key)",
		Field{Label: "container", Value: container},
		Field{Label: "key", Value: key},
	)
}

// AssertContainsKey panics with a *Failure unless key is a key of container.
func AssertContainsKey[K comparable, V any](container map[K]V, key K) {
	must(AssertContainsKeyAsResult(container, key))
}

// DebugAssertContainsKey is AssertContainsKey unless built with the
// assertly_nodebug tag.
func DebugAssertContainsKey[K comparable, V any](container map[K]V, key K) {
	if debugAssertions {
		AssertContainsKey(container, key)
	}
}

// AssureContainsKey reports whether key is a key of container.
func AssureContainsKey[K comparable, V any](container map[K]V, key K) (bool, error) {
	return assure(AssertContainsKeyAsResult(container, key))
}

// AssertNotContainsKeyAsResult returns nil when key is not a key of container,
// and a *Failure otherwise.
func AssertNotContainsKeyAsResult[K comparable, V any](container map[K]V, key K) error {
	if _, ok := container[key]; !ok {
		return nil
	}
	return failure("AssertNotContainsKey(container, key)",
		Field{Label: "container", Value: container},
		Field{Label: "key", Value: key},
	)
}

// AssertNotContainsKey panics with a *Failure unless key is not a key of
// container.
func AssertNotContainsKey[K comparable, V any](container map[K]V, key K) {
	must(AssertNotContainsKeyAsResult(container, key))
}

// DebugAssertNotContainsKey is AssertNotContainsKey unless built with the
// assertly_nodebug tag.
func DebugAssertNotContainsKey[K comparable, V any](container map[K]V, key K) {
	if debugAssertions {
		AssertNotContainsKey(container, key)
	}
}

// AssureNotContainsKey reports whether key is not a key of container.
func AssureNotContainsKey[K comparable, V any](container map[K]V, key K) (bool, error) {
	return assure(AssertNotContainsKeyAsResult(container, key))
}
