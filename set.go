package assertly

// set is a deduplicated slice that remembers first-seen order, so failure
// messages render the same way on every run.
type set[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newSet[T comparable](items []T) set[T] {
	s := set[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.items = append(s.items, item)
	}
	return s
}

func (s set[T]) has(item T) bool {
	_, ok := s.index[item]
	return ok
}

// subsetOf reports whether every member of s is a member of other.
func (s set[T]) subsetOf(other set[T]) bool {
	for _, item := range s.items {
		if !other.has(item) {
			return false
		}
	}
	return true
}

func (s set[T]) intersects(other set[T]) bool {
	for _, item := range s.items {
		if other.has(item) {
			return true
		}
	}
	return false
}

func setAsResult[T comparable](call string, a, b []T, holds func(a, b set[T]) bool) error {
	as, bs := newSet(a), newSet(b)
	if holds(as, bs) {
		return nil
	}
	return failure(call,
		Field{Label: "a", Value: as.items},
		Field{Label: "b", Value: bs.items},
	)
}

func setEqual[T comparable](a, b set[T]) bool {
	return len(a.items) == len(b.items) && a.subsetOf(b)
}

// AssertSetEqAsResult returns nil when a and b hold the same members, and a
// *Failure otherwise.
func AssertSetEqAsResult[T comparable](a, b []T) error {
	return setAsResult("AssertSetEq(a, b)", a, b, setEqual[T])
}

// AssertSetEq panics with a *Failure unless a and b hold the same members.
func AssertSetEq[T comparable](a, b []T) {
	must(AssertSetEqAsResult(a, b))
}

// DebugAssertSetEq is AssertSetEq unless built with the assertly_nodebug tag.
func DebugAssertSetEq[T comparable](a, b []T) {
	if debugAssertions {
		AssertSetEq(a, b)
	}
}

// AssureSetEq reports whether a and b hold the same members.
func AssureSetEq[T comparable](a, b []T) (bool, error) {
	return assure(AssertSetEqAsResult(a, b))
}

// AssertSetNeAsResult returns nil when a and b do not hold the same members,
// and a *Failure otherwise.
func AssertSetNeAsResult[T comparable](a, b []T) error {
	return setAsResult("AssertSetNe(a, b)", a, b, func(a, b set[T]) bool { return !setEqual(a, b) })
}

// AssertSetNe panics with a *Failure unless a and b do not hold the same
// members.
func AssertSetNe[T comparable](a, b []T) {
	must(AssertSetNeAsResult(a, b))
}

// DebugAssertSetNe is AssertSetNe unless built with the assertly_nodebug tag.
func DebugAssertSetNe[T comparable](a, b []T) {
	if debugAssertions {
		AssertSetNe(a, b)
	}
}

// AssureSetNe reports whether a and b do not hold the same members.
func AssureSetNe[T comparable](a, b []T) (bool, error) {
	return assure(AssertSetNeAsResult(a, b))
}

// AssertSetSubsetAsResult returns nil when every member of a is a member of b,
// and a *Failure otherwise.
func AssertSetSubsetAsResult[T comparable](a, b []T) error {
	return setAsResult("AssertSetSubset(a, b)", a, b, set[T].subsetOf)
}

// AssertSetSubset panics with a *Failure unless every member of a is a member
// of b.
func AssertSetSubset[T comparable](a, b []T) {
	must(AssertSetSubsetAsResult(a, b))
}

// DebugAssertSetSubset is AssertSetSubset unless built with the
// assertly_nodebug tag.
func DebugAssertSetSubset[T comparable](a, b []T) {
	if debugAssertions {
		AssertSetSubset(a, b)
	}
}

// AssureSetSubset reports whether every member of a is a member of b.
func AssureSetSubset[T comparable](a, b []T) (bool, error) {
	return assure(AssertSetSubsetAsResult(a, b))
}

// AssertSetSupersetAsResult returns nil when every member of b is a member of
// a, and a *Failure otherwise.
func AssertSetSupersetAsResult[T comparable](a, b []T) error {
	return setAsResult("AssertSetSuperset(a, b)", a, b, func(a, b set[T]) bool { return b.subsetOf(a) })
}

// AssertSetSuperset panics with a *Failure unless every member of b is a member
// of a.
func AssertSetSuperset[T comparable](a, b []T) {
	must(AssertSetSupersetAsResult(a, b))
}

// DebugAssertSetSuperset is AssertSetSuperset unless built with the
// assertly_nodebug tag.
func DebugAssertSetSuperset[T comparable](a, b []T) {
	if debugAssertions {
		AssertSetSuperset(a, b)
	}
}

// AssureSetSuperset reports whether every member of b is a member of a.
func AssureSetSuperset[T comparable](a, b []T) (bool, error) {
	return assure(AssertSetSupersetAsResult(a, b))
}

// AssertSetJointAsResult returns nil when a and b share at least one member,
// and a *Failure otherwise.
func AssertSetJointAsResult[T comparable](a, b []T) error {
	return setAsResult("AssertSetJoint(a, b)", a, b, set[T].intersects)
}

// AssertSetJoint panics with a *Failure unless a and b share at least one
// member.
func AssertSetJoint[T comparable](a, b []T) {
	must(AssertSetJointAsResult(a, b))
}

// DebugAssertSetJoint is AssertSetJoint unless built with the assertly_nodebug
// tag.
func DebugAssertSetJoint[T comparable](a, b []T) {
	if debugAssertions {
		AssertSetJoint(a, b)
	}
}

// AssureSetJoint reports whether a and b share at least one member.
func AssureSetJoint[T comparable](a, b []T) (bool, error) {
	return assure(AssertSetJointAsResult(a, b))
}

// AssertSetDisjointAsResult returns nil when a and b share no member, and a
// *Failure otherwise.
func AssertSetDisjointAsResult[T comparable](a, b []T) error {
	return setAsResult("AssertSetDisjoint(a, b)", a, b, func(a, b set[T]) bool { return !a.intersects(b) })
}

// AssertSetDisjoint panics with a *Failure unless a and b share no member.
func AssertSetDisjoint[T comparable](a, b []T) {
	must(AssertSetDisjointAsResult(a, b))
}

// DebugAssertSetDisjoint is AssertSetDisjoint unless built with the
// assertly_nodebug tag.
func DebugAssertSetDisjoint[T comparable](a, b []T) {
	if debugAssertions {
		AssertSetDisjoint(a, b)
	}
}

// AssureSetDisjoint reports whether a and b share no member.
func AssureSetDisjoint[T comparable](a, b []T) (bool, error) {
	return assure(AssertSetDisjointAsResult(a, b))
}
