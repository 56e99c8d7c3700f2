package assertly

import (
	"cmp"

	"github.com/pkg/errors"
)

// must panics with err when it is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// assure converts the result of an AsResult variant into the Assure shape.
func assure(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	var f *Failure
	if errors.As(err, &f) && f.Err == nil {
		return false, nil
	}
	return false, err
}

// op is a binary comparison operator shared by the Eq..Ge families.
type op int

const (
	opEq op = iota
	opNe
	opLt
	opLe
	opGt
	opGe
)

func (o op) String() string {
	switch o {
	case opEq:
		return "=="
	case opNe:
		return "!="
	case opLt:
		return "<"
	case opLe:
		return "<="
	case opGt:
		return ">"
	case opGe:
		return ">="
	}
	return "?"
}

func compareOrdered[T cmp.Ordered](o op, a, b T) bool {
	switch o {
	case opEq:
		return a == b
	case opNe:
		return a != b
	case opLt:
		return a < b
	case opLe:
		return a <= b
	case opGt:
		return a > b
	case opGe:
		return a >= b
	}
	panic("assertly: unknown operator")
}

func compareEqual[T comparable](o op, a, b T) bool {
	switch o {
	case opEq:
		return a == b
	case opNe:
		return a != b
	}
	panic("assertly: operator " + o.String() + " needs ordered operands")
}
